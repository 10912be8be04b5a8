package patients

import (
	"context"
	"patientdesk-service/internal/pkg/dto/requests"
	"patientdesk-service/internal/pkg/dto/responses"
)

type PatientUsecase interface {
	ListPatients(ctx context.Context, keyword string) ([]responses.Patient, error)
	FindPatientByID(ctx context.Context, patientID int64) (*responses.Patient, error)
	CreatePatient(ctx context.Context, request *requests.CreatePatientRequest) (*responses.Patient, error)
	UpdatePatient(ctx context.Context, patientID int64, request *requests.UpdatePatientRequest) (*responses.Patient, error)
	DeletePatient(ctx context.Context, patientID int64) (string, error)
	SearchPatients(ctx context.Context, keyword string) ([]responses.Patient, error)
}
