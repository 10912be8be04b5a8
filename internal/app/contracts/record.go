package contracts

import (
	"context"
	"patientdesk-service/internal/pkg/record_dto"
)

// RecordClient is the typed boundary to the remote record-keeping service.
// The remote service is the authoritative source of truth; this application
// never assigns identifiers or timestamps.
type RecordClient interface {
	ListPatients(ctx context.Context) ([]record_dto.Patient, error)
	FindPatientByID(ctx context.Context, patientID int64) (*record_dto.Patient, error)
	CreatePatient(ctx context.Context, draft *record_dto.PatientDraft) (*record_dto.Patient, error)
	PatchPatient(ctx context.Context, patientID int64, patch *record_dto.PatientPatch) (*record_dto.Patient, error)
	DeletePatient(ctx context.Context, patientID int64) (*record_dto.DeleteResult, error)
	SearchPatients(ctx context.Context, keyword string) ([]record_dto.Patient, error)
}
