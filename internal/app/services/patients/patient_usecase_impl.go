package patients

import (
	"context"
	"patientdesk-service/internal/app/contracts"
	"patientdesk-service/internal/pkg/constvars"
	"patientdesk-service/internal/pkg/dto/requests"
	"patientdesk-service/internal/pkg/dto/responses"
	"patientdesk-service/internal/pkg/exceptions"
	"patientdesk-service/internal/pkg/record_dto"
	"patientdesk-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

// patientUsecase keeps the transient, non-authoritative copy of the full
// record list the records screen works against. The record service remains
// the source of truth: the snapshot is replaced wholesale on every successful
// full-list fetch and rebuilt by refetching after every mutation, never
// patched locally. Operations are not serialized against each other; the
// mutex only protects the snapshot itself.
type patientUsecase struct {
	RecordClient contracts.RecordClient
	Log          *zap.Logger

	mu       sync.Mutex
	snapshot []record_dto.Patient
}

func NewPatientUsecase(recordClient contracts.RecordClient, logger *zap.Logger) PatientUsecase {
	return &patientUsecase{
		RecordClient: recordClient,
		Log:          logger,
	}
}

func (uc *patientUsecase) storeSnapshot(records []record_dto.Patient) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.snapshot = records
}

// Snapshot returns the last successfully fetched list. Initially empty and
// left at its last-known state when a fetch fails.
func (uc *patientUsecase) Snapshot() []record_dto.Patient {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.snapshot
}

// refreshSnapshot refetches the full list after a mutation. The mutation
// itself already succeeded, so a failed refetch only logs and keeps the
// previous snapshot.
func (uc *patientUsecase) refreshSnapshot(ctx context.Context) {
	records, err := uc.RecordClient.ListPatients(ctx)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("patientUsecase.refreshSnapshot list refetch failed, keeping last-known list",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}
	uc.storeSnapshot(records)
}

func (uc *patientUsecase) ListPatients(ctx context.Context, keyword string) ([]responses.Patient, error) {
	records, err := uc.RecordClient.ListPatients(ctx)
	if err != nil {
		return nil, err
	}
	uc.storeSnapshot(records)

	return responses.PatientsFromRecords(FilterPatients(records, keyword)), nil
}

func (uc *patientUsecase) FindPatientByID(ctx context.Context, patientID int64) (*responses.Patient, error) {
	record, err := uc.RecordClient.FindPatientByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return responses.PatientFromRecord(record), nil
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatientRequest) (*responses.Patient, error) {
	utils.SanitizeCreatePatientRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrDraftValidation(exceptions.MapValidationErrors(err))
	}

	draft := &record_dto.PatientDraft{
		Name:        request.Name,
		NIK:         request.NIK,
		DateOfBirth: request.DateOfBirth,
		Sex:         request.Sex,
		Address:     request.Address,
		Phone:       request.Phone,
		Email:       request.Email,
		BloodGroup:  request.BloodGroup,
	}

	record, err := uc.RecordClient.CreatePatient(ctx, draft)
	if err != nil {
		return nil, err
	}
	uc.refreshSnapshot(ctx)

	return responses.PatientFromRecord(record), nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, patientID int64, request *requests.UpdatePatientRequest) (*responses.Patient, error) {
	utils.SanitizeUpdatePatientRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrDraftValidation(exceptions.MapValidationErrors(err))
	}

	patch := &record_dto.PatientPatch{
		Name:        request.Name,
		NIK:         request.NIK,
		DateOfBirth: request.DateOfBirth,
		Sex:         request.Sex,
		Address:     request.Address,
		Phone:       request.Phone,
		Email:       request.Email,
		BloodGroup:  request.BloodGroup,
	}

	record, err := uc.RecordClient.PatchPatient(ctx, patientID, patch)
	if err != nil {
		return nil, err
	}
	uc.refreshSnapshot(ctx)

	return responses.PatientFromRecord(record), nil
}

func (uc *patientUsecase) DeletePatient(ctx context.Context, patientID int64) (string, error) {
	result, err := uc.RecordClient.DeletePatient(ctx, patientID)
	if err != nil {
		return "", err
	}
	uc.refreshSnapshot(ctx)

	message := result.Message
	if message == "" {
		message = constvars.DeletePatientSuccessMessage
	}
	return message, nil
}

func (uc *patientUsecase) SearchPatients(ctx context.Context, keyword string) ([]responses.Patient, error) {
	records, err := uc.RecordClient.SearchPatients(ctx, keyword)
	if err != nil {
		return nil, err
	}
	return responses.PatientsFromRecords(records), nil
}
