package patients

import (
	"context"
	"errors"
	"fmt"
	"patientdesk-service/internal/pkg/constvars"
	"patientdesk-service/internal/pkg/dto/requests"
	"patientdesk-service/internal/pkg/exceptions"
	"patientdesk-service/internal/pkg/record_dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// fakeRecordClient is an in-memory stand-in for the remote record service.
type fakeRecordClient struct {
	records   []record_dto.Patient
	nextID    int64
	listErr   error
	createErr error
	patchErr  error
	deleteErr error
	searchErr error
	listCalls int
}

func newFakeRecordClient(seed ...record_dto.Patient) *fakeRecordClient {
	client := &fakeRecordClient{nextID: 1}
	for _, record := range seed {
		if record.ID >= client.nextID {
			client.nextID = record.ID + 1
		}
		client.records = append(client.records, record)
	}
	return client
}

func (f *fakeRecordClient) ListPatients(ctx context.Context) ([]record_dto.Patient, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]record_dto.Patient, len(f.records))
	copy(out, f.records)
	return out, nil
}

func (f *fakeRecordClient) FindPatientByID(ctx context.Context, patientID int64) (*record_dto.Patient, error) {
	for i := range f.records {
		if f.records[i].ID == patientID {
			record := f.records[i]
			return &record, nil
		}
	}
	return nil, exceptions.ErrRecordNotFound(fmt.Errorf("patient %d", patientID))
}

func (f *fakeRecordClient) CreatePatient(ctx context.Context, draft *record_dto.PatientDraft) (*record_dto.Patient, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	record := record_dto.Patient{
		ID:          f.nextID,
		Name:        draft.Name,
		NIK:         draft.NIK,
		DateOfBirth: draft.DateOfBirth,
		Sex:         draft.Sex,
		Address:     draft.Address,
		Phone:       draft.Phone,
		Email:       draft.Email,
		BloodGroup:  draft.BloodGroup,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	f.nextID++
	f.records = append(f.records, record)
	return &record, nil
}

func (f *fakeRecordClient) PatchPatient(ctx context.Context, patientID int64, patch *record_dto.PatientPatch) (*record_dto.Patient, error) {
	if f.patchErr != nil {
		return nil, f.patchErr
	}
	for i := range f.records {
		if f.records[i].ID == patientID {
			if patch.Name != nil {
				f.records[i].Name = *patch.Name
			}
			if patch.NIK != nil {
				f.records[i].NIK = *patch.NIK
			}
			if patch.Phone != nil {
				f.records[i].Phone = *patch.Phone
			}
			f.records[i].UpdatedAt = time.Now()
			record := f.records[i]
			return &record, nil
		}
	}
	return nil, exceptions.ErrRecordNotFound(fmt.Errorf("patient %d", patientID))
}

func (f *fakeRecordClient) DeletePatient(ctx context.Context, patientID int64) (*record_dto.DeleteResult, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	for i := range f.records {
		if f.records[i].ID == patientID {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return &record_dto.DeleteResult{Message: "patient deleted"}, nil
		}
	}
	return nil, exceptions.ErrRecordNotFound(fmt.Errorf("patient %d", patientID))
}

func (f *fakeRecordClient) SearchPatients(ctx context.Context, keyword string) ([]record_dto.Patient, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return FilterPatients(f.records, keyword), nil
}

func validCreateRequest() *requests.CreatePatientRequest {
	return &requests.CreatePatientRequest{
		Name:        "Budi Santoso",
		NIK:         "3171234567890001",
		DateOfBirth: "1990-04-17",
		Sex:         "male",
		Address:     "Jl. Merdeka No. 1, Jakarta",
		Phone:       "081234567890",
		BloodGroup:  "O",
	}
}

func draftValidationFields(t *testing.T, err error) map[string]string {
	t.Helper()
	var customErr *exceptions.CustomError
	assert.True(t, errors.As(err, &customErr), "error should be a CustomError")
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	return customErr.Fields
}

func TestPatientUsecaseCreateValidation(t *testing.T) {
	uc := NewPatientUsecase(newFakeRecordClient(), zap.NewNop())
	ctx := context.Background()

	t.Run("All Required Fields Missing", func(t *testing.T) {
		_, err := uc.CreatePatient(ctx, &requests.CreatePatientRequest{})

		fields := draftValidationFields(t, err)
		for _, field := range []string{"name", "nik", "date_of_birth", "sex", "address", "phone", "blood_group"} {
			assert.Contains(t, fields, field, "missing %s should be reported", field)
		}
		assert.NotContains(t, fields, "email", "absent email is valid")
	})

	t.Run("Whitespace Only Counts As Missing", func(t *testing.T) {
		request := validCreateRequest()
		request.Name = "   "

		_, err := uc.CreatePatient(ctx, request)

		fields := draftValidationFields(t, err)
		assert.Contains(t, fields, "name")
		assert.Len(t, fields, 1)
	})

	t.Run("Non Digit NIK Is The Only Error", func(t *testing.T) {
		request := validCreateRequest()
		request.Name = "Ana"
		request.NIK = "12AB"

		_, err := uc.CreatePatient(ctx, request)

		fields := draftValidationFields(t, err)
		assert.Contains(t, fields, "nik")
		assert.Len(t, fields, 1, "only the NIK should be flagged")
	})

	t.Run("Valid Email Shape Passes", func(t *testing.T) {
		request := validCreateRequest()
		email := "x@y.z"
		request.Email = &email

		_, err := uc.CreatePatient(ctx, request)

		assert.NoError(t, err)
	})

	t.Run("Email Without At Sign Is Flagged", func(t *testing.T) {
		request := validCreateRequest()
		email := "not-an-email"
		request.Email = &email

		_, err := uc.CreatePatient(ctx, request)

		fields := draftValidationFields(t, err)
		assert.Contains(t, fields, "email")
	})

	t.Run("Email Without Domain Segment Is Flagged", func(t *testing.T) {
		request := validCreateRequest()
		email := "user@domain"
		request.Email = &email

		_, err := uc.CreatePatient(ctx, request)

		fields := draftValidationFields(t, err)
		assert.Contains(t, fields, "email")
	})

	t.Run("Unknown Blood Group Is Flagged", func(t *testing.T) {
		request := validCreateRequest()
		request.BloodGroup = "Z"

		_, err := uc.CreatePatient(ctx, request)

		fields := draftValidationFields(t, err)
		assert.Contains(t, fields, "blood_group")
	})
}

func TestPatientUsecaseUpdateValidation(t *testing.T) {
	uc := NewPatientUsecase(newFakeRecordClient(), zap.NewNop())
	ctx := context.Background()

	t.Run("Present Fields Still Validated", func(t *testing.T) {
		badSex := "other"
		_, err := uc.UpdatePatient(ctx, 1, &requests.UpdatePatientRequest{Sex: &badSex})

		fields := draftValidationFields(t, err)
		assert.Contains(t, fields, "sex")
	})

	t.Run("Empty Patch Is Valid", func(t *testing.T) {
		client := newFakeRecordClient(record_dto.Patient{ID: 7, Name: "Sari", NIK: "3171234567890002"})
		uc := NewPatientUsecase(client, zap.NewNop())

		updated, err := uc.UpdatePatient(ctx, 7, &requests.UpdatePatientRequest{})

		assert.NoError(t, err)
		assert.Equal(t, "Sari", updated.Name)
	})
}

func TestPatientUsecaseListAndSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("List Replaces Snapshot", func(t *testing.T) {
		client := newFakeRecordClient(
			record_dto.Patient{ID: 1, Name: "Budi", NIK: "3171234567890001"},
			record_dto.Patient{ID: 2, Name: "Sari", NIK: "3171234567890002"},
		)
		uc := NewPatientUsecase(client, zap.NewNop()).(*patientUsecase)

		listed, err := uc.ListPatients(ctx, "")

		assert.NoError(t, err)
		assert.Len(t, listed, 2)
		assert.Len(t, uc.Snapshot(), 2)
	})

	t.Run("Keyword Filters The Response Not The Snapshot", func(t *testing.T) {
		client := newFakeRecordClient(
			record_dto.Patient{ID: 1, Name: "Budi", NIK: "3171234567890001"},
			record_dto.Patient{ID: 2, Name: "Sari", NIK: "3171234567890002"},
		)
		uc := NewPatientUsecase(client, zap.NewNop()).(*patientUsecase)

		listed, err := uc.ListPatients(ctx, "bu")

		assert.NoError(t, err)
		assert.Len(t, listed, 1)
		assert.Equal(t, "Budi", listed[0].Name)
		assert.Len(t, uc.Snapshot(), 2, "snapshot keeps the unfiltered list")
	})

	t.Run("Fetch Failure Keeps Last Known Snapshot", func(t *testing.T) {
		client := newFakeRecordClient(record_dto.Patient{ID: 1, Name: "Budi", NIK: "3171234567890001"})
		uc := NewPatientUsecase(client, zap.NewNop()).(*patientUsecase)

		_, err := uc.ListPatients(ctx, "")
		assert.NoError(t, err)

		client.listErr = exceptions.ErrSendHTTPRequest(errors.New("connection refused"))
		_, err = uc.ListPatients(ctx, "")

		assert.Error(t, err)
		assert.Len(t, uc.Snapshot(), 1, "failed fetch should not clear the last-known list")
	})
}

func TestPatientUsecaseMutations(t *testing.T) {
	ctx := context.Background()

	t.Run("Create Refetches The Full List", func(t *testing.T) {
		client := newFakeRecordClient()
		uc := NewPatientUsecase(client, zap.NewNop()).(*patientUsecase)

		created, err := uc.CreatePatient(ctx, validCreateRequest())

		assert.NoError(t, err)
		assert.Equal(t, int64(1), created.ID, "identifier comes from the record service")
		assert.Equal(t, 1, client.listCalls, "a successful create triggers a full list refetch")
		assert.Len(t, uc.Snapshot(), 1)
	})

	t.Run("Delete Removes Record From Subsequent List", func(t *testing.T) {
		client := newFakeRecordClient(
			record_dto.Patient{ID: 1, Name: "Budi", NIK: "3171234567890001"},
			record_dto.Patient{ID: 2, Name: "Sari", NIK: "3171234567890002"},
		)
		uc := NewPatientUsecase(client, zap.NewNop())

		message, err := uc.DeletePatient(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, "patient deleted", message)

		listed, err := uc.ListPatients(ctx, "")
		assert.NoError(t, err)
		assert.Len(t, listed, 1)
		assert.Equal(t, int64(2), listed[0].ID)
	})

	t.Run("Service Rejection Surfaces Its Message", func(t *testing.T) {
		client := newFakeRecordClient()
		client.createErr = exceptions.ErrRecordServiceRejected(
			errors.New("NIK already exists"),
			constvars.StatusConflict,
			"NIK already exists",
			constvars.ErrDevRecordServiceCreateFailed,
		)
		uc := NewPatientUsecase(client, zap.NewNop())

		_, err := uc.CreatePatient(ctx, validCreateRequest())

		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, "NIK already exists", customErr.ClientMessage)
		assert.Equal(t, 0, client.listCalls, "a failed mutation must not refetch the list")
	})

	t.Run("Failed Refetch After Mutation Keeps Previous Snapshot", func(t *testing.T) {
		client := newFakeRecordClient(record_dto.Patient{ID: 5, Name: "Budi", NIK: "3171234567890001"})
		uc := NewPatientUsecase(client, zap.NewNop()).(*patientUsecase)

		_, err := uc.ListPatients(ctx, "")
		assert.NoError(t, err)

		client.listErr = exceptions.ErrSendHTTPRequest(errors.New("connection refused"))
		message, err := uc.DeletePatient(ctx, 5)

		assert.NoError(t, err, "the delete itself succeeded")
		assert.Equal(t, "patient deleted", message)
		assert.Len(t, uc.Snapshot(), 1, "refetch failed, so the visible list stays at the last successful fetch")
	})
}

func TestPatientUsecaseSearch(t *testing.T) {
	ctx := context.Background()

	client := newFakeRecordClient(
		record_dto.Patient{ID: 1, Name: "Budi", NIK: "3171234567890001"},
		record_dto.Patient{ID: 2, Name: "Sari", NIK: "3171234567890002"},
	)
	uc := NewPatientUsecase(client, zap.NewNop())

	found, err := uc.SearchPatients(ctx, "sa")

	assert.NoError(t, err)
	assert.Len(t, found, 1)
	assert.Equal(t, "Sari", found[0].Name)
}
