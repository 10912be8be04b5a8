package responses

import (
	"patientdesk-service/internal/pkg/record_dto"
	"time"
)

type Patient struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	NIK         string    `json:"nik"`
	DateOfBirth string    `json:"date_of_birth"`
	Sex         string    `json:"sex"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	Email       *string   `json:"email,omitempty"`
	BloodGroup  string    `json:"blood_group"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func PatientFromRecord(record *record_dto.Patient) *Patient {
	return &Patient{
		ID:          record.ID,
		Name:        record.Name,
		NIK:         record.NIK,
		DateOfBirth: record.DateOfBirth,
		Sex:         record.Sex,
		Address:     record.Address,
		Phone:       record.Phone,
		Email:       record.Email,
		BloodGroup:  record.BloodGroup,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

func PatientsFromRecords(records []record_dto.Patient) []Patient {
	patients := make([]Patient, len(records))
	for i := range records {
		patients[i] = *PatientFromRecord(&records[i])
	}
	return patients
}
