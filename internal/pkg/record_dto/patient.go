package record_dto

import "time"

// Patient is the record shape owned by the remote record service. The id and
// both timestamps are assigned by the service, never by this application.
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

// PatientDraft is the create payload: every record field except the
// service-assigned ones.
type PatientDraft struct {
	Name        string  `json:"name"`
	NIK         string  `json:"nik"`
	DateOfBirth string  `json:"date_of_birth"`
	Sex         string  `json:"sex"`
	Address     string  `json:"address"`
	Phone       string  `json:"phone"`
	Email       *string `json:"email,omitempty"`
	BloodGroup  string  `json:"blood_group"`
}

// PatientPatch is the partial update payload. Absent fields are left untouched
// by the record service.
type PatientPatch struct {
	Name        *string `json:"name,omitempty"`
	NIK         *string `json:"nik,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
	Sex         *string `json:"sex,omitempty"`
	Address     *string `json:"address,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	BloodGroup  *string `json:"blood_group,omitempty"`
}

// DeleteResult is the record service's body for a successful delete.
type DeleteResult struct {
	Message string `json:"message"`
}
