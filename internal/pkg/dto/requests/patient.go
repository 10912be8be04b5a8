package requests

// CreatePatientRequest is the full draft submitted from the records form.
// Field rules mirror the form: everything but email is required, the NIK is
// digits only, the email only has to look like an email when it is filled in.
type CreatePatientRequest struct {
	Name        string  `json:"name" validate:"required"`
	NIK         string  `json:"nik" validate:"required,numeric"`
	DateOfBirth string  `json:"date_of_birth" validate:"required"`
	Sex         string  `json:"sex" validate:"required,oneof=male female"`
	Address     string  `json:"address" validate:"required"`
	Phone       string  `json:"phone" validate:"required"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	BloodGroup  string  `json:"blood_group" validate:"required,oneof=A B AB O"`
}

// UpdatePatientRequest is a partial draft: only the fields present in the
// body are sent on to the record service. Present fields still have to pass
// the same per-field rules as on create.
type UpdatePatientRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1"`
	NIK         *string `json:"nik,omitempty" validate:"omitempty,numeric"`
	DateOfBirth *string `json:"date_of_birth,omitempty" validate:"omitempty,min=1"`
	Sex         *string `json:"sex,omitempty" validate:"omitempty,oneof=male female"`
	Address     *string `json:"address,omitempty" validate:"omitempty,min=1"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,min=1"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	BloodGroup  *string `json:"blood_group,omitempty" validate:"omitempty,oneof=A B AB O"`
}
