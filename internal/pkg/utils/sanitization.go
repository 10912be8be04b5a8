package utils

import (
	"patientdesk-service/internal/pkg/dto/requests"
	"strings"
)

// SanitizeCreatePatientRequest trims the textual draft fields before
// validation, so whitespace-only input counts as missing.
func SanitizeCreatePatientRequest(request *requests.CreatePatientRequest) {
	request.Name = strings.TrimSpace(request.Name)
	request.NIK = strings.TrimSpace(request.NIK)
	request.DateOfBirth = strings.TrimSpace(request.DateOfBirth)
	request.Sex = strings.TrimSpace(request.Sex)
	request.Address = strings.TrimSpace(request.Address)
	request.Phone = strings.TrimSpace(request.Phone)
	request.BloodGroup = strings.TrimSpace(request.BloodGroup)
	if request.Email != nil {
		trimmed := strings.TrimSpace(strings.ToLower(*request.Email))
		if trimmed == "" {
			request.Email = nil
		} else {
			request.Email = &trimmed
		}
	}
}

// SanitizeUpdatePatientRequest trims only the fields the partial draft carries.
func SanitizeUpdatePatientRequest(request *requests.UpdatePatientRequest) {
	trim := func(value *string) *string {
		if value == nil {
			return nil
		}
		trimmed := strings.TrimSpace(*value)
		return &trimmed
	}
	request.Name = trim(request.Name)
	request.NIK = trim(request.NIK)
	request.DateOfBirth = trim(request.DateOfBirth)
	request.Sex = trim(request.Sex)
	request.Address = trim(request.Address)
	request.Phone = trim(request.Phone)
	request.BloodGroup = trim(request.BloodGroup)
	if request.Email != nil {
		lowered := strings.TrimSpace(strings.ToLower(*request.Email))
		request.Email = &lowered
	}
}
