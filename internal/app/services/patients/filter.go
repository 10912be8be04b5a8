package patients

import (
	"patientdesk-service/internal/pkg/record_dto"
	"strings"
)

// FilterPatients derives the subset of records whose name contains the
// keyword case-insensitively, or whose NIK contains it as a plain substring.
// An empty keyword returns the input unchanged. The source slice is never
// mutated, so the same keyword applied twice yields the same result.
func FilterPatients(records []record_dto.Patient, keyword string) []record_dto.Patient {
	if keyword == "" {
		return records
	}

	loweredKeyword := strings.ToLower(keyword)
	filtered := make([]record_dto.Patient, 0, len(records))
	for _, record := range records {
		if strings.Contains(strings.ToLower(record.Name), loweredKeyword) ||
			strings.Contains(record.NIK, keyword) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}
