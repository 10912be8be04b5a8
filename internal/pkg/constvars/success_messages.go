package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Patient-related messages
	GetPatientsSuccessMessage    = "patients fetched successfully"
	GetPatientSuccessMessage     = "patient fetched successfully"
	SearchPatientsSuccessMessage = "patients searched successfully"
	CreatePatientSuccessMessage  = "patient created successfully"
	UpdatePatientSuccessMessage  = "patient updated successfully"
	DeletePatientSuccessMessage  = "patient deleted successfully"
)
