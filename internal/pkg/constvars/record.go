package constvars

const (
	ResourcePatient = "patient"
)

// Remote record service paths, relative to the configured base URL.
const (
	RecordServicePatientsPath      = "/patients"
	RecordServicePatientSearchPath = "/patients/search"
)

const (
	URLParamPatientID = "patient_id"

	URLQueryParamKeyword = "q"
)

// Enumerations owned by the record shape.
var (
	KnownSexes       = []string{"male", "female"}
	KnownBloodGroups = []string{"A", "B", "AB", "O"}
)
