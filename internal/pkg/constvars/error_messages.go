package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"email":     "must be a valid email",
	"numeric":   "must contain digits only",
	"min":       "must be at least %s characters long",
	"max":       "maximum at %s characters long",
	"len":       "must be %s characters long",
	"oneof":     "must be one of [%s]",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientRecordServiceUnreachable      = "patient record service cannot be reached right now"
	ErrClientRecordNotFound                = "patient record not found"
	ErrClientTooManyRequests               = "too many requests, please slow down"
	ErrClientInvalidDraft                  = "the submitted form contains invalid fields"
)

// Error messages for developers
const (
	ErrDevInvalidInput                = "invalid input"
	ErrDevValidationFailed            = "request validation failed"
	ErrDevCannotParseJSON             = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON           = "cannot convert struct or other data types to JSON"
	ErrDevCreateHTTPRequest           = "failed to create HTTP request"
	ErrDevSendHTTPRequest             = "failed to send HTTP request"
	ErrDevServerDeadlineExceeded      = "server deadline exceeded while processing request"
	ErrDevURLParamIDValidationFailed  = "invalid value for URL parameter %s"
	ErrDevRecordServiceListFailed     = "failed to list patients from record service"
	ErrDevRecordServiceGetFailed      = "failed to get patient from record service"
	ErrDevRecordServiceCreateFailed   = "failed to create patient on record service"
	ErrDevRecordServicePatchFailed    = "failed to patch patient on record service"
	ErrDevRecordServiceDeleteFailed   = "failed to delete patient on record service"
	ErrDevRecordServiceSearchFailed   = "failed to search patients on record service"
	ErrDevRecordServiceDecodeResponse = "failed to decode record service response for %s"
)

// Redis
const (
	ErrDevRedisGetData        = "failed to get data from redis"
	ErrDevRedisSetData        = "failed to set data to redis"
	ErrDevRedisIncrementValue = "failed to increment value in redis"
	ErrDevRedisDeleteData     = "failed to delete data from redis"
)
