package record_dto

import "strings"

// ErrorPayload is the structured failure body the record service responds
// with. Errors, when present, carries field-level error strings.
type ErrorPayload struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// ClientMessage picks the joined error list when the payload has one,
// otherwise the plain message. Empty when the payload carried neither.
func (p *ErrorPayload) ClientMessage() string {
	if len(p.Errors) > 0 {
		return strings.Join(p.Errors, ", ")
	}
	return p.Message
}
