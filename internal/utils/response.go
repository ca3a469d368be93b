package utils

import "time"

// Envelope is the uniform response wrapper returned by every endpoint.
// Success implies a 2xx status; Error and Message are only set on failure,
// except that success responses may carry an informational Message.
type Envelope struct {
	Success   bool        `json:"success"`
	Timestamp string      `json:"timestamp"`
	Data      interface{} `json:"data,omitempty"`
	Message   string      `json:"message,omitempty"`
	Error     string      `json:"error,omitempty"`
}

// envelopeTimestamp returns the construction-time timestamp: UTC, ISO-8601
// with a trailing Z.
func envelopeTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// NewSuccessEnvelope wraps a collaborator payload in a success envelope
func NewSuccessEnvelope(data interface{}) Envelope {
	return Envelope{
		Success:   true,
		Timestamp: envelopeTimestamp(),
		Data:      data,
	}
}

// NewErrorEnvelope creates a failure envelope with a short category label
// and a human-readable detail message
func NewErrorEnvelope(errorLabel, message string) Envelope {
	if errorLabel == "" {
		errorLabel = "Unknown error occurred"
	}
	return Envelope{
		Success:   false,
		Timestamp: envelopeTimestamp(),
		Error:     errorLabel,
		Message:   message,
	}
}
