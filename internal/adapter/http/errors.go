package http

// ErrorCode is an internal, stable identifier for an API error class
type ErrorCode string

const (
	ErrInvalidInput ErrorCode = "ERR_001"
	ErrEmptyBatch   ErrorCode = "ERR_002"
	ErrServerError  ErrorCode = "ERR_003"
)

// ErrorResponse is the standard error body for all API failures
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`    // internal error code
	Message string    `json:"message"` // user-friendly message
	Details string    `json:"details,omitempty"`
}
