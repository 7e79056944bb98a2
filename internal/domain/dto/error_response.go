package dto

// ErrorResponse is the JSON error envelope returned by every non-2xx response.
//
// The message field serializes as "error" so the fixed bad-ticker body stays
// exactly {"error": "Invalid ticker!"}. Details carries the underlying cause
// when one exists and is omitted otherwise.
//
// swagger:model ErrorResponse
type ErrorResponse struct {
	Message string `json:"error" example:"Invalid ticker!"`
	Details string `json:"details,omitempty" example:"context deadline exceeded"`
}

// NewErrorResponse builds an ErrorResponse from a human-readable message and
// an optional inner error.
func NewErrorResponse(message string, err error) ErrorResponse {
	e := ErrorResponse{Message: message}
	if err != nil {
		e.Details = err.Error()
	}
	return e
}

// Error implements the error interface so an ErrorResponse can travel through
// gin's error list.
func (e ErrorResponse) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}
