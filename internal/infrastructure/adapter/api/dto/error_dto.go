package dto

// ErrorResponse is the body of every failed ledger call.
// Code is one of the domain error codes; RequestID matches the X-Request-ID header.
type ErrorResponse struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// NewErrorResponse builds the error body for code. An empty requestID is left out of the JSON.
func NewErrorResponse(code int, message, requestID string) ErrorResponse {
	return ErrorResponse{
		Code:      code,
		Message:   message,
		RequestID: requestID,
	}
}
