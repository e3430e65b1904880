package dto

// SuccessResponse is the envelope for successful API responses.
type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

// ErrorResponse is the envelope for failed API responses.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// OK wraps data in a success envelope.
func OK(data any) SuccessResponse {
	return SuccessResponse{Success: true, Data: data}
}

// Fail wraps a message in an error envelope.
func Fail(msg string) ErrorResponse {
	return ErrorResponse{Success: false, Error: msg}
}
