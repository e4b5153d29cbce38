package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse cuerpo de éxito sin datos (mensaje fijo).
type MessageResponse struct {
	Message string `json:"message"`
}
