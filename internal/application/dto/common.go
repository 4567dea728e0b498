package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse cuerpo de éxito sin datos (crear, borrar, cambiar contraseña).
type MessageResponse struct {
	Message string `json:"message"`
}
