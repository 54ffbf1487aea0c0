package dto

// ErrorResponse cuerpo uniforme de error de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
