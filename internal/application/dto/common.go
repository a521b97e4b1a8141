package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse error de validación del borrador: lleva la lista
// COMPLETA de reglas incumplidas, nunca solo la primera.
type ValidationErrorResponse struct {
	Code   string           `json:"code"` // siempre "VALIDATION"
	Errors []ViolationEntry `json:"errors"`
}

// ViolationEntry una regla incumplida, con el campo al que aplica.
type ViolationEntry struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
