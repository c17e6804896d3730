package dto

// ErrorResponse cuerpo de error HTTP. Details lleva el mensaje por campo en errores de validación.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// HealthResponse cuerpo de GET /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Products int    `json:"produtos"`
}
