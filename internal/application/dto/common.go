package dto

// ErrorResponse cuerpo de error HTTP: mensaje legible más código estable para el dashboard.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HealthResponse respuesta de /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
