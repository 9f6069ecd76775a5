package dto

// ErrorResponse cuerpo de error HTTP. El mensaje es genérico: nunca incluye
// stack traces, nombres de roles ni detalle que distinga fallos de auth.
type ErrorResponse struct {
	Error string `json:"error"`
}
