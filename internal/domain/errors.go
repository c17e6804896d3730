package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// El store en memoria nunca los devuelve; los usan los casos de uso y la capa HTTP.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrNotImplemented    = errors.New("sección no implementada")
)
