package domain

import "errors"

// Errores de aplicación (sin dependencias externas). Los handlers HTTP los traducen
// a códigos de estado.
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrBatchTooLarge = errors.New("el lote excede el máximo permitido")
)
