package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("producto no encontrado")
	ErrInvalidQuantity    = errors.New("la cantidad debe ser un entero mayor que cero")
	ErrInvalidPrice       = errors.New("el precio unitario debe ser positivo con máximo dos decimales")
	ErrGenerationConflict = errors.New("secuencia de lotes agotada para el periodo")
	ErrDuplicate          = errors.New("recurso duplicado")
)
