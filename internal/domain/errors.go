package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrSameLocation      = errors.New("la ubicación origen y destino deben diferir")
	ErrInvalidQuantity   = errors.New("la cantidad debe ser mayor que cero")
	ErrUnknownLocation   = errors.New("ubicación no registrada")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrBatchCompleted    = errors.New("el lote ya está completado")
	ErrInsufficientStock = errors.New("stock insuficiente en la ubicación origen")
	ErrDuplicate         = errors.New("recurso duplicado")
)
