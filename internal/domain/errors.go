package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrFetchFailed     = errors.New("no se pudo obtener el catálogo de stock")
	ErrSubmitFailed    = errors.New("no se pudo enviar la orden de reposición")
	ErrInvalidQuantity = errors.New("cantidad inválida")
	ErrUnknownRecord   = errors.New("producto no encontrado en el catálogo actual")
	ErrEngineClosed    = errors.New("el motor de stock está detenido")
)
