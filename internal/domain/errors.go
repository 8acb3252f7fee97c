package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrCategoryNotFound = errors.New("la categoría especificada no existe")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrCategoryInUse    = errors.New("la categoría tiene armas asociadas")
)
