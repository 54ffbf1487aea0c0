package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrUsernameTaken     = errors.New("el nombre de usuario ya está registrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrNegativeStock     = errors.New("el stock no puede ser negativo")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrStoreUnavailable  = errors.New("almacén de datos no disponible")
)
