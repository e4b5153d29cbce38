package domain

import "errors"

// Errores de dominio (sin dependencias externas). Cada operación de los casos de
// uso devuelve exactamente uno de estos; la capa HTTP los mapea a status codes y
// mensajes fijos sin filtrar detalle interno.
var (
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUsernameTaken      = errors.New("el username ya está en uso")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrKYCAlreadyExists   = errors.New("el usuario ya envió sus datos KYC")
	ErrKYCNotFound        = errors.New("registro KYC no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)
