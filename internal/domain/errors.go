package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrDuplicateUsername  = errors.New("el nombre de usuario ya existe")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrAccountDisabled    = errors.New("la cuenta está deshabilitada, contacte a soporte")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidInvitation  = errors.New("código de invitación inválido")
	ErrForbidden          = errors.New("acceso denegado")
	// ErrForbiddenTarget se devuelve cuando una acción administrativa apunta a una cuenta ADMIN.
	ErrForbiddenTarget  = errors.New("las cuentas de administrador no pueden modificarse por esta vía")
	ErrConflict         = errors.New("conflicto con el estado actual")
	ErrStoreUnavailable = errors.New("almacenamiento no disponible")
)
