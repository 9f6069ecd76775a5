package domain

import "net/http"

// Kind clasifica los errores de dominio. El conjunto es cerrado: todo fallo
// que cruza hacia la capa HTTP pertenece a una de estas variantes.
type Kind int

const (
	KindValidation Kind = iota // entrada del cliente ausente o malformada
	KindConflict               // violación de unicidad
	KindAuthentication         // identidad no establecida o no verificable
	KindAuthorization          // identidad establecida pero rol insuficiente
	KindNotFound               // entidad referenciada no existe
	KindInsufficientStock      // regla de negocio: stock insuficiente
	KindInternal               // fallo inesperado de store o configuración
)

// Error es el error tipado de dominio: variante + mensaje + status HTTP derivado.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Is permite errors.Is contra los centinelas comparando por variante.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Status devuelve el código HTTP de la variante.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation, KindInsufficientStock:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Centinelas con mensajes genéricos. Los mensajes de autenticación y login
// nunca distinguen cuál verificación falló.
var (
	ErrInvalidInput       = &Error{Kind: KindValidation, Message: "entrada inválida"}
	ErrMissingFields      = &Error{Kind: KindValidation, Message: "faltan campos requeridos"}
	ErrEmailAlreadyExists = &Error{Kind: KindConflict, Message: "el email ya está registrado"}
	ErrUnauthorized       = &Error{Kind: KindAuthentication, Message: "no autorizado"}
	ErrInvalidCredentials = &Error{Kind: KindAuthentication, Message: "credenciales inválidas"}
	ErrForbidden          = &Error{Kind: KindAuthorization, Message: "acceso denegado"}
	ErrNotFound           = &Error{Kind: KindNotFound, Message: "recurso no encontrado"}
	ErrInsufficientStock  = &Error{Kind: KindInsufficientStock, Message: "stock insuficiente"}
	ErrInternal           = &Error{Kind: KindInternal, Message: "error interno"}
)

// Validation construye un error de validación con mensaje propio.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}
