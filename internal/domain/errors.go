package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound               = errors.New("recurso no encontrado")
	ErrInvalidInput           = errors.New("entrada inválida")
	ErrNoSupplier             = errors.New("no hay proveedor seleccionado")
	ErrQuotaReached           = errors.New("la entrega ya tiene todas sus unidades registradas")
	ErrIncomplete             = errors.New("la entrega no tiene todas sus unidades registradas")
	ErrAcknowledgmentRequired = errors.New("se requiere confirmar el cierre de la entrega")
	ErrStoreUnavailable       = errors.New("almacén de registros no disponible")
)

// ValidationError rechaza un guardado por datos del borrador. Es recuperable
// corrigiendo la entrada; coincide con ErrInvalidInput vía errors.Is.
type ValidationError struct {
	Field  string
	Reason string
	Err    error // causa opcional (ErrNoSupplier, ErrQuotaReached)
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validación: %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

func (e *ValidationError) Unwrap() error { return e.Err }

// NewValidationError construye un ValidationError.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IncompleteError bloquea el cierre: Entered cuenta las unidades guardadas más el
// borrador con peso; Saved solo las guardadas.
type IncompleteError struct {
	Entered int
	Saved   int
	Quota   int
}

func (e *IncompleteError) Error() string {
	if e.Entered >= e.Quota {
		return fmt.Sprintf("última unidad sin guardar: guardadas %d/%d", e.Saved, e.Quota)
	}
	return fmt.Sprintf("faltan unidades: ingresadas %d/%d", e.Entered, e.Quota)
}

func (e *IncompleteError) Is(target error) bool { return target == ErrIncomplete }

// AcknowledgmentRequiredError bloquea el cierre hasta que el operador lo confirme.
type AcknowledgmentRequiredError struct{}

func (e *AcknowledgmentRequiredError) Error() string { return ErrAcknowledgmentRequired.Error() }

func (e *AcknowledgmentRequiredError) Is(target error) bool {
	return target == ErrAcknowledgmentRequired
}

// StoreUnavailableError envuelve un fallo de transporte o persistencia.
// El borrador se conserva; el operador puede reintentar.
type StoreUnavailableError struct {
	Op  string
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrStoreUnavailable.Error(), e.Op, e.Err)
}

func (e *StoreUnavailableError) Unwrap() error { return e.Err }

func (e *StoreUnavailableError) Is(target error) bool { return target == ErrStoreUnavailable }
