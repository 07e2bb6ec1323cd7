// Package weighing contiene las reglas puras de secuencia y cierre de una entrega:
// numeración con ceros a la izquierda, tope en la cuota y predicado de finalización.
package weighing

import (
	"fmt"
	"strconv"

	"github.com/jhoicas/Pesaje-api/internal/domain"
)

// fallbackWidth ancho usado cuando la cuota no es positiva.
const fallbackWidth = 2

// LabelWidth número de dígitos decimales de la cuota (12 → 2, 100 → 3).
func LabelWidth(quota int) int {
	if quota <= 0 {
		return fallbackWidth
	}
	return len(strconv.Itoa(quota))
}

// FormatLabel rellena n con ceros hasta el ancho de la cuota.
func FormatLabel(n, quota int) string {
	return fmt.Sprintf("%0*d", LabelWidth(quota), n)
}

// NextSequence secuencia del siguiente borrador tras saved unidades guardadas.
// Nunca supera la cuota: con la entrega llena se queda en quota.
func NextSequence(saved, quota int) int {
	next := saved + 1
	if quota > 0 && next > quota {
		return quota
	}
	return next
}

// Entered unidades guardadas más el borrador actual si tiene peso positivo.
func Entered(saved int, draftHasWeight bool) int {
	if draftHasWeight {
		return saved + 1
	}
	return saved
}

// CheckCompletion evalúa si la entrega puede marcarse como terminada.
//
// Orden de verificación:
//  1. entered < quota       → IncompleteError
//  2. sin confirmación      → AcknowledgmentRequiredError
//  3. saved < quota         → IncompleteError (la última unidad sigue en el borrador)
func CheckCompletion(saved, quota int, draftHasWeight, acknowledged bool) error {
	entered := Entered(saved, draftHasWeight)
	if entered < quota {
		return &domain.IncompleteError{Entered: entered, Saved: saved, Quota: quota}
	}
	if !acknowledged {
		return &domain.AcknowledgmentRequiredError{}
	}
	if saved < quota {
		return &domain.IncompleteError{Entered: entered, Saved: saved, Quota: quota}
	}
	return nil
}
