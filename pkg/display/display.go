// Package display da formato de presentación a proveedores y pesos,
// compartido por la consola del operador y el ticket PDF.
package display

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var upper = cases.Upper(language.Vietnamese)

// SupplierTitle nombre en mayúsculas con la cuota entre paréntesis: "THIÊN THÀNH(10)".
// Usa reglas de mayúsculas del vietnamita para conservar los diacríticos.
func SupplierTitle(name string, quota int) string {
	return fmt.Sprintf("%s(%d)", upper.String(strings.TrimSpace(name)), quota)
}

// Weight peso con un decimal y unidad; vacío si no es positivo.
func Weight(w decimal.Decimal) string {
	if !w.GreaterThan(decimal.Zero) {
		return ""
	}
	return w.StringFixed(1) + " kg"
}
