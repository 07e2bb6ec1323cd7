// Package console implementa la sesión de pesaje del operador en terminal:
// una vista de estado y un intérprete de comandos de una línea.
package console

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Pesaje-api/internal/application/weighing"
	"github.com/jhoicas/Pesaje-api/pkg/display"
)

// Render vista de estado del secuenciador. Pura: no escribe ni modifica nada.
func Render(seq *weighing.Sequencer) string {
	sup, ok := seq.Supplier()
	if !ok {
		return "Sin proveedor activo. Use \"use <id>\" o verifique el catálogo.\n"
	}
	d := seq.Draft()
	var b strings.Builder

	fmt.Fprintf(&b, "%s  Placa: %s\n", display.SupplierTitle(sup.Name, sup.Quota), sup.Plate)
	fmt.Fprintf(&b, "N° %s/%d   Guardadas: %d\n", seq.Label(), sup.Quota, seq.Saved())
	fmt.Fprintf(&b, "Peso: %s   Clase: %s\n", nonEmpty(display.Weight(d.Weight), "—"), d.Classification)
	fmt.Fprintf(&b, "Atributos: %s %s %s %s\n",
		check(d.Attributes.LargeEyes, "large_eyes"),
		check(d.Attributes.Salted, "salted"),
		check(d.Attributes.Burnt, "burnt"),
		check(d.Attributes.Passed, "passed"),
	)
	fmt.Fprintf(&b, "Defectos:  %s %s\n", check(d.Defects.Loss10, "loss_10"), check(d.Defects.Loss20, "loss_20"))
	fmt.Fprintf(&b, "Confirmado: %s\n", yesNo(d.Acknowledged))

	st := seq.State()
	switch {
	case st.Ready:
		b.WriteString("Lista para cerrar con \"finish\"\n")
	case st.Full:
		b.WriteString("Entrega llena: confirme con \"ack\" y cierre con \"finish\"\n")
	case st.WeightMissing:
		b.WriteString("! Falta el peso de la unidad\n")
	}
	return b.String()
}

func check(v bool, name string) string {
	if v {
		return "[x] " + name
	}
	return "[ ] " + name
}

func yesNo(v bool) string {
	if v {
		return "sí"
	}
	return "no"
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
