// Package pdf implementa el ticket de entrega de un proveedor en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: PROVEEDOR(cuota) + Placa │ Fecha de emisión         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: N° | Peso | Clase | Atributos | Defectos             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Unidades guardadas / Peso total                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Pesaje-api/internal/application/report"
	"github.com/jhoicas/Pesaje-api/internal/domain/entity"
	"github.com/jhoicas/Pesaje-api/pkg/display"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ report.TicketGenerator = (*MarotoTicketGenerator)(nil)

// MarotoTicketGenerator implementa report.TicketGenerator usando Maroto v2.
type MarotoTicketGenerator struct{}

// NewMarotoTicketGenerator construye el generador.
func NewMarotoTicketGenerator() *MarotoTicketGenerator { return &MarotoTicketGenerator{} }

// GenerateTicketPDF genera el PDF y devuelve sus bytes.
func (g *MarotoTicketGenerator) GenerateTicketPDF(_ context.Context, data report.TicketData) ([]byte, error) {
	if data.Supplier == nil {
		return nil, fmt.Errorf("pdf: proveedor requerido")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ticket de pesaje", true).
		WithAuthor(data.Supplier.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRecordRows(data.Supplier, data.Records)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(data report.TicketData) core.Row {
	s := data.Supplier
	return row.New(18).Add(
		col.New(8).Add(
			text.New(display.SupplierTitle(s.Name, s.Quota), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Placa: "+nonEmpty(s.Plate, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("TICKET DE PESAJE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+data.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("N°", 2, align.Center),
		h("Peso", 2, align.Right),
		h("Clase", 1, align.Center),
		h("Atributos", 4, align.Left),
		h("Defectos", 3, align.Left),
	)
}

// tableRecordRows una fila por registro, en orden de llegada.
// Los registros sin etiqueta se rotulan con su posición.
func tableRecordRows(s *entity.Supplier, records []*entity.Record) []core.Row {
	result := make([]core.Row, 0, len(records))
	for i, r := range records {
		label := r.SequenceLabel
		if label == "" {
			label = fmt.Sprintf("#%d", i+1)
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(label, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(display.Weight(r.Weight), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(string(r.Classification), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(4).Add(text.New(attributeList(r.Attributes), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(defectList(r.Defects), props.Text{Size: 8, Top: 1, Left: 1})),
		))
	}
	if len(result) == 0 {
		result = append(result, row.New(8).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Sin registros para %s", s.Name), props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}
	return result
}

func totalsRow(data report.TicketData) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Right: 1})
	}
	return row.New(14).Add(
		col.New(6),
		col.New(3).Add(label("Unidades:"), label("Peso total:")),
		col.New(3).Add(
			value(fmt.Sprintf("%d / %d", len(data.Records), data.Supplier.Quota)),
			value(data.TotalWeight.StringFixed(1)+" kg"),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func attributeList(a entity.Attributes) string {
	var parts []string
	if a.LargeEyes {
		parts = append(parts, "ojos grandes")
	}
	if a.Salted {
		parts = append(parts, "salado")
	}
	if a.Burnt {
		parts = append(parts, "quemado")
	}
	if a.Passed {
		parts = append(parts, "aprobado")
	}
	return nonEmpty(strings.Join(parts, ", "), "—")
}

func defectList(d entity.Defects) string {
	var parts []string
	if d.Loss10 {
		parts = append(parts, "pérdida 10%")
	}
	if d.Loss20 {
		parts = append(parts, "pérdida 20%")
	}
	return nonEmpty(strings.Join(parts, ", "), "—")
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
