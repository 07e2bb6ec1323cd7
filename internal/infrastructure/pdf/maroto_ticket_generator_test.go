package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pesaje-api/internal/application/report"
	"github.com/jhoicas/Pesaje-api/internal/domain/entity"
)

func TestGenerateTicketPDF(t *testing.T) {
	g := NewMarotoTicketGenerator()
	data := report.TicketData{
		Supplier: &entity.Supplier{ID: 1, Name: "Thiên Thành", Plate: "79-VA-18175", Quota: 10},
		Records: []*entity.Record{
			{ID: 1, SupplierID: 1, SequenceLabel: "01", Weight: decimal.NewFromInt(5), Classification: entity.ClassificationI,
				Attributes: entity.DefaultAttributes()},
			{ID: 2, SupplierID: 1, Weight: decimal.RequireFromString("4.5"), Classification: entity.ClassificationII,
				Defects: entity.Defects{Loss10: true}},
		},
		TotalWeight: decimal.RequireFromString("9.5"),
		GeneratedAt: time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC),
	}

	out, err := g.GenerateTicketPDF(context.Background(), data)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateTicketPDF_SinProveedor(t *testing.T) {
	_, err := NewMarotoTicketGenerator().GenerateTicketPDF(context.Background(), report.TicketData{})
	assert.Error(t, err)
}

func TestAttributeAndDefectLists(t *testing.T) {
	assert.Equal(t, "ojos grandes, salado", attributeList(entity.Attributes{LargeEyes: true, Salted: true}))
	assert.Equal(t, "—", attributeList(entity.Attributes{}))
	assert.Equal(t, "pérdida 10%, pérdida 20%", defectList(entity.Defects{Loss10: true, Loss20: true}))
	assert.Equal(t, "—", defectList(entity.Defects{}))
}
