package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pesaje-api/internal/domain/entity"
)

// TicketData datos crudos del ticket de entrega: proveedor y sus registros en orden.
type TicketData struct {
	Supplier    *entity.Supplier
	Records     []*entity.Record
	TotalWeight decimal.Decimal
	GeneratedAt time.Time
}

// TicketGenerator puerto de salida para la representación PDF del ticket.
type TicketGenerator interface {
	GenerateTicketPDF(ctx context.Context, data TicketData) ([]byte, error)
}
