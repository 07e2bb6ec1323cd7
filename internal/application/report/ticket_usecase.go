package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pesaje-api/internal/domain"
	"github.com/jhoicas/Pesaje-api/internal/domain/repository"
)

// TicketUseCase genera el ticket de entrega (listado crudo de registros) de un proveedor.
type TicketUseCase struct {
	suppliers repository.SupplierRepository
	records   repository.RecordRepository
	generator TicketGenerator
	now       func() time.Time
}

// NewTicketUseCase construye el caso de uso.
func NewTicketUseCase(
	suppliers repository.SupplierRepository,
	records repository.RecordRepository,
	generator TicketGenerator,
) *TicketUseCase {
	return &TicketUseCase{
		suppliers: suppliers,
		records:   records,
		generator: generator,
		now:       time.Now,
	}
}

// DownloadTicket devuelve los bytes del PDF y un nombre de archivo sugerido.
//
// Retorna domain.ErrNotFound si el proveedor no existe.
func (uc *TicketUseCase) DownloadTicket(ctx context.Context, supplierID int64) ([]byte, string, error) {
	supplier, err := uc.suppliers.GetByID(ctx, supplierID)
	if err != nil {
		return nil, "", fmt.Errorf("ticket: obtener proveedor: %w", err)
	}
	if supplier == nil {
		return nil, "", domain.ErrNotFound
	}
	records, err := uc.records.ListBySupplier(ctx, supplierID, 0, 0)
	if err != nil {
		return nil, "", fmt.Errorf("ticket: listar registros: %w", err)
	}

	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Weight)
	}
	data := TicketData{
		Supplier:    supplier,
		Records:     records,
		TotalWeight: total,
		GeneratedAt: uc.now(),
	}
	pdf, err := uc.generator.GenerateTicketPDF(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("ticket: generar PDF: %w", err)
	}
	filename := fmt.Sprintf("ticket-%d-%s.pdf", supplier.ID, data.GeneratedAt.Format("20060102"))
	return pdf, filename, nil
}
