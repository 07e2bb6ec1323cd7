package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pesaje-api/internal/application/dto"
	"github.com/jhoicas/Pesaje-api/internal/domain"
	"github.com/jhoicas/Pesaje-api/internal/domain/entity"
	"github.com/jhoicas/Pesaje-api/internal/domain/repository"
)

// RecordUseCase agrega registros al log y los lista en crudo.
// No aplica la cuota: los agregados por encima de ella se aceptan (la política vive en el secuenciador).
type RecordUseCase struct {
	records   repository.RecordRepository
	suppliers repository.SupplierRepository
	now       func() time.Time
}

// NewRecordUseCase construye el caso de uso.
func NewRecordUseCase(records repository.RecordRepository, suppliers repository.SupplierRepository) *RecordUseCase {
	return &RecordUseCase{
		records:   records,
		suppliers: suppliers,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// AppendRecord valida el borrador, lo persiste y devuelve la identidad durable.
func (uc *RecordUseCase) AppendRecord(ctx context.Context, in dto.AppendRecordRequest) (*dto.AppendRecordResponse, error) {
	if in.SupplierID == nil {
		return nil, &domain.ValidationError{Field: "supplier_id", Reason: "es requerido", Err: domain.ErrNoSupplier}
	}
	if !in.Weight.GreaterThan(decimal.Zero) {
		return nil, domain.NewValidationError("weight", "debe ser mayor que cero")
	}
	if !in.Classification.Valid() {
		return nil, domain.NewValidationError("classification", "debe ser I o II")
	}
	supplier, err := uc.suppliers.GetByID(ctx, *in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.NewValidationError("supplier_id", "proveedor inexistente")
	}

	record := &entity.Record{
		SupplierID:     supplier.ID,
		SequenceLabel:  in.SequenceLabel,
		Weight:         in.Weight,
		Classification: in.Classification,
		Attributes:     in.Attributes,
		Defects:        in.Defects,
		CreatedAt:      uc.now(),
	}
	if err := uc.records.Append(ctx, record); err != nil {
		return nil, err
	}
	return &dto.AppendRecordResponse{ID: record.ID}, nil
}

// ListRecords listado crudo de los registros de un proveedor, en orden de llegada.
func (uc *RecordUseCase) ListRecords(ctx context.Context, supplierID int64, page dto.PageRequest) (*dto.RecordListResponse, error) {
	page.Normalize()
	if _, err := uc.requireSupplier(ctx, supplierID); err != nil {
		return nil, err
	}
	list, err := uc.records.ListBySupplier(ctx, supplierID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.records.CountBySupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RecordResponse, 0, len(list))
	for _, r := range list {
		items = append(items, toRecordResponse(r))
	}
	return &dto.RecordListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Progress cuenta los registros durables del proveedor frente a su cuota.
func (uc *RecordUseCase) Progress(ctx context.Context, supplierID int64) (*dto.ProgressResponse, error) {
	supplier, err := uc.requireSupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	saved, err := uc.records.CountBySupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	remaining := supplier.Quota - saved
	if remaining < 0 {
		remaining = 0
	}
	return &dto.ProgressResponse{
		SupplierID: supplierID,
		Saved:      saved,
		Quota:      supplier.Quota,
		Remaining:  remaining,
		Complete:   saved >= supplier.Quota,
	}, nil
}

func (uc *RecordUseCase) requireSupplier(ctx context.Context, id int64) (*entity.Supplier, error) {
	s, err := uc.suppliers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func toRecordResponse(r *entity.Record) dto.RecordResponse {
	return dto.RecordResponse{
		ID:             r.ID,
		SupplierID:     r.SupplierID,
		SequenceLabel:  r.SequenceLabel,
		Weight:         r.Weight,
		Classification: r.Classification,
		Attributes:     r.Attributes,
		Defects:        r.Defects,
		CreatedAt:      r.CreatedAt,
	}
}
