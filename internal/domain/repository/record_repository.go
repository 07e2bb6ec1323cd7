package repository

import (
	"context"

	"github.com/jhoicas/Pesaje-api/internal/domain/entity"
)

// RecordRepository puerto del log de registros (solo append).
type RecordRepository interface {
	// Append persiste el registro de forma atómica y asigna un ID único y creciente.
	// Al retornar nil el registro ya es durable.
	Append(ctx context.Context, record *entity.Record) error
	ListBySupplier(ctx context.Context, supplierID int64, limit, offset int) ([]*entity.Record, error)
	CountBySupplier(ctx context.Context, supplierID int64) (int, error)
}
