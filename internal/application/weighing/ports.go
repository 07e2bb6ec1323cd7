package weighing

import (
	"context"

	"github.com/jhoicas/Pesaje-api/internal/application/dto"
)

// RecordStore contrato mínimo que el secuenciador necesita del almacén de registros.
// Lo implementan LocalStore (en proceso) y storeclient.Client (HTTP).
type RecordStore interface {
	ListSuppliers(ctx context.Context) ([]dto.SupplierResponse, error)
	AppendRecord(ctx context.Context, in dto.AppendRecordRequest) (int64, error)
}

// ProgressReader cuenta durable de un proveedor según el almacén.
type ProgressReader interface {
	Progress(ctx context.Context, supplierID int64) (*dto.ProgressResponse, error)
}
