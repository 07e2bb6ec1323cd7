package weighing

import (
	"context"

	"github.com/jhoicas/Pesaje-api/internal/application/dto"
	"github.com/jhoicas/Pesaje-api/internal/application/usecase"
)

var (
	_ RecordStore    = (*LocalStore)(nil)
	_ ProgressReader = (*LocalStore)(nil)
)

// LocalStore adapta los casos de uso del servidor al puerto RecordStore,
// para sesiones que corren en el mismo proceso que el almacén.
type LocalStore struct {
	catalog *usecase.CatalogUseCase
	records *usecase.RecordUseCase
}

// NewLocalStore construye el adaptador.
func NewLocalStore(catalog *usecase.CatalogUseCase, records *usecase.RecordUseCase) *LocalStore {
	return &LocalStore{catalog: catalog, records: records}
}

// ListSuppliers delega en CatalogUseCase.
func (s *LocalStore) ListSuppliers(ctx context.Context) ([]dto.SupplierResponse, error) {
	return s.catalog.ListSuppliers(ctx)
}

// AppendRecord delega en RecordUseCase y devuelve solo la identidad.
func (s *LocalStore) AppendRecord(ctx context.Context, in dto.AppendRecordRequest) (int64, error) {
	out, err := s.records.AppendRecord(ctx, in)
	if err != nil {
		return 0, err
	}
	return out.ID, nil
}

// Progress delega en RecordUseCase.
func (s *LocalStore) Progress(ctx context.Context, supplierID int64) (*dto.ProgressResponse, error) {
	return s.records.Progress(ctx, supplierID)
}
