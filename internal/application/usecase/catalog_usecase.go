package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Pesaje-api/internal/application/dto"
	"github.com/jhoicas/Pesaje-api/internal/domain"
	"github.com/jhoicas/Pesaje-api/internal/domain/entity"
	"github.com/jhoicas/Pesaje-api/internal/domain/repository"
)

// CatalogUseCase lectura del catálogo de proveedores y siembra inicial.
type CatalogUseCase struct {
	repo repository.SupplierRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.SupplierRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// ListSuppliers devuelve el catálogo ordenado por ID ascendente.
func (uc *CatalogUseCase) ListSuppliers(ctx context.Context) ([]dto.SupplierResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, toSupplierResponse(s))
	}
	return items, nil
}

// GetSupplier devuelve domain.ErrNotFound si el proveedor no existe.
func (uc *CatalogUseCase) GetSupplier(ctx context.Context, id int64) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	out := toSupplierResponse(s)
	return &out, nil
}

// EnsureSeeded siembra el catálogo solo si está vacío. Es idempotente:
// devuelve cuántos proveedores insertó (0 si ya existían).
func (uc *CatalogUseCase) EnsureSeeded(ctx context.Context, seed []*entity.Supplier) (int, error) {
	n, err := uc.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("contar proveedores: %w", err)
	}
	if n > 0 || len(seed) == 0 {
		return 0, nil
	}
	for _, s := range seed {
		if s.Quota <= 0 {
			return 0, domain.NewValidationError("quota", fmt.Sprintf("el proveedor %q debe tener cuota positiva", s.Name))
		}
	}
	if err := uc.repo.CreateBatch(ctx, seed); err != nil {
		return 0, fmt.Errorf("sembrar proveedores: %w", err)
	}
	return len(seed), nil
}

func toSupplierResponse(s *entity.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{
		ID:               s.ID,
		Name:             s.Name,
		Plate:            s.Plate,
		Quota:            s.Quota,
		QuotaWeight:      s.QuotaWeight,
		DefaultUnitLabel: s.DefaultUnitLabel,
		DefaultWeight:    s.DefaultWeight,
	}
}
