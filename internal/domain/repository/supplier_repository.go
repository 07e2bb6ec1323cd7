package repository

import (
	"context"

	"github.com/jhoicas/Pesaje-api/internal/domain/entity"
)

// SupplierRepository puerto de persistencia del catálogo de proveedores (DIP).
type SupplierRepository interface {
	// List devuelve todos los proveedores ordenados por ID ascendente.
	List(ctx context.Context) ([]*entity.Supplier, error)
	// GetByID devuelve nil, nil si el proveedor no existe.
	GetByID(ctx context.Context, id int64) (*entity.Supplier, error)
	Count(ctx context.Context) (int, error)
	// CreateBatch inserta todos los proveedores o ninguno; asigna los IDs.
	CreateBatch(ctx context.Context, suppliers []*entity.Supplier) error
}
