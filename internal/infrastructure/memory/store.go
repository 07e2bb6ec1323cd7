// Package memory implementa los puertos de persistencia en memoria.
// Sirve para STORE_DRIVER=memory (demos) y como doble de prueba; no es durable.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/Pesaje-api/internal/domain/entity"
	"github.com/jhoicas/Pesaje-api/internal/domain/repository"
)

// Verificar cumplimiento de interfaces
var (
	_ repository.SupplierRepository = (*SupplierRepository)(nil)
	_ repository.RecordRepository   = (*RecordRepository)(nil)
)

// SupplierRepository catálogo de proveedores en memoria.
type SupplierRepository struct {
	mu        sync.RWMutex
	suppliers map[int64]entity.Supplier
	lastID    int64
}

// NewSupplierRepository crea un catálogo vacío.
func NewSupplierRepository() *SupplierRepository {
	return &SupplierRepository{suppliers: make(map[int64]entity.Supplier)}
}

// List devuelve copias ordenadas por ID.
func (r *SupplierRepository) List(_ context.Context) ([]*entity.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		s := s
		list = append(list, &s)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// GetByID devuelve nil, nil si no existe.
func (r *SupplierRepository) GetByID(_ context.Context, id int64) (*entity.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.suppliers[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

// Count número de proveedores.
func (r *SupplierRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.suppliers), nil
}

// CreateBatch asigna IDs consecutivos y guarda todos los proveedores.
func (r *SupplierRepository) CreateBatch(_ context.Context, suppliers []*entity.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range suppliers {
		r.lastID++
		s.ID = r.lastID
		r.suppliers[s.ID] = *s
	}
	return nil
}

// RecordRepository log de registros en memoria.
type RecordRepository struct {
	mu      sync.RWMutex
	records []entity.Record
	lastID  int64
}

// NewRecordRepository crea un log vacío.
func NewRecordRepository() *RecordRepository {
	return &RecordRepository{}
}

// Append asigna el siguiente ID bajo el lock; seguro ante llamadas concurrentes.
func (r *RecordRepository) Append(_ context.Context, record *entity.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastID++
	record.ID = r.lastID
	r.records = append(r.records, *record)
	return nil
}

// ListBySupplier registros del proveedor en orden de ID.
func (r *RecordRepository) ListBySupplier(_ context.Context, supplierID int64, limit, offset int) ([]*entity.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Record
	skipped := 0
	for i := range r.records {
		if r.records[i].SupplierID != supplierID {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		if limit > 0 && len(list) >= limit {
			break
		}
		rec := r.records[i]
		list = append(list, &rec)
	}
	return list, nil
}

// CountBySupplier número de registros del proveedor.
func (r *RecordRepository) CountBySupplier(_ context.Context, supplierID int64) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for i := range r.records {
		if r.records[i].SupplierID == supplierID {
			n++
		}
	}
	return n, nil
}
