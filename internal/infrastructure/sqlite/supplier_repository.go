package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/Pesaje-api/internal/domain/entity"
	"github.com/jhoicas/Pesaje-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const supplierColumns = `id, name, plate, quota, quota_weight, default_unit_label, default_weight, created_at`

// SupplierRepo catálogo de proveedores sobre SQLite.
type SupplierRepo struct {
	db *sql.DB
}

// List devuelve el catálogo ordenado por ID.
func (r *SupplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+supplierColumns+` FROM suppliers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// GetByID devuelve nil, nil si no existe.
func (r *SupplierRepo) GetByID(ctx context.Context, id int64) (*entity.Supplier, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE id = ?`, id)
	s, err := scanSupplier(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return s, nil
}

// Count número de proveedores.
func (r *SupplierRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM suppliers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count suppliers: %w", err)
	}
	return n, nil
}

// CreateBatch inserta todos los proveedores en una transacción.
func (r *SupplierRepo) CreateBatch(ctx context.Context, suppliers []*entity.Supplier) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO suppliers (name, plate, quota, quota_weight, default_unit_label, default_weight)
		VALUES (?, ?, ?, ?, ?, ?)`
	for _, s := range suppliers {
		res, err := tx.ExecContext(ctx, query,
			s.Name, s.Plate, s.Quota, s.QuotaWeight.String(), s.DefaultUnitLabel, s.DefaultWeight.String(),
		)
		if err != nil {
			return fmt.Errorf("insert supplier %q: %w", s.Name, err)
		}
		if s.ID, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("last insert id: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSupplier(row scanner) (*entity.Supplier, error) {
	var s entity.Supplier
	err := row.Scan(
		&s.ID, &s.Name, &s.Plate, &s.Quota, &s.QuotaWeight,
		&s.DefaultUnitLabel, &s.DefaultWeight, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
