// Package storage abre el backend del almacén de registros elegido por STORE_DRIVER.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/jhoicas/Pesaje-api/internal/application/usecase"
	"github.com/jhoicas/Pesaje-api/internal/domain/repository"
	"github.com/jhoicas/Pesaje-api/internal/infrastructure/badgerstore"
	"github.com/jhoicas/Pesaje-api/internal/infrastructure/memory"
	"github.com/jhoicas/Pesaje-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Pesaje-api/internal/infrastructure/seed"
	"github.com/jhoicas/Pesaje-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/Pesaje-api/pkg/config"
)

// Stores repositorios del backend elegido y su cierre.
type Stores struct {
	Suppliers repository.SupplierRepository
	Records   repository.RecordRepository
	closer    io.Closer
}

// Close libera el backend.
func (s *Stores) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// Open abre el backend de cfg.Store.Driver. Postgres aplica las migraciones al abrir.
func Open(ctx context.Context, cfg *config.Config) (*Stores, error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &Stores{
			Suppliers: postgres.NewSupplierRepository(pool),
			Records:   postgres.NewRecordRepository(pool),
			closer:    closerFunc(func() error { pool.Close(); return nil }),
		}, nil
	case config.DriverSQLite:
		s, err := sqlite.Open(ctx, cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &Stores{Suppliers: s.Suppliers(), Records: s.Records(), closer: s}, nil
	case config.DriverBadger:
		s, err := badgerstore.Open(cfg.Store.BadgerDir)
		if err != nil {
			return nil, err
		}
		return &Stores{Suppliers: s.Suppliers(), Records: s.Records(), closer: s}, nil
	case config.DriverMemory:
		return &Stores{
			Suppliers: memory.NewSupplierRepository(),
			Records:   memory.NewRecordRepository(),
		}, nil
	}
	return nil, fmt.Errorf("STORE_DRIVER desconocido: %q", cfg.Store.Driver)
}

// Seed siembra el catálogo de cfg.Store.SeedFile si la tabla está vacía.
// Devuelve cuántos proveedores se insertaron.
func Seed(ctx context.Context, cfg *config.Config, catalog *usecase.CatalogUseCase) (int, error) {
	suppliers, err := seed.Load(cfg.Store.SeedFile)
	if err != nil {
		return 0, fmt.Errorf("leer catálogo semilla: %w", err)
	}
	n, err := catalog.EnsureSeeded(ctx, suppliers)
	if err != nil {
		return 0, fmt.Errorf("sembrar catálogo: %w", err)
	}
	return n, nil
}
