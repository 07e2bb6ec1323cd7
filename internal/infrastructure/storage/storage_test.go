package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pesaje-api/internal/application/usecase"
	"github.com/jhoicas/Pesaje-api/internal/infrastructure/storage"
	"github.com/jhoicas/Pesaje-api/pkg/config"
)

func TestOpen_SeedsOnce(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	drivers := map[string]config.StoreConfig{
		config.DriverMemory: {Driver: config.DriverMemory},
		config.DriverSQLite: {Driver: config.DriverSQLite, SQLitePath: filepath.Join(dir, "pesaje.db")},
		config.DriverBadger: {Driver: config.DriverBadger, BadgerDir: filepath.Join(dir, "badger")},
	}
	for name, sc := range drivers {
		t.Run(name, func(t *testing.T) {
			cfg := &config.Config{Store: sc}
			st, err := storage.Open(ctx, cfg)
			require.NoError(t, err)
			defer st.Close()

			uc := usecase.NewCatalogUseCase(st.Suppliers)
			n, err := storage.Seed(ctx, cfg, uc)
			require.NoError(t, err)
			assert.Equal(t, 3, n)

			n, err = storage.Seed(ctx, cfg, uc)
			require.NoError(t, err)
			assert.Zero(t, n)
		})
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := storage.Open(context.Background(), &config.Config{Store: config.StoreConfig{Driver: "mongo"}})
	assert.ErrorContains(t, err, "mongo")
}

func TestSeed_MissingFile(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{Store: config.StoreConfig{Driver: config.DriverMemory, SeedFile: filepath.Join(t.TempDir(), "no-existe.yaml")}}
	st, err := storage.Open(ctx, cfg)
	require.NoError(t, err)

	_, err = storage.Seed(ctx, cfg, usecase.NewCatalogUseCase(st.Suppliers))
	assert.ErrorContains(t, err, "catálogo semilla")
}
