// Package cli define los comandos del operador (cobra) sobre el almacén de registros.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Pesaje-api/internal/application/usecase"
	"github.com/jhoicas/Pesaje-api/internal/application/weighing"
	"github.com/jhoicas/Pesaje-api/internal/infrastructure/storage"
	"github.com/jhoicas/Pesaje-api/internal/infrastructure/storeclient"
	"github.com/jhoicas/Pesaje-api/pkg/config"
	"github.com/jhoicas/Pesaje-api/pkg/logger"
)

// RootOptions flags globales.
type RootOptions struct {
	StoreURL string
	Timeout  time.Duration
	Verbose  bool
	// Local abre el backend de STORE_DRIVER en el mismo proceso en lugar de la API.
	Local bool

	Config   *config.Config
	NewStore StoreFactory
}

// StoreFactory construye el almacén a partir de los flags ya parseados.
// El io.Closer devuelto puede ser nil.
type StoreFactory func(ctx context.Context, opts *RootOptions) (weighing.RecordStore, io.Closer, error)

// DefaultStore LocalStore con --local, si no el cliente HTTP.
func DefaultStore(ctx context.Context, o *RootOptions) (weighing.RecordStore, io.Closer, error) {
	if o.Local {
		return LocalStore(ctx, o)
	}
	return HTTPStore(ctx, o)
}

// HTTPStore almacén remoto vía storeclient.
func HTTPStore(_ context.Context, o *RootOptions) (weighing.RecordStore, io.Closer, error) {
	return storeclient.New(o.StoreURL, o.Timeout), nil, nil
}

// LocalStore abre el backend configurado, siembra el catálogo si hace falta
// y expone los casos de uso como RecordStore.
func LocalStore(ctx context.Context, o *RootOptions) (weighing.RecordStore, io.Closer, error) {
	st, err := storage.Open(ctx, o.Config)
	if err != nil {
		return nil, nil, err
	}
	catalog := usecase.NewCatalogUseCase(st.Suppliers)
	if _, err := storage.Seed(ctx, o.Config, catalog); err != nil {
		st.Close()
		return nil, nil, err
	}
	records := usecase.NewRecordUseCase(st.Records, st.Suppliers)
	return weighing.NewLocalStore(catalog, records), st, nil
}

// NewRootCommand comando raíz "operator". Los valores por defecto salen de cfg;
// newStore nil usa DefaultStore.
func NewRootCommand(cfg *config.Config, newStore StoreFactory) *cobra.Command {
	if newStore == nil {
		newStore = DefaultStore
	}
	opts := &RootOptions{
		StoreURL: cfg.Client.StoreURL,
		Timeout:  cfg.Client.Timeout,
		Config:   cfg,
		NewStore: newStore,
	}

	cmd := &cobra.Command{
		Use:           "operator",
		Short:         "Consola de pesaje del operador",
		Long:          "Registra unidades pesadas de cada entrega contra el almacén de registros.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.StoreURL, "store-url", opts.StoreURL, "URL base de la API del almacén")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", opts.Timeout, "timeout por petición al almacén")
	cmd.PersistentFlags().BoolVar(&opts.Local, "local", false, "usar el almacén de STORE_DRIVER en este proceso")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log de depuración a stderr")

	cmd.AddCommand(NewSuppliersCommand(opts))
	cmd.AddCommand(NewProgressCommand(opts))
	cmd.AddCommand(NewSessionCommand(opts, cfg))
	return cmd
}

// openStore construye el almacén y devuelve su cierre (no-op si no hay nada que cerrar).
func (o *RootOptions) openStore(cmd *cobra.Command) (weighing.RecordStore, func(), error) {
	store, closer, err := o.NewStore(cmd.Context(), o)
	if err != nil {
		return nil, nil, err
	}
	done := func() {}
	if closer != nil {
		done = func() { _ = closer.Close() }
	}
	return store, done, nil
}

func (o *RootOptions) logger(cmd *cobra.Command, env string) *logger.Logger {
	level := "warn"
	if o.Verbose {
		level = "debug"
	}
	return logger.New(logger.Config{Env: env, Level: level, Output: cmd.ErrOrStderr()}).Component("operator")
}
