package cli

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/Pesaje-api/internal/application/weighing"
	"github.com/jhoicas/Pesaje-api/internal/interfaces/console"
	"github.com/jhoicas/Pesaje-api/pkg/config"
)

// NewSessionCommand abre una sesión interactiva de pesaje.
func NewSessionCommand(opts *RootOptions, cfg *config.Config) *cobra.Command {
	var supplierID int64
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Sesión interactiva de pesaje",
		Long: `Abre una sesión de pesaje sobre el primer proveedor del catálogo
(o el indicado con --supplier). Escriba "help" para ver los comandos.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := opts.logger(cmd, cfg.App.Env)
			store, done, err := opts.openStore(cmd)
			if err != nil {
				return err
			}
			defer done()

			seq := weighing.NewSequencer(store)
			in := cmd.InOrStdin()
			if supplierID > 0 {
				in = prefixed(in, "use "+formatID(supplierID))
			}
			return console.NewSession(seq, log).Run(cmd.Context(), in, cmd.OutOrStdout())
		},
	}
	cmd.Flags().Int64Var(&supplierID, "supplier", 0, "proveedor a activar al inicio")
	return cmd
}
