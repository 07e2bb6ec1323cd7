package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Pesaje-api/internal/application/weighing"
)

// NewProgressCommand muestra la cuenta durable de un proveedor según el almacén.
func NewProgressCommand(opts *RootOptions) *cobra.Command {
	var supplierID int64
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Unidades guardadas de un proveedor según el almacén",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if supplierID <= 0 {
				return errors.New("--supplier es obligatorio")
			}
			store, done, err := opts.openStore(cmd)
			if err != nil {
				return err
			}
			defer done()

			reader, ok := store.(weighing.ProgressReader)
			if !ok {
				return errors.New("el almacén no expone el avance")
			}
			p, err := reader.Progress(cmd.Context(), supplierID)
			if err != nil {
				return err
			}
			complete := "no"
			if p.Complete {
				complete = "sí"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\tGuardadas: %d/%d\tFaltan: %d\tCompleta: %s\n",
				p.SupplierID, p.Saved, p.Quota, p.Remaining, complete)
			return nil
		},
	}
	cmd.Flags().Int64Var(&supplierID, "supplier", 0, "proveedor a consultar")
	return cmd
}
