package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Pesaje-api/pkg/display"
)

// NewSuppliersCommand lista el catálogo del almacén.
func NewSuppliersCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "suppliers",
		Short: "Lista los proveedores del catálogo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, done, err := opts.openStore(cmd)
			if err != nil {
				return err
			}
			defer done()

			list, err := store.ListSuppliers(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, s := range list {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", s.ID, display.SupplierTitle(s.Name, s.Quota), s.Plate, display.Weight(s.DefaultWeight))
			}
			return nil
		},
	}
}
