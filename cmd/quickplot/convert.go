package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vdobler/quickplot/table"
)

func newConvertCmd() *cobra.Command {
	var transpose bool
	cmd := &cobra.Command{
		Use:   "convert INPUT OUTPUT",
		Short: "Rewrite a CSV table in full precision exponent notation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := table.Import(args[0])
			if err != nil {
				return err
			}
			if transpose {
				if t, err = t.Transpose(); err != nil {
					return err
				}
			}
			if err := table.Export(args[1], t); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d rows, %d columns\n", args[1], t.Rows(), t.Cols())
			return nil
		},
	}
	cmd.Flags().BoolVarP(&transpose, "transpose", "t", false, "Exchange rows and columns")
	return cmd
}
