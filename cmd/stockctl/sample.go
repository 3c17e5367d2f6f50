package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventario-hogar/internal/application/inventory"
)

var sampleCSVCmd = &cobra.Command{
	Use:   "sample-csv",
	Short: "Imprime un CSV de ejemplo para import",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprint(cmd.OutOrStdout(), inventory.SampleCSV())
		return err
	},
}
