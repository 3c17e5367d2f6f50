package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventario-hogar/internal/application/inventory"
	"github.com/jhoicas/inventario-hogar/internal/application/usecase"
	"github.com/jhoicas/inventario-hogar/internal/infrastructure/events"
	"github.com/jhoicas/inventario-hogar/internal/infrastructure/postgres"
)

var (
	importTenant string
	importFile   string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Importa artículos desde un CSV",
	Long: `Importa un CSV con cabecera name,category,quantity[,unit,pricePerUnit,lowStockLimit]
en el inventario del tenant indicado. --file - lee de stdin. El resultado se imprime en JSON.`,
	Args: cobra.NoArgs,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importTenant, "tenant", "", "ID del tenant (usuario) destino (requerido)")
	importCmd.Flags().StringVar(&importFile, "file", "", "ruta del CSV o - para stdin (requerido)")
	_ = importCmd.MarkFlagRequired("tenant")
	_ = importCmd.MarkFlagRequired("file")
}

func runImport(cmd *cobra.Command, _ []string) error {
	var r io.Reader = cmd.InOrStdin()
	if importFile != "-" {
		f, err := os.Open(importFile)
		if err != nil {
			return fmt.Errorf("abrir %s: %w", importFile, err)
		}
		defer f.Close()
		r = f
	}

	ctx := cmd.Context()
	rt, err := newRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	owner, err := postgres.NewUserRepository(rt.pool).GetByID(ctx, importTenant)
	if err != nil {
		return err
	}
	if owner == nil {
		return fmt.Errorf("tenant %s no existe", importTenant)
	}

	publisher, closePublisher := events.NewPublisher(rt.cfg.AMQP, rt.cfg.App.Name, rt.log)
	defer closePublisher()

	itemUC := usecase.NewItemUseCase(postgres.NewItemRepository(rt.pool), publisher, rt.log)
	res, err := inventory.NewImportUseCase(itemUC, rt.log).ImportCSV(ctx, importTenant, r)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
