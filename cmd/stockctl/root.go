package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/jhoicas/inventario-hogar/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-hogar/pkg/config"
	"github.com/jhoicas/inventario-hogar/pkg/logger"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "stockctl",
	Short: "Operaciones de inventario por línea de comandos",
	Long: `stockctl ejecuta tareas del inventario sin levantar la API.
La configuración se lee de las mismas variables de entorno que la API (DATABASE_URL, SMTP_*, AMQP_*, NOTIFY_*).

Ejemplos:
  # Job de alertas de stock bajo (una pasada, p. ej. desde cron)
  stockctl notify --lock-file /tmp/stockctl-notify.lock

  # Importar artículos a un tenant
  stockctl import --tenant <user-id> --file inventario.csv`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log en nivel debug")

	rootCmd.AddCommand(notifyCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(sampleCSVCmd)
	rootCmd.AddCommand(migrateCmd)
}

// runtime dependencias compartidas por los subcomandos que usan la base de datos.
type runtime struct {
	cfg  *config.Config
	log  *logger.Logger
	pool *pgxpool.Pool
}

func newRuntime(ctx context.Context) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	level := cfg.App.LogLevel
	if verbose {
		level = "debug"
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: level})

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("conexión a PostgreSQL (%s): %w", postgres.Redacted(cfg.DB.ConnectionString()), err)
	}
	return &runtime{cfg: cfg, log: log, pool: pool}, nil
}

func (r *runtime) Close() { r.pool.Close() }
