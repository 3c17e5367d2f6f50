// stockctl es la herramienta de línea de comandos para operar el inventario fuera de la API:
// ejecutar el job de alertas una vez (cron), importar CSV y aplicar migraciones.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
