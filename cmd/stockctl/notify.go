package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"github.com/jhoicas/inventario-hogar/internal/application/notification"
	"github.com/jhoicas/inventario-hogar/internal/infrastructure/events"
	"github.com/jhoicas/inventario-hogar/internal/infrastructure/mail"
	"github.com/jhoicas/inventario-hogar/internal/infrastructure/postgres"
)

// errLocked otra ejecución del job tiene el lock.
var errLocked = errors.New("otra ejecución de notify está en curso")

var (
	lockFile      string
	notifyTimeout time.Duration
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Ejecuta una pasada del job de alertas de stock bajo",
	Long: `Evalúa el inventario de cada tenant y envía un correo por tenant con los artículos
agotados o en stock bajo. Con --lock-file dos ejecuciones no se solapan: la segunda termina sin hacer nada.`,
	Args: cobra.NoArgs,
	RunE: runNotify,
}

func init() {
	notifyCmd.Flags().StringVar(&lockFile, "lock-file", "", "archivo de lock para evitar ejecuciones solapadas")
	notifyCmd.Flags().DurationVar(&notifyTimeout, "timeout", 0, "límite de la ejecución (0 = NOTIFY_RUN_TIMEOUT)")
}

func runNotify(cmd *cobra.Command, _ []string) error {
	err := withRunLock(lockFile, func() error {
		return notifyOnce(cmd.Context(), cmd.OutOrStdout())
	})
	if errors.Is(err, errLocked) {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return nil
	}
	return err
}

func notifyOnce(parent context.Context, out io.Writer) error {
	rt, err := newRuntime(parent)
	if err != nil {
		return err
	}
	defer rt.Close()

	timeout := notifyTimeout
	if timeout == 0 {
		timeout = rt.cfg.Notify.RunTimeout
	}
	ctx := parent
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(parent, timeout)
		defer cancel()
	}

	users := postgres.NewUserRepository(rt.pool)
	items := postgres.NewItemRepository(rt.pool)
	publisher, closePublisher := events.NewPublisher(rt.cfg.AMQP, rt.cfg.App.Name, rt.log)
	defer closePublisher()

	job := notification.NewJob(users, items, mail.NewSender(rt.cfg.SMTP, rt.log), publisher, nil, notification.Config{
		Concurrency:   rt.cfg.Notify.Concurrency,
		TenantTimeout: rt.cfg.Notify.TenantTimeout,
	}, rt.log)

	summary, err := job.Run(ctx)
	if err != nil {
		return err
	}
	printSummary(out, summary)
	return nil
}

func printSummary(w io.Writer, summary notification.RunSummary) {
	fmt.Fprintf(w, "tenants=%d notificados=%d omitidos=%d fallidos=%d duración=%s\n",
		summary.Tenants, summary.Notified, summary.Skipped, summary.Failed, summary.Duration.Round(time.Millisecond))
	for _, f := range summary.Failures {
		fmt.Fprintf(w, "  %s [%s]: %v\n", f.TenantID, f.Stage, f.Err)
	}
}

// withRunLock ejecuta fn con un lock exclusivo no bloqueante sobre path. path vacío => sin lock.
func withRunLock(path string, fn func() error) error {
	if path == "" {
		return fn()
	}
	lock := flock.New(path)
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("lock %s: %w", path, err)
	}
	if !locked {
		return errLocked
	}
	defer func() { _ = lock.Unlock() }()
	return fn()
}
