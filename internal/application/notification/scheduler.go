package notification

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jhoicas/inventario-hogar/pkg/logger"
)

// Runner ejecuta una pasada del job.
type Runner interface {
	Run(ctx context.Context) (RunSummary, error)
}

// Scheduler dispara el job con periodo fijo. Si una ejecución sigue en curso, el tick se descarta.
type Scheduler struct {
	runner     Runner
	interval   time.Duration
	runTimeout time.Duration
	log        *logger.Logger

	running atomic.Bool
	wg      sync.WaitGroup
}

// NewScheduler construye el scheduler. runTimeout 0 => la ejecución solo termina con ctx.
func NewScheduler(runner Runner, interval, runTimeout time.Duration, log *logger.Logger) *Scheduler {
	return &Scheduler{runner: runner, interval: interval, runTimeout: runTimeout, log: log.Component("scheduler")}
}

// Start bloquea hasta que ctx se cancela y espera a que termine la ejecución en curso.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	s.log.Info().Dur("interval", s.interval).Msg("scheduler de stock bajo iniciado")

	for {
		select {
		case <-ctx.Done():
			s.wg.Wait()
			s.log.Info().Msg("scheduler de stock bajo detenido")
			return
		case <-ticker.C:
			s.wg.Add(1)
			go func() {
				defer s.wg.Done()
				s.Trigger(ctx)
			}()
		}
	}
}

// Trigger ejecuta el job una vez. Devuelve false si ya había una ejecución en curso.
func (s *Scheduler) Trigger(ctx context.Context) bool {
	if !s.running.CompareAndSwap(false, true) {
		s.log.Warn().Msg("ejecución anterior aún en curso; tick descartado")
		return false
	}
	defer s.running.Store(false)

	if s.runTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.runTimeout)
		defer cancel()
	}
	if _, err := s.runner.Run(ctx); err != nil {
		s.log.Error().Err(err).Msg("ejecución del job fallida")
	}
	return true
}
