// Package metrics expone métricas Prometheus del job de alertas y de la API HTTP.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/inventario-hogar/internal/application/notification"
)

const namespace = "inventario"

var _ notification.Recorder = (*Metrics)(nil)

// Metrics agrupa el registro y los colectores de la aplicación.
type Metrics struct {
	registry *prometheus.Registry

	notifyRuns     prometheus.Counter
	notifyDuration prometheus.Histogram
	notifyTenants  *prometheus.CounterVec

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New crea un registro propio con los colectores de Go y del proceso.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		notifyRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "low_stock_job",
			Name:      "runs_total",
			Help:      "Ejecuciones del job de alertas de stock bajo.",
		}),
		notifyDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "low_stock_job",
			Name:      "run_duration_seconds",
			Help:      "Duración de cada ejecución del job.",
			Buckets:   []float64{0.1, 0.5, 1, 5, 15, 60, 300, 600},
		}),
		notifyTenants: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "low_stock_job",
			Name:      "tenants_total",
			Help:      "Tenants procesados por resultado.",
		}, []string{"outcome"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Peticiones HTTP por método, ruta y código.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duración de las peticiones HTTP.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.notifyRuns, m.notifyDuration, m.notifyTenants,
		m.httpRequests, m.httpDuration,
	)
	for _, outcome := range []string{notification.OutcomeNotified, notification.OutcomeSkipped, notification.OutcomeFailed} {
		m.notifyTenants.WithLabelValues(outcome)
	}
	return m
}

// ObserveRun registra el resumen de una ejecución del job.
func (m *Metrics) ObserveRun(s notification.RunSummary) {
	m.notifyRuns.Inc()
	m.notifyDuration.Observe(s.Duration.Seconds())
	m.notifyTenants.WithLabelValues(notification.OutcomeNotified).Add(float64(s.Notified))
	m.notifyTenants.WithLabelValues(notification.OutcomeSkipped).Add(float64(s.Skipped))
	m.notifyTenants.WithLabelValues(notification.OutcomeFailed).Add(float64(s.Failed))
}

// ObserveHTTP registra una petición. route es el patrón de la ruta, no el path real.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Registry expone el registro (tests y colectores adicionales).
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler devuelve el handler HTTP de exposición.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
