// Package metrics exposes Prometheus instruments for the credential flows.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Auth operations recorded by ObserveAuthAttempt.
const (
	OperationRegister = "register"
	OperationLogin    = "login"
	OperationMe       = "me"
)

// Outcomes recorded by ObserveAuthAttempt.
const (
	ResultSuccess  = "success"
	ResultConflict = "conflict"
	ResultRejected = "rejected"
	ResultInvalid  = "invalid"
	ResultError    = "error"
)

// Password hashing phases recorded by ObservePasswordHash.
const (
	PhaseHash   = "hash"
	PhaseVerify = "verify"
)

// Recorder is the slice of the collector that services depend on.
type Recorder interface {
	ObserveAuthAttempt(operation, result string)
	ObservePasswordHash(phase string, elapsed time.Duration)
}

// Collector records auth counters and hashing latency into a Prometheus registry.
type Collector struct {
	registerer   prometheus.Registerer
	gatherer     prometheus.Gatherer
	authAttempts *prometheus.CounterVec
	hashSeconds  *prometheus.HistogramVec
}

// New builds a Collector on a private registry that also carries the Go runtime and process collectors.
func New() *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return NewCollector(reg, reg)
}

// NewCollector registers the instruments on reg and serves them from gatherer.
func NewCollector(reg prometheus.Registerer, gatherer prometheus.Gatherer) *Collector {
	c := &Collector{
		registerer: reg,
		gatherer:   gatherer,
		authAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ticketdesk_auth_attempts_total",
			Help: "Authentication attempts by operation and outcome.",
		}, []string{"operation", "result"}),
		hashSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ticketdesk_password_hash_seconds",
			Help:    "Time spent deriving Argon2id digests.",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"phase"}),
	}

	reg.MustRegister(c.authAttempts, c.hashSeconds)

	return c
}

// ObserveAuthAttempt counts one register, login or me call.
func (c *Collector) ObserveAuthAttempt(operation, result string) {
	c.authAttempts.WithLabelValues(operation, result).Inc()
}

// ObservePasswordHash records the duration of one derivation.
func (c *Collector) ObservePasswordHash(phase string, elapsed time.Duration) {
	c.hashSeconds.WithLabelValues(phase).Observe(elapsed.Seconds())
}

// Register adds another collector, such as database pool stats, to the same registry.
func (c *Collector) Register(collector prometheus.Collector) error {
	return c.registerer.Register(collector)
}

// Handler returns the scrape endpoint for the collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}

// Nop discards every observation.
type Nop struct{}

func (Nop) ObserveAuthAttempt(string, string) {}

func (Nop) ObservePasswordHash(string, time.Duration) {}
