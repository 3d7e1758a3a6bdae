package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Dispatch outcomes.
const (
	OutcomeSucceeded     = "succeeded"
	OutcomeFailedExit    = "failed_exit"
	OutcomeFailedToSpawn = "failed_to_spawn"
	OutcomeCanceled      = "canceled"
)

// Collectors groups the processing metrics. A nil *Collectors records nothing.
type Collectors struct {
	dispatchTotal    *prometheus.CounterVec
	dispatchDuration *prometheus.HistogramVec
	compressTotal    *prometheus.CounterVec
	rateLimitTotal   *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) (*Collectors, error) {
	c := &Collectors{
		dispatchTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: "docdesk", Name: "dispatch_invocations_total", Help: "External backend invocations by script and outcome."},
			[]string{"script", "outcome"},
		),
		dispatchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Namespace: "docdesk", Name: "dispatch_duration_seconds", Help: "Wall time of external backend invocations.", Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120}},
			[]string{"script"},
		),
		compressTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: "docdesk", Name: "compress_total", Help: "Compression requests by backend and result."},
			[]string{"backend", "result"},
		),
		rateLimitTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: "docdesk", Name: "rate_limit_total", Help: "Dispatch rate limiter decisions."},
			[]string{"decision"},
		),
	}

	for _, col := range []prometheus.Collector{c.dispatchTotal, c.dispatchDuration, c.compressTotal, c.rateLimitTotal} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Collectors) ObserveDispatch(script, outcome string, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.dispatchTotal.WithLabelValues(script, outcome).Inc()
	c.dispatchDuration.WithLabelValues(script).Observe(elapsed.Seconds())
}

func (c *Collectors) ObserveCompress(backend string, ok bool) {
	if c == nil {
		return
	}
	result := "ok"
	if !ok {
		result = "error"
	}
	c.compressTotal.WithLabelValues(backend, result).Inc()
}

func (c *Collectors) ObserveRateLimit(allowed bool) {
	if c == nil {
		return
	}
	decision := "allowed"
	if !allowed {
		decision = "rejected"
	}
	c.rateLimitTotal.WithLabelValues(decision).Inc()
}
