package prom

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"artifactsbot/internal/domain/game"
)

// Recorder exports action metrics on its own registry rather than the
// global default one.
type Recorder struct {
	registry *prometheus.Registry
	actions  *prometheus.CounterVec
	cooldown *prometheus.HistogramVec
}

func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	return &Recorder{
		registry: reg,
		actions: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "artifactsbot_actions_total",
				Help: "Actions submitted to the game, partitioned by action and outcome.",
			},
			[]string{"action", "outcome"},
		),
		cooldown: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "artifactsbot_action_cooldown_seconds",
				Help:    "Cooldown reported by the server after a successful action.",
				Buckets: []float64{1, 3, 5, 10, 20, 30, 60, 120},
			},
			[]string{"action"},
		),
	}
}

func (r *Recorder) RecordSuccess(action game.ActionType, cooldown time.Duration) {
	r.actions.WithLabelValues(string(action), "ok").Inc()
	r.cooldown.WithLabelValues(string(action)).Observe(cooldown.Seconds())
}

func (r *Recorder) RecordFailure(action game.ActionType) {
	r.actions.WithLabelValues(string(action), "failed").Inc()
}

func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}
