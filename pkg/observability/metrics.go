package observability

import (
	"context"

	"github.com/aretw0/runoff/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors describing election activity.
type Metrics struct {
	Rounds       prometheus.Counter
	Eliminations prometheus.Counter
	Outcomes     *prometheus.CounterVec
	Ballots      prometheus.Histogram
	RoundsPerRun prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Rounds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "runoff_rounds_total",
			Help: "Total number of tabulated rounds",
		}),
		// Option names come from callers, so they are never used as label values.
		Eliminations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "runoff_eliminations_total",
			Help: "Total number of eliminated options",
		}),
		Outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "runoff_outcomes_total",
				Help: "Total number of decided elections by kind",
			},
			[]string{"kind"},
		),
		Ballots: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "runoff_ballots_per_round",
			Help:    "Number of ballots tabulated per round",
			Buckets: prometheus.ExponentialBuckets(1, 4, 6),
		}),
		RoundsPerRun: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "runoff_rounds_per_election",
			Help:    "Number of rounds needed to decide an election",
			Buckets: prometheus.LinearBuckets(1, 1, 9),
		}),
	}
	reg.MustRegister(m.Rounds, m.Eliminations, m.Outcomes, m.Ballots, m.RoundsPerRun)
	return m
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRoundTabulated: func(ctx context.Context, e *domain.RoundEvent) {
			m.Rounds.Inc()
			m.Ballots.Observe(float64(e.Ballots))
		},
		OnElimination: func(ctx context.Context, e *domain.EliminationEvent) {
			m.Eliminations.Add(float64(len(e.Options)))
		},
		OnOutcome: func(ctx context.Context, e *domain.OutcomeEvent) {
			m.Outcomes.WithLabelValues(string(e.Kind)).Inc()
			m.RoundsPerRun.Observe(float64(e.Rounds))
		},
	}
}

// Chain merges several hook sets; each callback runs in the order given.
func Chain(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRoundTabulated: func(ctx context.Context, e *domain.RoundEvent) {
			for _, h := range hooks {
				if h.OnRoundTabulated != nil {
					h.OnRoundTabulated(ctx, e)
				}
			}
		},
		OnElimination: func(ctx context.Context, e *domain.EliminationEvent) {
			for _, h := range hooks {
				if h.OnElimination != nil {
					h.OnElimination(ctx, e)
				}
			}
		},
		OnOutcome: func(ctx context.Context, e *domain.OutcomeEvent) {
			for _, h := range hooks {
				if h.OnOutcome != nil {
					h.OnOutcome(ctx, e)
				}
			}
		},
	}
}
