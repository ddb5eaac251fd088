package runoff

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/runoff/internal/logging"
	"github.com/aretw0/runoff/internal/runtime"
	"github.com/aretw0/runoff/internal/validator"
	"github.com/aretw0/runoff/pkg/domain"
)

// Election is the high-level entry point of the library.
// It owns a validated copy of the roster and ballots; the runtime engine does the counting.
type Election struct {
	names   []string
	ballots []domain.Ballot

	limits  validator.Limits
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	workers int
}

// Option defines a functional option for configuring the Election.
type Option func(*Election)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Election) {
		e.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Election) {
		e.hooks = hooks
	}
}

// WithLimits overrides the maximum number of options and ballots. Zero disables a limit.
func WithLimits(maxOptions, maxBallots int) Option {
	return func(e *Election) {
		e.limits = validator.Limits{MaxOptions: maxOptions, MaxBallots: maxBallots}
	}
}

// WithTallyWorkers partitions each round's tabulation across n goroutines.
// New rejects more than 64 workers.
func WithTallyWorkers(n int) Option {
	return func(e *Election) {
		e.workers = n
	}
}

// New validates the roster and ballots and prepares an election.
// Inputs are copied, so later changes by the caller do not affect the election.
func New(names []string, ballots []domain.Ballot, opts ...Option) (*Election, error) {
	e := &Election{
		limits: validator.DefaultLimits(),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := validator.ValidateElection(names, ballots, e.limits); err != nil {
		return nil, fmt.Errorf("invalid election: %w", err)
	}
	if err := validator.ValidateTallyWorkers(e.workers); err != nil {
		return nil, fmt.Errorf("invalid election: %w", err)
	}

	e.names = append([]string(nil), names...)
	e.ballots = make([]domain.Ballot, len(ballots))
	for i, b := range ballots {
		e.ballots[i] = append(domain.Ballot(nil), b...)
	}
	return e, nil
}

// NewFromRankings is New for ballots that rank options by name.
func NewFromRankings(names []string, rankings [][]string, opts ...Option) (*Election, error) {
	ballots, err := validator.ResolveRankings(names, rankings)
	if err != nil {
		return nil, fmt.Errorf("invalid election: %w", err)
	}
	return New(names, ballots, opts...)
}

// Options returns the roster in its original order.
func (e *Election) Options() []string {
	return append([]string(nil), e.names...)
}

// BallotCount returns the number of ballots cast.
func (e *Election) BallotCount() int {
	return len(e.ballots)
}

// State returns the initial state of the election, for callers that want to Step by hand.
func (e *Election) State() *domain.State {
	return domain.NewState(e.names, e.ballots)
}

// Engine returns a runtime engine configured like the one Run uses.
func (e *Election) Engine() *runtime.Engine {
	return runtime.NewEngine(
		runtime.WithLogger(e.logger),
		runtime.WithLifecycleHooks(e.hooks),
		runtime.WithTallyWorkers(e.workers),
	)
}

// Run computes the outcome from a fresh initial state.
func (e *Election) Run(ctx context.Context) (*domain.Outcome, error) {
	e.logger.Debug("election started", "options", len(e.names), "ballots", len(e.ballots))
	outcome, err := e.Engine().Run(ctx, e.State())
	if err != nil {
		e.logger.Error("election failed", "error", err)
		return nil, err
	}
	return outcome, nil
}
