package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/runoff/internal/logging"
	"github.com/aretw0/runoff/pkg/domain"
)

// Engine is the instant-runoff state machine.
// It holds no election state of its own: every round is computed from the State passed in,
// so one Engine can run any number of independent elections.
type Engine struct {
	logger  *slog.Logger
	hooks   domain.LifecycleHooks
	workers int
	now     func() time.Time
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger used for round tracing.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithTallyWorkers splits tabulation across n goroutines. Values below 2 tally sequentially.
func WithTallyWorkers(n int) EngineOption {
	return func(e *Engine) {
		e.workers = n
	}
}

// NewEngine creates a new engine.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger: logging.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Step runs one round: tabulate, check for a majority, check for a full tie, eliminate.
// The given state is not modified; the returned state reflects the round's decision.
func (e *Engine) Step(ctx context.Context, state *domain.State) (*domain.State, domain.Round, error) {
	if state.Phase.IsTerminal() {
		return nil, domain.Round{}, domain.ErrElectionFinished
	}

	next := state.Clone()
	next.Round++
	next.Phase = domain.PhaseTabulating

	if err := e.tabulate(ctx, next.Options, next.Ballots); err != nil {
		return nil, domain.Round{}, fmt.Errorf("round %d: %w", next.Round, err)
	}

	round := domain.Round{
		Number: next.Round,
		Tally:  snapshot(next.Options),
	}
	e.emitRoundTabulated(ctx, next, round)

	next.Phase = domain.PhaseCheckingMajority
	if idx, ok := FindWinner(next.Options, len(next.Ballots)); ok {
		next.Phase = domain.PhaseWinnerFound
		round.Phase = next.Phase
		e.logger.Debug("majority reached", "round", next.Round, "option", next.Options[idx].Name, "support", next.Options[idx].Support)
		return next, round, nil
	}

	next.Phase = domain.PhaseCheckingTie
	minimum, ok := FindMinimum(next.Options)
	if !ok {
		return nil, domain.Round{}, fmt.Errorf("round %d: %w", next.Round, domain.ErrNoCandidatesLeft)
	}
	round.Minimum = minimum

	if IsFullTie(next.Options, minimum) {
		next.Phase = domain.PhaseTieDeclared
		round.Phase = next.Phase
		e.logger.Debug("full tie", "round", next.Round, "support", minimum)
		return next, round, nil
	}

	next.Phase = domain.PhaseEliminating
	dropped, err := Eliminate(next.Options, minimum)
	if err != nil {
		return nil, domain.Round{}, fmt.Errorf("round %d: %w", next.Round, err)
	}
	round.Eliminated = next.Names(dropped)
	round.Phase = domain.PhaseEliminating
	e.logger.Debug("options eliminated", "round", next.Round, "options", round.Eliminated, "support", minimum)
	e.emitElimination(ctx, next.Round, round.Eliminated, minimum)

	// Back to tabulating with a clean slate.
	resetSupport(next.Options)
	next.Phase = domain.PhaseTabulating
	return next, round, nil
}

// Run steps the election until a winner is found or a full tie is declared.
func (e *Engine) Run(ctx context.Context, state *domain.State) (*domain.Outcome, error) {
	if len(state.Options) == 0 {
		return nil, domain.ErrNoOptions
	}
	if len(state.Ballots) == 0 {
		return nil, domain.ErrNoBallots
	}

	// Each eliminating round removes at least one option, and the last one standing
	// always holds a majority, so the loop ends within len(Options) rounds.
	maxRounds := len(state.Options)
	rounds := make([]domain.Round, 0, maxRounds)

	current := state
	for len(rounds) < maxRounds {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		next, round, err := e.Step(ctx, current)
		if err != nil {
			return nil, err
		}
		rounds = append(rounds, round)
		current = next

		if current.Phase.IsTerminal() {
			return e.finish(ctx, current, rounds), nil
		}
	}

	return nil, fmt.Errorf("no decision after %d rounds: %w", maxRounds, domain.ErrNoCandidatesLeft)
}

func (e *Engine) finish(ctx context.Context, state *domain.State, rounds []domain.Round) *domain.Outcome {
	outcome := &domain.Outcome{Rounds: rounds}

	switch state.Phase {
	case domain.PhaseWinnerFound:
		idx, _ := FindWinner(state.Options, len(state.Ballots))
		outcome.Kind = domain.OutcomeWinner
		outcome.Winners = []string{state.Options[idx].Name}
	case domain.PhaseTieDeclared:
		outcome.Kind = domain.OutcomeTie
		outcome.Winners = state.Names(state.Remaining())
	}

	e.logger.Info("election decided", "kind", outcome.Kind, "winners", outcome.Winners, "rounds", len(rounds))
	e.emitOutcome(ctx, outcome)
	return outcome
}

func (e *Engine) tabulate(ctx context.Context, options []domain.Option, ballots []domain.Ballot) error {
	if e.workers > 1 && len(ballots) > 1 {
		return TabulateParallel(ctx, options, ballots, e.workers)
	}
	Tabulate(options, ballots)
	return nil
}

func snapshot(options []domain.Option) []domain.Tally {
	tally := make([]domain.Tally, len(options))
	for i, o := range options {
		tally[i] = domain.Tally{Name: o.Name, Support: o.Support, Eliminated: o.Eliminated}
	}
	return tally
}

func (e *Engine) emitRoundTabulated(ctx context.Context, state *domain.State, round domain.Round) {
	e.logger.Debug("round tabulated", "round", round.Number, "tally", round.Tally)
	if e.hooks.OnRoundTabulated == nil {
		return
	}
	e.hooks.OnRoundTabulated(ctx, &domain.RoundEvent{
		EventBase: domain.EventBase{Timestamp: e.now(), Type: domain.EventRoundTabulated},
		Round:     round.Number,
		Tally:     round.Tally,
		Ballots:   len(state.Ballots),
	})
}

func (e *Engine) emitElimination(ctx context.Context, round int, names []string, support int) {
	if e.hooks.OnElimination == nil {
		return
	}
	e.hooks.OnElimination(ctx, &domain.EliminationEvent{
		EventBase: domain.EventBase{Timestamp: e.now(), Type: domain.EventElimination},
		Round:     round,
		Options:   names,
		Support:   support,
	})
}

func (e *Engine) emitOutcome(ctx context.Context, outcome *domain.Outcome) {
	if e.hooks.OnOutcome == nil {
		return
	}
	e.hooks.OnOutcome(ctx, &domain.OutcomeEvent{
		EventBase: domain.EventBase{Timestamp: e.now(), Type: domain.EventOutcome},
		Kind:      outcome.Kind,
		Winners:   outcome.Winners,
		Rounds:    len(outcome.Rounds),
	})
}
