package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/runoff/pkg/domain"
)

// Default limits carried over from the fixed-size power source tables.
const (
	DefaultMaxOptions = 9
	DefaultMaxBallots = 100

	// MaxTallyWorkers caps the goroutines a single round may be split across.
	MaxTallyWorkers = 64
)

// Limits bounds the size of an election. Zero means unlimited.
type Limits struct {
	MaxOptions int
	MaxBallots int
}

// DefaultLimits returns the limits used when none are configured.
func DefaultLimits() Limits {
	return Limits{MaxOptions: DefaultMaxOptions, MaxBallots: DefaultMaxBallots}
}

// ValidateOptions checks the roster: non-empty, within limits, unique non-blank names.
func ValidateOptions(names []string, limits Limits) error {
	if len(names) == 0 {
		return domain.ErrNoOptions
	}
	if limits.MaxOptions > 0 && len(names) > limits.MaxOptions {
		return fmt.Errorf("%w: %d options, limit is %d", domain.ErrTooManyOptions, len(names), limits.MaxOptions)
	}

	seen := make(map[string]int, len(names))
	for i, name := range names {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("option %d: %w", i, domain.ErrEmptyOptionName)
		}
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("%w: %q at positions %d and %d", domain.ErrDuplicateOption, name, prev, i)
		}
		seen[name] = i
	}
	return nil
}

// ValidateBallot checks that a ballot is a full permutation of [0, optionCount).
func ValidateBallot(ballot domain.Ballot, optionCount int) error {
	if len(ballot) != optionCount {
		return fmt.Errorf("%w: %w (got %d ranks, want %d)", domain.ErrMalformedBallot, domain.ErrBallotLength, len(ballot), optionCount)
	}

	ranked := make([]bool, optionCount)
	for rank, ref := range ballot {
		if ref < 0 || ref >= optionCount {
			return fmt.Errorf("%w: %w (rank %d refers to %d)", domain.ErrMalformedBallot, domain.ErrRankOutOfRange, rank, ref)
		}
		if ranked[ref] {
			return fmt.Errorf("%w: %w (option %d at rank %d)", domain.ErrMalformedBallot, domain.ErrDuplicateRank, ref, rank)
		}
		ranked[ref] = true
	}
	return nil
}

// ValidateTallyWorkers checks a requested tally partitioning. Values below 2 mean sequential.
func ValidateTallyWorkers(n int) error {
	if n > MaxTallyWorkers {
		return fmt.Errorf("%w: %d requested, limit is %d", domain.ErrTooManyTallyWorkers, n, MaxTallyWorkers)
	}
	return nil
}

// ValidateElection checks the roster and every ballot.
// All ballot problems are reported, not only the first one.
func ValidateElection(names []string, ballots []domain.Ballot, limits Limits) error {
	if err := ValidateOptions(names, limits); err != nil {
		return err
	}
	if len(ballots) == 0 {
		return domain.ErrNoBallots
	}
	if limits.MaxBallots > 0 && len(ballots) > limits.MaxBallots {
		return fmt.Errorf("%w: %d ballots, limit is %d", domain.ErrTooManyBallots, len(ballots), limits.MaxBallots)
	}

	var errs []error
	for i, b := range ballots {
		if err := ValidateBallot(b, len(names)); err != nil {
			errs = append(errs, fmt.Errorf("ballot %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// ResolveRankings converts name-based rankings into index ballots.
func ResolveRankings(names []string, rankings [][]string) ([]domain.Ballot, error) {
	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}

	ballots := make([]domain.Ballot, len(rankings))
	for i, ranking := range rankings {
		b := make(domain.Ballot, len(ranking))
		for rank, name := range ranking {
			ref, ok := index[name]
			if !ok {
				return nil, fmt.Errorf("ballot %d, rank %d: %w %q", i, rank, domain.ErrUnknownOption, name)
			}
			b[rank] = ref
		}
		ballots[i] = b
	}
	return ballots, nil
}
