package runtime

import (
	"context"

	"github.com/aretw0/runoff/pkg/domain"
	"golang.org/x/sync/errgroup"
)

// Tabulate resets every option's support and credits each ballot to its
// highest-ranked option that is still standing.
// A ballot with no standing option contributes nothing.
func Tabulate(options []domain.Option, ballots []domain.Ballot) {
	resetSupport(options)
	for _, b := range ballots {
		if ref, ok := firstStanding(b, options); ok {
			options[ref].Support++
		}
	}
}

// TabulateParallel is Tabulate with the ballots partitioned across workers.
// Partial counts are merged by summation, so the result matches Tabulate exactly.
// No more goroutines than ballots are started.
func TabulateParallel(ctx context.Context, options []domain.Option, ballots []domain.Ballot, workers int) error {
	workers = min(workers, len(ballots))
	if workers < 1 {
		workers = 1
	}
	chunk := (len(ballots) + workers - 1) / workers
	partials := make([][]int, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo := w * chunk
		if lo >= len(ballots) {
			break
		}
		hi := min(lo+chunk, len(ballots))

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			counts := make([]int, len(options))
			for _, b := range ballots[lo:hi] {
				if ref, ok := firstStanding(b, options); ok {
					counts[ref]++
				}
			}
			partials[w] = counts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	resetSupport(options)
	for _, counts := range partials {
		for i, c := range counts {
			options[i].Support += c
		}
	}
	return nil
}

// FindWinner returns the option whose support is strictly greater than half the
// ballots, using integer division: with 4 ballots, 2 is not enough.
func FindWinner(options []domain.Option, ballotCount int) (int, bool) {
	for i, o := range options {
		if !o.Eliminated && o.Support > ballotCount/2 {
			return i, true
		}
	}
	return -1, false
}

// FindMinimum returns the smallest support among options still standing.
// Eliminated options are ignored; ok is false when none is left.
func FindMinimum(options []domain.Option) (minimum int, ok bool) {
	for _, o := range options {
		if o.Eliminated {
			continue
		}
		if !ok || o.Support < minimum {
			minimum = o.Support
			ok = true
		}
	}
	return minimum, ok
}

// IsFullTie reports whether every standing option has exactly the minimum support.
func IsFullTie(options []domain.Option, minimum int) bool {
	for _, o := range options {
		if !o.Eliminated && o.Support != minimum {
			return false
		}
	}
	return true
}

// Eliminate marks every standing option with the minimum support as eliminated and
// returns their indices. It refuses to eliminate the whole field.
func Eliminate(options []domain.Option, minimum int) ([]int, error) {
	var dropped []int
	standing := 0
	for i, o := range options {
		if o.Eliminated {
			continue
		}
		standing++
		if o.Support == minimum {
			dropped = append(dropped, i)
		}
	}
	if len(dropped) == standing {
		return nil, domain.ErrNoCandidatesLeft
	}

	for _, i := range dropped {
		options[i].Eliminated = true
	}
	return dropped, nil
}

func firstStanding(b domain.Ballot, options []domain.Option) (int, bool) {
	for _, ref := range b {
		if !options[ref].Eliminated {
			return ref, true
		}
	}
	return -1, false
}

func resetSupport(options []domain.Option) {
	for i := range options {
		options[i].Support = 0
	}
}
