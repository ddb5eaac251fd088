package runtime

import (
	"context"
	"testing"

	"github.com/aretw0/runoff/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func options(supports ...int) []domain.Option {
	opts := make([]domain.Option, len(supports))
	for i, s := range supports {
		opts[i] = domain.Option{Name: string(rune('A' + i)), Support: s}
	}
	return opts
}

func TestTabulate_SkipsEliminatedOptions(t *testing.T) {
	opts := options(7, 7, 7) // stale counts must be reset
	opts[1].Eliminated = true
	ballots := []domain.Ballot{{1, 0, 2}, {1, 2, 0}, {2, 1, 0}}

	Tabulate(opts, ballots)

	assert.Equal(t, 1, opts[0].Support)
	assert.Equal(t, 0, opts[1].Support)
	assert.Equal(t, 2, opts[2].Support)
}

func TestTabulate_BallotWithNoStandingOption(t *testing.T) {
	opts := options(0, 0)
	opts[0].Eliminated = true
	opts[1].Eliminated = true

	Tabulate(opts, []domain.Ballot{{0, 1}})

	assert.Zero(t, opts[0].Support+opts[1].Support)
}

func TestTabulateParallel(t *testing.T) {
	ballots := []domain.Ballot{{0, 1, 2}, {1, 0, 2}, {2, 0, 1}, {0, 2, 1}, {1, 2, 0}, {0, 1, 2}, {2, 1, 0}}
	for _, workers := range []int{0, 1, 2, 3, 7, 20} {
		want := options(0, 0, 0)
		want[2].Eliminated = true
		got := options(9, 9, 9)
		got[2].Eliminated = true

		Tabulate(want, ballots)
		require.NoError(t, TabulateParallel(context.Background(), got, ballots, workers))
		assert.Equal(t, want, got, "workers=%d", workers)
	}
}

func TestTabulateParallel_MoreWorkersThanBallots(t *testing.T) {
	ballots := []domain.Ballot{{1, 0, 2}, {0, 1, 2}, {2, 0, 1}}
	want := options(0, 0, 0)
	Tabulate(want, ballots)

	got := options(0, 0, 0)
	allocs := testing.AllocsPerRun(5, func() {
		require.NoError(t, TabulateParallel(context.Background(), got, ballots, 10_000_000))
	})
	assert.Equal(t, want, got)
	assert.Less(t, allocs, 100.0, "allocations must follow the ballot count, not the worker count")
}

func TestFindWinner(t *testing.T) {
	tests := []struct {
		name     string
		supports []int
		ballots  int
		want     int
		found    bool
	}{
		{"strict majority", []int{3, 2}, 5, 0, true},
		{"exactly half is not enough", []int{2, 2}, 4, -1, false},
		{"odd total simple majority", []int{1, 2}, 3, 1, true},
		{"single ballot", []int{0, 1, 0}, 1, 1, true},
		{"plurality only", []int{2, 2, 1}, 5, -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := FindWinner(options(tt.supports...), tt.ballots)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindMinimum_IgnoresEliminated(t *testing.T) {
	opts := options(0, 3, 2)
	opts[0].Eliminated = true

	minimum, ok := FindMinimum(opts)
	require.True(t, ok)
	assert.Equal(t, 2, minimum)

	opts[1].Eliminated = true
	opts[2].Eliminated = true
	_, ok = FindMinimum(opts)
	assert.False(t, ok)
}

func TestIsFullTie(t *testing.T) {
	opts := options(0, 2, 2)
	opts[0].Eliminated = true
	assert.True(t, IsFullTie(opts, 2))

	opts[0].Eliminated = false
	assert.False(t, IsFullTie(opts, 0))
}

func TestEliminate(t *testing.T) {
	opts := options(1, 3, 1, 4)

	dropped, err := Eliminate(opts, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, dropped)
	assert.True(t, opts[0].Eliminated)
	assert.False(t, opts[1].Eliminated)
	assert.True(t, opts[2].Eliminated)

	t.Run("already eliminated options are not reported again", func(t *testing.T) {
		Tabulate(opts, []domain.Ballot{{1, 0, 2, 3}, {3, 1, 0, 2}, {3, 0, 1, 2}})
		dropped, err := Eliminate(opts, 1)
		require.NoError(t, err)
		assert.Equal(t, []int{1}, dropped)
	})

	t.Run("never empties the field", func(t *testing.T) {
		tied := options(2, 2)
		_, err := Eliminate(tied, 2)
		assert.ErrorIs(t, err, domain.ErrNoCandidatesLeft)
		assert.False(t, tied[0].Eliminated)
		assert.False(t, tied[1].Eliminated)
	})
}
