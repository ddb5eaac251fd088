package testutils

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/runoff/pkg/domain"
	"github.com/stretchr/testify/require"
)

// RandomElection generates a valid election within the default limits:
// 1 to 9 options and 1 to 100 full-ranking ballots.
func RandomElection(r *rand.Rand) ([]string, []domain.Ballot) {
	names := make([]string, 1+r.IntN(9))
	for i := range names {
		names[i] = fmt.Sprintf("source-%d", i)
	}
	ballots := make([]domain.Ballot, 1+r.IntN(100))
	for i := range ballots {
		ballots[i] = domain.Ballot(r.Perm(len(names)))
	}
	return names, ballots
}

// WriteElectionFile writes an election definition into a temporary directory
// and returns its path. It fails the test immediately on error.
func WriteElectionFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "Failed to write election file")
	return path
}
