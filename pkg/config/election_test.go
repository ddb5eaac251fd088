package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/runoff/internal/testutils"
	"github.com/aretw0/runoff/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const powerSourcesYAML = `
name: power-sources
options: [Battery, Solar, USB]
ballots:
  - [1, 0, 2]
  - [0, 1, 2]
  - [1, 2, 0]
  - [0, 2, 1]
rankings:
  - [USB, Battery, Solar]
`

func TestLoad_YAML(t *testing.T) {
	el, err := Load(testutils.WriteElectionFile(t, "sources.yaml", powerSourcesYAML))
	require.NoError(t, err)

	assert.Equal(t, "power-sources", el.Name)
	assert.Equal(t, []string{"Battery", "Solar", "USB"}, el.Options)

	ballots, err := el.AllBallots()
	require.NoError(t, err)
	assert.Equal(t, []domain.Ballot{{1, 0, 2}, {0, 1, 2}, {1, 2, 0}, {0, 2, 1}, {2, 0, 1}}, ballots)

	election, err := el.Build()
	require.NoError(t, err)
	outcome, err := election.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Battery"}, outcome.Lines())
}

func TestLoad_JSON(t *testing.T) {
	path := testutils.WriteElectionFile(t, "split.json", `{
		"options": ["Battery", "Solar"],
		"ballots": [[0, 1], [1, 0], [0, 1], [1, 0]],
		"tally_workers": 2
	}`)

	el, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "split", el.Name, "name defaults to the file name")
	assert.Equal(t, 2, el.TallyWorkers)

	election, err := el.Build()
	require.NoError(t, err)
	outcome, err := election.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, outcome.IsTie())
	assert.Equal(t, []string{"Battery", "Solar"}, outcome.Lines())
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Load(testutils.WriteElectionFile(t, "bad.yaml", "options: [Battery\n"))
		assert.ErrorContains(t, err, "failed to parse election yaml")
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := Load(testutils.WriteElectionFile(t, "typo.yaml", "options: [Battery]\nbalots: [[0]]\n"))
		assert.ErrorContains(t, err, "balots")
	})
}

func TestElection_Build(t *testing.T) {
	t.Run("limits block", func(t *testing.T) {
		el, err := Parse([]byte(powerSourcesYAML+"limits:\n  max_ballots: 4\n"), FormatYAML)
		require.NoError(t, err)
		_, err = el.Build()
		assert.ErrorIs(t, err, domain.ErrTooManyBallots)
	})

	t.Run("unlimited options", func(t *testing.T) {
		el, err := Parse([]byte(`{
			"options": ["a","b","c","d","e","f","g","h","i","j"],
			"ballots": [[9,8,7,6,5,4,3,2,1,0]],
			"limits": {"max_options": 0}
		}`), FormatJSON)
		require.NoError(t, err)
		election, err := el.Build()
		require.NoError(t, err)
		outcome, err := election.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"j"}, outcome.Winners)
	})

	t.Run("unknown ranked option", func(t *testing.T) {
		el, err := Parse([]byte("options: [Battery, Solar]\nrankings:\n  - [Solar, Wind]\n"), FormatYAML)
		require.NoError(t, err)
		_, err = el.Build()
		assert.ErrorIs(t, err, domain.ErrUnknownOption)
	})

	t.Run("malformed ballot", func(t *testing.T) {
		el, err := Parse([]byte("options: [Battery, Solar]\nballots:\n  - [0, 0]\n"), FormatYAML)
		require.NoError(t, err)
		_, err = el.Build()
		assert.ErrorIs(t, err, domain.ErrMalformedBallot)
	})

	t.Run("no ballots", func(t *testing.T) {
		el, err := Parse([]byte("options: [Battery, Solar]\n"), FormatYAML)
		require.NoError(t, err)
		_, err = el.Build()
		assert.ErrorIs(t, err, domain.ErrNoBallots)
	})
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatFromPath("a/b/election.JSON"))
	assert.Equal(t, FormatYAML, FormatFromPath("election.yml"))
	assert.Equal(t, FormatYAML, FormatFromPath("election"))
}

func TestParse_RejectsFractionalRanks(t *testing.T) {
	_, err := Parse([]byte(`{"options": ["Battery", "Solar"], "ballots": [[0.5, 1]]}`), FormatJSON)
	assert.Error(t, err)
}

func TestLoad_BundledExamples(t *testing.T) {
	cases := []struct {
		path    string
		name    string
		winners []string
	}{
		{"../../examples/power-sources.yaml", "Power sources", []string{"Battery"}},
		{"../../examples/split-vote.json", "Split vote", []string{"Battery", "Solar"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			def, err := Load(tc.path)
			require.NoError(t, err)
			assert.Equal(t, tc.name, def.Name)

			el, err := def.Build()
			require.NoError(t, err)
			outcome, err := el.Run(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tc.winners, outcome.Winners)
		})
	}
}
