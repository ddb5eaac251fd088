package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/runoff/internal/presentation/graph"
	"github.com/aretw0/runoff/pkg/domain"
)

func TestGenerateMermaid(t *testing.T) {
	winner := &domain.Outcome{
		Kind:    domain.OutcomeWinner,
		Winners: []string{"Battery"},
		Rounds: []domain.Round{
			{
				Number:     1,
				Tally:      []domain.Tally{{Name: "Battery", Support: 2}, {Name: "Solar", Support: 2}, {Name: "USB", Support: 1}},
				Minimum:    1,
				Eliminated: []string{"USB"},
				Phase:      domain.PhaseEliminating,
			},
			{
				Number: 2,
				Tally:  []domain.Tally{{Name: "Battery", Support: 3}, {Name: "Solar", Support: 2}, {Name: "USB", Eliminated: true}},
				Phase:  domain.PhaseWinnerFound,
			},
		},
	}

	tie := &domain.Outcome{
		Kind:    domain.OutcomeTie,
		Winners: []string{"Solar", "The \"USB\" port"},
		Rounds: []domain.Round{
			{Number: 1, Tally: []domain.Tally{{Name: "Solar", Support: 1}, {Name: "The \"USB\" port", Support: 1}}, Minimum: 1, Phase: domain.PhaseTieDeclared},
		},
	}

	tests := []struct {
		name        string
		outcome     *domain.Outcome
		contains    []string
		notContains []string
	}{
		{
			name:    "Winner",
			outcome: winner,
			contains: []string{
				"graph TD",
				`round1["Round 1<br/>Battery: 2<br/>Solar: 2<br/>USB: 1"]`,
				`round1 -- "USB out" --> round2`,
				`round2["Round 2<br/>Battery: 3<br/>Solar: 2"]`,
				`outcome(("Battery"))`,
				`round2 -- "majority" --> outcome`,
			},
			notContains: []string{"USB: 0"},
		},
		{
			name:    "Tie",
			outcome: tie,
			contains: []string{
				`outcome{{"Tie<br/>Solar<br/>The 'USB' port"}}`,
				`round1 -- "full tie" --> outcome`,
			},
			notContains: []string{"majority", "out\""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.outcome)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("expected output to contain %q, got:\n%s", want, got)
				}
			}
			for _, unwanted := range tt.notContains {
				if strings.Contains(got, unwanted) {
					t.Errorf("expected output not to contain %q, got:\n%s", unwanted, got)
				}
			}
		})
	}
}

func TestGenerateMermaid_NoRounds(t *testing.T) {
	got := graph.GenerateMermaid(&domain.Outcome{})
	if got != "graph TD\n" {
		t.Errorf("unexpected output: %q", got)
	}
}
