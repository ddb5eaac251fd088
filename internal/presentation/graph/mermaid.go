package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/runoff/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart of an election.
// Each round is a rectangle listing the tally of the options still standing,
// edges carry the eliminated options, and the outcome is a circle:
// - Winner: ((Circle))
// - Tie: {{Hexagon}} holding every co-winner
func GenerateMermaid(outcome *domain.Outcome) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for i, round := range outcome.Rounds {
		id := roundID(round.Number)
		sb.WriteString(fmt.Sprintf("    %s[\"Round %d<br/>%s\"]\n", id, round.Number, sanitizeLabel(tallyLabel(round.Tally))))

		if i+1 < len(outcome.Rounds) {
			next := roundID(outcome.Rounds[i+1].Number)
			label := sanitizeLabel(strings.Join(round.Eliminated, ", ") + " out")
			sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", id, label, next))
		}
	}

	if len(outcome.Rounds) == 0 {
		return sb.String()
	}

	last := roundID(outcome.Rounds[len(outcome.Rounds)-1].Number)
	winners := sanitizeLabel(strings.Join(outcome.Winners, "<br/>"))
	switch outcome.Kind {
	case domain.OutcomeTie:
		sb.WriteString(fmt.Sprintf("    outcome{{\"Tie<br/>%s\"}}\n", winners))
		sb.WriteString(fmt.Sprintf("    %s -- \"full tie\" --> outcome\n", last))
	default:
		sb.WriteString(fmt.Sprintf("    outcome((\"%s\"))\n", winners))
		sb.WriteString(fmt.Sprintf("    %s -- \"majority\" --> outcome\n", last))
	}
	sb.WriteString("    style outcome fill:#bbf,stroke:#333,stroke-width:2px\n")

	return sb.String()
}

func roundID(n int) string {
	return fmt.Sprintf("round%d", n)
}

func tallyLabel(tally []domain.Tally) string {
	parts := make([]string, 0, len(tally))
	for _, t := range tally {
		if t.Eliminated {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %d", t.Name, t.Support))
	}
	return strings.Join(parts, "<br/>")
}

// sanitizeLabel escapes double quotes, which would end a Mermaid label early.
func sanitizeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
