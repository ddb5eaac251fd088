package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/runoff/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// It picks a light or dark theme from the terminal background.
func NewRenderer() (func(string) (string, error), error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}

// Report builds a markdown summary of an election: one table per round and the outcome.
func Report(title string, outcome *domain.Outcome) string {
	var sb strings.Builder
	if title != "" {
		fmt.Fprintf(&sb, "# %s\n\n", title)
	}

	for _, round := range outcome.Rounds {
		fmt.Fprintf(&sb, "## Round %d\n\n", round.Number)
		sb.WriteString("| Option | Support | Status |\n")
		sb.WriteString("|---|---:|---|\n")
		dropped := make(map[string]bool, len(round.Eliminated))
		for _, name := range round.Eliminated {
			dropped[name] = true
		}
		for _, t := range round.Tally {
			status := "standing"
			switch {
			case t.Eliminated:
				status = "out"
			case dropped[t.Name]:
				status = "eliminated"
			}
			fmt.Fprintf(&sb, "| %s | %d | %s |\n", escapeCell(t.Name), t.Support, status)
		}
		sb.WriteString("\n")
	}

	switch outcome.Kind {
	case domain.OutcomeTie:
		fmt.Fprintf(&sb, "**Full tie** after %d round(s): %s\n", len(outcome.Rounds), strings.Join(outcome.Winners, ", "))
	default:
		fmt.Fprintf(&sb, "**Winner** after %d round(s): %s\n", len(outcome.Rounds), strings.Join(outcome.Winners, ", "))
	}
	return sb.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
