package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/runoff/pkg/domain"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// PrintOutcome writes one name per line: the winner, or every co-winner in option order.
// With styled set, names are coloured for a terminal; the text itself never changes.
func PrintOutcome(w io.Writer, outcome *domain.Outcome, styled bool) error {
	p := termenv.Ascii
	if styled {
		p = termenv.ColorProfile()
	}

	color := "#34d399"
	if outcome.IsTie() {
		color = "#facc15"
	}

	for _, name := range outcome.Lines() {
		if _, err := fmt.Fprintln(w, p.String(name).Foreground(p.Color(color)).Bold()); err != nil {
			return err
		}
	}
	return nil
}
