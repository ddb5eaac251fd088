package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the runoff banner.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	// Battery green fading into solar amber
	lines := []termenv.Style{
		termenv.String("  ____               __  __ ").Foreground(p.Color("#34d399")),
		termenv.String(" |  _ \\ _   _ _ __  / _|/ _|").Foreground(p.Color("#a3e635")),
		termenv.String(" | |_) | | | | '_ \\| |_| |_ ").Foreground(p.Color("#facc15")),
		termenv.String(" |  _ <| |_| | | | |  _|  _|").Foreground(p.Color("#fbbf24")),
		termenv.String(" |_| \\_\\\\__,_|_| |_|_| |_|  ").Foreground(p.Color("#f59e0b")),
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
	fmt.Fprintln(w)
}
