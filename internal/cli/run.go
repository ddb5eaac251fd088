package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/runoff"
	"github.com/aretw0/runoff/internal/presentation/graph"
	"github.com/aretw0/runoff/internal/presentation/tui"
	"github.com/aretw0/runoff/pkg/config"
)

// RunOptions contains all the configuration for the Run command.
type RunOptions struct {
	File     string // Election definition; the power source preset when empty
	Workers  int
	Report   bool
	Mermaid  bool
	Banner   bool
	Color    bool
	LogLevel string
}

// Execute loads the election, runs it and prints one outcome name per line to out.
// The optional report and diagram follow the names.
func Execute(ctx context.Context, opts RunOptions, out io.Writer) error {
	logger, err := CreateLogger(opts.LogLevel)
	if err != nil {
		return err
	}

	electionOpts := []runoff.Option{runoff.WithLogger(logger)}
	if opts.Workers > 0 {
		electionOpts = append(electionOpts, runoff.WithTallyWorkers(opts.Workers))
	}

	title, el, err := loadElection(opts.File, electionOpts...)
	if err != nil {
		return err
	}

	outcome, err := el.Run(ctx)
	if err != nil {
		return fmt.Errorf("election failed: %w", err)
	}

	if opts.Banner {
		tui.PrintBanner(out)
	}
	if err := tui.PrintOutcome(out, outcome, opts.Color); err != nil {
		return err
	}

	if opts.Report {
		md := tui.Report(title, outcome)
		if opts.Color {
			render, err := tui.NewRenderer()
			if err != nil {
				return err
			}
			if md, err = render(md); err != nil {
				return fmt.Errorf("failed to render report: %w", err)
			}
		}
		fmt.Fprintln(out)
		fmt.Fprint(out, md)
	}

	if opts.Mermaid {
		fmt.Fprintln(out)
		fmt.Fprint(out, graph.GenerateMermaid(outcome))
	}
	return nil
}

// Validate checks an election definition without running it.
func Validate(path string) (*runoff.Election, error) {
	_, el, err := loadElection(path)
	return el, err
}

// StdoutIsTerminal reports whether styled output makes sense.
func StdoutIsTerminal() bool {
	return tui.IsTerminal(os.Stdout)
}

func loadElection(path string, opts ...runoff.Option) (string, *runoff.Election, error) {
	if strings.TrimSpace(path) == "" {
		el, err := runoff.PowerSources(opts...)
		return "Power sources", el, err
	}

	def, err := config.Load(path)
	if err != nil {
		return "", nil, err
	}
	el, err := def.Build(opts...)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", path, err)
	}
	return def.Name, el, nil
}
