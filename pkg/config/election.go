package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/runoff"
	"github.com/aretw0/runoff/internal/validator"
	"github.com/aretw0/runoff/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of an election definition.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Limits mirrors the optional limits block. Nil fields keep the engine defaults.
type Limits struct {
	MaxOptions *int `mapstructure:"max_options" json:"max_options,omitempty" yaml:"max_options,omitempty"`
	MaxBallots *int `mapstructure:"max_ballots" json:"max_ballots,omitempty" yaml:"max_ballots,omitempty"`
}

// Election is the decoded form of an election definition.
type Election struct {
	Name         string     `mapstructure:"name" json:"name,omitempty" yaml:"name,omitempty"`
	Options      []string   `mapstructure:"options" json:"options" yaml:"options"`
	Ballots      [][]int    `mapstructure:"ballots" json:"ballots,omitempty" yaml:"ballots,omitempty"`
	Rankings     [][]string `mapstructure:"rankings" json:"rankings,omitempty" yaml:"rankings,omitempty"`
	Limits       *Limits    `mapstructure:"limits" json:"limits,omitempty" yaml:"limits,omitempty"`
	TallyWorkers int        `mapstructure:"tally_workers" json:"tally_workers,omitempty" yaml:"tally_workers,omitempty"`
}

// FormatFromPath picks the format from the file extension, defaulting to YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Load reads an election definition from disk.
func Load(path string) (*Election, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read election file: %w", err)
	}

	el, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	if el.Name == "" {
		el.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return el, nil
}

// Parse decodes an election definition.
// The document is first read into a generic map and then decoded strictly: unknown keys fail.
func Parse(data []byte, format Format) (*Election, error) {
	raw := make(map[string]any)

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to parse election json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse election yaml: %w", err)
		}
	}

	return Decode(raw)
}

// Decode converts a generic map (from YAML, JSON or a tool call) into an Election.
func Decode(raw map[string]any) (*Election, error) {
	var el Election
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &el,
		TagName:     "mapstructure",
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode election: %w", err)
	}
	return &el, nil
}

// AllBallots returns the index ballots followed by the resolved name rankings.
func (e *Election) AllBallots() ([]domain.Ballot, error) {
	ballots := make([]domain.Ballot, 0, len(e.Ballots)+len(e.Rankings))
	for _, b := range e.Ballots {
		ballots = append(ballots, domain.Ballot(b))
	}

	resolved, err := validator.ResolveRankings(e.Options, e.Rankings)
	if err != nil {
		return nil, err
	}
	return append(ballots, resolved...), nil
}

// Build validates the definition and returns a ready-to-run election.
// Extra options are applied after the ones derived from the file.
func (e *Election) Build(opts ...runoff.Option) (*runoff.Election, error) {
	ballots, err := e.AllBallots()
	if err != nil {
		return nil, fmt.Errorf("invalid election: %w", err)
	}

	var fileOpts []runoff.Option
	if e.Limits != nil {
		limits := validator.DefaultLimits()
		if e.Limits.MaxOptions != nil {
			limits.MaxOptions = *e.Limits.MaxOptions
		}
		if e.Limits.MaxBallots != nil {
			limits.MaxBallots = *e.Limits.MaxBallots
		}
		fileOpts = append(fileOpts, runoff.WithLimits(limits.MaxOptions, limits.MaxBallots))
	}
	if e.TallyWorkers > 0 {
		fileOpts = append(fileOpts, runoff.WithTallyWorkers(e.TallyWorkers))
	}

	return runoff.New(e.Options, ballots, append(fileOpts, opts...)...)
}
