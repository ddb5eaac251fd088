package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aretw0/runoff"
	"github.com/aretw0/runoff/internal/logging"
	"github.com/aretw0/runoff/pkg/config"
	"github.com/aretw0/runoff/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cast"
)

const presetURI = "runoff://presets/power-sources"

// OutcomeResponse aligns with the HTTP adapter's outcome schema.
type OutcomeResponse struct {
	Kind    domain.OutcomeKind `json:"kind" jsonschema_description:"winner or tie"`
	Winners []string           `json:"winners" jsonschema_description:"The winner, or every co-winner in option order"`
	Rounds  []domain.Round     `json:"rounds" jsonschema_description:"Tally and eliminations of each round"`
}

// Server exposes the runoff engine as an MCP Server.
type Server struct {
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{
		logger:    logger,
		mcpServer: server.NewMCPServer("runoff-mcp", strings.TrimSpace(runoff.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	runTool := mcp.NewTool("run_election",
		mcp.WithDescription("Run an instant-runoff election. Provide ballots as option indices, rankings as option names, or both."),
		mcp.WithString("options", mcp.Required(), mcp.Description("JSON array of option names, or a comma separated list")),
		mcp.WithString("ballots", mcp.Description("JSON array of rankings as zero-based option indices, e.g. [[1,0,2],[0,1,2]]")),
		mcp.WithString("rankings", mcp.Description("JSON array of rankings as option names, e.g. [[\"Solar\",\"USB\"]]")),
		mcp.WithNumber("tally_workers", mcp.Description("Number of goroutines used to tabulate each round (optional, at most 64)"), mcp.Max(64)),
		mcp.WithOutputSchema[OutcomeResponse](),
	)
	s.mcpServer.AddTool(runTool, mcp.NewStructuredToolHandler(s.handleRunElection))

	s.mcpServer.AddTool(mcp.NewTool("power_sources",
		mcp.WithDescription("Run the preset Battery/Solar/USB power source election."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		resp, err := s.runPowerSources(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("election failed: %v", err)), nil
		}
		return mcp.NewToolResultText(strings.Join(resp.Winners, "\n")), nil
	})
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(presetURI, "Power source election",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		text, err := presetDocument()
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      presetURI,
				MIMEType: "application/json",
				Text:     text,
			},
		}, nil
	})
}

func (s *Server) handleRunElection(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (OutcomeResponse, error) {
	raw, err := electionArgs(args)
	if err != nil {
		s.logger.Warn("MCP run_election: arguments rejected", "error", err)
		return OutcomeResponse{}, err
	}

	def, err := config.Decode(raw)
	if err != nil {
		return OutcomeResponse{}, err
	}
	el, err := def.Build(runoff.WithLogger(s.logger))
	if err != nil {
		return OutcomeResponse{}, err
	}

	outcome, err := el.Run(ctx)
	if err != nil {
		return OutcomeResponse{}, fmt.Errorf("election failed: %w", err)
	}
	return toResponse(outcome), nil
}

func (s *Server) runPowerSources(ctx context.Context) (OutcomeResponse, error) {
	el, err := runoff.PowerSources(runoff.WithLogger(s.logger))
	if err != nil {
		return OutcomeResponse{}, err
	}
	outcome, err := el.Run(ctx)
	if err != nil {
		return OutcomeResponse{}, err
	}
	return toResponse(outcome), nil
}

// electionArgs turns loosely typed tool arguments into an election document.
func electionArgs(args map[string]interface{}) (map[string]any, error) {
	raw := make(map[string]any)

	options, err := parseOptions(args["options"])
	if err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	raw["options"] = options

	for _, key := range []string{"ballots", "rankings"} {
		v, ok := args[key]
		if !ok || v == nil {
			continue
		}
		parsed, err := parseJSONArg(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", key, err)
		}
		raw[key] = parsed
	}

	if v, ok := args["tally_workers"]; ok && v != nil {
		n, err := cast.ToIntE(v)
		if err != nil {
			return nil, fmt.Errorf("invalid tally_workers: %w", err)
		}
		raw["tally_workers"] = n
	}
	return raw, nil
}

func parseOptions(v any) ([]string, error) {
	if s, ok := v.(string); ok {
		s = strings.TrimSpace(s)
		if !strings.HasPrefix(s, "[") {
			var names []string
			for _, part := range strings.Split(s, ",") {
				if name := strings.TrimSpace(part); name != "" {
					names = append(names, name)
				}
			}
			return names, nil
		}
		parsed, err := parseJSONArg(s)
		if err != nil {
			return nil, err
		}
		v = parsed
	}
	return cast.ToStringSliceE(v)
}

// parseJSONArg accepts either a JSON string or an already decoded value.
func parseJSONArg(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return v, nil
	}
	dec := json.NewDecoder(bytes.NewReader([]byte(s)))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func presetDocument() (string, error) {
	b, err := json.Marshal(config.Election{
		Name:    "power-sources",
		Options: runoff.PowerSourceNames(),
		Ballots: ballotsToInts(runoff.PowerSourceBallots()),
	})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func ballotsToInts(ballots []domain.Ballot) [][]int {
	out := make([][]int, len(ballots))
	for i, b := range ballots {
		out[i] = []int(b)
	}
	return out
}

func toResponse(outcome *domain.Outcome) OutcomeResponse {
	return OutcomeResponse{
		Kind:    outcome.Kind,
		Winners: outcome.Winners,
		Rounds:  outcome.Rounds,
	}
}
