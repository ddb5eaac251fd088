package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventRoundTabulated EventType = "round_tabulated"
	EventElimination    EventType = "elimination"
	EventOutcome        EventType = "outcome"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// RoundEvent is emitted after each tabulation.
type RoundEvent struct {
	EventBase
	Round   int     `json:"round"`
	Tally   []Tally `json:"tally"`
	Ballots int     `json:"ballots"`
}

// EliminationEvent is emitted when options drop out.
type EliminationEvent struct {
	EventBase
	Round   int      `json:"round"`
	Options []string `json:"options"`
	Support int      `json:"support"`
}

// OutcomeEvent is emitted once, when the election reaches a terminal phase.
type OutcomeEvent struct {
	EventBase
	Kind    OutcomeKind `json:"kind"`
	Winners []string    `json:"winners"`
	Rounds  int         `json:"rounds"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnRoundTabulated func(context.Context, *RoundEvent)
	OnElimination    func(context.Context, *EliminationEvent)
	OnOutcome        func(context.Context, *OutcomeEvent)
}
