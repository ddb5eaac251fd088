package domain

// OutcomeKind tells how an election ended.
type OutcomeKind string

const (
	OutcomeWinner OutcomeKind = "winner"
	OutcomeTie    OutcomeKind = "tie"
)

// Tally is the support an option received in one round.
type Tally struct {
	Name       string `json:"name"`
	Support    int    `json:"support"`
	Eliminated bool   `json:"eliminated"`
}

// Round records one tabulate-and-decide cycle.
type Round struct {
	Number int     `json:"number"`
	Tally  []Tally `json:"tally"`

	// Minimum is the smallest support among the options standing this round.
	// It is only meaningful when no majority was found.
	Minimum int `json:"minimum"`

	// Eliminated lists the options dropped at the end of this round.
	Eliminated []string `json:"eliminated,omitempty"`

	// Phase is where the round left the state machine.
	Phase Phase `json:"phase"`
}

// Outcome is the terminal result of an election.
type Outcome struct {
	Kind OutcomeKind `json:"kind"`

	// Winners holds the single winner, or every co-winner in option-list order.
	Winners []string `json:"winners"`

	Rounds []Round `json:"rounds"`
}

// Lines returns the names to present, one per line.
func (o *Outcome) Lines() []string {
	lines := make([]string, len(o.Winners))
	copy(lines, o.Winners)
	return lines
}

// IsTie reports whether the election ended in a full tie.
func (o *Outcome) IsTie() bool {
	return o.Kind == OutcomeTie
}
