package domain

// Phase is the position of an election in the runoff state machine.
type Phase string

const (
	PhaseTabulating       Phase = "tabulating"
	PhaseCheckingMajority Phase = "checking_majority"
	PhaseCheckingTie      Phase = "checking_tie"
	PhaseEliminating      Phase = "eliminating"
	PhaseWinnerFound      Phase = "winner_found" // Terminal
	PhaseTieDeclared      Phase = "tie_declared" // Terminal
)

// IsTerminal reports whether no further round can run from this phase.
func (p Phase) IsTerminal() bool {
	return p == PhaseWinnerFound || p == PhaseTieDeclared
}

// State is the snapshot of an election between two rounds.
type State struct {
	// Options keeps the roster in its original order.
	Options []Option `json:"options"`

	// Ballots is shared read-only between snapshots of the same election.
	Ballots []Ballot `json:"ballots"`

	// Phase is the state machine position reached by the last round.
	Phase Phase `json:"phase"`

	// Round counts completed rounds.
	Round int `json:"round"`
}

// NewState creates the initial state: nothing eliminated, all support at zero.
func NewState(names []string, ballots []Ballot) *State {
	return &State{
		Options: NewOptions(names),
		Ballots: ballots,
		Phase:   PhaseTabulating,
	}
}

// Clone returns a copy whose options can be mutated without affecting s.
func (s *State) Clone() *State {
	next := *s
	next.Options = make([]Option, len(s.Options))
	copy(next.Options, s.Options)
	return &next
}

// Remaining returns the indices of the options still standing, in roster order.
func (s *State) Remaining() []int {
	idx := make([]int, 0, len(s.Options))
	for i, o := range s.Options {
		if !o.Eliminated {
			idx = append(idx, i)
		}
	}
	return idx
}

// Names returns the names of the given options, in the order given.
func (s *State) Names(indices []int) []string {
	names := make([]string, len(indices))
	for i, idx := range indices {
		names[i] = s.Options[idx].Name
	}
	return names
}
