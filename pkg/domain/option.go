package domain

// Option is one selectable choice of an election.
type Option struct {
	// Name is the display name and identity of the option. Immutable.
	Name string `json:"name" yaml:"name"`

	// Support is the number of ballots crediting this option in the current round.
	Support int `json:"support" yaml:"support"`

	// Eliminated is set once the option drops out. It is never reset.
	Eliminated bool `json:"eliminated" yaml:"eliminated"`
}

// Ballot is one participant's full strict ranking, most preferred first.
// Entries are zero-based indices into the election's option list.
type Ballot []int

// NewOptions builds a fresh roster from a list of names.
func NewOptions(names []string) []Option {
	opts := make([]Option, len(names))
	for i, name := range names {
		opts[i] = Option{Name: name}
	}
	return opts
}
