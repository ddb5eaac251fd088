package runoff

import "github.com/aretw0/runoff/pkg/domain"

// PowerSourceNames returns the roster of the power source selection.
func PowerSourceNames() []string {
	return []string{"Battery", "Solar", "USB"}
}

// PowerSourceBallots returns the consumers' ranked fallback orders.
// Consumer 0 prefers Solar, then Battery, then USB.
func PowerSourceBallots() []domain.Ballot {
	return []domain.Ballot{
		{1, 0, 2},
		{0, 1, 2},
		{1, 2, 0},
		{0, 2, 1},
		{2, 0, 1},
	}
}

// PowerSources returns the preset power source election.
func PowerSources(opts ...Option) (*Election, error) {
	return New(PowerSourceNames(), PowerSourceBallots(), opts...)
}
