/*
Package runoff is a deterministic instant-runoff engine for choosing one option out of a
fixed roster, given every participant's complete ranking of the roster.

Each round tabulates the ballots against the options still standing, declares a winner as
soon as one option holds strictly more than half of the ballots, and otherwise eliminates
every option tied for last place. When all remaining options are tied the election stops and
declares all of them co-winners instead of breaking the tie arbitrarily.

# Concept

The engine is a small state machine:

	tabulating -> checking_majority -> (winner_found | checking_tie)
	checking_tie -> (tie_declared | eliminating) -> tabulating

Rounds are computed as pure steps over an explicit State, so each round can be inspected
on its own, and no state survives between two runs of the same Election.

# Usage

	el, err := runoff.New(
		[]string{"Battery", "Solar", "USB"},
		[]domain.Ballot{{1, 0, 2}, {0, 1, 2}, {1, 2, 0}, {0, 2, 1}, {2, 0, 1}},
	)
	if err != nil {
		log.Fatal(err)
	}

	outcome, err := el.Run(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	for _, name := range outcome.Lines() {
		fmt.Println(name) // Battery
	}

Ballots are zero-based indices into the option list and must rank every option exactly
once. Malformed input is rejected by New with errors wrapping domain.ErrMalformedBallot.
*/
package runoff
