/*
Package domain contains the core domain models of the runoff engine.

It defines the entities of an instant-runoff election: the Options being selected, the
Ballots ranking them, and the State that the engine threads from round to round. This
package is kept pure and free of external dependencies like I/O or persistence.

# Key Entities

  - Option: One selectable choice (a power source, a candidate). Carries the support it
    received in the current round and whether it has been eliminated.
  - Ballot: One participant's complete ranking, as zero-based indices into the option list.
  - State: Snapshot of an election between rounds (Options, Ballots, Phase, Round).
  - Round: Record of a single tabulate-and-decide cycle.
  - Outcome: The terminal result, either a single winner or a set of co-winners.
*/
package domain
