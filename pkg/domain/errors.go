package domain

import "errors"

// ErrNoOptions is returned when an election is created without any option.
var ErrNoOptions = errors.New("election has no options")

// ErrNoBallots is returned when an election is created without any ballot.
var ErrNoBallots = errors.New("election has no ballots")

// ErrTooManyOptions is returned when the option count exceeds the configured limit.
var ErrTooManyOptions = errors.New("too many options")

// ErrTooManyBallots is returned when the ballot count exceeds the configured limit.
var ErrTooManyBallots = errors.New("too many ballots")

// ErrEmptyOptionName is returned when an option has a blank name.
var ErrEmptyOptionName = errors.New("option name is empty")

// ErrDuplicateOption is returned when two options share the same name.
var ErrDuplicateOption = errors.New("duplicate option")

// ErrUnknownOption is returned when a ranking refers to an option name that does not exist.
var ErrUnknownOption = errors.New("unknown option")

// ErrMalformedBallot wraps every ballot contract violation.
var ErrMalformedBallot = errors.New("malformed ballot")

// Ballot contract violations. They are always reported together with ErrMalformedBallot.
var (
	ErrBallotLength   = errors.New("ballot does not rank every option")
	ErrRankOutOfRange = errors.New("ballot references an option out of range")
	ErrDuplicateRank  = errors.New("ballot ranks an option twice")
)

// ErrTooManyTallyWorkers is returned when more tally goroutines are requested than allowed.
var ErrTooManyTallyWorkers = errors.New("too many tally workers")

// ErrNoCandidatesLeft is returned if an elimination would leave no option standing.
// The majority and full tie checks make this unreachable for well-formed elections.
var ErrNoCandidatesLeft = errors.New("elimination would remove every remaining option")

// ErrElectionFinished is returned when stepping a state that already reached a terminal phase.
var ErrElectionFinished = errors.New("election already finished")
