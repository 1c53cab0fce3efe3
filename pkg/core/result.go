// pkg/core/result.go
package core

import "time"

// Outcome classifies how a single backend invocation ended.
type Outcome int

const (
	// OutcomeSuccess means the backend ran and exited zero
	OutcomeSuccess Outcome = iota
	// OutcomeExitFailure means the backend ran and exited non-zero
	OutcomeExitFailure
	// OutcomeLaunchFailure means the process could not be started at all
	OutcomeLaunchFailure
	// OutcomeUnsupported marks an active backend that does not define the
	// requested action; nothing was executed
	OutcomeUnsupported
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeExitFailure:
		return "exit failure"
	case OutcomeLaunchFailure:
		return "launch failure"
	case OutcomeUnsupported:
		return "unsupported"
	}
	return "unknown"
}

// Result is the outcome of one Command (or an unsupported marker for a
// backend that contributed no Command). Immutable once produced.
type Result struct {
	Backend  string
	Action   Action
	Argv     []string
	Outcome  Outcome
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
	Err      error // launch failure cause, nil otherwise
}

// OK reports whether the backend ran and exited cleanly.
func (r Result) OK() bool {
	return r.Outcome == OutcomeSuccess
}

// ResultSet aggregates the Results of a single Intent across backends.
// Results keep the order Commands were produced in, regardless of which
// process finished first. A cancelled set carries no partial Results.
type ResultSet struct {
	Results   []Result
	Cancelled bool
}

// Empty reports whether no backend could satisfy the intent.
func (rs *ResultSet) Empty() bool {
	if rs.Cancelled {
		return false
	}
	for _, r := range rs.Results {
		if r.Outcome != OutcomeUnsupported {
			return false
		}
	}
	return true
}

// Failed returns the Results that ran but did not succeed.
func (rs *ResultSet) Failed() []Result {
	var failed []Result
	for _, r := range rs.Results {
		if r.Outcome == OutcomeExitFailure || r.Outcome == OutcomeLaunchFailure {
			failed = append(failed, r)
		}
	}
	return failed
}
