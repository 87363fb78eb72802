package domain

import "strconv"

// Outcome captures one finished runner process together with the policy in
// effect for judging it. Produced once per invocation and consumed
// immediately.
type Outcome struct {
	ExitCode int

	// KnownIssuesOnly is the leniency flag: exit code 1 (failures caused by
	// known issues only) is then treated as a pass.
	KnownIssuesOnly bool

	// StatisticsValidationScheduled marks that a statistics validation runs
	// after this invocation and owns the final judgement.
	StatisticsValidationScheduled bool
}

// Reason explains a Verdict.
type Reason int

const (
	// ReasonClean is a plain zero exit.
	ReasonClean Reason = iota

	// ReasonKnownIssuesOnly is exit code 1 forgiven by the leniency flag.
	ReasonKnownIssuesOnly

	// ReasonStatisticsDeferred means the exit code was ignored because a
	// scheduled statistics validation decides the run instead.
	ReasonStatisticsDeferred

	// ReasonAbnormalExit is any non-zero exit no rule forgives.
	ReasonAbnormalExit
)

func (r Reason) String() string {
	switch r {
	case ReasonClean:
		return "clean"
	case ReasonKnownIssuesOnly:
		return "known issues only"
	case ReasonStatisticsDeferred:
		return "statistics validation deferred"
	case ReasonAbnormalExit:
		return "abnormal exit"
	default:
		return "unknown"
	}
}

// Verdict is the interpreted result of a runner invocation.
type Verdict struct {
	OK       bool
	Reason   Reason
	ExitCode int
}

// Interpret judges a finished process. The branches apply in strict priority
// order: a scheduled statistics validation always wins, then the known-issues
// leniency for exit code 1, then plain exit-code semantics.
func Interpret(o Outcome) Verdict {
	switch {
	case o.StatisticsValidationScheduled:
		return Verdict{OK: true, Reason: ReasonStatisticsDeferred, ExitCode: o.ExitCode}
	case o.KnownIssuesOnly && o.ExitCode == 1:
		return Verdict{OK: true, Reason: ReasonKnownIssuesOnly, ExitCode: o.ExitCode}
	case o.ExitCode == 0:
		return Verdict{OK: true, Reason: ReasonClean, ExitCode: o.ExitCode}
	default:
		return Verdict{OK: false, Reason: ReasonAbnormalExit, ExitCode: o.ExitCode}
	}
}

// ExitCodeString is the exact form persisted to the exit-code file: the
// decimal digits and nothing else.
func ExitCodeString(code int) string {
	return strconv.Itoa(code)
}
