package gc

import "fmt"

// InvariantViolation is the single error category this package recognizes:
// a programming defect in the calling collector logic. It is raised as a
// panic, never returned; the downstream timing and tracing data would be
// inconsistent if execution continued past one.
type InvariantViolation struct {
	Op     string // the operation whose precondition failed
	Detail string
}

func (v *InvariantViolation) Error() string {
	return fmt.Sprintf("gc: invariant violation in %s: %s", v.Op, v.Detail)
}

// violated raises a fatal invariant violation. Callers never recover from
// these; tests observe them with recover.
func violated(op string, format string, args ...any) {
	panic(&InvariantViolation{Op: op, Detail: fmt.Sprintf(format, args...)})
}
