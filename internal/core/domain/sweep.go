package domain

// SweepReport aggregates the outcome of one sweep pass. Processed counts rules
// fully handled (todo created, next-due advanced); Errors counts rules that
// failed at any step. Failures lists a human-readable entry per failed rule.
type SweepReport struct {
	Processed int
	Errors    int
	Failures  []string
}
