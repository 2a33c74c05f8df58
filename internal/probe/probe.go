// Package probe implements the trinary idle signals and the rule that
// combines them into a per-cycle decision.
package probe

import "context"

// Probe is a single unit of idle evidence.
type Probe interface {
	// Name is a stable identifier used for listing and logging.
	Name() string

	// Check returns the probe's verdict for this cycle. An error means
	// the underlying data source could not be read or parsed; it is
	// distinct from an Unknown verdict, which is a successful "cannot
	// tell" answer.
	Check(ctx context.Context) (Verdict, error)
}

// Result records one probe invocation within a cycle.
type Result struct {
	Name    string
	Verdict Verdict
	Err     error
}
