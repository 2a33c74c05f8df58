package probe

// Verdict is the trinary outcome of a single probe invocation.
type Verdict int

const (
	// Unknown means the probe could not decide either way.
	Unknown Verdict = iota
	// Idle means the probe found evidence the system is idle.
	Idle
	// Busy means the probe found evidence the system is in use.
	Busy
)

// String returns the lowercase name of the verdict.
func (v Verdict) String() string {
	switch v {
	case Idle:
		return "idle"
	case Busy:
		return "busy"
	default:
		return "unknown"
	}
}

// boolVerdict maps a threshold comparison to Idle or Busy.
func boolVerdict(idle bool) Verdict {
	if idle {
		return Idle
	}
	return Busy
}
