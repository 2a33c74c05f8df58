package probe

// Decide reduces a cycle's verdict vector to the idle decision.
//
// The rule is conservative toward false negatives: a single Busy
// verdict blocks the decision, while Unknown abstains. An empty vector
// decides true; callers are expected to never evaluate an empty probe
// set.
func Decide(verdicts []Verdict) bool {
	for _, v := range verdicts {
		if v == Busy {
			return false
		}
	}
	return true
}

// CollectVerdicts extracts the verdicts of successful results. A
// failed probe contributes no verdict to the cycle: its failure is
// surfaced in diagnostics but does not block the decision.
func CollectVerdicts(results []Result) []Verdict {
	verdicts := make([]Verdict, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		verdicts = append(verdicts, r.Verdict)
	}
	return verdicts
}
