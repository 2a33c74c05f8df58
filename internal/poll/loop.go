// Package poll drives repeated probe evaluation and the one-shot
// action contract.
package poll

import (
	"context"
	"fmt"
	"time"

	"onidle/internal/logging"
	"onidle/internal/probe"
	"onidle/internal/runner"
)

// Loop states, reported in debug diagnostics.
const (
	StateWaiting    = "waiting"
	StateEvaluating = "evaluating"
	StateDeciding   = "deciding"
	StateActing     = "acting"
	StateDone       = "done"
)

// Runner launches the maintenance command once idle is confirmed.
type Runner interface {
	Run(ctx context.Context, cmdline []string) (runner.Result, error)
}

// Reporter receives per-cycle progress output.
type Reporter interface {
	Cycle(cycle int, at time.Time, results []probe.Result, idle bool)
	Acting(at time.Time, waited time.Duration, cmdline []string)
	Acted(res runner.Result)
}

// Loop evaluates every probe at a fixed interval and reduces the
// verdicts to one decision per cycle. Probes run sequentially in set
// order; a cycle's verdict vector is complete before it is decided.
type Loop struct {
	probes   []probe.Probe
	runner   Runner
	reporter Reporter
	logger   *logging.Logger
	interval time.Duration

	// sleep is replaceable in tests
	sleep func(ctx context.Context, d time.Duration) error
}

// New creates a polling loop over the given probe set.
func New(probes []probe.Probe, r Runner, rep Reporter, logger *logging.Logger, interval time.Duration) *Loop {
	return &Loop{
		probes:   probes,
		runner:   r,
		reporter: rep,
		logger:   logger,
		interval: interval,
		sleep:    sleepContext,
	}
}

// sleepContext pauses for d unless the context ends first.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// RunOnce performs one evaluation cycle and returns its results and
// decision.
func (l *Loop) RunOnce(ctx context.Context) ([]probe.Result, bool) {
	l.logState(StateEvaluating)
	results := l.evaluate(ctx)

	l.logState(StateDeciding)
	idle := probe.Decide(probe.CollectVerdicts(results))

	return results, idle
}

// evaluate runs every probe to completion, in order. A probe failure
// is recorded in its result and excluded from the verdict vector; it
// never aborts the cycle.
func (l *Loop) evaluate(ctx context.Context) []probe.Result {
	results := make([]probe.Result, 0, len(l.probes))
	for _, p := range l.probes {
		verdict, err := p.Check(ctx)
		if err != nil {
			l.logger.Warn("poll.probe.failed", "Probe failed", map[string]interface{}{
				"probe": p.Name(),
				"error": err.Error(),
			})
			results = append(results, probe.Result{Name: p.Name(), Verdict: probe.Unknown, Err: err})
			continue
		}

		l.logger.Debug("poll.probe.checked", "Probe checked", map[string]interface{}{
			"probe":   p.Name(),
			"verdict": verdict.String(),
		})
		results = append(results, probe.Result{Name: p.Name(), Verdict: verdict})
	}
	return results
}

// Wait runs evaluation cycles until one decides the host is idle, then
// launches the command exactly once and returns. The returned error
// reflects only whether the command could be launched; a non-zero exit
// is reported and swallowed.
func (l *Loop) Wait(ctx context.Context, cmdline []string) error {
	start := time.Now()

	for cycle := 1; ; cycle++ {
		results, idle := l.RunOnce(ctx)
		l.reporter.Cycle(cycle, time.Now(), results, idle)

		if idle {
			l.logState(StateActing)
			now := time.Now()
			l.reporter.Acting(now, now.Sub(start), cmdline)

			res, err := l.runner.Run(ctx, cmdline)
			if err != nil {
				return fmt.Errorf("failed to launch command: %w", err)
			}
			l.reporter.Acted(res)

			l.logState(StateDone)
			return nil
		}

		l.logState(StateWaiting)
		if err := l.sleep(ctx, l.interval); err != nil {
			return err
		}
	}
}

// Observe runs evaluation cycles until the context ends, reporting
// each decision. It never launches the command.
func (l *Loop) Observe(ctx context.Context) error {
	for cycle := 1; ; cycle++ {
		results, idle := l.RunOnce(ctx)
		l.reporter.Cycle(cycle, time.Now(), results, idle)

		l.logState(StateWaiting)
		if err := l.sleep(ctx, l.interval); err != nil {
			return err
		}
	}
}

func (l *Loop) logState(state string) {
	l.logger.Debug("poll.state", "Loop state changed", map[string]interface{}{
		"state": state,
	})
}
