package demo

import (
	"encoding/hex"
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	sched "github.com/patrislav1/coop-sched"
)

// Result summarizes a scenario run, for cmd/kernelsim to print or feed
// to the live dashboard.
type Result struct {
	TaskRuns      map[string]int
	TaskWatermark map[string]int
	Finished      bool
}

// task bundles a scenario's TaskSpec with the runtime state a Run needs
// to keep alive for the scheduler: the TCB and backing stack must
// outlive the task, and the counter is what counter/pingpong tasks
// increment.
type task struct {
	spec    TaskSpec
	tcb     sched.TCB
	stack   []byte
	counter int
	done    bool
}

// Run drives one scenario through the scheduler one round at a time, so
// a caller (the headless run subcommand, or the live watch dashboard)
// can observe state between rounds. It installs a simulated Arch: this
// harness exists to run the core on a development host, never on the
// real target.
type Run struct {
	scenario *Scenario
	log      *zap.Logger
	tasks    []*task
	round    int
	fatal    string
}

// NewRun creates every task in s and installs the simulated backend.
// Init is called here, and a second Init panics, so NewRun may be called
// at most once per process.
func NewRun(s *Scenario, log *zap.Logger) *Run {
	arch := sched.NewSimArch()
	sched.Init(arch)

	r := &Run{scenario: s, log: log}
	sched.PanicPrint = func(msg string) {
		r.fatal = msg
		log.Error("fatal error from scheduler core", zap.String("detail", msg))
	}

	r.tasks = make([]*task, len(s.Tasks))
	for i, spec := range s.Tasks {
		t := &task{spec: spec, stack: make([]byte, spec.StackSize)}
		r.tasks[i] = t
		log.Info("creating task",
			zap.String("name", spec.Name),
			zap.String("kind", spec.Kind),
			zap.Int("stack_size", spec.StackSize))
		sched.CreateTask(&t.tcb, entryFor(t), unsafe.Pointer(t), t.stack)
	}
	return r
}

// Step advances the scheduler by one round (one call to sched.Yield
// from main). It reports false once the scenario's round budget is
// spent or a fatal error halted the core.
func (r *Run) Step() (bool, error) {
	if r.fatal != "" {
		return false, fmt.Errorf("demo: scenario %q halted: %s", r.scenario.Name, r.fatal)
	}
	if r.round >= r.scenario.Yields {
		return false, nil
	}
	sched.Yield()
	r.round++
	if r.fatal != "" {
		return false, fmt.Errorf("demo: scenario %q halted: %s", r.scenario.Name, r.fatal)
	}
	return r.round < r.scenario.Yields, nil
}

// Name reports the scenario's name.
func (r *Run) Name() string { return r.scenario.Name }

// Round reports how many rounds have run so far.
func (r *Run) Round() int { return r.round }

// Total reports the scenario's configured round budget.
func (r *Run) Total() int { return r.scenario.Yields }

// Snapshot reports each task's current run count and, if the scenario
// requested it, its stack watermark.
func (r *Run) Snapshot() *Result {
	result := &Result{
		TaskRuns:      make(map[string]int, len(r.tasks)),
		TaskWatermark: make(map[string]int, len(r.tasks)),
		Finished:      r.round >= r.scenario.Yields,
	}
	for _, t := range r.tasks {
		result.TaskRuns[t.spec.Name] = t.counter
		if r.scenario.Watermark {
			result.TaskWatermark[t.spec.Name] = sched.StackWatermark(&t.tcb)
		}
	}
	return result
}

// SnapshotHex returns the hex-encoded register snapshot for the named
// task's last-saved context, for crash-report style diagnostics. It
// errors if the name is unknown.
func (r *Run) SnapshotHex(name string) (string, error) {
	for _, t := range r.tasks {
		if t.spec.Name != name {
			continue
		}
		buf := make([]byte, sched.SnapshotSize)
		if err := sched.Snapshot(&t.tcb, buf); err != nil {
			return "", err
		}
		return hex.EncodeToString(buf), nil
	}
	return "", fmt.Errorf("demo: no such task %q", name)
}

// TaskNames returns the scenario's task names in creation order.
func (r *Run) TaskNames() []string {
	names := make([]string, len(r.tasks))
	for i, t := range r.tasks {
		names[i] = t.spec.Name
	}
	return names
}

// entryFor builds the EntryFunc for a task, dispatching on its kind.
// counter and pingpong tasks loop forever incrementing their own
// counter and yielding; oneshot runs exactly once and returns, so the
// scheduler removes it from the run list on its own. Every entry
// recovers its *task solely from the arg CreateTask was given, the same
// way a real task would recover whatever context r2 carried in.
func entryFor(t *task) sched.EntryFunc {
	switch t.spec.Kind {
	case "oneshot":
		return func(arg unsafe.Pointer) {
			self := (*task)(arg)
			self.counter++
			self.done = true
		}
	default: // "counter", "pingpong"
		return func(arg unsafe.Pointer) {
			self := (*task)(arg)
			for {
				self.counter++
				sched.Yield()
			}
		}
	}
}
