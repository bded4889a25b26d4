package realtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/comalice/turingx"
)

// ErrStepLimit is returned when a run needs to apply more than
// Config.MaxSteps rules.
var ErrStepLimit = errors.New("step limit exceeded")

// ErrAlreadyStarted is returned by Start on a runner that is already running.
var ErrAlreadyStarted = errors.New("runner already started")

// checkEvery is how often an unpaced run polls its context.
const checkEvery = 256

// Config configures a Runner.
type Config struct {
	MaxSteps     uint64        // 0 means unlimited
	TickRate     time.Duration // 0 runs as fast as possible
	StepsPerTick int           // steps per tick when paced (default: 1)
	Logger       *slog.Logger  // default: discard
}

// Result is the outcome of a finished run.
type Result struct {
	Status turingx.State
	Steps  uint64
	Ticks  uint64
	Err    error
}

// Runner drives a Machine with a step budget, cancellation and optional pacing.
type Runner struct {
	m            *turingx.Machine
	maxSteps     uint64
	tickRate     time.Duration
	stepsPerTick int
	logger       *slog.Logger

	mu      sync.Mutex
	tickNum uint64
	result  Result
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewRunner creates a runner for m.
func NewRunner(m *turingx.Machine, cfg Config) *Runner {
	if cfg.StepsPerTick <= 0 {
		cfg.StepsPerTick = 1
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{
		m:            m,
		maxSteps:     cfg.MaxSteps,
		tickRate:     cfg.TickRate,
		stepsPerTick: cfg.StepsPerTick,
		logger:       cfg.Logger,
	}
}

// Run starts the machine and steps it until a terminal status, the step
// limit, a machine error or ctx is done.
func (r *Runner) Run(ctx context.Context) (turingx.State, error) {
	res := r.run(ctx)
	return res.Status, res.Err
}

// Start runs the machine in a new goroutine.
func (r *Runner) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.done != nil {
		return ErrAlreadyStarted
	}
	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})
	go func() {
		defer close(r.done)
		r.run(ctx)
	}()
	return nil
}

// Stop cancels a started run and waits for it to exit.
func (r *Runner) Stop() Result {
	r.mu.Lock()
	cancel := r.cancel
	r.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	return r.Wait()
}

// Wait blocks until a started run finishes and returns its result.
func (r *Runner) Wait() Result {
	r.mu.Lock()
	done := r.done
	r.mu.Unlock()
	if done != nil {
		<-done
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.result
}

// Done is closed when a started run finishes. It is nil before Start.
func (r *Runner) Done() <-chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.done
}

// TickNumber returns the number of ticks processed so far.
func (r *Runner) TickNumber() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tickNum
}

func (r *Runner) run(ctx context.Context) Result {
	var res Result
	if err := r.m.Start(); err != nil {
		res = Result{Status: r.m.Status(), Err: err}
	} else if r.tickRate > 0 {
		res = r.tickLoop(ctx)
	} else {
		res = r.loop(ctx)
	}

	r.mu.Lock()
	res.Ticks = r.tickNum
	r.result = res
	r.mu.Unlock()

	if res.Err != nil {
		r.logger.Warn("run stopped", "status", res.Status, "steps", res.Steps, "error", res.Err)
	} else {
		r.logger.Info("run finished", "status", res.Status, "steps", res.Steps, "ticks", res.Ticks)
	}
	return res
}

func (r *Runner) loop(ctx context.Context) Result {
	for i := 0; ; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return r.finish(err)
			}
		}
		if done, res := r.step(); done {
			return res
		}
	}
}

func (r *Runner) tickLoop(ctx context.Context) Result {
	ticker := time.NewTicker(r.tickRate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return r.finish(ctx.Err())
		case <-ticker.C:
			r.mu.Lock()
			r.tickNum++
			r.mu.Unlock()
			for range r.stepsPerTick {
				if done, res := r.step(); done {
					return res
				}
			}
		}
	}
}

// step performs one machine step and reports whether the run is over.
// The budget is checked before stepping so a run that has used all of it
// may still take the implicit halt, which applies no rule.
func (r *Runner) step() (bool, Result) {
	if r.maxSteps > 0 && r.m.Steps() >= r.maxSteps && r.ruleAhead() {
		return true, r.finish(fmt.Errorf("%w: %d steps, still in %v", ErrStepLimit, r.m.Steps(), r.m.Status()))
	}
	status, err := r.m.Step()
	if err != nil {
		return true, r.finish(err)
	}
	if status.IsTerminal() {
		return true, r.finish(nil)
	}
	return false, Result{}
}

// ruleAhead reports whether the next step would apply a rule.
func (r *Runner) ruleAhead() bool {
	status := r.m.Status()
	if !status.IsRunning() {
		return false
	}
	symbol, err := r.m.Symbol(r.m.Head())
	if err != nil {
		return true
	}
	_, ok := r.m.Rule(status.ID, symbol)
	return ok
}

func (r *Runner) finish(err error) Result {
	return Result{Status: r.m.Status(), Steps: r.m.Steps(), Err: err}
}
