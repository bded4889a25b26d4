// Package realtime provides a bounded, cancellable runner for turingx machines.
//
// The core engine runs until a terminal status with no step limit and no
// cancellation. Runner adds both, plus optional tick pacing:
//   - MaxSteps bounds a run; exceeding it returns ErrStepLimit
//   - context cancellation stops the run between steps
//   - TickRate > 0 executes StepsPerTick steps per tick (e.g. for animation)
//
// # Example Usage
//
//	m, _ := builder.Build()
//	r := realtime.NewRunner(m, realtime.Config{
//		MaxSteps: 1_000_000,
//		TickRate: 50 * time.Millisecond,
//	})
//	status, err := r.Run(ctx)
//
// Run blocks. Start runs the same loop in a goroutine; Stop cancels it and
// Wait returns the Result. The machine must not be touched by the caller
// while a runner owns it.
package realtime
