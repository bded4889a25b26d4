package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/comalice/turingx"
	"github.com/comalice/turingx/internal/production"
	"github.com/comalice/turingx/realtime"
)

// maxTapeWords caps --tape-words at 128 MiB of tape on 64-bit hosts.
const maxTapeWords = 1 << 24

type runOptions struct {
	path      string
	tapeWords int
	maxSteps  uint64
	tick      time.Duration
	traceCSV  string
	events    string
	render    bool
	color     bool
	logger    *slog.Logger
}

// run loads, compiles and runs one program, printing the outcome to w.
func run(ctx context.Context, w io.Writer, o runOptions) (int, error) {
	if o.tapeWords < 1 || o.tapeWords > maxTapeWords {
		return 1, fmt.Errorf("tape words %d: must be between 1 and %d", o.tapeWords, maxTapeWords)
	}
	cfg, err := production.LoadProgram(o.path)
	if err != nil {
		return 1, err
	}

	var (
		m *turingx.Machine
		b *turingx.Builder
	)
	renderer := &production.TapeRenderer{Color: o.color}
	name := func(id turingx.ProgramState) string { return b.Name(id) }
	statusName := func(s turingx.State) string {
		if s.IsRunning() {
			return name(s.ID)
		}
		return s.String()
	}

	opts := []turingx.Option{
		turingx.WithTapeWords(o.tapeWords),
		turingx.WithLogger(o.logger.With("program", cfg.ID)),
	}
	if o.render {
		opts = append(opts, turingx.WithObserver(turingx.ObserverFunc(func(ev turingx.StepEvent) {
			fmt.Fprintln(w, renderer.Line(statusName(ev.Next), m))
		})))
	}
	var trace *production.TraceRecorder
	if o.traceCSV != "" {
		trace = production.NewTraceRecorder(name)
		opts = append(opts, turingx.WithObserver(trace))
	}

	var events *eventSink
	if o.events != "" {
		if events, err = newEventSink(o.events, name, statusName, o.logger); err != nil {
			return 1, err
		}
		opts = append(opts, turingx.WithObserver(events.pub))
	}

	m, b, err = turingx.Compile(cfg, opts...)
	if err != nil {
		if events != nil {
			events.Close()
		}
		return 1, err
	}
	if o.render {
		fmt.Fprintln(w, renderer.Line(cfg.Initial, m))
	}

	runner := realtime.NewRunner(m, realtime.Config{
		MaxSteps: o.maxSteps,
		TickRate: o.tick,
		Logger:   o.logger,
	})
	status, runErr := runner.Run(ctx)

	if events != nil {
		if err := events.Close(); err != nil {
			return 1, err
		}
	}

	if trace != nil {
		if err := writeTrace(context.WithoutCancel(ctx), o.traceCSV, trace); err != nil {
			return 1, err
		}
	}

	tapeLine, err := renderer.RenderObserved(m, 0)
	if err != nil {
		return 1, err
	}
	fmt.Fprintf(w, "status: %s\nsteps:  %d\nhead:   %d\nones:   %d\ntape:   %s\n", statusName(status), m.Steps(), m.Head(), m.Ones(), tapeLine)
	if runErr != nil {
		return 1, runErr
	}
	return exitCode(status), nil
}

func writeTrace(ctx context.Context, path string, trace *production.TraceRecorder) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create trace: %w", err)
	}
	if err := trace.WriteCSV(ctx, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
