package production

import (
	"context"
	"fmt"
	"io"

	dataframe "github.com/rocketlaunchr/dataframe-go"
	"github.com/rocketlaunchr/dataframe-go/exports"

	"github.com/comalice/turingx/internal/core"
	"github.com/comalice/turingx/internal/primitives"
)

// TraceRecorder is an Observer that keeps every step of a run in columnar
// form and exposes it as a DataFrame.
type TraceRecorder struct {
	namer func(primitives.ProgramState) string

	step    []any
	state   []any
	head    []any
	read    []any
	write   []any
	move    []any
	newHead []any
	next    []any
}

var _ core.Observer = (*TraceRecorder)(nil)

// NewTraceRecorder creates a recorder. namer maps state IDs to display names;
// nil prints "q<id>".
func NewTraceRecorder(namer func(primitives.ProgramState) string) *TraceRecorder {
	if namer == nil {
		namer = func(id primitives.ProgramState) string { return fmt.Sprintf("q%d", id) }
	}
	return &TraceRecorder{namer: namer}
}

func (r *TraceRecorder) OnStep(ev core.StepEvent) {
	r.step = append(r.step, int64(ev.Step))
	r.state = append(r.state, r.namer(ev.From))
	r.head = append(r.head, int64(ev.Head))
	r.read = append(r.read, int64(ev.Read))
	if ev.Matched {
		r.write = append(r.write, int64(ev.Write))
		r.move = append(r.move, ev.Move.String())
	} else {
		r.write = append(r.write, nil)
		r.move = append(r.move, nil)
	}
	r.newHead = append(r.newHead, int64(ev.NewHead))
	r.next = append(r.next, r.stateName(ev.Next))
}

func (r *TraceRecorder) stateName(s primitives.State) string {
	switch s.Kind {
	case primitives.KindRunning:
		return r.namer(s.ID)
	case primitives.KindInvalid:
		return "invalid(" + r.namer(s.ID) + ")"
	}
	return s.Kind.String()
}

// Len returns the number of recorded steps.
func (r *TraceRecorder) Len() int {
	return len(r.step)
}

// Reset forgets all recorded steps.
func (r *TraceRecorder) Reset() {
	*r = TraceRecorder{namer: r.namer}
}

// Frame builds a DataFrame with one row per step. Write and move are nil for
// the implicit halt row.
func (r *TraceRecorder) Frame() *dataframe.DataFrame {
	return dataframe.NewDataFrame(
		dataframe.NewSeriesInt64("step", nil, r.step...),
		dataframe.NewSeriesString("state", nil, r.state...),
		dataframe.NewSeriesInt64("head", nil, r.head...),
		dataframe.NewSeriesInt64("read", nil, r.read...),
		dataframe.NewSeriesInt64("write", nil, r.write...),
		dataframe.NewSeriesString("move", nil, r.move...),
		dataframe.NewSeriesInt64("new_head", nil, r.newHead...),
		dataframe.NewSeriesString("next", nil, r.next...),
	)
}

// WriteCSV exports the trace as CSV with a header row.
func (r *TraceRecorder) WriteCSV(ctx context.Context, w io.Writer) error {
	if err := exports.ExportToCSV(ctx, w, r.Frame()); err != nil {
		return fmt.Errorf("export trace csv: %w", err)
	}
	return nil
}
