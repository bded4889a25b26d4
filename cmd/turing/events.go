package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/comalice/turingx"
	"github.com/comalice/turingx/internal/production"
)

// eventBuffer is the publisher channel size. Events beyond it are dropped
// while the writer catches up.
const eventBuffer = 4096

type eventLine struct {
	Step    uint64 `json:"step"`
	From    string `json:"from"`
	Head    int    `json:"head"`
	Read    int    `json:"read"`
	Matched bool   `json:"matched"`
	Write   int    `json:"write,omitempty"`
	Move    string `json:"move,omitempty"`
	NewHead int    `json:"new_head"`
	Next    string `json:"next"`
}

// eventSink publishes step events to a channel drained into a JSON lines file.
type eventSink struct {
	pub    *production.ChannelPublisher
	file   *os.File
	done   chan error
	logger *slog.Logger
}

func newEventSink(path string, name func(turingx.ProgramState) string, stateName func(turingx.State) string, logger *slog.Logger) (*eventSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create events: %w", err)
	}
	ch := make(chan turingx.StepEvent, eventBuffer)
	s := &eventSink{
		pub:    production.NewChannelPublisher(ch),
		file:   f,
		done:   make(chan error, 1),
		logger: logger,
	}
	go func() {
		enc := json.NewEncoder(f)
		var werr error
		for ev := range ch {
			if werr != nil {
				continue
			}
			line := eventLine{
				Step:    ev.Step,
				From:    name(ev.From),
				Head:    ev.Head,
				Read:    ev.Read.Int(),
				Matched: ev.Matched,
				NewHead: ev.NewHead,
				Next:    stateName(ev.Next),
			}
			if ev.Matched {
				line.Write = ev.Write.Int()
				line.Move = ev.Move.String()
			}
			werr = enc.Encode(line)
		}
		s.done <- werr
	}()
	return s, nil
}

// Close stops publishing, waits for the writer and closes the file.
func (s *eventSink) Close() error {
	s.pub.Close()
	werr := <-s.done
	if n := s.pub.Dropped(); n > 0 {
		s.logger.Warn("step events dropped", "count", n)
	}
	if err := s.file.Close(); werr == nil {
		werr = err
	}
	if werr != nil {
		return fmt.Errorf("write events: %w", werr)
	}
	return nil
}
