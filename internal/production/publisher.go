package production

import (
	"sync/atomic"

	"github.com/comalice/turingx/internal/core"
)

// ChannelPublisher is an Observer that forwards step events to a Go channel.
// Non-blocking publish with drop on backpressure; Dropped counts the losses.
type ChannelPublisher struct {
	ch      chan<- core.StepEvent
	dropped atomic.Uint64
}

var _ core.Observer = (*ChannelPublisher)(nil)

// NewChannelPublisher creates a ChannelPublisher with the given output channel.
func NewChannelPublisher(ch chan<- core.StepEvent) *ChannelPublisher {
	return &ChannelPublisher{ch: ch}
}

func (p *ChannelPublisher) OnStep(ev core.StepEvent) {
	select {
	case p.ch <- ev:
	default:
		p.dropped.Add(1)
	}
}

// Dropped returns the number of events dropped because the channel was full.
func (p *ChannelPublisher) Dropped() uint64 {
	return p.dropped.Load()
}

// Close closes the output channel. The machine must not step afterwards.
func (p *ChannelPublisher) Close() error {
	close(p.ch)
	return nil
}
