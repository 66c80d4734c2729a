package audit

import (
	"log/slog"
	"sync"
)

type Event struct {
	StoreID  uint
	ActorID  *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

type Sink interface {
	Write(ev Event) error
}

type Dispatcher struct {
	sink   Sink
	log    *slog.Logger
	queue  chan Event
	done   chan struct{}
	closer sync.Once
}

func NewDispatcher(sink Sink, log *slog.Logger) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		log:   log,
		queue: make(chan Event, 100),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.sink.Write(ev); err != nil {
			d.log.Error("audit write failed", "action", ev.Action, "err", err)
		}
	}
}

// Dispatch never blocks: when the queue is full the event is dropped.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", "action", ev.Action)
	}
}

// Close drains pending events. Dispatch must not be called afterwards.
func (d *Dispatcher) Close() {
	d.closer.Do(func() {
		close(d.queue)
	})
	<-d.done
}
