package notifications

import (
	"context"
	"errors"
	"log"
	"sync"

	"fieldpilot/internal/domain/entities"
	"fieldpilot/internal/usecase/interfaces"
)

var ErrDispatcherClosed = errors.New("notification dispatcher closed")

// AsyncDispatcher decouples notification delivery from the request path: a
// transition enqueues and returns, a single worker drains the queue. Actual
// channel delivery (push, email) is delegated to the sink; the default sink
// only logs, which keeps local environments quiet.

type AsyncDispatcher struct {
	queue chan entities.Notification
	sink  func(entities.Notification)

	mu     sync.Mutex
	closed bool
	done   chan struct{}
}

var _ interfaces.INotificationDispatcher = (*AsyncDispatcher)(nil)

func NewAsyncDispatcher(buffer int, sink func(entities.Notification)) *AsyncDispatcher {
	if buffer < 1 {
		buffer = 64
	}
	if sink == nil {
		sink = logSink
	}
	d := &AsyncDispatcher{
		queue: make(chan entities.Notification, buffer),
		sink:  sink,
		done:  make(chan struct{}),
	}
	go d.run()
	return d
}

// Dispatch enqueues without blocking. A full queue drops the notification
// with a log line: notifications are best-effort and must never stall a
// state transition.
func (d *AsyncDispatcher) Dispatch(ctx context.Context, n entities.Notification) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrDispatcherClosed
	}

	select {
	case d.queue <- n:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		log.Printf("[notifications][dispatcher] queue full, dropping type=%s owner_id=%s", n.Type, n.OwnerID)
		return nil
	}
}

// Close stops accepting notifications and waits for the queue to drain.
func (d *AsyncDispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()
	<-d.done
}

func (d *AsyncDispatcher) run() {
	defer close(d.done)
	for n := range d.queue {
		d.sink(n)
	}
}

func logSink(n entities.Notification) {
	log.Printf("[notifications][dispatcher] delivered type=%s owner_id=%s channels=%v", n.Type, n.OwnerID, n.Channels)
}
