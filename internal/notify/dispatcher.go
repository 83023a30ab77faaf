package notify

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Dispatcher queues alerts and delivers them from a background goroutine
// so slow notifiers never hold up request handling.
type Dispatcher struct {
	next    Notifier
	queue   chan Alert
	timeout time.Duration
	log     *zap.SugaredLogger
}

// NewDispatcher creates a dispatcher with the given queue size.
func NewDispatcher(next Notifier, size int, log *zap.SugaredLogger) *Dispatcher {
	if size < 1 {
		size = 1
	}
	return &Dispatcher{
		next:    next,
		queue:   make(chan Alert, size),
		timeout: 10 * time.Second,
		log:     log,
	}
}

// Notify enqueues the alert. A full queue drops the alert with a warning.
func (d *Dispatcher) Notify(_ context.Context, alert Alert) error {
	select {
	case d.queue <- alert:
	default:
		d.log.Warnw("alert queue full, dropping alert", "category", alert.CategoryName, "type", alert.Type)
	}
	return nil
}

// Run delivers queued alerts until ctx is cancelled, then drains what is
// already queued.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		select {
		case alert := <-d.queue:
			d.deliver(alert)
		case <-ctx.Done():
			for {
				select {
				case alert := <-d.queue:
					d.deliver(alert)
				default:
					return nil
				}
			}
		}
	}
}

func (d *Dispatcher) deliver(alert Alert) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()
	if err := d.next.Notify(ctx, alert); err != nil {
		d.log.Errorw("failed to deliver alert", "error", err, "category", alert.CategoryName, "type", alert.Type)
	}
}
