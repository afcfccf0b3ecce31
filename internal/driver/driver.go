package driver

import (
	"context"
	"log/slog"
	"time"
)

const (
	// DefaultTickLength is the wall-clock granularity of the main loop.
	// Combat and mob cadences are multiples layered on top by their
	// managers.
	DefaultTickLength = 500 * time.Millisecond
)

// Manager is anything the driver advances once per tick.
type Manager interface {
	Tick(context.Context) error
}

// Driver is the single loop that drives every manager forward in a
// fixed cycle. One manager failing a tick is logged and does not stop
// the loop or affect the others; the loop itself only exits on context
// cancellation.
type Driver struct {
	tickLength time.Duration
	managers   []Manager
}

// New creates a driver over the given managers. Managers tick in slice
// order within each iteration.
func New(managers []Manager, opts ...Opt) *Driver {
	d := &Driver{
		tickLength: DefaultTickLength,
		managers:   managers,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Start runs the loop until the context is canceled.
func (d *Driver) Start(ctx context.Context) error {
	ticker := time.NewTicker(d.tickLength)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			d.Tick(ctx)
		}
	}
}

// Tick advances every manager once, isolating failures per manager.
func (d *Driver) Tick(ctx context.Context) {
	for _, m := range d.managers {
		if err := m.Tick(ctx); err != nil {
			slog.ErrorContext(ctx, "manager tick failed", "error", err)
		}
	}
}
