package driver

import "time"

type Opt func(*Driver)

// WithTickLength sets the loop's fixed minimum sleep per iteration.
func WithTickLength(tickLength time.Duration) Opt {
	return func(d *Driver) {
		d.tickLength = tickLength
	}
}
