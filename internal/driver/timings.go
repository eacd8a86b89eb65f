package driver

import "time"

// record adds a measured phase to the run's timer, if there is one.
func (o *Options) record(name string, d time.Duration, note string) {
	if o.Timer != nil {
		o.Timer.Add(name, d, note)
	}
}
