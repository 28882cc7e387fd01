package core

import (
	"context"
	"time"
)

// Scheduler invokes tick repeatedly until ctx is done.
type Scheduler interface {
	Run(ctx context.Context, tick func()) error
}

// TickerScheduler calls tick on a fixed wall clock interval.
type TickerScheduler struct {
	Interval time.Duration
}

// NewTickerScheduler ticks tps times per second.
func NewTickerScheduler(tps int) TickerScheduler {
	if tps <= 0 {
		tps = 60
	}
	return TickerScheduler{Interval: time.Second / time.Duration(tps)}
}

func (t TickerScheduler) Run(ctx context.Context, tick func()) error {
	ticker := time.NewTicker(t.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			tick()
		}
	}
}

// Driver runs one input pass, one physics step and one render pass per tick.
type Driver struct {
	Sim    *Simulation
	Input  func(*Simulation) // may mutate drag state and ball velocity
	Render func(*Simulation) // must not mutate the simulation
}

func (d *Driver) Tick() {
	if d.Input != nil {
		d.Input(d.Sim)
	}
	d.Sim.Step()
	if d.Render != nil {
		d.Render(d.Sim)
	}
}

// Run drives ticks from sched until it returns.
func (d *Driver) Run(ctx context.Context, sched Scheduler) error {
	return sched.Run(ctx, d.Tick)
}
