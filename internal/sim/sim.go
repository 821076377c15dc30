// Package sim runs a game without a terminal, driving it with a seeded
// random autopilot. It backs the `arcade sim` command and soak tests.
package sim

import (
	"context"
	"math/rand"
	"time"

	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/input"
	"github.com/vovakirdan/arcade-engine/internal/loop"
)

// Config controls a headless run.
type Config struct {
	Ticks int   // Stop after this many ticks; 0 runs until the game ends
	Every int   // Ticks between autopilot decisions (default 10)
	Seed  int64 // Autopilot seed
}

// Report summarises a finished run.
type Report struct {
	Status engine.Status
	Ticks  int
	Events map[engine.EventKind]int
}

// Autopilot presses a random key, or nothing, on each decision.
type Autopilot struct {
	rng  *rand.Rand
	keys []core.Key
}

// NewAutopilot creates an autopilot choosing among keys.
func NewAutopilot(seed int64, keys ...core.Key) *Autopilot {
	if len(keys) == 0 {
		keys = []core.Key{core.KeyLeft, core.KeyRight, core.KeySpace, core.KeyFire}
	}
	return &Autopilot{rng: rand.New(rand.NewSource(seed)), keys: keys}
}

// Act feeds one decision into src and returns the pressed key, if any.
func (a *Autopilot) Act(src *input.Source) (core.Key, bool) {
	i := a.rng.Intn(len(a.keys) + 1)
	if i == len(a.keys) {
		return "", false
	}
	src.KeyDown(a.keys[i])
	return a.keys[i], true
}

// Run advances d in fixed tick batches as fast as possible until the game
// ends, cfg.Ticks is reached or ctx is done. The driver is started if it
// is idle and stopped on return.
func Run(ctx context.Context, d *loop.Driver, cfg Config) (Report, error) {
	every := cfg.Every
	if every <= 0 {
		every = 10
	}
	if !d.Running() {
		if _, err := d.Start(time.Now()); err != nil {
			return Report{}, err
		}
	}
	defer d.Stop()

	pilot := NewAutopilot(cfg.Seed)
	rep := Report{Events: make(map[engine.EventKind]int)}
	for {
		if err := ctx.Err(); err != nil {
			rep.Status = d.Session().Status()
			return rep, err
		}

		batch := every
		if cfg.Ticks > 0 {
			batch = min(batch, cfg.Ticks-rep.Ticks)
		}
		pilot.Act(d.Source())
		f := d.Advance(batch)
		rep.Ticks += f.Ticks
		for _, ev := range f.Events {
			rep.Events[ev.Kind]++
		}
		rep.Status = f.Status

		if f.Status.State == engine.StateOver || f.Ticks < batch {
			return rep, nil
		}
		if cfg.Ticks > 0 && rep.Ticks >= cfg.Ticks {
			return rep, nil
		}
	}
}

// RunRealtime plays d against the wall clock at fps frame callbacks per
// second, with the autopilot deciding every cfg.Every ticks. It stops when
// the game ends or ctx is done; ctx expiry is not an error.
func RunRealtime(ctx context.Context, d *loop.Driver, fps int, cfg Config) (Report, error) {
	every := cfg.Every
	if every <= 0 {
		every = 10
	}
	pilot := NewAutopilot(cfg.Seed)
	rep := Report{Events: make(map[engine.EventKind]int)}
	next := 0

	err := d.Run(ctx, fps, func(f loop.Frame) {
		rep.Ticks += f.Ticks
		for _, ev := range f.Events {
			rep.Events[ev.Kind]++
		}
		rep.Status = f.Status
		if rep.Ticks >= next {
			pilot.Act(d.Source())
			next = rep.Ticks + every
		}
	})
	rep.Status = d.Session().Status()
	if ctx.Err() != nil {
		return rep, nil
	}
	return rep, err
}
