// Package loop turns wall-clock frame callbacks into fixed simulation
// ticks for a session.
package loop

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/input"
)

const (
	DefaultTickRate = 60
	// MinTickRate and MaxTickRate bound the simulation rate. Below the
	// minimum the world splits most moves into slices; above the maximum a
	// tick is too short to schedule.
	MinTickRate = 30
	MaxTickRate = 1000
	// DefaultMaxFrame caps the wall-clock delta consumed by one frame, so a
	// host that stalls does not trigger a burst of catch-up ticks.
	DefaultMaxFrame = 250 * time.Millisecond
)

// Frame is the immutable result of one frame callback.
type Frame struct {
	Sprites    []core.Sprite
	Status     engine.Status
	Events     []engine.GameEvent // Events of every tick run this frame
	Ticks      int                // Fixed ticks run this frame
	Alpha      float64            // Leftover fraction of a tick, for interpolation
	Generation uint64
}

// Driver owns a session and advances it at a fixed tick rate from
// arbitrary frame callbacks. It is not safe for concurrent use; hosts call
// it from their single update loop.
type Driver struct {
	session  *engine.Session
	source   *input.Source
	step     time.Duration
	maxFrame time.Duration
	logger   *log.Logger

	running bool
	gen     uint64
	acc     time.Duration
	last    time.Time
}

// Option configures a Driver.
type Option func(*Driver)

// ValidateTickRate reports whether tps is within [MinTickRate, MaxTickRate].
func ValidateTickRate(tps int) error {
	if tps < MinTickRate || tps > MaxTickRate {
		return fmt.Errorf("tick rate %d outside %d..%d", tps, MinTickRate, MaxTickRate)
	}
	return nil
}

// WithTickRate sets the fixed simulation rate in ticks per second. Rates
// outside [MinTickRate, MaxTickRate] are clamped; zero or less keeps the
// default.
func WithTickRate(tps int) Option {
	return func(d *Driver) {
		if tps > 0 {
			tps = min(max(tps, MinTickRate), MaxTickRate)
			d.step = time.Second / time.Duration(tps)
		}
	}
}

// WithMaxFrame sets the per-frame delta cap.
func WithMaxFrame(limit time.Duration) Option {
	return func(d *Driver) {
		if limit > 0 {
			d.maxFrame = limit
		}
	}
}

func WithLogger(l *log.Logger) Option {
	return func(d *Driver) {
		d.logger = l
	}
}

// New creates a stopped driver.
func New(session *engine.Session, source *input.Source, opts ...Option) *Driver {
	d := &Driver{
		session:  session,
		source:   source,
		step:     time.Second / DefaultTickRate,
		maxFrame: DefaultMaxFrame,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = log.New(io.Discard)
	}
	return d
}

// Start begins scheduling. An idle session is started; a running one
// resumes where it stopped. The returned generation must accompany every
// frame callback scheduled from now on.
func (d *Driver) Start(now time.Time) (uint64, error) {
	if d.session.State() == engine.StateIdle {
		if err := d.session.Start(); err != nil {
			return 0, err
		}
	}
	d.running = true
	d.gen++
	d.acc = 0
	d.last = now
	d.logger.Debug("driver started", "game", d.session.GameID(), "gen", d.gen)
	return d.gen, nil
}

// Stop cancels scheduling. Callbacks already in flight carry a stale
// generation and are discarded by Frame. The session is left as is.
func (d *Driver) Stop() {
	if !d.running {
		return
	}
	d.running = false
	d.gen++
	d.logger.Debug("driver stopped", "game", d.session.GameID(), "gen", d.gen)
}

// Restart begins a fresh run after game over and resumes scheduling.
func (d *Driver) Restart(now time.Time) (uint64, error) {
	if err := d.session.Restart(); err != nil {
		return 0, err
	}
	d.source.Reset()
	d.running = false
	return d.Start(now)
}

// Abandon stops scheduling and leaves the run without recording it.
func (d *Driver) Abandon() {
	d.Stop()
	d.session.Abandon()
}

// Frame handles one frame callback. It converts the wall-clock time since
// the previous callback into zero or more fixed ticks, sampling input once
// per tick. A callback whose generation is stale, or that arrives while
// stopped, is ignored and reports false.
func (d *Driver) Frame(gen uint64, now time.Time) (Frame, bool) {
	if !d.running || gen != d.gen {
		return Frame{}, false
	}

	delta := now.Sub(d.last)
	d.last = now
	if delta < 0 {
		delta = 0
	}
	if delta > d.maxFrame {
		delta = d.maxFrame
	}
	d.acc += delta

	var events []engine.GameEvent
	ticks := 0
	dt := d.step.Seconds()
	for d.acc >= d.step && d.session.State() == engine.StateRunning {
		res := d.session.Tick(dt, d.source.Sample())
		events = append(events, res.Events...)
		d.acc -= d.step
		ticks++
	}
	if d.session.State() != engine.StateRunning {
		d.acc = 0
	}

	f := d.Snapshot()
	f.Events = events
	f.Ticks = ticks
	f.Alpha = float64(d.acc) / float64(d.step)
	return f, true
}

// Advance runs exactly n ticks regardless of wall-clock time. Headless
// hosts and tests use it; it does nothing while stopped.
func (d *Driver) Advance(n int) Frame {
	if !d.running {
		return d.Snapshot()
	}
	var events []engine.GameEvent
	ticks := 0
	dt := d.step.Seconds()
	for ; ticks < n && d.session.State() == engine.StateRunning; ticks++ {
		res := d.session.Tick(dt, d.source.Sample())
		events = append(events, res.Events...)
	}
	f := d.Snapshot()
	f.Events = events
	f.Ticks = ticks
	return f
}

// Snapshot returns the current render view without advancing time.
func (d *Driver) Snapshot() Frame {
	return Frame{
		Sprites:    d.session.Sprites(),
		Status:     d.session.Status(),
		Generation: d.gen,
	}
}

// Run drives the session from a time.Ticker at fps frames per second,
// calling render after every frame, until the game ends or ctx is done.
func (d *Driver) Run(ctx context.Context, fps int, render func(Frame)) error {
	if fps <= 0 {
		fps = DefaultTickRate
	}
	gen, err := d.Start(time.Now())
	if err != nil {
		return err
	}
	defer d.Stop()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			f, ok := d.Frame(gen, now)
			if !ok {
				return nil
			}
			if render != nil {
				render(f)
			}
			if f.Status.State == engine.StateOver {
				return nil
			}
		}
	}
}

func (d *Driver) Running() bool { return d.running }

// Generation returns the token current callbacks must carry.
func (d *Driver) Generation() uint64 { return d.gen }

func (d *Driver) Session() *engine.Session { return d.session }

func (d *Driver) Source() *input.Source { return d.source }

// TickDuration returns the fixed simulation step.
func (d *Driver) TickDuration() time.Duration { return d.step }
