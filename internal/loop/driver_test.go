package loop

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/input"
	"github.com/vovakirdan/arcade-engine/internal/storage"
)

// recorder is a profile that records what its input hook sees.
type recorder struct {
	calls int
	jumps int
}

func (p *recorder) profile(lives int) *engine.Profile {
	return &engine.Profile{
		ID:     "recorder",
		Bounds: core.NewRect(0, 0, 40, 20),
		Lives:  lives,
		Rules:  engine.DefaultRules(),
		Setup: func(w *engine.World) {
			w.Spawn(core.Entity{Kind: core.KindPlayer, Pos: core.V(20, 10), Shape: core.Box(1, 1)})
		},
		ApplyInput: func(w *engine.World, pl *core.Entity, in core.InputSnapshot) {
			p.calls++
			for _, a := range in.Edges() {
				if a == core.ActionJump {
					p.jumps++
				}
			}
		},
	}
}

// deadly ends every run on its first tick.
func deadly() *engine.Profile {
	return &engine.Profile{
		ID:     "deadly",
		Bounds: core.NewRect(0, 0, 40, 20),
		Lives:  1,
		Rules:  engine.DefaultRules(),
		Setup: func(w *engine.World) {
			w.Spawn(core.Entity{Kind: core.KindPlayer, Pos: core.V(20, 10), Shape: core.Box(1, 1)})
			w.Spawn(core.Entity{Kind: core.KindObstacle, Pos: core.V(20, 10), Shape: core.Box(1, 1)})
		},
	}
}

func newDriver(p *engine.Profile, opts ...Option) *Driver {
	return New(engine.NewSession(p, storage.NewMemory()), input.NewSource(), opts...)
}

func TestFrameAccumulatesFixedTicks(t *testing.T) {
	rec := &recorder{}
	d := newDriver(rec.profile(3))
	step := d.TickDuration()
	t0 := time.Unix(1000, 0)

	gen, err := d.Start(t0)
	require.NoError(t, err)

	f, ok := d.Frame(gen, t0.Add(2*step+step/2))
	require.True(t, ok)
	assert.Equal(t, 2, f.Ticks)
	assert.InDelta(t, 0.5, f.Alpha, 0.01)

	f, _ = d.Frame(gen, t0.Add(2*step+step/2+step/4))
	assert.Equal(t, 0, f.Ticks, "less than a tick of time must not step")

	f, _ = d.Frame(gen, t0.Add(3*step))
	assert.Equal(t, 1, f.Ticks)
	assert.Equal(t, uint64(3), f.Status.Tick)
	assert.Equal(t, 3, rec.calls)
}

func TestInputSampledOncePerTick(t *testing.T) {
	rec := &recorder{}
	d := newDriver(rec.profile(3))
	step := d.TickDuration()
	t0 := time.Unix(1000, 0)
	gen, _ := d.Start(t0)

	d.Source().Tap()
	d.Frame(gen, t0.Add(4*step))

	assert.Equal(t, 4, rec.calls)
	assert.Equal(t, 1, rec.jumps, "one tap must be seen by exactly one tick")
}

func TestFrameDeltaIsCapped(t *testing.T) {
	rec := &recorder{}
	d := newDriver(rec.profile(3), WithTickRate(100), WithMaxFrame(100*time.Millisecond))
	t0 := time.Unix(1000, 0)
	gen, _ := d.Start(t0)

	f, ok := d.Frame(gen, t0.Add(10*time.Second))

	require.True(t, ok)
	assert.Equal(t, 10, f.Ticks)
}

func TestTickRateIsClamped(t *testing.T) {
	tests := []struct {
		tps  int
		want time.Duration
	}{
		{0, time.Second / DefaultTickRate},
		{-5, time.Second / DefaultTickRate},
		{10, time.Second / MinTickRate},
		{240, time.Second / 240},
		{2_000_000_000, time.Second / MaxTickRate},
	}
	for _, tt := range tests {
		d := newDriver(deadly(), WithTickRate(tt.tps))
		assert.Equal(t, tt.want, d.TickDuration(), "tps %d", tt.tps)
	}
}

func TestHugeTickRateStillFinishesFrames(t *testing.T) {
	rec := &recorder{}
	d := newDriver(rec.profile(3), WithTickRate(2_000_000_000))
	t0 := time.Unix(1000, 0)
	gen, err := d.Start(t0)
	require.NoError(t, err)

	f, ok := d.Frame(gen, t0.Add(16*time.Millisecond))

	require.True(t, ok)
	assert.Equal(t, 16, f.Ticks)
}

func TestValidateTickRate(t *testing.T) {
	assert.NoError(t, ValidateTickRate(MinTickRate))
	assert.NoError(t, ValidateTickRate(60))
	assert.NoError(t, ValidateTickRate(MaxTickRate))
	assert.Error(t, ValidateTickRate(0))
	assert.Error(t, ValidateTickRate(MinTickRate-1))
	assert.Error(t, ValidateTickRate(MaxTickRate+1))
}

func TestStopDiscardsPendingCallbacks(t *testing.T) {
	rec := &recorder{}
	d := newDriver(rec.profile(3))
	step := d.TickDuration()
	t0 := time.Unix(1000, 0)
	gen, _ := d.Start(t0)
	d.Frame(gen, t0.Add(step))

	d.Stop()
	_, ok := d.Frame(gen, t0.Add(5*step))
	assert.False(t, ok, "callback scheduled before stop must not tick")
	assert.Equal(t, 1, rec.calls)
	assert.Equal(t, engine.StateRunning, d.Session().State(), "stop leaves the session alone")

	// Resuming hands out a new token; the old one stays dead.
	t1 := t0.Add(time.Minute)
	gen2, err := d.Start(t1)
	require.NoError(t, err)
	assert.NotEqual(t, gen, gen2)

	_, ok = d.Frame(gen, t1.Add(step))
	assert.False(t, ok)
	f, ok := d.Frame(gen2, t1.Add(step))
	require.True(t, ok)
	assert.Equal(t, 1, f.Ticks, "time spent stopped is not caught up")
}

func TestFrameStopsTickingAtGameOver(t *testing.T) {
	d := newDriver(deadly())
	step := d.TickDuration()
	t0 := time.Unix(1000, 0)
	gen, _ := d.Start(t0)

	f, ok := d.Frame(gen, t0.Add(5*step))

	require.True(t, ok)
	assert.Equal(t, 1, f.Ticks)
	assert.Equal(t, engine.StateOver, f.Status.State)
	require.Len(t, f.Events, 1)
	assert.Equal(t, engine.EventPlayerHit, f.Events[0].Kind)
}

func TestRestartAfterGameOver(t *testing.T) {
	d := newDriver(deadly())
	t0 := time.Unix(1000, 0)

	_, err := d.Restart(t0)
	assert.ErrorIs(t, err, engine.ErrNotOver)

	d.Start(t0)
	d.Advance(1)
	require.Equal(t, engine.StateOver, d.Session().State())

	gen, err := d.Restart(t0)
	require.NoError(t, err)
	assert.Equal(t, d.Generation(), gen)
	assert.Equal(t, engine.StateRunning, d.Session().State())
	assert.Equal(t, uint64(0), d.Snapshot().Status.Tick)
}

func TestAbandonReturnsToIdle(t *testing.T) {
	rec := &recorder{}
	d := newDriver(rec.profile(3))
	d.Start(time.Unix(1000, 0))
	d.Advance(3)

	d.Abandon()

	assert.False(t, d.Running())
	assert.Equal(t, engine.StateIdle, d.Session().State())
}

func TestAdvanceWhileStoppedDoesNothing(t *testing.T) {
	rec := &recorder{}
	d := newDriver(rec.profile(3))

	f := d.Advance(5)

	assert.Equal(t, 0, f.Ticks)
	assert.Equal(t, 0, rec.calls)
}

func TestRunUntilContextDone(t *testing.T) {
	rec := &recorder{}
	d := newDriver(rec.profile(3))
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	frames := 0
	err := d.Run(ctx, 200, func(Frame) { frames++ })

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Positive(t, frames)
	assert.False(t, d.Running())
}

func TestRunReturnsAtGameOver(t *testing.T) {
	d := newDriver(deadly())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var last Frame
	err := d.Run(ctx, 200, func(f Frame) { last = f })

	require.NoError(t, err)
	assert.Equal(t, engine.StateOver, last.Status.State)
}
