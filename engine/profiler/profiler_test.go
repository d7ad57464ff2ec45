package profiler

import (
	"bytes"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-spheres/engine/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestProfiler(out *bytes.Buffer, clock *fakeClock) *Profiler {
	p := NewProfiler(logging.NewLogger("profiler", false, out, out), time.Second)
	p.now = clock.now
	p.lastTime = clock.t
	return p
}

func TestTick_ReportsAfterInterval(t *testing.T) {
	var out bytes.Buffer
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := newTestProfiler(&out, clock)

	for range 59 {
		clock.t = clock.t.Add(10 * time.Millisecond)
		require.False(t, p.Tick())
	}
	assert.Empty(t, out.String())

	clock.t = time.Unix(2, 0)
	require.True(t, p.Tick())
	assert.InDelta(t, 30.0, p.FPS(), 1e-9)
	assert.Contains(t, out.String(), "FPS: 30.00")
	assert.Contains(t, out.String(), "[profiler] INFO")
}

func TestTick_ResetsCount(t *testing.T) {
	var out bytes.Buffer
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := newTestProfiler(&out, clock)

	clock.t = clock.t.Add(time.Second)
	require.True(t, p.Tick())
	assert.InDelta(t, 1.0, p.FPS(), 1e-9)

	clock.t = clock.t.Add(500 * time.Millisecond)
	assert.False(t, p.Tick())
}

func TestNewProfiler_DefaultInterval(t *testing.T) {
	p := NewProfiler(nil, 0)
	assert.Equal(t, DefaultInterval, p.updateInterval)
	assert.Zero(t, p.FPS())
}
