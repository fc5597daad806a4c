package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWindow struct {
	cb     func(Event)
	polls  int
	onPoll func(n int)
	close  bool
}

func (w *fakeWindow) PollEvents() {
	w.polls++
	if w.onPoll != nil {
		w.onPoll(w.polls)
	}
}
func (w *fakeWindow) SwapBuffers()                    {}
func (w *fakeWindow) ShouldClose() bool               { return w.close }
func (w *fakeWindow) FramebufferSize() (int, int)     { return 1000, 500 }
func (w *fakeWindow) SetEventCallback(cb func(Event)) { w.cb = cb }
func (w *fakeWindow) Destroy()                        {}

type appFunc func(in *Input)

func (f appFunc) Update(in *Input) { f(in) }

// jitterClock advances by a repeating pattern of steps on every read.
type jitterClock struct {
	t     time.Time
	steps []time.Duration
	i     int
}

func (c *jitterClock) now() time.Time {
	c.t = c.t.Add(c.steps[c.i%len(c.steps)])
	c.i++
	return c.t
}

func TestKeyEdges(t *testing.T) {
	in := NewInput(1000, 500)
	in.Handle(EventKey{Key: KeyJump, Down: true})
	assert.True(t, in.IsKeyDownCurr(KeyJump))
	assert.False(t, in.IsKeyDownPrev(KeyJump))
	assert.True(t, in.IsKeyJustPressed(KeyJump))
	assert.False(t, in.IsKeyJustReleased(KeyJump))

	in.EndFrame()
	assert.True(t, in.IsKeyDownPrev(KeyJump))
	assert.False(t, in.IsKeyJustPressed(KeyJump), "held is not a fresh press")

	in.Handle(EventKey{Key: KeyJump, Down: false})
	assert.True(t, in.IsKeyJustReleased(KeyJump))
	assert.False(t, in.IsKeyDownCurr(KeyJump))
}

func TestHandleIgnoresUnknownKeysAndBadSizes(t *testing.T) {
	in := NewInput(1000, 500)
	assert.NotPanics(t, func() { in.Handle(EventKey{Key: KeyCount, Down: true}) })
	in.Handle(EventResize{W: 0, H: 0})
	assert.Equal(t, float32(1000), in.Width)
	in.Handle(EventResize{W: 800, H: 600})
	assert.Equal(t, float32(800), in.Width)
	assert.Equal(t, float32(600), in.Height)
}

func TestCloseRequestSetsQuit(t *testing.T) {
	in := NewInput(1, 1)
	in.Handle(EventCloseRequested{})
	assert.True(t, in.QuitRequested)
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "Interact", KeyInteract.String())
	assert.Equal(t, "Key(42)", Key(42).String())
}

func TestLoopElapsedIsTickCount(t *testing.T) {
	clock := &jitterClock{
		t:     time.Unix(0, 0),
		steps: []time.Duration{time.Millisecond, 7 * time.Millisecond, 23 * time.Millisecond, 3 * time.Millisecond},
	}
	in := NewInput(1000, 500)
	win := &fakeWindow{}

	const n = 100
	updates := 0
	var elapsed []float64
	(&Loop{Now: clock.now}).Run(win, in, appFunc(func(in *Input) {
		updates++
		elapsed = append(elapsed, in.ElapsedSeconds())
		if updates == n {
			in.QuitRequested = true
		}
	}))

	require.Equal(t, n, updates)
	assert.Equal(t, float64(n)/TickRate, in.ElapsedSeconds())
	assert.Equal(t, 1.0/TickRate, elapsed[0])
	assert.Equal(t, 1.0, elapsed[TickRate-1], "one second after sixty ticks")
	for i := 1; i < len(elapsed); i++ {
		assert.InDelta(t, 1.0/TickRate, elapsed[i]-elapsed[i-1], 1e-12)
	}
	assert.Greater(t, win.polls, n, "the loop spins between ticks")
}

func TestElapsedDoesNotDrift(t *testing.T) {
	in := NewInput(1, 1)
	for range TickRate {
		in.advance()
	}
	assert.Equal(t, 1.0, in.ElapsedSeconds())
	assert.Equal(t, float32(1.0/60), in.DT())

	for range TickRate * 3599 {
		in.advance()
	}
	assert.Equal(t, 3600.0, in.ElapsedSeconds())
}

func TestLoopGatesOnWallClock(t *testing.T) {
	// the clock moves 1ms per read; a tick needs about 17 reads
	clock := &jitterClock{t: time.Unix(0, 0), steps: []time.Duration{time.Millisecond}}
	in := NewInput(1, 1)
	win := &fakeWindow{}
	win.onPoll = func(n int) {
		if n == 200 {
			win.close = true
		}
	}
	updates := 0
	(&Loop{Now: clock.now}).Run(win, in, appFunc(func(*Input) { updates++ }))

	assert.InDelta(t, 200/17, updates, 1)
}

func TestLoopRoutesEventsAndCopiesKeys(t *testing.T) {
	clock := &jitterClock{t: time.Unix(0, 0), steps: []time.Duration{Tick}}
	in := NewInput(1, 1)
	win := &fakeWindow{}
	win.onPoll = func(n int) {
		if n == 1 {
			win.cb(EventKey{Key: KeyInteract, Down: true})
		}
	}

	var pressed []bool
	(&Loop{Now: clock.now}).Run(win, in, appFunc(func(in *Input) {
		pressed = append(pressed, in.IsKeyJustPressed(KeyInteract))
		if len(pressed) == 3 {
			in.QuitRequested = true
		}
	}))
	assert.Equal(t, []bool{true, false, false}, pressed)
	assert.True(t, in.IsKeyDownPrev(KeyInteract))
}

func TestLoopStopsOnQuitBeforeUpdating(t *testing.T) {
	in := NewInput(1, 1)
	in.QuitRequested = true
	clock := &jitterClock{t: time.Unix(0, 0), steps: []time.Duration{time.Second}}
	called := false
	(&Loop{Now: clock.now}).Run(&fakeWindow{}, in, appFunc(func(*Input) { called = true }))
	assert.False(t, called)
}
