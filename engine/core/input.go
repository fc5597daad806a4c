package core

import (
	"fmt"
	"time"
)

// Key is a logical key. Platforms map physical keys onto this set.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyJump
	KeyInteract
	KeyDebug
	KeyMenu

	KeyCount
)

var keyNames = [KeyCount]string{"Up", "Down", "Left", "Right", "Jump", "Interact", "Debug", "Menu"}

func (k Key) String() string {
	if k < 0 || k >= KeyCount {
		return fmt.Sprintf("Key(%d)", int(k))
	}
	return keyNames[k]
}

// TickRate is the number of simulation steps per second.
const TickRate = 60

// Tick is the wall-clock interval the loop waits between steps. It is rounded
// to whole nanoseconds, so simulated time is derived from TickRate instead.
const Tick = time.Second / TickRate

// Input is the per-tick snapshot the game reads: key state for this tick and
// the previous one, simulated time and the window size. The game may set
// QuitRequested; the loop stops before the next tick.
type Input struct {
	curr, prev [KeyCount]bool
	ticks      int64

	Width, Height float32
	QuitRequested bool
}

func NewInput(w, h int) *Input {
	return &Input{Width: float32(w), Height: float32(h)}
}

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		if e.Key >= 0 && e.Key < KeyCount {
			in.curr[e.Key] = e.Down
		}
	case EventResize:
		if e.W > 0 && e.H > 0 {
			in.Width, in.Height = float32(e.W), float32(e.H)
		}
	case EventCloseRequested:
		in.QuitRequested = true
	}
}

func (in *Input) IsKeyDownCurr(k Key) bool { return in.curr[k] }
func (in *Input) IsKeyDownPrev(k Key) bool { return in.prev[k] }

// IsKeyJustPressed reports a key that is down this tick and was up last tick.
func (in *Input) IsKeyJustPressed(k Key) bool  { return in.curr[k] && !in.prev[k] }
func (in *Input) IsKeyJustReleased(k Key) bool { return !in.curr[k] && in.prev[k] }

// DT is the fixed frame delta in seconds.
func (in *Input) DT() float32 { return 1.0 / TickRate }

// ElapsedSeconds is simulated time: the number of ticks run so far divided by
// TickRate, independent of wall-clock jitter.
func (in *Input) ElapsedSeconds() float64 { return float64(in.ticks) / TickRate }

func (in *Input) Ticks() int64 { return in.ticks }

// advance starts a new tick.
func (in *Input) advance() { in.ticks++ }

// EndFrame makes this tick's keys the previous keys.
func (in *Input) EndFrame() { in.prev = in.curr }
