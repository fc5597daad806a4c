// Package core holds the platform-neutral pieces of the run loop: the
// logical key set, the Input snapshot handed to the game each tick, the
// window contract and the fixed-tick loop.
package core

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	FramebufferSize() (int, int)
	SetEventCallback(cb func(Event))
	Destroy()
}

// Event model.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
}

func (EventKey) isEvent() {}

// Config for the engine run.
type Config struct {
	Title  string
	Width  int
	Height int
	VSync  bool
}
