package core

import (
	"log/slog"
	"runtime"
	"time"
)

// App is the game side of the loop.
type App interface {
	Update(in *Input)
}

// Loop runs App at a fixed tick.
type Loop struct {
	// Now is the wall clock; time.Now when nil.
	Now func() time.Time
}

// Run pumps window events into in and, whenever at least one Tick of wall
// time has passed since the previous update, advances simulated time by
// exactly one Tick and calls app.Update. Between ticks it spins. It returns
// once in.QuitRequested is set or the window wants to close.
//
// Run must be called from the thread that owns the window's context.
func (l *Loop) Run(win Window, in *Input, app App) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	now := l.Now
	if now == nil {
		now = time.Now
	}
	win.SetEventCallback(in.Handle)

	last := now()
	for {
		win.PollEvents()
		if in.QuitRequested || win.ShouldClose() {
			break
		}

		t := now()
		if t.Sub(last) < Tick {
			continue
		}
		last = t

		in.advance()
		app.Update(in)
		in.EndFrame()
	}
	slog.Info("loop exit", "ticks", in.Ticks(), "elapsed", in.ElapsedSeconds())
}
