//go:build profile

// Package profiler records nested timing scopes and writes them as a
// speedscope (https://www.speedscope.app) evented profile. Without the
// "profile" build tag every call is a no-op.
package profiler

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const Enabled = true

// DefaultCapacity is the number of scope events kept when Init is given a
// non-positive capacity.
const DefaultCapacity = 1 << 16

var ErrNoEvents = errors.New("profiler: no events recorded")

type event struct {
	at    time.Duration // since the recorder started
	frame int
	open  bool
}

type recorder struct {
	mu     sync.Mutex
	start  time.Time
	events []event // ring
	n      int     // events ever written
	names  []string
	ids    map[string]int
}

var rec *recorder

// Init starts recording, keeping the latest capacity scope events.
func Init(capacity int) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	rec = &recorder{
		start:  time.Now(),
		events: make([]event, capacity),
		ids:    map[string]int{},
	}
}

// Start opens a scope and returns the func that closes it.
func Start(name string) func() {
	r := rec
	if r == nil {
		return func() {}
	}
	id := r.push(name, true)
	return func() { r.pushID(id, false) }
}

func (r *recorder) push(name string, open bool) int {
	r.mu.Lock()
	id, ok := r.ids[name]
	if !ok {
		id = len(r.names)
		r.ids[name] = id
		r.names = append(r.names, name)
	}
	r.mu.Unlock()
	r.pushID(id, open)
	return id
}

func (r *recorder) pushID(id int, open bool) {
	r.mu.Lock()
	r.events[r.n%len(r.events)] = event{at: time.Since(r.start), frame: id, open: open}
	r.n++
	r.mu.Unlock()
}

// snapshot returns the retained events oldest first plus the frame names.
func (r *recorder) snapshot() ([]event, []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	size := min(r.n, len(r.events))
	out := make([]event, 0, size)
	for k := r.n - size; k < r.n; k++ {
		out = append(out, r.events[k%len(r.events)])
	}
	return out, append([]string(nil), r.names...)
}

// Capture writes the retained events to a speedscope file in dir and
// returns its path.
func Capture(dir string) (string, error) {
	if rec == nil {
		return "", ErrNoEvents
	}
	evs, names := rec.snapshot()
	doc, err := speedscope(evs, names)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("oneroom-%s.speedscope.json", time.Now().Format("20060102-150405.000")))
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", fmt.Errorf("profiler: %w", err)
	}
	return path, nil
}

type ssFile struct {
	Schema   string      `json:"$schema"`
	Shared   ssShared    `json:"shared"`
	Profiles []ssProfile `json:"profiles"`
	Name     string      `json:"name,omitempty"`
	Exporter string      `json:"exporter,omitempty"`
}

type ssShared struct {
	Frames []ssFrame `json:"frames"`
}

type ssFrame struct {
	Name string `json:"name"`
}

type ssProfile struct {
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Unit       string    `json:"unit"`
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssEvent struct {
	Type  string `json:"type"` // O or C
	At    int64  `json:"at"`
	Frame int    `json:"frame"`
}

// speedscope converts raw events into a balanced evented profile. Closes
// without a matching open (their open fell out of the ring) are dropped and
// scopes still open at the end are closed at the last timestamp.
func speedscope(evs []event, names []string) (*ssFile, error) {
	if len(evs) == 0 {
		return nil, ErrNoEvents
	}
	base := evs[0].at.Microseconds()
	var (
		out   []ssEvent
		stack []int
		last  int64
	)
	for _, e := range evs {
		at := max(e.at.Microseconds()-base, last)
		if e.open {
			stack = append(stack, e.frame)
		} else {
			if len(stack) == 0 || stack[len(stack)-1] != e.frame {
				continue
			}
			stack = stack[:len(stack)-1]
		}
		typ := "C"
		if e.open {
			typ = "O"
		}
		out = append(out, ssEvent{Type: typ, At: at, Frame: e.frame})
		last = at
	}
	for i := len(stack) - 1; i >= 0; i-- {
		out = append(out, ssEvent{Type: "C", At: last, Frame: stack[i]})
	}
	if len(out) == 0 {
		return nil, ErrNoEvents
	}

	frames := make([]ssFrame, len(names))
	for i, n := range names {
		frames[i] = ssFrame{Name: n}
	}
	return &ssFile{
		Schema: "https://www.speedscope.app/file-format-schema.json",
		Shared: ssShared{Frames: frames},
		Profiles: []ssProfile{{
			Type:     "evented",
			Name:     "oneroom",
			Unit:     "microseconds",
			EndValue: last,
			Events:   out,
		}},
		Name:     "oneroom capture",
		Exporter: "oneroom",
	}, nil
}
