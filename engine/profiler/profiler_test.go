//go:build profile

package profiler

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureWritesBalancedProfile(t *testing.T) {
	Init(64)
	t.Cleanup(func() { rec = nil })

	endFrame := Start("frame")
	Start("sprite")()
	endText := Start("text")
	endText()
	endFrame()
	Start("dangling")

	path, err := Capture(t.TempDir())
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc ssFile
	require.NoError(t, json.Unmarshal(b, &doc))

	require.Len(t, doc.Profiles, 1)
	var names []string
	for _, f := range doc.Shared.Frames {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"frame", "sprite", "text", "dangling"}, names)

	var types []string
	depth := 0
	for _, e := range doc.Profiles[0].Events {
		types = append(types, e.Type)
		if e.Type == "O" {
			depth++
		} else {
			depth--
		}
		assert.GreaterOrEqual(t, depth, 0)
	}
	assert.Equal(t, 0, depth)
	assert.Equal(t, []string{"O", "O", "C", "O", "C", "C", "O", "C"}, types)
}

func TestRingDropsOrphanedCloses(t *testing.T) {
	Init(3)
	t.Cleanup(func() { rec = nil })

	end := Start("a") // falls out of the ring
	Start("b")()
	end()

	evs, names := rec.snapshot()
	require.Len(t, evs, 3)
	doc, err := speedscope(evs, names)
	require.NoError(t, err)
	assert.Len(t, doc.Profiles[0].Events, 2)
}

func TestCaptureWithoutEvents(t *testing.T) {
	rec = nil
	_, err := Capture(t.TempDir())
	assert.ErrorIs(t, err, ErrNoEvents)
}
