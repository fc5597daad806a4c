package scene

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/hubastard/oneroom/engine/core"
	"github.com/hubastard/oneroom/engine/linalg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type held map[core.Key]bool

func (h held) IsKeyDownCurr(k core.Key) bool { return h[k] }

const dt = float32(1) / 60

func TestOpposingKeysCancel(t *testing.T) {
	for _, keys := range []held{
		{core.KeyUp: true, core.KeyDown: true},
		{core.KeyLeft: true, core.KeyRight: true},
		{core.KeyUp: true, core.KeyDown: true, core.KeyLeft: true, core.KeyRight: true},
	} {
		dir := InputDirection(keys)
		assert.True(t, dir.IsZero(), "%v", keys)

		// at rest, no acceleration and nothing moves
		var c Character
		c.Step(dir, dt)
		assert.Equal(t, Character{}, c)
	}
}

func TestDiagonalIsNotNormalised(t *testing.T) {
	dir := InputDirection(held{core.KeyUp: true, core.KeyRight: true})
	assert.Equal(t, linalg.Vec2(1, 1), dir)
}

func TestSpeedNeverExceedsMax(t *testing.T) {
	inputs := []held{
		{core.KeyRight: true},
		{core.KeyRight: true, core.KeyUp: true},
		{core.KeyLeft: true, core.KeyDown: true},
		{},
	}
	c := Character{Pos: linalg.Vec2(0, 3)}
	for i := 0; i < 2000; i++ {
		c.Step(InputDirection(inputs[(i/97)%len(inputs)]), dt)
		require.LessOrEqual(t, c.Vel.Len(), float32(MaxSpeed)+1e-4, "tick %d", i)
	}
}

func TestLargeStepIsClamped(t *testing.T) {
	c := Character{}
	c.Step(linalg.Vec2(1, 0), 10)
	assert.InDelta(t, MaxSpeed*Damping, c.Vel.Len(), 1e-4)
}

func TestBrakingThenDampingWithoutInput(t *testing.T) {
	c := Character{Vel: linalg.Vec2(3, 4)}
	prev := c.Vel.Len()
	braked := 0
	for i := 0; i < 600; i++ {
		before := c.Vel
		c.Step(linalg.Vector2{}, dt)
		speed := c.Vel.Len()
		require.Less(t, speed, prev, "tick %d", i)

		if before.Len() <= DecelCutoff {
			// below the cutoff only the damping applies
			assert.InDelta(t, before.X()*Damping, c.Vel.X(), 1e-7)
			assert.InDelta(t, before.Y()*Damping, c.Vel.Y(), 1e-7)
		} else {
			braked++
		}
		prev = speed
	}
	assert.Positive(t, braked)
	assert.Less(t, c.Vel.Len(), float32(DecelCutoff))
}

func TestWorldMapsOriginToPosition(t *testing.T) {
	for _, p := range []linalg.Vector2{{0, 0}, {0, 3}, {-7.25, 12.5}, {1e3, -1e-3}} {
		for _, s := range []float32{0.5, 4, 5.05} {
			o := World(p, 0, s).MulVec(linalg.Vec4(0, 0, 0, 1))
			assert.Equal(t, linalg.Vec4(p.X(), p.Y(), 0, 1), o)
		}
	}
}

func TestWorldScalesCorner(t *testing.T) {
	v := World(linalg.Vec2(3, 3), 0, 4).MulVec(linalg.Vec4(1, -1, 0, 1))
	assert.Equal(t, linalg.Vec4(7, -1, 0, 1), v)
}

func TestRadius(t *testing.T) {
	assert.Equal(t, float32(5), Radius(0))
	assert.InDelta(t, 5.05, Radius(math.Pi/2), 1e-6)
	for _, tt := range []float64{0.3, 10, 1000} {
		r := Radius(tt)
		assert.True(t, r >= 4.95 && r <= 5.05, "radius %v at %v", r, tt)
	}
}

func TestCameraView(t *testing.T) {
	cam := NewCamera2D(10)
	view := cam.View(1000.0 / 500.0)

	// the right edge of a 10-unit-wide view lands on clip x = 1 and the top
	// of a 5-unit-tall view on clip y = 1
	v := view.MulVec(linalg.Vec4(5, 2.5, 0, 1))
	assert.InDelta(t, 0.5, v.X(), 1e-6)
	assert.InDelta(t, 0.5, v.Y(), 1e-6)
	assert.Equal(t, float32(1), v.W())

	edge := view.MulVec(linalg.Vec4(10, 5, 0, 1))
	assert.InDelta(t, 1, edge.X(), 1e-6)
	assert.InDelta(t, 1, edge.Y(), 1e-6)
}

func TestCameraOffsetAndRotation(t *testing.T) {
	cam := &Camera2D{Width: 10, Pos: linalg.Vec2(2, 1)}
	v := cam.View(1).MulVec(linalg.Vec4(2, 1, 0, 1))
	assert.Equal(t, linalg.Vec4(0, 0, 0, 1), v)

	cam = &Camera2D{Width: 10, Rotation: math32.Pi / 2}
	v = cam.View(1).MulVec(linalg.Vec4(0, 10, 0, 1))
	assert.InDelta(t, 1, v.X(), 1e-6)
	assert.InDelta(t, 0, v.Y(), 1e-6)
}

func TestConstantsLayout(t *testing.T) {
	c := Constants{
		World: linalg.Translate4(3, 4),
		View:  linalg.Identity4(),
		Color: linalg.Color4{0.25, 0.5, 0.75, 1},
		UVMin: linalg.Vec2(0.125, 0.25),
		UVMax: linalg.Vec2(0.5, 0.75),
	}
	b, err := c.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, b, ConstantsSize)

	f := func(off int) float32 {
		return math.Float32frombits(binary.NativeEndian.Uint32(b[off:]))
	}
	assert.Equal(t, float32(3), f(3*4), "world row 0, column 3")
	assert.Equal(t, float32(4), f(7*4), "world row 1, column 3")
	assert.Equal(t, float32(1), f(64), "view[0][0]")
	assert.Equal(t, float32(0.25), f(128))
	assert.Equal(t, float32(1), f(140))
	assert.Equal(t, float32(0.125), f(144))
	assert.Equal(t, float32(0.25), f(148))
	assert.Equal(t, float32(0.5), f(152))
	assert.Equal(t, float32(0.75), f(156))
}

func TestConstantsAppendReusesBuffer(t *testing.T) {
	c := Constants{Color: linalg.Color4{1, 2, 3, 4}}
	buf := make([]byte, 0, ConstantsSize)
	b, err := c.AppendBinary(buf)
	require.NoError(t, err)
	require.Len(t, b, ConstantsSize)
	assert.Same(t, &buf[:1][0], &b[0])

	want, err := c.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, want, b)
}
