// Package scene holds the demo's simulation and transform math: the
// keyboard-driven character, the fixed 2D camera and the per-draw constant
// block layout.
package scene

import (
	"github.com/chewxy/math32"
	"github.com/hubastard/oneroom/engine/core"
	"github.com/hubastard/oneroom/engine/linalg"
)

// Movement tuning, in world units and seconds.
const (
	Acceleration = 30
	Deceleration = 20
	// DecelCutoff is the speed below which releasing the keys stops
	// braking and only damping applies.
	DecelCutoff = 0.1
	MaxSpeed    = 10
	Damping     = 0.99
)

// keyDirections maps each direction key to its unit vector. Opposing keys
// cancel and diagonals are not normalised.
var keyDirections = [...]struct {
	key core.Key
	dir linalg.Vector2
}{
	{core.KeyRight, linalg.Vec2(1, 0)},
	{core.KeyLeft, linalg.Vec2(-1, 0)},
	{core.KeyUp, linalg.Vec2(0, 1)},
	{core.KeyDown, linalg.Vec2(0, -1)},
}

// KeyState is the part of core.Input the simulation reads.
type KeyState interface {
	IsKeyDownCurr(k core.Key) bool
}

// InputDirection sums the directions of the held keys.
func InputDirection(keys KeyState) linalg.Vector2 {
	var dir linalg.Vector2
	for _, kd := range keyDirections {
		if keys.IsKeyDownCurr(kd.key) {
			dir = dir.Add(kd.dir)
		}
	}
	return dir
}

type Character struct {
	Pos linalg.Vector2
	Vel linalg.Vector2
}

// Step integrates one tick of movement towards dir.
func (c *Character) Step(dir linalg.Vector2, dt float32) {
	accel := dir.Scale(Acceleration)

	speed := c.Vel.Len()
	if dir.IsZero() && speed > DecelCutoff {
		accel = accel.Add(c.Vel.Scale(-Deceleration / speed))
	}

	c.Vel = c.Vel.Add(accel.Scale(dt))
	c.Pos = c.Pos.Add(c.Vel.Scale(dt))

	if s := c.Vel.Len(); s > MaxSpeed {
		c.Vel = c.Vel.Scale(MaxSpeed / s)
	}
	c.Vel = c.Vel.Scale(Damping)
}

// Radius is the sprite's half-size at simulated time t; it breathes slowly.
func Radius(t float64) float32 {
	return 5 + 0.05*math32.Sin(float32(t))
}

// World composes translate(pos) * rotate(rot) * scale(s).
func World(pos linalg.Vector2, rot, s float32) linalg.Matrix4 {
	rs := linalg.Rotate2(rot).Mul(linalg.Scale2(s))
	return linalg.Translate4V(pos).Mul(linalg.Matrix4FromMatrix2(rs))
}
