package scene

import "github.com/hubastard/oneroom/engine/linalg"

// Camera2D is an orthographic 2D camera that always shows Width world units
// horizontally; the visible height follows the aspect ratio.
type Camera2D struct {
	Width    float32
	Pos      linalg.Vector2
	Rotation float32
}

func NewCamera2D(width float32) *Camera2D {
	return &Camera2D{Width: width}
}

// View maps world space to clip space for a viewport with the given aspect
// ratio (width / height): (scale * rotate(-rot)) * translate(-pos).
func (c *Camera2D) View(aspect float32) linalg.Matrix4 {
	height := c.Width / aspect
	sr := linalg.ScaleXY2(1/c.Width, 1/height).Mul(linalg.Rotate2(-c.Rotation))
	return linalg.Matrix4FromMatrix2(sr).Mul(linalg.Translate4V(c.Pos.Neg()))
}
