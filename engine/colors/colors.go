package colors

import "github.com/hubastard/oneroom/engine/linalg"

var (
	Orange = linalg.Color4{1, 0.5, 0, 1}
	Fern   = RGB8(124, 186, 91)
)

// RGB8 converts 8-bit channels to an opaque colour.
func RGB8(r, g, b uint8) linalg.Color4 {
	return linalg.Color4{float32(r) / 255, float32(g) / 255, float32(b) / 255, 1}
}
