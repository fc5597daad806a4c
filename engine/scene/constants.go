package scene

import (
	"encoding/binary"

	"github.com/hubastard/oneroom/engine/linalg"
)

// ConstantsSize is the byte size of Constants as the shaders see it.
const ConstantsSize = 160

// Constants is the per-draw block bound at constant-buffer slot 0. Field
// order and sizes must match the Constants uniform block in the shaders:
// world at 0, view at 64, color at 128, uvMin at 144, uvMax at 152.
// Matrices are row-major.
type Constants struct {
	World linalg.Matrix4
	View  linalg.Matrix4
	Color linalg.Color4
	UVMin linalg.Vector2
	UVMax linalg.Vector2
}

// AppendBinary appends c in native byte order to b. Passing the previous
// frame's buffer sliced to zero length reuses its storage.
func (c *Constants) AppendBinary(b []byte) ([]byte, error) {
	return binary.Append(b, binary.NativeEndian, c)
}

func (c *Constants) MarshalBinary() ([]byte, error) {
	return c.AppendBinary(make([]byte, 0, ConstantsSize))
}
