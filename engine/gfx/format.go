// Package gfx is the backend-agnostic half of the graphics device layer: the
// format enumeration, vertex layouts, fixed pipeline-state descriptors and
// the Device contract every backend implements.
package gfx

import "fmt"

// Format is the closed set of pixel, vertex and index element formats.
type Format int

const (
	FormatRGB32Float Format = iota // 3 x float32 (vertex)
	FormatRG32Float                // 2 x float32 (vertex)
	FormatR16Uint                  // 16-bit unsigned index
	FormatRGBA8Unorm               // 4 x 8-bit unorm (texture)
	FormatR8Unorm                  // 1 x 8-bit unorm (texture)

	// FormatCount bounds the enumeration; it is not a valid format.
	FormatCount
)

// Size returns the byte size of one element of the format.
func (f Format) Size() int {
	switch f {
	case FormatRGB32Float:
		return 12
	case FormatRG32Float:
		return 8
	case FormatR16Uint:
		return 2
	case FormatRGBA8Unorm:
		return 4
	case FormatR8Unorm:
		return 1
	}
	panic(fmt.Sprintf("gfx: unhandled format %d", int(f)))
}

// IsVertex reports whether the format can describe a vertex attribute.
func (f Format) IsVertex() bool {
	return f == FormatRGB32Float || f == FormatRG32Float
}

func (f Format) String() string {
	switch f {
	case FormatRGB32Float:
		return "RGB32Float"
	case FormatRG32Float:
		return "RG32Float"
	case FormatR16Uint:
		return "R16Uint"
	case FormatRGBA8Unorm:
		return "RGBA8Unorm"
	case FormatR8Unorm:
		return "R8Unorm"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}
