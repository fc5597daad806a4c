package glbackend

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/oneroom/engine/gfx"
)

// glFormat is everything GL needs to know about one gfx.Format, whether it
// ends up as a vertex attribute, an index type or a texel.
type glFormat struct {
	components int32  // vertex attribute component count
	xtype      uint32 // component/index/texel type
	normalized bool
	internal   int32  // texture internal format
	pixel      uint32 // texture pixel-transfer format
}

// toGL is total over gfx.Format; an unknown value means the enum grew
// without the backend noticing.
func toGL(f gfx.Format) glFormat {
	switch f {
	case gfx.FormatRGB32Float:
		return glFormat{components: 3, xtype: gl.FLOAT, internal: gl.RGB32F, pixel: gl.RGB}
	case gfx.FormatRG32Float:
		return glFormat{components: 2, xtype: gl.FLOAT, internal: gl.RG32F, pixel: gl.RG}
	case gfx.FormatR16Uint:
		return glFormat{components: 1, xtype: gl.UNSIGNED_SHORT, internal: gl.R16UI, pixel: gl.RED_INTEGER}
	case gfx.FormatRGBA8Unorm:
		return glFormat{components: 4, xtype: gl.UNSIGNED_BYTE, normalized: true, internal: gl.RGBA8, pixel: gl.RGBA}
	case gfx.FormatR8Unorm:
		return glFormat{components: 1, xtype: gl.UNSIGNED_BYTE, normalized: true, internal: gl.R8, pixel: gl.RED}
	}
	panic(fmt.Sprintf("glbackend: unhandled format %v", f))
}

func toGLBlendFactor(f gfx.BlendFactor) uint32 {
	switch f {
	case gfx.BlendZero:
		return gl.ZERO
	case gfx.BlendOne:
		return gl.ONE
	case gfx.BlendSrcAlpha:
		return gl.SRC_ALPHA
	case gfx.BlendInvSrcAlpha:
		return gl.ONE_MINUS_SRC_ALPHA
	}
	panic(fmt.Sprintf("glbackend: unhandled blend factor %d", int(f)))
}

func toGLBlendOp(op gfx.BlendOp) uint32 {
	switch op {
	case gfx.BlendOpAdd:
		return gl.FUNC_ADD
	}
	panic(fmt.Sprintf("glbackend: unhandled blend op %d", int(op)))
}

func toGLAddress(a gfx.AddressMode) int32 {
	switch a {
	case gfx.AddressWrap:
		return gl.REPEAT
	}
	panic(fmt.Sprintf("glbackend: unhandled address mode %d", int(a)))
}

// toGLFilter returns the min and mag filters.
func toGLFilter(f gfx.Filter) (minf, magf int32) {
	switch f {
	case gfx.FilterLinear:
		return gl.LINEAR_MIPMAP_LINEAR, gl.LINEAR
	}
	panic(fmt.Sprintf("glbackend: unhandled filter %d", int(f)))
}
