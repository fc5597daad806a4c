package glbackend

import (
	"strings"
	"testing"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/oneroom/engine/gfx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToGLCoversEveryFormat(t *testing.T) {
	for f := gfx.Format(0); f < gfx.FormatCount; f++ {
		assert.NotPanics(t, func() { toGL(f) }, "format %v", f)
	}
	assert.Panics(t, func() { toGL(gfx.FormatCount) })
}

func TestToGLVertexFormats(t *testing.T) {
	pos := toGL(gfx.FormatRGB32Float)
	assert.EqualValues(t, 3, pos.components)
	assert.EqualValues(t, gl.FLOAT, pos.xtype)
	assert.False(t, pos.normalized)

	uv := toGL(gfx.FormatRG32Float)
	assert.EqualValues(t, 2, uv.components)

	assert.EqualValues(t, gl.UNSIGNED_SHORT, toGL(gfx.FormatR16Uint).xtype)
	assert.EqualValues(t, gl.R8, toGL(gfx.FormatR8Unorm).internal)
	assert.EqualValues(t, gl.RGBA8, toGL(gfx.FormatRGBA8Unorm).internal)
}

func TestFixedStatesTranslate(t *testing.T) {
	b := gfx.AlphaBlend
	assert.EqualValues(t, gl.SRC_ALPHA, toGLBlendFactor(b.SrcColor))
	assert.EqualValues(t, gl.ONE_MINUS_SRC_ALPHA, toGLBlendFactor(b.DstColor))
	assert.EqualValues(t, gl.ZERO, toGLBlendFactor(b.SrcAlpha))
	assert.EqualValues(t, gl.ONE, toGLBlendFactor(b.DstAlpha))
	assert.EqualValues(t, gl.FUNC_ADD, toGLBlendOp(b.ColorOp))

	s := gfx.LinearWrapSampler
	minf, magf := toGLFilter(s.Filter)
	assert.EqualValues(t, gl.LINEAR_MIPMAP_LINEAR, minf)
	assert.EqualValues(t, gl.LINEAR, magf)
	assert.EqualValues(t, gl.REPEAT, toGLAddress(s.AddressU))

	assert.Panics(t, func() { toGLBlendFactor(gfx.BlendFactor(99)) })
}

func TestStageSource(t *testing.T) {
	src := "#version 450\nvoid vsmain() {}\nvoid psmain() {}\n"

	vs := stageSource(src, vertexStage)
	require.True(t, strings.HasSuffix(vs, "\x00"))
	assert.True(t, strings.HasPrefix(vs, "#version 330 core\n#define VERTEX_STAGE 1\n#define vsmain main\n#line 1\n"))
	assert.NotContains(t, vs, "#version 450")
	assert.Equal(t, 1, strings.Count(vs, "#version"))
	assert.Contains(t, vs, "void psmain() {}")

	ps := stageSource(src, pixelStage)
	assert.Contains(t, ps, "#define PIXEL_STAGE 1\n#define psmain main\n")
	assert.NotContains(t, ps, "VERTEX_STAGE")
}

func TestStageSourceKeepsLineNumbers(t *testing.T) {
	src := "#version 330 core\nline2\nline3"
	out := strings.TrimSuffix(stageSource(src, vertexStage), "\x00")
	body := out[strings.Index(out, "#line 1\n")+len("#line 1\n"):]
	assert.Equal(t, []string{"", "line2", "line3"}, strings.Split(body, "\n"))
}

func TestValidateTexture(t *testing.T) {
	atlas := make([]byte, 400*400)
	assert.NoError(t, validateTexture(atlas, 400, 400, gfx.FormatR8Unorm, 400))

	rgba := make([]byte, 4*16*8)
	assert.NoError(t, validateTexture(rgba, 16, 8, gfx.FormatRGBA8Unorm, 64))
	assert.Error(t, validateTexture(rgba, 16, 8, gfx.FormatRGBA8Unorm, 60), "stride shorter than a row")
	assert.Error(t, validateTexture(rgba, 16, 8, gfx.FormatRGBA8Unorm, 66), "stride not texel aligned")
	assert.Error(t, validateTexture(rgba[:len(rgba)-1], 16, 8, gfx.FormatRGBA8Unorm, 64))
	assert.Error(t, validateTexture(nil, 0, 8, gfx.FormatRGBA8Unorm, 0))

	// padded rows: the slice is stride*h, final row included
	padded := make([]byte, 80*8)
	assert.NoError(t, validateTexture(padded, 16, 8, gfx.FormatRGBA8Unorm, 80))
	assert.Error(t, validateTexture(padded[:80*7+64], 16, 8, gfx.FormatRGBA8Unorm, 80), "last row short of the slice pitch")
}

func TestSemanticLocationsAreDistinct(t *testing.T) {
	seen := map[uint32]string{}
	for semantic, loc := range semanticLocations {
		prev, dup := seen[loc]
		assert.False(t, dup, "%s and %s share location %d", semantic, prev, loc)
		seen[loc] = semantic
	}
	assert.EqualValues(t, 0, semanticLocations["POSITION"])
	assert.EqualValues(t, 1, semanticLocations["TEXCOORD"])
}

func TestCheckLocation(t *testing.T) {
	assert.NoError(t, checkLocation("POSITION", 0))
	assert.NoError(t, checkLocation("TEXCOORD", 1))
	assert.Error(t, checkLocation("TEXCOORD", 0), "pinned to another semantic's slot")
	assert.NoError(t, checkLocation("BLENDWEIGHT", 7), "unknown semantics keep the linker's choice")
}
