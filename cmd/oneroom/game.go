package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/hubastard/oneroom/engine/assets"
	"github.com/hubastard/oneroom/engine/colors"
	"github.com/hubastard/oneroom/engine/core"
	"github.com/hubastard/oneroom/engine/gfx"
	"github.com/hubastard/oneroom/engine/linalg"
	"github.com/hubastard/oneroom/engine/profiler"
	"github.com/hubastard/oneroom/engine/scene"
	"github.com/hubastard/oneroom/engine/text"
)

const (
	phrase = "AaZz@$"

	atlasSize   = 400
	cameraWidth = 10
	textScale   = 4
)

var (
	clearColor  = colors.Orange
	spriteColor = colors.Fern

	characterStart = linalg.Vec2(0, 3)
	textPosition   = linalg.Vec2(3, 3)
)

// Resources are the CPU-side inputs the game uploads at startup.
type Resources struct {
	Font         *text.Font
	Image        *assets.Image
	SpriteShader string
	TextShader   string

	// CaptureDir receives profiler captures; os.TempDir when empty.
	CaptureDir string
}

// Game draws the character sprite and one glyph of the phrase each tick.
type Game struct {
	dev gfx.Device

	atlas        gfx.Texture
	star         gfx.Texture
	spriteShader gfx.Shader
	textShader   gfx.Shader
	blend        gfx.Blend
	depth        gfx.Depth
	sampler      gfx.Sampler
	layout       gfx.InputLayout
	vb           gfx.VertexBuffer
	ib           gfx.IndexBuffer
	cb           gfx.ConstantBuffer

	// release frees everything created so far, newest first.
	release []func()

	// scratch holds the encoded constants between draws.
	scratch []byte

	chars      [text.NumChars]text.PackedChar
	character  scene.Character
	camera     *scene.Camera2D
	captureDir string

	glyphIndex   int
	glyphUV      bool
	uvMin, uvMax linalg.Vector2
}

var _ core.App = (*Game)(nil)

// NewGame creates every GPU resource the game needs and binds the state
// that stays fixed for the run. On error, whatever was created is freed.
func NewGame(dev gfx.Device, res Resources) (*Game, error) {
	if res.Font == nil || res.Image == nil {
		return nil, errors.New("game: font and image are required")
	}
	g := &Game{
		dev:        dev,
		character:  scene.Character{Pos: characterStart},
		camera:     scene.NewCamera2D(cameraWidth),
		captureDir: res.CaptureDir,
		uvMin:      linalg.Vec2(0, 0),
		uvMax:      linalg.Vec2(1, 1),
	}
	if g.captureDir == "" {
		g.captureDir = os.TempDir()
	}
	ready := false
	defer func() {
		if !ready {
			g.Close()
		}
	}()

	// Font
	atlas, err := text.BuildAtlas(res.Font, atlasSize, atlasSize)
	if err != nil {
		return nil, err
	}
	g.chars = atlas.Chars
	w, h := atlas.Bounds()
	if g.atlas, err = dev.CreateTexture(atlas.Img.Pix, w, h, gfx.FormatR8Unorm, atlas.Stride()); err != nil {
		return nil, fmt.Errorf("font texture: %w", err)
	}
	g.onClose(func() { dev.FreeTexture(g.atlas) })

	// Star
	img := res.Image
	if g.star, err = dev.CreateTexture(img.Pix, img.W, img.H, gfx.FormatRGBA8Unorm, img.Stride()); err != nil {
		return nil, fmt.Errorf("sprite texture: %w", err)
	}
	g.onClose(func() { dev.FreeTexture(g.star) })

	// Pipeline
	if g.spriteShader, err = dev.CreateShader(res.SpriteShader); err != nil {
		return nil, err
	}
	g.onClose(func() { dev.FreeShader(g.spriteShader) })
	if g.textShader, err = dev.CreateShader(res.TextShader); err != nil {
		return nil, err
	}
	g.onClose(func() { dev.FreeShader(g.textShader) })

	if g.blend, err = dev.CreateBlend(); err != nil {
		return nil, err
	}
	g.onClose(func() { dev.FreeBlend(g.blend) })
	if g.depth, err = dev.CreateDepth(); err != nil {
		return nil, err
	}
	g.onClose(func() { dev.FreeDepth(g.depth) })
	if g.sampler, err = dev.CreateSampler(); err != nil {
		return nil, err
	}
	g.onClose(func() { dev.FreeSampler(g.sampler) })

	// Geometry
	layout := quadLayout()
	if g.layout, err = dev.CreateInputLayout(layout, g.spriteShader); err != nil {
		return nil, fmt.Errorf("input layout: %w", err)
	}
	g.onClose(func() { dev.FreeInputLayout(g.layout) })
	if g.vb, err = dev.CreateVertexBuffer(encode(quadVertices), layout.Stride()); err != nil {
		return nil, fmt.Errorf("vertex buffer: %w", err)
	}
	g.onClose(func() { dev.FreeVertexBuffer(g.vb) })
	if g.ib, err = dev.CreateIndexBuffer(encode(quadIndices), gfx.FormatR16Uint, len(quadIndices)); err != nil {
		return nil, fmt.Errorf("index buffer: %w", err)
	}
	g.onClose(func() { dev.FreeIndexBuffer(g.ib) })
	if g.cb, err = dev.CreateConstantBuffer(scene.ConstantsSize); err != nil {
		return nil, fmt.Errorf("constant buffer: %w", err)
	}
	g.onClose(func() { dev.FreeConstantBuffer(g.cb) })

	dev.SetConstantBuffer(g.cb, 0)
	dev.SetIndexBuffer(g.ib)
	dev.SetVertexBuffer(g.vb)
	dev.SetBlend(g.blend)
	dev.SetDepth(g.depth)
	dev.SetSampler(g.sampler, 0)
	dev.SetInputLayout(g.layout)

	ready = true
	slog.Info("game ready", "font_px", atlas.Size, "image", fmt.Sprintf("%dx%d", img.W, img.H), "resources", len(g.release))
	return g, nil
}

func (g *Game) onClose(f func()) { g.release = append(g.release, f) }

// Close frees every resource the game created. Calling it again is a no-op.
func (g *Game) Close() {
	for i := len(g.release) - 1; i >= 0; i-- {
		g.release[i]()
	}
	g.release = nil
}

func (g *Game) Update(in *core.Input) {
	defer profiler.Start("frame")()

	dev := g.dev
	bb := dev.Backbuffer()
	dev.SetRenderTarget(bb)
	dev.Clear(bb, clearColor)
	dev.SetViewport(in.Width, in.Height)

	// Sprite
	dev.SetShader(g.spriteShader)
	dev.SetTexture(g.star, 0)
	consts := scene.Constants{
		Color: spriteColor,
		UVMin: linalg.Vec2(0, 0),
		UVMax: linalg.Vec2(1, 1),
	}
	g.character.Step(scene.InputDirection(in), in.DT())
	consts.World = scene.World(g.character.Pos, 0, scene.Radius(in.ElapsedSeconds()))
	consts.View = g.camera.View(in.Width / in.Height)
	g.draw(&consts)

	// Text
	dev.SetShader(g.textShader)
	dev.SetTexture(g.atlas, 0)
	g.selectGlyph(in)
	consts.UVMin, consts.UVMax = g.uvMin, g.uvMax
	consts.World = linalg.Translate4V(textPosition).Mul(linalg.Matrix4FromMatrix2(linalg.Scale2(textScale)))
	g.draw(&consts)

	dev.Present()

	if in.IsKeyJustPressed(core.KeyDebug) {
		g.capture()
	}
	if in.IsKeyJustPressed(core.KeyMenu) {
		in.QuitRequested = true
	}
}

// selectGlyph picks the glyph at the current index, then applies this
// tick's Interact and Jump presses. The glyph UV rect is only rewritten
// while the toggle is on; otherwise the last one computed is kept.
func (g *Game) selectGlyph(in *core.Input) {
	pc := g.chars[phrase[g.glyphIndex]]

	if in.IsKeyJustPressed(core.KeyInteract) {
		g.glyphIndex = (g.glyphIndex + 1) % len(phrase)
	}
	if in.IsKeyJustPressed(core.KeyJump) {
		g.glyphUV = !g.glyphUV
	}
	if g.glyphUV {
		w, h := g.atlas.Size()
		g.uvMin, g.uvMax = text.UVRect(pc, w, h)
	}
}

func (g *Game) draw(c *scene.Constants) {
	defer profiler.Start("draw")()
	b, err := c.AppendBinary(g.scratch[:0])
	if err != nil {
		panic(err)
	}
	g.scratch = b
	g.dev.SetConstantBufferData(g.cb, b)
	g.dev.Draw(g.ib)
}

func (g *Game) capture() {
	path, err := profiler.Capture(g.captureDir)
	if err != nil {
		slog.Warn("profile capture failed", "err", err)
		return
	}
	slog.Info("profile captured", "path", path)
}
