package text

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/hubastard/oneroom/engine/linalg"
)

// Atlas is a packed single-channel glyph atlas for codepoints [0, NumChars).
type Atlas struct {
	Img   *image.Alpha
	Chars [NumChars]PackedChar
	Size  float32 // pixel height the glyphs were rasterised at
}

// BuildAtlas packs f into a w x h atlas at the largest size FindBestSize
// accepts.
func BuildAtlas(f *Font, w, h int) (*Atlas, error) {
	a := &Atlas{Img: image.NewAlpha(image.Rect(0, 0, w, h))}
	size, err := FindBestSize(func(px float32) error {
		return f.Pack(a.Img, px, &a.Chars)
	})
	if err != nil {
		return nil, fmt.Errorf("font atlas %dx%d: %w", w, h, err)
	}
	a.Size = size

	vm := f.VMetrics()
	slog.Info("font atlas packed",
		"size_px", size,
		"atlas", fmt.Sprintf("%dx%d", w, h),
		"line_spacing", vm.LineSpacing(f.ScaleForPixelHeight(size)))
	return a, nil
}

// Stride is the byte distance between atlas rows.
func (a *Atlas) Stride() int { return a.Img.Stride }

func (a *Atlas) Bounds() (w, h int) { return a.Img.Rect.Dx(), a.Img.Rect.Dy() }

// UVRect converts a glyph's pixel rectangle into normalised texture
// coordinates of a w x h atlas.
func UVRect(pc PackedChar, w, h int) (uvMin, uvMax linalg.Vector2) {
	fw, fh := float32(w), float32(h)
	uvMin = linalg.Vec2(float32(pc.X0)/fw, float32(pc.Y0)/fh)
	uvMax = linalg.Vec2(float32(pc.X1)/fw, float32(pc.Y1)/fh)
	return uvMin, uvMax
}
