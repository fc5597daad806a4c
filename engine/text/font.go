// Package text rasterises a font into a single-channel glyph atlas and picks
// the largest pixel size that still fits.
package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Font is a parsed TTF/OTF font program.
type Font struct {
	sf   *sfnt.Font
	upem int
	vm   VMetrics
}

// VMetrics are the font's vertical metrics in unscaled font units. Descent
// is negative for a descender below the baseline.
type VMetrics struct {
	Ascent, Descent, LineGap int
}

// Parse reads a font program from its file bytes.
func Parse(data []byte) (*Font, error) {
	sf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	f := &Font{sf: sf, upem: int(sf.UnitsPerEm())}

	// At ppem == unitsPerEm the scale is 1, so the metrics come back in
	// font units.
	var buf sfnt.Buffer
	m, err := sf.Metrics(&buf, fixed.I(f.upem), font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("font metrics: %w", err)
	}
	f.vm = VMetrics{
		Ascent:  m.Ascent.Round(),
		Descent: -m.Descent.Round(),
	}
	f.vm.LineGap = m.Height.Round() - f.vm.Ascent + f.vm.Descent
	if f.vm.Ascent-f.vm.Descent <= 0 {
		return nil, fmt.Errorf("font metrics: ascent %d descent %d", f.vm.Ascent, f.vm.Descent)
	}
	return f, nil
}

// Default returns the built-in Go Regular font.
func Default() (*Font, error) {
	return Parse(goregular.TTF)
}

func (f *Font) VMetrics() VMetrics { return f.vm }

// ScaleForPixelHeight is the font-unit to pixel factor that makes
// ascent-to-descent span px pixels.
func (f *Font) ScaleForPixelHeight(px float32) float32 {
	return px / float32(f.vm.Ascent-f.vm.Descent)
}

// LineSpacing is the baseline-to-baseline distance in pixels at scale.
func (vm VMetrics) LineSpacing(scale float32) float32 {
	return float32(vm.Ascent-vm.Descent+vm.LineGap) * scale
}

// face opens a rasteriser for a pixel height, measured like
// ScaleForPixelHeight rather than in ems.
func (f *Font) face(px float32) (font.Face, error) {
	ppem := float64(f.ScaleForPixelHeight(px)) * float64(f.upem)
	return opentype.NewFace(f.sf, &opentype.FaceOptions{
		Size:    ppem,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}
