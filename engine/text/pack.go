package text

import (
	"errors"
	"fmt"
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// NumChars is the packed codepoint range, 0 up to but not including NumChars.
const NumChars = 128

// padding is left empty to the right of and below every glyph.
const padding = 1

// ErrAtlasFull is returned by Pack when the range does not fit.
var ErrAtlasFull = errors.New("text: glyphs do not fit in atlas")

// PackedChar locates one glyph in the atlas. X0..X1, Y0..Y1 is the pixel
// rectangle; the offsets place that rectangle relative to the pen position
// on the baseline, y down.
type PackedChar struct {
	X0, Y0, X1, Y1 uint16
	XOff, YOff     float32
	XAdvance       float32
	XOff2, YOff2   float32
}

func (pc PackedChar) Empty() bool { return pc.X1 == pc.X0 || pc.Y1 == pc.Y0 }

// Pack rasterises codepoints [0, NumChars) at pixel height px into dst with
// a shelf packer. dst is cleared first. On ErrAtlasFull the contents of dst
// and chars are unspecified.
func (f *Font) Pack(dst *image.Alpha, px float32, chars *[NumChars]PackedChar) error {
	face, err := f.face(px)
	if err != nil {
		return fmt.Errorf("open face at %.1fpx: %w", px, err)
	}
	defer face.Close()

	clear(dst.Pix)
	aw, ah := dst.Rect.Dx()-padding, dst.Rect.Dy()-padding

	drawer := &font.Drawer{Dst: dst, Src: image.Opaque, Face: face}
	x, y, rowH := 0, 0, 0
	for r := rune(0); r < NumChars; r++ {
		// Codepoints the font does not map report !ok but still carry the
		// .notdef glyph's bounds, which the drawer renders for them too.
		b, adv, _ := face.GlyphBounds(r)
		x0, y0 := b.Min.X.Floor(), b.Min.Y.Floor()
		x1, y1 := b.Max.X.Ceil(), b.Max.Y.Ceil()
		w, h := x1-x0, y1-y0

		pc := PackedChar{
			XOff: float32(x0), YOff: float32(y0),
			XOff2: float32(x1), YOff2: float32(y1),
			XAdvance: float32(adv) / 64,
		}
		if w <= 0 || h <= 0 {
			chars[r] = pc
			continue
		}

		// next shelf
		if x+w+padding > aw {
			x = 0
			y += rowH
			rowH = 0
		}
		if x+w+padding > aw || y+h+padding > ah || y+h > math.MaxUint16 {
			return ErrAtlasFull
		}

		drawer.Dot = fixed.P(x-x0, y-y0)
		drawer.DrawString(string(r))

		pc.X0, pc.Y0 = uint16(x), uint16(y)
		pc.X1, pc.Y1 = uint16(x+w), uint16(y+h)
		chars[r] = pc

		x += w + padding
		rowH = max(rowH, h+padding)
	}
	return nil
}
