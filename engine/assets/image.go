package assets

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	// registered decoders
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image is decoded RGBA8 pixel data in tight rows (stride 4*W), top row
// first.
type Image struct {
	W, H int
	Pix  []byte
}

// Stride is the byte distance between rows.
func (im *Image) Stride() int { return 4 * im.W }

// LoadImage decodes any registered format under textures/.
func LoadImage(name string) (*Image, error) {
	p := path("textures", name)
	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", p, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", p, err)
	}
	im := FromImage(img)
	if im.W == 0 || im.H == 0 {
		return nil, fmt.Errorf("decode %q: empty %s image", p, format)
	}
	return im, nil
}

// FromImage converts img to tight non-premultiplied RGBA8.
func FromImage(img image.Image) *Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	rgba, ok := img.(*image.NRGBA)
	if !ok || rgba.Rect.Min != (image.Point{}) {
		rgba = image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}

	// Repack in tight rows
	out := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		copy(out[y*w*4:(y+1)*w*4], rgba.Pix[y*rgba.Stride:y*rgba.Stride+w*4])
	}
	return &Image{W: w, H: h, Pix: out}
}
