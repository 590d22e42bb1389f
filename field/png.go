package field

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
)

// ReadPNG decodes a PNG image into a grid of luminance values in [0, 1].
// The bottom image row becomes y = 0.
func ReadPNG(r io.Reader) (*Grid, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("field: decoding png: %w", err)
	}
	return FromImage(img), nil
}

// FromImage converts any image to a luminance grid, bottom row first.
func FromImage(img image.Image) *Grid {
	b := img.Bounds()
	g := New(b.Dx(), b.Dy())
	for y := 0; y < g.height; y++ {
		row := b.Max.Y - 1 - y
		for x := 0; x < g.width; x++ {
			gray := color.Gray16Model.Convert(img.At(b.Min.X+x, row)).(color.Gray16)
			g.data[x+g.width*y] = float64(gray.Y) / math.MaxUint16
		}
	}
	return g
}

// Image renders the grid as a 16-bit grayscale image. Values are clamped to
// [0, 1]; call Normalize first to map an arbitrary range.
func (g *Grid) Image() *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, g.width, g.height))
	for y := 0; y < g.height; y++ {
		row := g.height - 1 - y
		for x := 0; x < g.width; x++ {
			v := g.data[x+g.width*y]
			switch {
			case math.IsNaN(v) || v < 0:
				v = 0
			case v > 1:
				v = 1
			}
			img.SetGray16(x, row, color.Gray16{Y: uint16(math.Round(v * math.MaxUint16))})
		}
	}
	return img
}

// WritePNG encodes g as a 16-bit grayscale PNG.
func WritePNG(w io.Writer, g *Grid) error {
	if err := png.Encode(w, g.Image()); err != nil {
		return fmt.Errorf("field: encoding png: %w", err)
	}
	return nil
}

// LoadPNG reads a grid from a PNG file.
func LoadPNG(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("field: opening %s: %w", path, err)
	}
	defer f.Close()
	return ReadPNG(f)
}

// SavePNG writes g to a PNG file, replacing any existing file.
func SavePNG(path string, g *Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("field: creating %s: %w", path, err)
	}
	if err := WritePNG(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
