package assets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Root is the directory asset paths are resolved against.
var Root = "assets"

// Image is a decoded picture as tightly packed RGBA8 rows, top-left origin.
type Image struct {
	Width, Height int
	Pixels        []byte
}

// LoadImage decodes a PNG, JPEG, BMP or WebP file under Root/textures.
func LoadImage(relPath string) (Image, error) {
	path := filepath.Join(Root, "textures", relPath)
	f, err := os.Open(path)
	if err != nil {
		return Image{}, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return Image{}, fmt.Errorf("decode image %q: %w", path, err)
	}
	rgba := toRGBA(img)
	if rgba.Rect.Dx() == 0 || rgba.Rect.Dy() == 0 {
		return Image{}, fmt.Errorf("decode %s %q: empty image", format, path)
	}
	return Image{Width: rgba.Rect.Dx(), Height: rgba.Rect.Dy(), Pixels: rgba.Pix}, nil
}

// LoadPNG is LoadImage returning the fields separately.
func LoadPNG(relPath string) (w, h int, rgba []byte, err error) {
	img, err := LoadImage(relPath)
	return img.Width, img.Height, img.Pixels, err
}

// toRGBA returns img as an *image.RGBA whose stride equals 4*width and whose
// bounds start at the origin.
func toRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	if m, ok := img.(*image.RGBA); ok && m.Rect.Min == (image.Point{}) && m.Stride == b.Dx()*4 {
		return m
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
