package graphics

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// LoadTexture loads a 2D texture from a file
func LoadTexture(path string) (uint32, int, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to open texture file: %v", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to decode image: %v", err)
	}

	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, image.Point{0, 0}, draw.Src)

	return uploadRGBA(rgba, gl.REPEAT), rgba.Rect.Size().X, rgba.Rect.Size().Y, nil
}

// NewCheckerTexture builds the builtin two-tone checker used when no
// ground texture is configured.
func NewCheckerTexture() uint32 {
	const (
		size  = 64
		cell  = 8
		light = 200
		dark  = 90
	)
	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			shade := uint8(light)
			if (x/cell+y/cell)%2 == 0 {
				shade = dark
			}
			rgba.Set(x, y, color.RGBA{shade, shade, shade, 255})
		}
	}
	return uploadRGBA(rgba, gl.REPEAT)
}

// FloorTexture resolves the ground texture: the configured file when
// one is set and loadable, the builtin checker otherwise.
func FloorTexture(path string) uint32 {
	if path == "" {
		return NewCheckerTexture()
	}
	tex, _, _, err := LoadTexture(path)
	if err != nil {
		log.Printf("ground texture %q unavailable, using checker: %v", path, err)
		return NewCheckerTexture()
	}
	return tex
}

func uploadRGBA(rgba *image.RGBA, wrap int32) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(rgba.Rect.Size().X),
		int32(rgba.Rect.Size().Y),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(rgba.Pix),
	)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	return texture
}
