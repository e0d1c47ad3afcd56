package ln

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
)

// WriteLinePNG rasterizes paths (already in pixel space, per
// Camera.NDCToPixel) onto a white width x height canvas, drawing each
// segment as a 1px black Bresenham line, and encodes it as PNG.
//
// The core renderer is a vector (polyline) renderer by design — PNG is
// an output convenience, not a rendering mode, so this rasterizer
// intentionally has no anti-aliasing or line width beyond 1px.
func WriteLinePNG(w io.Writer, paths Paths, width, height int) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	white := color.RGBA{255, 255, 255, 255}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, white)
		}
	}
	black := color.RGBA{0, 0, 0, 255}
	for _, path := range paths.Paths {
		for i := 0; i < len(path)-1; i++ {
			drawLine(img, path[i].X, path[i].Y, path[i+1].X, path[i+1].Y, black)
		}
	}
	return png.Encode(w, img)
}

// SavePNG writes paths to a PNG file at path, overwriting any existing
// file.
func SavePNG(path string, paths Paths, width, height int) error {
	f, err := os.Create(path)
	if err != nil {
		return &IoError{Msg: "creating PNG file " + path, Err: err}
	}
	defer f.Close()
	if err := WriteLinePNG(f, paths, width, height); err != nil {
		return &IoError{Msg: "writing PNG file " + path, Err: err}
	}
	return nil
}

// drawLine rasterizes a single segment using Bresenham's algorithm.
func drawLine(img *image.RGBA, x0, y0, x1, y1 Real, c color.RGBA) {
	ix0, iy0 := int(math.Round(x0)), int(math.Round(y0))
	ix1, iy1 := int(math.Round(x1)), int(math.Round(y1))
	dx := abs(ix1 - ix0)
	dy := abs(iy1 - iy0)
	sx, sy := 1, 1
	if ix0 > ix1 {
		sx = -1
	}
	if iy0 > iy1 {
		sy = -1
	}
	err := dx - dy
	b := img.Bounds()
	for {
		if ix0 >= b.Min.X && ix0 < b.Max.X && iy0 >= b.Min.Y && iy0 < b.Max.Y {
			img.Set(ix0, iy0, c)
		}
		if ix0 == ix1 && iy0 == iy1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			ix0 += sx
		}
		if e2 < dx {
			err += dx
			iy0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
