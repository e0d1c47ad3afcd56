package ln

import (
	"io"
	"os"

	svg "github.com/ajstarks/svgo"
)

// WriteSVG renders paths (already in pixel space, per Camera.NDCToPixel)
// as one <polyline> element per path into an SVG document sized width
// x height, matching the spec's "SVG output is a list of <polyline>
// elements" contract.
func WriteSVG(w io.Writer, paths Paths, width, height int) error {
	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:white")
	for _, path := range paths.Paths {
		xs := make([]int, len(path))
		ys := make([]int, len(path))
		for i, v := range path {
			xs[i] = int(v.X)
			ys[i] = int(v.Y)
		}
		canvas.Polyline(xs, ys, "stroke:black;fill:none")
	}
	canvas.End()
	return nil
}

// SaveSVG writes paths to an SVG file at path, overwriting any existing
// file.
func SaveSVG(path string, paths Paths, width, height int) error {
	f, err := os.Create(path)
	if err != nil {
		return &IoError{Msg: "creating SVG file " + path, Err: err}
	}
	defer f.Close()
	if err := WriteSVG(f, paths, width, height); err != nil {
		return &IoError{Msg: "writing SVG file " + path, Err: err}
	}
	return nil
}
