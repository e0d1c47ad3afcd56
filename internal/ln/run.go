package ln

import (
	"path/filepath"
	"strings"
	"time"
)

// Run loads the scene at scenePath, renders it, and writes the result
// to outPath. The output format is chosen from outPath's extension:
// ".svg" writes vector polylines, anything else (typically ".png")
// rasterizes them.
func Run(scenePath, outPath string) error {
	scene, camera, step, err := LoadScene(scenePath)
	if err != nil {
		return err
	}

	opts := DefaultRenderOptions()
	opts.ChopStep = step

	start := time.Now()
	paths, err := Render(scene, camera, opts)
	if err != nil && err != EmptyResult {
		return err
	}
	DebugLog("Run: %s: %d paths, %d segments, %s", scenePath, len(paths.Paths), paths.NumSegments(), time.Since(start))

	width, height := int(camera.Width), int(camera.Height)
	if strings.EqualFold(filepath.Ext(outPath), ".svg") {
		return SaveSVG(outPath, paths, width, height)
	}
	return SavePNG(outPath, paths, width, height)
}
