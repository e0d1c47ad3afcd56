package ln

import (
	"runtime"
	"sync"
)

// RenderOptions tunes the chop/simplify steps of Render. A zero value
// is not useful; use DefaultRenderOptions.
type RenderOptions struct {
	// ChopStep is the arclength each world-space path is resampled to
	// before occlusion classification — finer means occluder edges are
	// found more precisely, at the cost of more Scene.Visible queries.
	ChopStep Real
	// SimplifyThreshold is the Ramer-Douglas-Peucker tolerance (in NDC
	// units) applied to the final clipped paths, collapsing the extra
	// vertices Chop introduced wherever they turned out to be unneeded.
	SimplifyThreshold Real
}

// DefaultRenderOptions mirrors the package-level DefaultChopStep and
// DefaultSimplifyThreshold constants.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{ChopStep: DefaultChopStep, SimplifyThreshold: DefaultSimplifyThreshold}
}

// Render runs the full chop -> classify -> stitch -> project&clip
// pipeline: every shape's own texture paths are resampled to ChopStep,
// classified vertex-by-vertex against the scene's occluders, clipped
// against the camera's near plane and NDC square, simplified, and
// finally mapped into pixel space. The per-path classification work is
// spread evenly (plus remainder) across runtime.NumCPU() workers, each
// producing one ordered slice of output paths; the only synchronization
// point is the final concatenation, once every worker has finished.
func Render(scene *Scene, camera *Camera, opts RenderOptions) (Paths, error) {
	scene.Compile()
	raw := scene.Paths()
	chopped := raw.Chop(opts.ChopStep)

	n := len(chopped.Paths)
	if n == 0 {
		return Paths{}, EmptyResult
	}

	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	viewProj := camera.ViewProjection()
	pixel := camera.NDCToPixel()

	results := make([]Paths, workers)
	base, rem := n/workers, n%workers
	var wg sync.WaitGroup
	wg.Add(workers)
	start := 0
	for w := 0; w < workers; w++ {
		count := base
		if w < rem {
			count++
		}
		lo, hi := start, start+count
		start = hi
		go func(w, lo, hi int) {
			defer wg.Done()
			results[w] = renderChunk(chopped.Paths[lo:hi], scene, camera, viewProj, pixel, opts)
		}(w, lo, hi)
	}
	wg.Wait()

	out := Paths{}
	for _, r := range results {
		out.Extend(r)
	}
	if len(out.Paths) == 0 {
		return out, EmptyResult
	}
	return out, nil
}

// renderChunk runs classify -> stitch -> project&clip over one worker's
// slice of chopped world-space paths.
func renderChunk(paths []Path, scene *Scene, camera *Camera, viewProj, pixel Matrix, opts RenderOptions) Paths {
	local := Paths{Paths: paths}
	visible := local.Filter(FilterFunc(func(v Vector) (Vector, bool) {
		return v, scene.Visible(camera.Eye, v)
	}))

	clipped := Paths{}
	for _, path := range visible.Paths {
		for _, sub := range clipNearPlane(path, viewProj, camera.Near) {
			clipped.Push(sub)
		}
	}

	ndc := clipped.ClipNDC2D()
	simplified := ndc.Simplify(opts.SimplifyThreshold)
	return simplified.Transform(pixel)
}
