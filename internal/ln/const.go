package ln

// Tunable knobs, grouped the way the underlying geometry uses them.
const (
	// BVHMaxLeafSize caps how many shapes a BVH leaf may hold before the
	// builder keeps splitting.
	BVHMaxLeafSize = 4
	// BVHFromNShapes is the minimum shape count before Scene bothers
	// building a BVH at all; below it a linear scan is cheaper.
	BVHFromNShapes = 8

	// epsContains is the tolerance used by CSG contains() tests.
	epsContains = 1e-9
	// epsHit is the minimum positive t accepted from a primitive
	// intersection, guarding against self-intersection at the origin.
	epsHit = 1e-6
	// epsVisible pads the occlusion query's tmax so a point doesn't
	// occlude itself. It has to exceed the gap between a chopped chord of
	// a texture polyline and the curved surface it approximates.
	epsVisible = 1e-2

	// DefaultChopStep is the default arclength used to resample a
	// polyline before visibility classification.
	DefaultChopStep = 0.01
	// DefaultSimplifyThreshold is the default Ramer-Douglas-Peucker
	// tolerance applied after clipping.
	DefaultSimplifyThreshold = 1e-6

	// functionMarchStep is the ray-march step used by Function.intersect.
	functionMarchStep = 1.0 / 64
	// functionMarchMax bounds how far a Function ray march travels
	// before giving up.
	functionMarchMax = 50.0
)
