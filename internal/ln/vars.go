package ln

var (
	// Debug, when true, makes DebugLog actually print (build with -tags debug).
	Debug = false
	// AlwaysBVH forces Scene to build a BVH regardless of shape count.
	AlwaysBVH = false
	// NeverBVH forces Scene to use a linear occluder scan regardless of
	// shape count; useful for differential testing against the BVH path.
	NeverBVH = false

	// Compile-time checks that the primitive shapes satisfy Shape.
	_ Shape = (*Sphere)(nil)
	_ Shape = (*Cube)(nil)
	_ Shape = (*Cylinder)(nil)
	_ Shape = (*Cone)(nil)
	_ Shape = (*Triangle)(nil)
	_ Shape = (*Mesh)(nil)
	_ Shape = (*Function)(nil)
	_ Shape = (*TransformedShape)(nil)
	_ Shape = (*Intersection)(nil)
	_ Shape = (*Difference)(nil)
	_ Shape = (*Outline)(nil)
	_ Shape = EmptyShape{}
)
