package ln

// Real is the floating point type used throughout the package.
type Real = float64
