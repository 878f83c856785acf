// Package converter holds the shared data model of the .map to .vmf
// conversion pipeline.
package converter

// Point is a single coordinate in 3D space.
type Point struct {
	X float64
	Y float64
	Z float64
}

// Plane is one half-space boundary of a brush: three points ordered
// counter-clockwise as seen from outside the solid, plus the texture
// assigned to the face. Point order is preserved exactly as read from
// the source file; face orientation depends on it.
type Plane struct {
	Points  [3]Point
	Texture string
}

// Brush is one convex solid described by its bounding planes, in file
// order. A brush with zero planes must never reach the generator.
type Brush struct {
	Planes []Plane
}
