package linalg

// Project maps p onto the plane z = 0 as seen from a viewer standing on the
// z axis at viewDistance. Points farther from the viewer shrink toward the
// origin.
//
// The result diverges as p[2] approaches viewDistance. No attempt is made to
// guard against it: the usual IEEE infinities (or NaN for a coordinate that
// is exactly zero) are returned, so callers should keep viewDistance outside
// the z range of their points.
func Project(p Vec3, viewDistance float64) Vec2 {
	t := viewDistance / (viewDistance - p[2])
	return Vec2{p[0] * t, p[1] * t}
}
