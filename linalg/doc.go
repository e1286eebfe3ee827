/*
Package linalg provides the small amount of fixed dimension linear algebra
needed to move a protein model around: 2D operations for screen coordinates
and 3D operations for alpha-carbon coordinates.

All types are plain arrays and every operation returns a new value. Vectors
are row vectors, so a vector is transformed with v.MulMat(m), which computes
v·m. Rotation matrices are built with this convention in mind.

MapToBox3 (and its 2D sibling) fits a cloud of points inside an axis aligned
box with one uniform scale factor, so the shape of the cloud is preserved.
Project performs the perspective-style projection used to draw 3D points on
a 2D canvas.
*/
package linalg
