package linalg

import (
	"fmt"
	"math"
)

// Vec2 is a point or displacement in the plane.
type Vec2 [2]float64

// Vec3 is a point or displacement in space. The first element is X, the
// second is Y and the third is Z.
type Vec3 [3]float64

func (v Vec2) NormSquared() float64 {
	return v[0]*v[0] + v[1]*v[1]
}

func (v Vec2) Norm() float64 {
	return math.Sqrt(v.NormSquared())
}

// Normalized returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec2) Normalized() Vec2 {
	n := v.Norm()
	if n == 0 {
		return Vec2{}
	}
	return Vec2{v[0] / n, v[1] / n}
}

func (v Vec2) Dot(w Vec2) float64 {
	return v[0]*w[0] + v[1]*w[1]
}

func (v Vec2) DistanceSquared(w Vec2) float64 {
	return v.Sub(w).NormSquared()
}

func (v Vec2) Distance(w Vec2) float64 {
	return v.Sub(w).Norm()
}

func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{v[0] + w[0], v[1] + w[1]}
}

func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{v[0] - w[0], v[1] - w[1]}
}

// Mul returns v multiplied by the scalar s.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{s * v[0], s * v[1]}
}

// ScaleAt scales v by s with center as the fixed point.
func (v Vec2) ScaleAt(s float64, center Vec2) Vec2 {
	return v.Sub(center).Mul(s).Add(center)
}

// MulMat returns the row vector v multiplied by m.
func (v Vec2) MulMat(m Mat2) Vec2 {
	return Vec2{
		v[0]*m[0][0] + v[1]*m[1][0],
		v[0]*m[0][1] + v[1]*m[1][1],
	}
}

// Rotate rotates v around the origin by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	return v.MulMat(Rotation2(angle))
}

// RotateAt rotates v around center by angle radians.
func (v Vec2) RotateAt(angle float64, center Vec2) Vec2 {
	return v.Sub(center).Rotate(angle).Add(center)
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%0.3f, %0.3f)", v[0], v[1])
}

func (v Vec3) NormSquared() float64 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

func (v Vec3) Norm() float64 {
	return math.Sqrt(v.NormSquared())
}

// Normalized returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec3) Normalized() Vec3 {
	n := v.Norm()
	if n == 0 {
		return Vec3{}
	}
	return Vec3{v[0] / n, v[1] / n, v[2] / n}
}

func (v Vec3) Dot(w Vec3) float64 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

func (v Vec3) DistanceSquared(w Vec3) float64 {
	return v.Sub(w).NormSquared()
}

func (v Vec3) Distance(w Vec3) float64 {
	return v.Sub(w).Norm()
}

func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// Mul returns v multiplied by the scalar s.
func (v Vec3) Mul(s float64) Vec3 {
	return Vec3{s * v[0], s * v[1], s * v[2]}
}

// ScaleAt scales v by s with center as the fixed point.
func (v Vec3) ScaleAt(s float64, center Vec3) Vec3 {
	return v.Sub(center).Mul(s).Add(center)
}

// MulMat returns the row vector v multiplied by m.
func (v Vec3) MulMat(m Mat3) Vec3 {
	return Vec3{
		v[0]*m[0][0] + v[1]*m[1][0] + v[2]*m[2][0],
		v[0]*m[0][1] + v[1]*m[1][1] + v[2]*m[2][1],
		v[0]*m[0][2] + v[1]*m[1][2] + v[2]*m[2][2],
	}
}

// Rotate rotates v around the origin. See Rotation3 for the meaning of the
// two angles.
func (v Vec3) Rotate(angleXZ, angleYZ float64) Vec3 {
	return v.MulMat(Rotation3(angleXZ, angleYZ))
}

// RotateAt is like Rotate, but rotates around center instead of the origin.
func (v Vec3) RotateAt(angleXZ, angleYZ float64, center Vec3) Vec3 {
	return v.Sub(center).Rotate(angleXZ, angleYZ).Add(center)
}

// IsFinite returns true when no coordinate is NaN or infinite.
func (v Vec3) IsFinite() bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%0.3f, %0.3f, %0.3f)", v[0], v[1], v[2])
}
