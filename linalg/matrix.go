package linalg

import "math"

// Mat2 is a 2x2 matrix in row-major order.
type Mat2 [2][2]float64

// Mat3 is a 3x3 matrix in row-major order.
type Mat3 [3][3]float64

func Identity2() Mat2 {
	return Mat2{{1, 0}, {0, 1}}
}

func Identity3() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Mul returns the matrix product m·n.
func (m Mat2) Mul(n Mat2) Mat2 {
	var r Mat2
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			r[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j]
		}
	}
	return r
}

func (m Mat2) Transpose() Mat2 {
	return Mat2{{m[0][0], m[1][0]}, {m[0][1], m[1][1]}}
}

// Mul returns the matrix product m·n.
func (m Mat3) Mul(n Mat3) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j]
		}
	}
	return r
}

func (m Mat3) Transpose() Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[j][i]
		}
	}
	return r
}

// Rotation2 returns the matrix rotating row vectors by angle radians.
func Rotation2(angle float64) Mat2 {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return Mat2{
		{cos, -sin},
		{sin, cos},
	}
}

// Rotation3 returns the rotation in the XZ plane by angleXZ composed with the
// rotation in the YZ plane by angleYZ. Since vectors are multiplied on the
// left, the XZ rotation is applied first.
//
// Dragging a mouse horizontally maps naturally to angleXZ and vertically to
// angleYZ.
func Rotation3(angleXZ, angleYZ float64) Mat3 {
	cosXZ, sinXZ := math.Cos(angleXZ), math.Sin(angleXZ)
	cosYZ, sinYZ := math.Cos(angleYZ), math.Sin(angleYZ)
	xz := Mat3{
		{cosXZ, 0, -sinXZ},
		{0, 1, 0},
		{sinXZ, 0, cosXZ},
	}
	yz := Mat3{
		{1, 0, 0},
		{0, cosYZ, -sinYZ},
		{0, sinYZ, cosYZ},
	}
	return xz.Mul(yz)
}
