package linalg

import "math"

// DegenerateCoefficient is the scale coefficient reported by MapToBox2 and
// MapToBox3 when it cannot be derived from the points: no points at all, or
// points without any spread. Callers divide by the coefficient, so it must
// never be zero.
const DegenerateCoefficient = 1.0

// Range is a closed interval [min, max].
type Range [2]float64

func (r Range) Spread() float64 {
	return r[1] - r[0]
}

// Box2 is an axis aligned rectangle, one range per axis.
type Box2 [2]Range

// Box3 is an axis aligned box, one range per axis.
type Box3 [3]Range

// UnitBox3 is the box of edge 1 centered on the origin.
var UnitBox3 = Box3{{-0.5, 0.5}, {-0.5, 0.5}, {-0.5, 0.5}}

// MapToBox3 scales and shifts points so that their bounding box fits in box,
// centered on every axis. A single scale is used for all axes, so relative
// geometry is kept intact: the axis with the tightest fit decides.
//
// The returned coefficient is the factor the points were divided by. It is
// DegenerateCoefficient when points is empty or has no spread, in which
// case every point lands on the center of box.
func MapToBox3(points []Vec3, box Box3) ([]Vec3, float64) {
	mapped := make([]Vec3, len(points))
	if len(points) == 0 {
		return mapped, DegenerateCoefficient
	}

	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		for i := range p {
			lo[i] = math.Min(lo[i], p[i])
			hi[i] = math.Max(hi[i], p[i])
		}
	}

	var spread, boxSpread Vec3
	coeff := 0.0
	for i := range spread {
		spread[i] = hi[i] - lo[i]
		boxSpread[i] = box[i].Spread()
		coeff = math.Max(coeff, spread[i]/boxSpread[i])
	}
	coeff = sane(coeff)

	var shift Vec3
	for i := range shift {
		shift[i] = box[i][0] - (spread[i]/(2*coeff) - boxSpread[i]/2)
	}
	for j, p := range points {
		for i := range p {
			mapped[j][i] = (p[i]-lo[i])/coeff + shift[i]
		}
	}
	return mapped, coeff
}

// MapToBox2 is the 2D analogue of MapToBox3.
func MapToBox2(points []Vec2, box Box2) ([]Vec2, float64) {
	mapped := make([]Vec2, len(points))
	if len(points) == 0 {
		return mapped, DegenerateCoefficient
	}

	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		for i := range p {
			lo[i] = math.Min(lo[i], p[i])
			hi[i] = math.Max(hi[i], p[i])
		}
	}

	var spread, boxSpread Vec2
	coeff := 0.0
	for i := range spread {
		spread[i] = hi[i] - lo[i]
		boxSpread[i] = box[i].Spread()
		coeff = math.Max(coeff, spread[i]/boxSpread[i])
	}
	coeff = sane(coeff)

	var shift Vec2
	for i := range shift {
		shift[i] = box[i][0] - (spread[i]/(2*coeff) - boxSpread[i]/2)
	}
	for j, p := range points {
		for i := range p {
			mapped[j][i] = (p[i]-lo[i])/coeff + shift[i]
		}
	}
	return mapped, coeff
}

// sane replaces a coefficient that cannot be divided by.
func sane(coeff float64) float64 {
	if coeff > 0 && !math.IsInf(coeff, 0) {
		return coeff
	}
	return DegenerateCoefficient
}
