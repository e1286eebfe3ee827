// Package view keeps the state of a viewport looking at a pdb.Structure and
// projects the structure's residues to points on a 2D surface. It does not
// draw anything: a renderer paints the points it returns, in order.
package view

import (
	"math"

	"github.com/TuftsBCB/littleprotein/color"
	"github.com/TuftsBCB/littleprotein/linalg"
	"github.com/TuftsBCB/littleprotein/pdb"
)

// CaDistance is the usual distance, in Angstroms, between two consecutive
// alpha carbons.
const CaDistance = 3.8

var (
	DefaultBackground = color.New(220, 220, 220)

	darkFont  = color.New(45, 45, 45)
	lightFont = color.New(210, 210, 210)
)

// Ranges of the viewer's parameters. Setters clamp to them.
var (
	DepthShadeRange   = linalg.Range{-10, 10}
	ViewDistanceRange = linalg.Range{0.5, 100}
	ResidueScaleRange = linalg.Range{0.05, 10}
)

const (
	defaultDepthShade   = 1.0
	defaultViewDistance = 5.0
	defaultResidueScale = 1.0
)

// Point is a residue as it should be painted.
type Point struct {
	Residue *pdb.Residue

	// Pos is the position on the surface, in the same units as its width
	// and height.
	Pos linalg.Vec2

	// Color is the residue's color shaded by its depth.
	Color color.Color
}

// Viewer is a viewport of a given width and height onto a structure.
type Viewer struct {
	width, height float64

	center      linalg.Vec2
	centerRange linalg.Range
	zoom        float64
	zoomRange   linalg.Range

	depthShade   float64
	viewDistance float64
	residueScale float64

	palette    []color.Color
	overrides  map[byte]color.Color
	background color.Color

	structure *pdb.Structure
}

// NewViewer returns a viewer of s, centered on the surface and zoomed so that
// the normalized structure takes most of it. The chains of s are colored
// according to the viewer's palette and chain colors.
func NewViewer(s *pdb.Structure, width, height float64, opts ...Option) *Viewer {
	lo, hi := math.Min(width, height), math.Max(width, height)
	v := &Viewer{
		width:        width,
		height:       height,
		center:       linalg.Vec2{width / 2, height / 2},
		centerRange:  linalg.Range{-0.5 * hi, 1.5 * hi},
		zoom:         0.8 * lo,
		zoomRange:    linalg.Range{0.05 * lo, 4 * hi},
		depthShade:   defaultDepthShade,
		viewDistance: defaultViewDistance,
		residueScale: defaultResidueScale,
		palette:      pdb.DefaultPalette,
		background:   DefaultBackground,
	}
	for _, opt := range opts {
		opt(v)
	}
	v.SetStructure(s)
	return v
}

// SetStructure replaces the structure in view and colors its chains.
func (v *Viewer) SetStructure(s *pdb.Structure) {
	v.structure = s
	v.structure.ColorChains(v.palette, v.overrides)
}

// Clear replaces the structure in view with an empty one.
func (v *Viewer) Clear() {
	v.SetStructure(pdb.Empty())
}

func (v *Viewer) Structure() *pdb.Structure {
	return v.structure
}

// Rotate rotates the structure in view. Dragging horizontally naturally maps
// to angleXZ and vertically to angleYZ.
func (v *Viewer) Rotate(angleXZ, angleYZ float64) *Viewer {
	v.structure.Rotate(angleXZ, angleYZ)
	return v
}

// Translate moves the center of the projection by delta. The center never
// strays further than half the largest side from the surface.
func (v *Viewer) Translate(delta linalg.Vec2) *Viewer {
	c := v.center.Add(delta)
	v.center = linalg.Vec2{clamp(c[0], v.centerRange), clamp(c[1], v.centerRange)}
	return v
}

// Zoom multiplies the zoom by 1 + variation.
func (v *Viewer) Zoom(variation float64) *Viewer {
	v.zoom = clamp(v.zoom*(1+variation), v.zoomRange)
	return v
}

// ChangeViewDistance multiplies the view distance by 1 + variation.
func (v *Viewer) ChangeViewDistance(variation float64) *Viewer {
	v.SetViewDistance(v.viewDistance * (1 + variation))
	return v
}

func (v *Viewer) SetDepthShade(f float64) {
	v.depthShade = clamp(f, DepthShadeRange)
}

func (v *Viewer) SetViewDistance(d float64) {
	v.viewDistance = clamp(d, ViewDistanceRange)
}

func (v *Viewer) SetResidueScale(s float64) {
	v.residueScale = clamp(s, ResidueScaleRange)
}

func (v *Viewer) Center() linalg.Vec2     { return v.center }
func (v *Viewer) ZoomLevel() float64      { return v.zoom }
func (v *Viewer) DepthShade() float64     { return v.depthShade }
func (v *Viewer) ViewDistance() float64   { return v.viewDistance }
func (v *Viewer) ResidueScale() float64   { return v.residueScale }
func (v *Viewer) Background() color.Color { return v.background }

// FontColor is light on dark backgrounds and dark on light ones.
func (v *Viewer) FontColor() color.Color {
	if v.background.Mean() < 128 {
		return lightFont
	}
	return darkFont
}

// Points returns the residues of the structure in view from the farthest to
// the nearest, projected and shaded: nearer residues are lighter.
func (v *Viewer) Points() []Point {
	residues := v.structure.DepthOrder()
	points := make([]Point, len(residues))
	for i, r := range residues {
		proj := linalg.Project(r.Position, v.viewDistance)
		points[i] = Point{
			Residue: r,
			Pos:     proj.Mul(v.zoom).Add(v.center),
			Color:   r.Color.UpdatedLightness(2 * r.Position[2] * v.depthShade),
		}
	}
	return points
}

// StrokeWeight is the diameter residues should be painted with. It is chosen
// so that residues look the same size whatever the zoom and the size of the
// structure.
func (v *Viewer) StrokeWeight() float64 {
	return 1.6 * v.residueScale * CaDistance * v.zoom / v.structure.Scale
}

// Contains returns true if (x, y) is on the surface.
func (v *Viewer) Contains(x, y float64) bool {
	return 0 <= x && x <= v.width && 0 <= y && y <= v.height
}

func clamp(x float64, r linalg.Range) float64 {
	return math.Min(math.Max(x, r[0]), r[1])
}
