package pdb

import (
	"fmt"
	"sort"

	"github.com/TuftsBCB/littleprotein/color"
	"github.com/TuftsBCB/littleprotein/linalg"
	"github.com/TuftsBCB/seq"
)

// NormalizationBox is the box residue positions are mapped into.
var NormalizationBox = linalg.UnitBox3

// DefaultPalette holds the colors given to chains, in order of appearance,
// when no other palette is given.
var DefaultPalette = []color.Color{
	color.New(0, 95, 115),
	color.New(238, 155, 0),
	color.New(225, 0, 12),
	color.New(44, 160, 44),
	color.New(148, 103, 189),
	color.New(140, 86, 75),
	color.New(227, 119, 194),
	color.New(127, 127, 127),
	color.New(188, 189, 34),
	color.New(23, 190, 207),
}

// Structure is an ordered set of residues, indexed by key.
type Structure struct {
	Name string

	// Scale is the factor the original coordinates were divided by when
	// they were mapped into NormalizationBox.
	Scale float64

	residues []*Residue
	index    map[string]*Residue
	chains   []byte
}

// New assembles a structure from residues, in the order given. It fails if
// two residues share a key or if scale is not positive.
func New(name string, residues []*Residue, scale float64) (*Structure, error) {
	if !(scale > 0) {
		return nil, fmt.Errorf("Scale of structure '%s' must be positive, "+
			"but is %f.", name, scale)
	}
	s := &Structure{
		Name:     name,
		Scale:    scale,
		residues: make([]*Residue, 0, len(residues)),
		index:    make(map[string]*Residue, len(residues)),
	}
	seen := make(map[byte]bool, 2)
	for _, r := range residues {
		if len(r.Key) == 0 {
			return nil, fmt.Errorf("A residue of structure '%s' has no key.",
				name)
		}
		if _, ok := s.index[r.Key]; ok {
			return nil, fmt.Errorf("Residue '%s' appears twice in '%s': %w",
				r.Key, name, ErrDuplicateResidue)
		}
		s.residues = append(s.residues, r)
		s.index[r.Key] = r
		if !seen[r.Chain] {
			seen[r.Chain] = true
			s.chains = append(s.chains, r.Chain)
		}
	}
	return s, nil
}

// Empty returns a structure without residues.
func Empty() *Structure {
	s, _ := New("EmptyStructure", nil, 1.0)
	return s
}

func (s *Structure) Len() int {
	return len(s.residues)
}

func (s *Structure) IsEmpty() bool {
	return len(s.residues) == 0
}

// Residue returns the residue with the given key, or nil.
func (s *Structure) Residue(key string) *Residue {
	return s.index[key]
}

// Residues returns the residues in the order they were read. The slice is a
// copy, the residues are not.
func (s *Structure) Residues() []*Residue {
	return append([]*Residue(nil), s.residues...)
}

// Chains returns the chain identifiers in order of first appearance.
func (s *Structure) Chains() []byte {
	return append([]byte(nil), s.chains...)
}

func (s *Structure) Keys() []string {
	keys := make([]string, len(s.residues))
	for i, r := range s.residues {
		keys[i] = r.Key
	}
	return keys
}

// Coords returns the normalized positions of all residues.
func (s *Structure) Coords() []linalg.Vec3 {
	coords := make([]linalg.Vec3, len(s.residues))
	for i, r := range s.residues {
		coords[i] = r.Position
	}
	return coords
}

// Rotate turns every residue about the origin, first in the XZ plane and
// then in the YZ plane. The structure itself is returned.
func (s *Structure) Rotate(angleXZ, angleYZ float64) *Structure {
	m := linalg.Rotation3(angleXZ, angleYZ)
	for _, r := range s.residues {
		r.Transform(m)
	}
	return s
}

// DepthOrder returns the residues sorted from the farthest (lowest z) to the
// nearest, which is the order they should be painted in. Residues at the
// same depth keep their relative order.
func (s *Structure) DepthOrder() []*Residue {
	ordered := s.Residues()
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Position[2] < ordered[j].Position[2]
	})
	return ordered
}

// Sequences returns one sequence of one letter codes per chain, named after
// the structure and the chain, e.g., "1CRN_A".
func (s *Structure) Sequences() []seq.Sequence {
	seqs := make([]seq.Sequence, len(s.chains))
	for i, chain := range s.chains {
		seqs[i].Name = fmt.Sprintf("%s_%c", s.Name, chain)
		seqs[i].Residues = make([]seq.Residue, 0, 50)
		for _, r := range s.residues {
			if r.Chain == chain {
				seqs[i].Residues = append(seqs[i].Residues, r.AminoAcid.One)
			}
		}
	}
	return seqs
}

func (s *Structure) String() string {
	return fmt.Sprintf("%s: %d residues in %d chains (scale %0.4f)",
		s.Name, len(s.residues), len(s.chains), s.Scale)
}
