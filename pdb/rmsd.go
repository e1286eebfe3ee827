package pdb

import (
	"fmt"

	"github.com/TuftsBCB/structure"
)

// CaCoords returns the alpha carbon positions of s in the units of the file
// it was read from, i.e., every position multiplied by Scale. They differ
// from the original coordinates by a translation.
func (s *Structure) CaCoords() []structure.Coords {
	coords := make([]structure.Coords, len(s.residues))
	for i, r := range s.residues {
		p := r.Position.Mul(s.Scale)
		coords[i] = structure.Coords{X: p[0], Y: p[1], Z: p[2]}
	}
	return coords
}

// RMSD computes the RMSD between the alpha carbons of two structures after
// optimal superposition, in the units of the files they were read from.
// Residues are paired in order.
//
// An error is returned if either structure is empty or if they do not have
// the same number of residues.
func RMSD(s1, s2 *Structure) (float64, error) {
	if s1.IsEmpty() || s2.IsEmpty() {
		return 0.0, fmt.Errorf("Cannot compute RMSD between '%s' (%d "+
			"residues) and '%s' (%d residues): both need residues.",
			s1.Name, s1.Len(), s2.Name, s2.Len())
	}
	if s1.Len() != s2.Len() {
		return 0.0, fmt.Errorf("Cannot compute RMSD between '%s' and '%s': "+
			"they have %d and %d residues.",
			s1.Name, s2.Name, s1.Len(), s2.Len())
	}
	return structure.RMSD(s1.CaCoords(), s2.CaCoords()), nil
}
