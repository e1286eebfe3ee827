package pdb

import (
	"fmt"

	"github.com/TuftsBCB/littleprotein/amino"
	"github.com/TuftsBCB/littleprotein/color"
	"github.com/TuftsBCB/littleprotein/linalg"
)

// DefaultResidueColor is the color of a residue that hasn't been colored.
var DefaultResidueColor = color.New(45, 45, 45)

// Residue is a single alpha carbon.
type Residue struct {
	// Key is the chain identifier followed by the sequence number and
	// insertion code, e.g., "A12" or "B100A". It is unique in a Structure.
	Key string

	// Chain is the chain identifier. A blank identifier is '_'.
	Chain byte

	AminoAcid amino.AminoAcid

	// Position is the normalized position of the alpha carbon.
	Position linalg.Vec3

	Color color.Color
}

// NewResidue returns a residue with the default color. Its chain is the
// first byte of key, or 0 if key is empty. New rejects residues without a
// key.
func NewResidue(key string, aa amino.AminoAcid, pos linalg.Vec3) *Residue {
	var chain byte
	if len(key) > 0 {
		chain = key[0]
	}
	return &Residue{
		Key:       key,
		Chain:     chain,
		AminoAcid: aa,
		Position:  pos,
		Color:     DefaultResidueColor,
	}
}

// SeqPosition is the sequence number and insertion code of the residue,
// i.e., the key without its chain.
func (r *Residue) SeqPosition() string {
	if len(r.Key) == 0 {
		return ""
	}
	return r.Key[1:]
}

// Transform multiplies the position of r, as a row vector, by m.
func (r *Residue) Transform(m linalg.Mat3) {
	r.Position = r.Position.MulMat(m)
}

func (r *Residue) SetPosition(p linalg.Vec3) {
	r.Position = p
}

func (r *Residue) SetColor(c color.Color) {
	r.Color = c
}

// SetRGB sets the color from channels in [0, 255]. Values are clamped.
func (r *Residue) SetRGB(red, green, blue float64) {
	r.Color = color.New(red, green, blue)
}

func (r *Residue) String() string {
	return fmt.Sprintf("%s %s %s", r.Key, r.AminoAcid.Observed, r.Position)
}
