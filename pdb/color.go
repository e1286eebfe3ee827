package pdb

import (
	"fmt"

	"github.com/TuftsBCB/littleprotein/color"
)

// SetResidueColor colors the residue with the given key. ErrNoResidue is
// returned if there isn't one.
func (s *Structure) SetResidueColor(key string, c color.Color) error {
	r := s.Residue(key)
	if r == nil {
		return fmt.Errorf("Cannot color '%s' in '%s': %w",
			key, s.Name, ErrNoResidue)
	}
	r.SetColor(c)
	return nil
}

// SetChainColor colors every residue of a chain and returns how many there
// were.
func (s *Structure) SetChainColor(chain byte, c color.Color) int {
	n := 0
	for _, r := range s.residues {
		if r.Chain == chain {
			r.SetColor(c)
			n++
		}
	}
	return n
}

// ColorChains gives every chain one color. A chain in overrides gets that
// color. The others are given the colors of palette in order of appearance,
// starting over when the palette runs out; overridden chains do not use up a
// palette color. DefaultPalette is used when palette is empty.
func (s *Structure) ColorChains(
	palette []color.Color,
	overrides map[byte]color.Color,
) {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	n := 0
	for _, chain := range s.chains {
		c, ok := overrides[chain]
		if !ok {
			c = palette[n%len(palette)]
			n++
		}
		s.SetChainColor(chain, c)
	}
}
