package amino

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/TuftsBCB/seq"
)

// Kind says how a residue name was resolved.
type Kind int

const (
	Unknown Kind = iota
	Standard
	Modified
)

func (k Kind) String() string {
	switch k {
	case Unknown:
		return "Unknown"
	case Standard:
		return "Standard"
	case Modified:
		return "Modified"
	}
	panic(fmt.Sprintf("Unknown residue kind: %d", k))
}

// AminoAcid is the identity of a residue. It is a plain value and is never
// modified once returned.
type AminoAcid struct {
	// ID is 0 for unknown residues and 1 through 20 for the standard ones.
	ID int

	// One is the one letter code, 'X' when unknown.
	One seq.Residue

	// Standard is the three letter code the residue resolves to. It is
	// "XXX" when the residue is unknown.
	Standard string

	// Observed is the three letter code as it was found, upper-cased.
	Observed string

	Name string
	Kind Kind
}

// IsStandard returns true if the residue was observed under its standard
// name.
func (aa AminoAcid) IsStandard() bool {
	return aa.Kind == Standard
}

// IsAminoAcid returns true if the residue resolved to one of the twenty
// standard amino acids, directly or through the modified residue table.
func (aa AminoAcid) IsAminoAcid() bool {
	return aa.ID != 0
}

func (aa AminoAcid) String() string {
	return fmt.Sprintf("AminoAcid('%s')", aa.Observed)
}

var standards = []AminoAcid{
	{ID: 1, One: 'A', Standard: "ALA", Name: "Alanine"},
	{ID: 2, One: 'C', Standard: "CYS", Name: "Cysteine"},
	{ID: 3, One: 'D', Standard: "ASP", Name: "Aspartate"},
	{ID: 4, One: 'E', Standard: "GLU", Name: "Glutamate"},
	{ID: 5, One: 'F', Standard: "PHE", Name: "Phenylalanine"},
	{ID: 6, One: 'G', Standard: "GLY", Name: "Glycine"},
	{ID: 7, One: 'H', Standard: "HIS", Name: "Histidine"},
	{ID: 8, One: 'I', Standard: "ILE", Name: "Isoleucine"},
	{ID: 9, One: 'K', Standard: "LYS", Name: "Lysine"},
	{ID: 10, One: 'L', Standard: "LEU", Name: "Leucine"},
	{ID: 11, One: 'M', Standard: "MET", Name: "Methionine"},
	{ID: 12, One: 'N', Standard: "ASN", Name: "Asparagine"},
	{ID: 13, One: 'P', Standard: "PRO", Name: "Proline"},
	{ID: 14, One: 'Q', Standard: "GLN", Name: "Glutamine"},
	{ID: 15, One: 'R', Standard: "ARG", Name: "Arginine"},
	{ID: 16, One: 'S', Standard: "SER", Name: "Serine"},
	{ID: 17, One: 'T', Standard: "THR", Name: "Threonine"},
	{ID: 18, One: 'V', Standard: "VAL", Name: "Valine"},
	{ID: 19, One: 'W', Standard: "TRP", Name: "Tryptophan"},
	{ID: 20, One: 'Y', Standard: "TYR", Name: "Tyrosine"},
}

// byThree and byOne index standards. They are created in this package's
// 'init' function.
var (
	byThree = map[string]AminoAcid{}
	byOne   = map[seq.Residue]AminoAcid{}
)

func init() {
	for i := range standards {
		standards[i].Observed = standards[i].Standard
		standards[i].Kind = Standard
		byThree[standards[i].Standard] = standards[i]
		byOne[standards[i].One] = standards[i]
	}
}

func unknown(observed string) AminoAcid {
	return AminoAcid{
		ID:       0,
		One:      'X',
		Standard: "XXX",
		Observed: observed,
		Name:     "unknown",
		Kind:     Unknown,
	}
}

// Lookup resolves a three letter residue name. Surrounding whitespace is
// ignored and case does not matter.
//
// A name that is neither standard nor a known modified residue resolves to
// the unknown amino acid; that is not an error. An *InvalidInputError is
// returned only when the trimmed name is not three characters (not bytes)
// long.
func Lookup(code string) (AminoAcid, error) {
	trimmed := strings.TrimSpace(code)
	if utf8.RuneCountInString(trimmed) != 3 {
		return AminoAcid{}, &InvalidInputError{Code: code}
	}
	observed := strings.ToUpper(trimmed)
	if aa, ok := byThree[observed]; ok {
		return aa, nil
	}
	if target, ok := modified[observed]; ok {
		aa := byThree[target]
		aa.Observed = observed
		aa.Kind = Modified
		return aa, nil
	}
	return unknown(observed), nil
}

// Standards returns the twenty standard amino acids in order of ID.
func Standards() []AminoAcid {
	return append([]AminoAcid(nil), standards...)
}

// FromOne returns the standard amino acid with the given one letter code.
func FromOne(r seq.Residue) (AminoAcid, bool) {
	aa, ok := byOne[r]
	return aa, ok
}

// ThreeToOne returns the one letter code of a residue name, or 'X' if it
// can't be resolved.
func ThreeToOne(code string) seq.Residue {
	aa, err := Lookup(code)
	if err != nil {
		return 'X'
	}
	return aa.One
}

// IsModifiedCode returns true if code names a known modified residue.
func IsModifiedCode(code string) bool {
	_, ok := ModifiedTarget(code)
	return ok
}

// ModifiedTarget returns the standard three letter code a modified residue
// resolves to.
func ModifiedTarget(code string) (string, bool) {
	target, ok := modified[strings.ToUpper(strings.TrimSpace(code))]
	return target, ok
}
