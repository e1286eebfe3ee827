package pdb

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/TuftsBCB/littleprotein/amino"
	"github.com/TuftsBCB/littleprotein/linalg"
)

// Read reads everything from r and parses it with Parse.
func Read(r io.Reader, name string) (*Structure, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(name, string(raw))
}

// Parse builds a structure from the text of a PDB file. Every alpha carbon
// of the first model becomes a residue; their positions are mapped into
// NormalizationBox, and the coefficient used becomes the structure's Scale.
//
// A record that does not yield a residue is ignored, but an alpha carbon
// record with bad coordinates fails the whole parse with a
// *MalformedRecordError, and one with a bad residue name with an
// *amino.InvalidInputError. Input without any alpha carbons gives an empty
// structure.
func Parse(name, raw string) (*Structure, error) {
	p := &parser{
		closed: make(map[byte]bool, 2),
		seen:   make(map[string]bool, 100),
	}
	for i, line := range strings.Split(raw, "\n") {
		p.lineNum = i + 1
		p.line = strings.TrimSuffix(line, "\r")
		done, err := p.parseLine()
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
	}

	positions, scale := linalg.MapToBox3(p.positions, NormalizationBox)
	residues := make([]*Residue, len(p.found))
	for i, f := range p.found {
		residues[i] = NewResidue(f.key, f.aa, positions[i])
	}
	return New(name, residues, scale)
}

type candidate struct {
	key string
	aa  amino.AminoAcid
}

type parser struct {
	line    string
	lineNum int
	models  int

	// open is the chain of the last residue read, closed holds the chains
	// ended by a TER record.
	open   byte
	closed map[byte]bool

	seen      map[string]bool
	found     []candidate
	positions []linalg.Vec3
}

// parseLine handles the current line and reports whether reading should
// stop.
func (p *parser) parseLine() (bool, error) {
	switch record := p.raw(1, 6); {
	case record == "ATOM  " || record == "HETATM":
		return false, p.parseAtom()
	case record == "MODEL ":
		p.models++
		return p.models > 1, nil
	case strings.HasPrefix(record, "TER"):
		if p.open != 0 {
			p.closed[p.open] = true
			p.open = 0
		}
	}
	return false, nil
}

func (p *parser) parseAtom() error {
	if p.raw(14, 15) != "CA" {
		return nil
	}
	chain := p.at(22)
	if chain == ' ' {
		chain = '_'
	}
	if p.closed[chain] {
		return nil
	}
	if len(p.line) < 54 {
		return &MalformedRecordError{
			Line:  p.lineNum,
			Field: "coordinates",
			Text:  strings.TrimSpace(p.line),
			Err:   ErrTruncated,
		}
	}

	// The key is made of columns 22-27: chain, sequence number and
	// insertion code.
	key := string(chain) + strings.Join(strings.Fields(p.raw(23, 27)), "")
	if p.seen[key] {
		// A second alpha carbon with an alternate location indicator is
		// another conformation of a residue we already have.
		if p.at(17) != ' ' {
			return nil
		}
		return &MalformedRecordError{
			Line:  p.lineNum,
			Field: "residue",
			Text:  key,
			Err:   ErrDuplicateResidue,
		}
	}

	var pos linalg.Vec3
	var err error
	if pos[0], err = p.atof("x", 31, 38); err != nil {
		return err
	}
	if pos[1], err = p.atof("y", 39, 46); err != nil {
		return err
	}
	if pos[2], err = p.atof("z", 47, 54); err != nil {
		return err
	}

	aa, err := amino.Lookup(p.raw(18, 20))
	if err != nil {
		return fmt.Errorf("Bad residue name on line %d: %w", p.lineNum, err)
	}

	p.seen[key] = true
	p.found = append(p.found, candidate{key, aa})
	p.positions = append(p.positions, pos)
	p.open = chain
	return nil
}

// atof reads a finite number from columns start through end.
func (p *parser) atof(field string, start, end int) (float64, error) {
	text := p.cols(start, end)
	v, err := strconv.ParseFloat(text, 64)
	if err == nil && (math.IsInf(v, 0) || math.IsNaN(v)) {
		err = ErrNotFinite
	}
	if err != nil {
		return 0, &MalformedRecordError{
			Line:  p.lineNum,
			Field: field,
			Text:  text,
			Err:   err,
		}
	}
	return v, nil
}

// raw returns columns start through end (1-based and inclusive, as in the
// PDB format description) of the current line, cut short if the line is.
func (p *parser) raw(start, end int) string {
	rs, re := start-1, end
	if rs >= len(p.line) {
		return ""
	}
	if re > len(p.line) {
		re = len(p.line)
	}
	return p.line[rs:re]
}

// cols is raw with surrounding whitespace removed.
func (p *parser) cols(start, end int) string {
	return strings.TrimSpace(p.raw(start, end))
}

// at returns the byte in the given column, or 0 if the line is too short.
func (p *parser) at(column int) byte {
	i := column - 1
	if i < 0 || i >= len(p.line) {
		return 0
	}
	return p.line[i]
}
