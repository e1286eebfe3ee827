package pdb

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/TuftsBCB/littleprotein/amino"
	"github.com/TuftsBCB/littleprotein/color"
	"github.com/TuftsBCB/littleprotein/linalg"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

// caLine formats an alpha carbon record as it appears in a PDB file.
func caLine(record string, alt byte, res string, chain byte, seqNum int,
	x, y, z float64) string {

	return fmt.Sprintf("%-6s%5d  CA %c%3s %c%4d    %8.3f%8.3f%8.3f"+
		"  1.00 20.00           C",
		record, seqNum, alt, res, chain, seqNum, x, y, z)
}

func mustParse(t *testing.T, name string, lines ...string) *Structure {
	s, err := Parse(name, strings.Join(lines, "\n"))
	if err != nil {
		t.Fatalf("Could not parse '%s': %s", name, err)
	}
	return s
}

func readFixture(t *testing.T, name string) *Structure {
	f, err := os.Open("testdata/" + name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	s, err := Read(f, strings.TrimSuffix(name, ".pdb"))
	if err != nil {
		t.Fatalf("Could not read '%s': %s", name, err)
	}
	return s
}

func TestParseThreeResidues(t *testing.T) {
	s := mustParse(t, "three",
		caLine("ATOM", ' ', "ALA", 'A', 1, 1, 2, 3),
		caLine("ATOM", ' ', "GLY", 'A', 2, 4, 2, 3),
		caLine("ATOM", ' ', "XYZ", 'B', 1, 1, 6, 3),
	)
	if s.Len() != 3 {
		t.Fatalf("Expected 3 residues but got %d.", s.Len())
	}
	if got := string(s.Chains()); got != "AB" {
		t.Fatalf("Expected chains 'AB' but got '%s'.", got)
	}
	if got := s.Residue("A1").AminoAcid.One; got != 'A' {
		t.Fatalf("Expected A1 to be alanine, got '%c'.", got)
	}
	b1 := s.Residue("B1")
	if b1.AminoAcid.ID != 0 || b1.AminoAcid.Kind != amino.Unknown {
		t.Fatalf("Expected B1 to be unknown, got %#v.", b1.AminoAcid)
	}
	if b1.Chain != 'B' || b1.SeqPosition() != "1" {
		t.Fatalf("B1 has chain '%c' and position '%s'.",
			b1.Chain, b1.SeqPosition())
	}
	if b1.Color != DefaultResidueColor {
		t.Fatalf("Expected the default color, got %s.", b1.Color)
	}
	if s.Residue("C1") != nil {
		t.Fatalf("C1 should not exist.")
	}

	// The spread along y is the largest, and the box has edge 1.
	if s.Scale != 4 {
		t.Fatalf("Expected scale 4, got %f.", s.Scale)
	}
	want := []linalg.Vec3{{-0.375, -0.5, 0}, {0.375, -0.5, 0}, {-0.375, 0.5, 0}}
	if diff := cmp.Diff(want, s.Coords(), approx); diff != "" {
		t.Fatalf("Positions (-want +got):\n%s", diff)
	}
}

func TestParseFile(t *testing.T) {
	s := readFixture(t, "two_chains.pdb")

	wantKeys := []string{"A1", "A2", "A3", "A3A", "B1", "B2"}
	if diff := cmp.Diff(wantKeys, s.Keys()); diff != "" {
		t.Fatalf("Keys (-want +got):\n%s", diff)
	}
	if got := string(s.Chains()); got != "AB" {
		t.Fatalf("Expected chains 'AB' but got '%s'.", got)
	}
	if math.Abs(s.Scale-12.547) > 1e-9 {
		t.Fatalf("Expected scale 12.547, got %f.", s.Scale)
	}

	mse := s.Residue("A3").AminoAcid
	if mse.Kind != amino.Modified || mse.Standard != "MET" ||
		mse.Observed != "MSE" {
		t.Fatalf("HETATM MSE was not resolved to MET: %#v", mse)
	}

	for _, r := range s.Residues() {
		if !r.Position.IsFinite() {
			t.Fatalf("%s is not finite.", r)
		}
		for i := range r.Position {
			if r.Position[i] < -0.5-1e-12 || r.Position[i] > 0.5+1e-12 {
				t.Fatalf("%s is outside of the unit box.", r)
			}
		}
	}

	// Distances in file units survive normalization.
	a1, b2 := linalg.Vec3{17.047, 14.099, 3.625}, linalg.Vec3{6.0, 7.5, -4.0}
	ca := s.CaCoords()
	got := linalg.Vec3{ca[0].X, ca[0].Y, ca[0].Z}.Distance(
		linalg.Vec3{ca[5].X, ca[5].Y, ca[5].Z})
	if math.Abs(got-a1.Distance(b2)) > 1e-9 {
		t.Fatalf("Expected distance %f, got %f.", a1.Distance(b2), got)
	}

	var seqs []string
	for _, sq := range s.Sequences() {
		seqs = append(seqs, fmt.Sprintf("%s %s", sq.Name, string(sq.Residues)))
	}
	if diff := cmp.Diff([]string{"two_chains_A TCMP", "two_chains_B GX"},
		seqs); diff != "" {
		t.Fatalf("Sequences (-want +got):\n%s", diff)
	}
}

func TestParseFirstModelOnly(t *testing.T) {
	s := readFixture(t, "models.pdb")
	if diff := cmp.Diff([]string{"A1", "A2", "A3"}, s.Keys()); diff != "" {
		t.Fatalf("Keys (-want +got):\n%s", diff)
	}
	if s.Scale != 3.8 {
		t.Fatalf("Expected scale 3.8, got %f.", s.Scale)
	}
}

func TestParseTerminatedChain(t *testing.T) {
	s := mustParse(t, "ter",
		caLine("ATOM", ' ', "ALA", 'A', 1, 0, 0, 0),
		caLine("ATOM", ' ', "GLY", 'A', 2, 1, 0, 0),
		"TER       3      GLY A   2",
		caLine("ATOM", ' ', "SER", 'A', 3, 2, 0, 0),
		caLine("HETATM", ' ', "MSE", 'B', 1, 3, 0, 0),
		"TER",
		caLine("ATOM", ' ', "SER", 'B', 2, 4, 0, 0),
		caLine("ATOM", ' ', "SER", ' ', 7, 5, 0, 0),
	)
	if diff := cmp.Diff([]string{"A1", "A2", "B1", "_7"}, s.Keys()); diff != "" {
		t.Fatalf("Keys (-want +got):\n%s", diff)
	}
	if got := string(s.Chains()); got != "AB_" {
		t.Fatalf("Expected chains 'AB_' but got '%s'.", got)
	}
}

func TestParseIgnores(t *testing.T) {
	s := mustParse(t, "ignores",
		"HEADER    SOMETHING",
		"",
		"ATOM",
		"ATOM      1  N   ALA A   1       0.000   0.000   0.000",
		"ATOM      2  CB  ALA A   1       0.000   0.000   0.000",
		"REMARK 465   CA",
		"atom      3  CA  ALA A   1       0.000   0.000   0.000",
		caLine("ATOM", ' ', "ALA", 'A', 1, 5, 5, 5),
		"END",
	)
	if s.Len() != 1 {
		t.Fatalf("Expected 1 residue but got %d: %v", s.Len(), s.Keys())
	}
	// A single point lands on the center.
	if s.Scale != linalg.DegenerateCoefficient {
		t.Fatalf("Expected scale %f, got %f.",
			linalg.DegenerateCoefficient, s.Scale)
	}
	if p := s.Residue("A1").Position; p != (linalg.Vec3{}) {
		t.Fatalf("Expected the origin, got %s.", p)
	}
}

func TestParseAlternateLocations(t *testing.T) {
	s := mustParse(t, "altloc",
		caLine("ATOM", 'A', "SER", 'A', 1, 0, 0, 0),
		caLine("ATOM", 'B', "SER", 'A', 1, 9, 9, 9),
		caLine("ATOM", ' ', "GLY", 'A', 2, 2, 0, 0),
	)
	if diff := cmp.Diff([]string{"A1", "A2"}, s.Keys()); diff != "" {
		t.Fatalf("Keys (-want +got):\n%s", diff)
	}
	if s.Scale != 2 {
		t.Fatalf("The second conformer was used: scale is %f.", s.Scale)
	}
}

func TestParseDuplicate(t *testing.T) {
	_, err := Parse("dup", strings.Join([]string{
		caLine("ATOM", ' ', "SER", 'A', 1, 0, 0, 0),
		caLine("ATOM", ' ', "SER", 'A', 1, 1, 0, 0),
	}, "\n"))
	if !errors.Is(err, ErrDuplicateResidue) {
		t.Fatalf("Expected a duplicate residue error, got %v.", err)
	}
	var malformed *MalformedRecordError
	if !errors.As(err, &malformed) || malformed.Line != 2 {
		t.Fatalf("Expected the error on line 2, got %v.", err)
	}
}

func TestParseMalformed(t *testing.T) {
	good := caLine("ATOM", ' ', "ALA", 'A', 1, 1, 2, 3)
	tests := []struct {
		line  string
		field string
		cause error
	}{
		{good[:30] + "     abc" + good[38:], "x", strconv.ErrSyntax},
		{good[:38] + "     NaN" + good[46:], "y", ErrNotFinite},
		{good[:46] + "    -inf" + good[54:], "z", ErrNotFinite},
		{good[:46] + "        " + good[54:], "z", strconv.ErrSyntax},
		{good[:50], "coordinates", ErrTruncated},
	}
	for _, test := range tests {
		_, err := Parse("bad", "HEADER\n"+test.line+"\n")
		var malformed *MalformedRecordError
		if !errors.As(err, &malformed) {
			t.Errorf("Expected a malformed record error for '%s', got %v.",
				test.line, err)
			continue
		}
		if malformed.Field != test.field || malformed.Line != 2 {
			t.Errorf("Expected field %s on line 2, got %s on line %d.",
				test.field, malformed.Field, malformed.Line)
		}
		if !errors.Is(err, test.cause) {
			t.Errorf("Expected cause '%s', got '%s'.", test.cause, err)
		}
	}
}

func TestParseBadResidueName(t *testing.T) {
	_, err := Parse("bad", caLine("ATOM", ' ', "", 'A', 1, 1, 2, 3))
	var invalid *amino.InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("Expected an invalid input error, got %v.", err)
	}
}

func TestParseEmpty(t *testing.T) {
	for _, raw := range []string{"", "HEADER    NOTHING\nEND\n"} {
		s, err := Parse("empty", raw)
		if err != nil {
			t.Fatal(err)
		}
		if !s.IsEmpty() || s.Scale != 1.0 || len(s.Chains()) != 0 {
			t.Fatalf("Expected an empty structure, got %s.", s)
		}
	}

	e := Empty()
	if e.Name != "EmptyStructure" || !e.IsEmpty() || e.Scale != 1.0 {
		t.Fatalf("Unexpected empty structure: %s", e)
	}
}

func TestNew(t *testing.T) {
	ala, _ := amino.Lookup("ALA")
	a := NewResidue("A1", ala, linalg.Vec3{})
	b := NewResidue("A1", ala, linalg.Vec3{1, 1, 1})

	if _, err := New("dup", []*Residue{a, b}, 1); !errors.Is(err, ErrDuplicateResidue) {
		t.Fatalf("Expected a duplicate residue error, got %v.", err)
	}
	s, err := New("moved", []*Residue{a}, 1)
	if err != nil {
		t.Fatal(err)
	}
	s.Residue("A1").SetPosition(linalg.Vec3{1, 2, 3})
	if got := s.Coords()[0]; got != (linalg.Vec3{1, 2, 3}) {
		t.Fatalf("Expected the new position, got %s.", got)
	}

	for _, scale := range []float64{0, -1, math.NaN()} {
		if _, err := New("scale", []*Residue{a}, scale); err == nil {
			t.Fatalf("Scale %f should be rejected.", scale)
		}
	}

	nokey := NewResidue("", ala, linalg.Vec3{})
	if nokey.Chain != 0 || nokey.SeqPosition() != "" {
		t.Fatalf("Expected no chain and no position, got '%c' and '%s'.",
			nokey.Chain, nokey.SeqPosition())
	}
	if _, err := New("nokey", []*Residue{nokey}, 1); err == nil {
		t.Fatalf("A residue without a key should be rejected.")
	}
}

func TestRotate(t *testing.T) {
	s := readFixture(t, "two_chains.pdb")
	before := s.Coords()
	if diff := cmp.Diff(before, s.Rotate(0, 0).Coords()); diff != "" {
		t.Fatalf("Identity rotation moved residues (-want +got):\n%s", diff)
	}

	s.Rotate(0.7, -1.3)
	if diff := cmp.Diff(before, s.Coords(), approx); diff == "" {
		t.Fatalf("Rotation did not move anything.")
	}
	for i, p := range s.Coords() {
		if math.Abs(p.Norm()-before[i].Norm()) > 1e-9 {
			t.Fatalf("Rotation about the origin changed the norm of %s.",
				s.Residues()[i])
		}
	}

	orig := readFixture(t, "two_chains.pdb")
	rmsd, err := RMSD(orig, s)
	if err != nil {
		t.Fatal(err)
	}
	if rmsd > 1e-4 {
		t.Fatalf("Expected an RMSD of 0 after rotation, got %f.", rmsd)
	}
}

func TestRMSDErrors(t *testing.T) {
	s := readFixture(t, "two_chains.pdb")
	if _, err := RMSD(s, Empty()); err == nil {
		t.Fatalf("Expected an error for an empty structure.")
	}
	if _, err := RMSD(s, readFixture(t, "models.pdb")); err == nil {
		t.Fatalf("Expected an error for structures of different sizes.")
	}
}

func TestColorChains(t *testing.T) {
	s := readFixture(t, "two_chains.pdb")
	s.ColorChains(nil, nil)
	for _, r := range s.Residues() {
		want := DefaultPalette[0]
		if r.Chain == 'B' {
			want = DefaultPalette[1]
		}
		if r.Color != want {
			t.Fatalf("%s has color %s, expected %s.", r, r.Color, want)
		}
	}

	red := color.New(255, 0, 0)
	palette := []color.Color{color.New(1, 2, 3)}
	s.ColorChains(palette, map[byte]color.Color{'A': red})
	if got := s.Residue("A2").Color; got != red {
		t.Fatalf("Override was not used for chain A: %s", got)
	}
	if got := s.Residue("B2").Color; got != palette[0] {
		t.Fatalf("Expected %s for chain B, got %s.", palette[0], got)
	}

	// Chain A is overridden and leaves the first color to chain B.
	two := []color.Color{color.New(1, 1, 1), color.New(2, 2, 2)}
	s.ColorChains(two, map[byte]color.Color{'A': red})
	if got := s.Residue("B1").Color; got != two[0] {
		t.Fatalf("Expected %s for chain B, got %s.", two[0], got)
	}
	if got := s.Residue("A1").Color; got != red {
		t.Fatalf("Override was not used for chain A: %s", got)
	}

	if n := s.SetChainColor('B', red); n != 2 {
		t.Fatalf("Expected 2 residues in chain B, got %d.", n)
	}
	if err := s.SetResidueColor("Z9", red); !errors.Is(err, ErrNoResidue) {
		t.Fatalf("Expected a missing residue error, got %v.", err)
	}
	if err := s.SetResidueColor("A1", palette[0]); err != nil {
		t.Fatal(err)
	}
	s.Residue("A2").SetRGB(300, -4, 10.4)
	if got := s.Residue("A2").Color.RGB(); got != [3]int{255, 0, 10} {
		t.Fatalf("Expected a clamped color, got %v.", got)
	}
}

func TestDepthOrder(t *testing.T) {
	s := mustParse(t, "depth",
		caLine("ATOM", ' ', "ALA", 'A', 1, 0, 0, 2),
		caLine("ATOM", ' ', "ALA", 'A', 2, 1, 0, -1),
		caLine("ATOM", ' ', "ALA", 'A', 3, 2, 0, 2),
		caLine("ATOM", ' ', "ALA", 'A', 4, 3, 0, 0),
	)
	var keys []string
	for _, r := range s.DepthOrder() {
		keys = append(keys, r.Key)
	}
	if diff := cmp.Diff([]string{"A2", "A4", "A1", "A3"}, keys); diff != "" {
		t.Fatalf("Depth order (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"A1", "A2", "A3", "A4"}, s.Keys()); diff != "" {
		t.Fatalf("Depth ordering changed the structure (-want +got):\n%s", diff)
	}
}

func ExampleParse() {
	raw, err := os.ReadFile("testdata/two_chains.pdb")
	if err != nil {
		fmt.Println(err)
		return
	}
	s, err := Parse("1TST", string(raw))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(s)
	for _, sq := range s.Sequences() {
		fmt.Printf("%s %s\n", sq.Name, string(sq.Residues))
	}
	fmt.Println(s.Residue("A3").AminoAcid)
	// Output:
	// 1TST: 6 residues in 2 chains (scale 12.5470)
	// 1TST_A TCMP
	// 1TST_B GX
	// AminoAcid('MSE')
}
