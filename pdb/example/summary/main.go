// Example summary reads PDB files in parallel and prints what was found in
// each: the number of residues and chains, and how the residue names were
// resolved. With -fasta, the chain sequences are printed in FASTA format
// instead.
//
// Files are memory mapped, and files ending with ".gz" are decompressed.
package main

import (
	"bytes"
	"compress/gzip"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"runtime"
	"strings"

	"github.com/TuftsBCB/littleprotein/amino"
	"github.com/TuftsBCB/littleprotein/fasta"
	"github.com/TuftsBCB/littleprotein/pdb"
	"github.com/edsrzf/mmap-go"
)

var (
	// flagWorkers controls how many worker goroutines are spawned to process
	// PDB files. By default, it is set to the number of CPUs.
	flagWorkers int
	flagFasta   bool
	flagCols    int
)

func init() {
	log.SetFlags(0)

	flag.IntVar(&flagWorkers, "workers", runtime.NumCPU(),
		"The number of workers to use to process PDB files. This is "+
			"limited by the maximum allowable open file descriptors.")
	flag.BoolVar(&flagFasta, "fasta", false,
		"When set, the sequence of each chain is printed in FASTA format.")
	flag.IntVar(&flagCols, "cols", 60,
		"The number of columns FASTA sequences are wrapped at. "+
			"Use 0 to disable wrapping.")
	flag.Usage = usage
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] pdb-file [ pdb-file ... ]\n",
		path.Base(os.Args[0]))
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nex. './%s -fasta 1crn.pdb 4hhb.pdb.gz'\n",
		path.Base(os.Args[0]))
	os.Exit(1)
}

// structureOrErr values are sent on channels. They correspond to the results
// returned by 'readStructure'.
type structureOrErr struct {
	file      string
	structure *pdb.Structure
	err       error
}

// structureName is the base name of a PDB file without its extensions,
// e.g., "1crn" for "data/1crn.pdb.gz".
func structureName(file string) string {
	name := path.Base(file)
	for _, ext := range []string{".gz", ".pdb", ".ent"} {
		name = strings.TrimSuffix(name, ext)
	}
	return name
}

// readStructure maps a PDB file into memory and parses it. It will
// automatically decompress gzipped files that end with a '.gz' extension.
func readStructure(file string) (*pdb.Structure, error) {
	fp, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	info, err := fp.Stat()
	if err != nil {
		return nil, err
	}
	name := structureName(file)
	if info.Size() == 0 {
		// Empty files cannot be mapped.
		return pdb.Parse(name, "")
	}

	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer mm.Unmap()

	var reader io.Reader = bytes.NewReader(mm)
	if path.Ext(file) == ".gz" {
		gz, err := gzip.NewReader(reader)
		if err != nil {
			return nil, fmt.Errorf("Could not decompress '%s': %s", file, err)
		}
		defer gz.Close()
		reader = gz
	}
	return pdb.Read(reader, name)
}

// pdbWorker is meant to be executed as a goroutine. It continually picks off
// PDB files from the pdbfiles channel, reads them and sends the results
// (including an error if one occurred) via the results channel.
func pdbWorker(pdbfiles chan string, results chan structureOrErr) {
	for pdbfile := range pdbfiles {
		s, err := readStructure(pdbfile)
		results <- structureOrErr{
			file:      pdbfile,
			structure: s,
			err:       err,
		}
	}
}

// summary describes a structure chain by chain.
func summary(s *pdb.Structure) string {
	lines := []string{s.String()}
	for _, chain := range s.Chains() {
		counts := make(map[amino.Kind]int, 3)
		total := 0
		for _, r := range s.Residues() {
			if r.Chain == chain {
				counts[r.AminoAcid.Kind]++
				total++
			}
		}
		lines = append(lines, fmt.Sprintf(
			"  chain %c: %d residues (%d standard, %d modified, %d unknown)",
			chain, total, counts[amino.Standard], counts[amino.Modified],
			counts[amino.Unknown]))
	}
	return strings.Join(lines, "\n")
}

// collect is meant to be run as a single goroutine that reads values sent on
// the 'results' channel. Errors are logged to stderr and structures are
// written to stdout.
//
// collect will stop on its own after it has processed total results, and
// sends the number of failures on done.
func collect(total int, results chan structureOrErr, done chan int) {
	failed := 0
	w := fasta.NewWriter(os.Stdout)
	w.Columns = flagCols
	for i := 0; i < total; i++ {
		res := <-results
		if res.err != nil {
			log.Printf("%s error: %s", res.file, res.err)
			failed++
			continue
		}
		if flagFasta {
			if err := w.WriteAll(res.structure.Sequences()); err != nil {
				log.Printf("%s error: %s", res.file, err)
				failed++
			}
		} else {
			fmt.Printf("%s\n%s\n", res.file, summary(res.structure))
		}
	}
	done <- failed
}

func main() {
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
	}
	if flagWorkers < 1 {
		flagWorkers = 1
	}

	// Setup buffered channels through which to pass PDB file locations and
	// structure (or error) values.
	pdbfiles := make(chan string, 100)
	results := make(chan structureOrErr, 100)
	done := make(chan int)

	go collect(flag.NArg(), results, done)
	for i := 0; i < flagWorkers; i++ {
		go pdbWorker(pdbfiles, results)
	}
	for _, pdbfile := range flag.Args() {
		pdbfiles <- pdbfile
	}
	close(pdbfiles)

	if failed := <-done; failed > 0 {
		log.Printf("%d of %d files could not be read.", failed, flag.NArg())
		os.Exit(1)
	}
}
