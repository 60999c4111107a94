package fasta

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// scanBufSize is the line-buffer ceiling: genomic FASTA lines are usually
// wrapped at 60-80 columns, but some exporters emit one unwrapped line per
// record, so allow lines up to 64 MiB.
const scanBufSize = 64 << 20

// Read consumes r to EOF and returns the concatenation of all sequence
// data: header lines ('>') and comment lines (';') are dropped, whitespace
// inside sequence lines is dropped, everything else is kept verbatim.
//
// An empty result is valid — it is the degenerate zero-length sequence.
func Read(r io.Reader) ([]byte, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64<<10), scanBufSize)

	var seq []byte
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 || line[0] == '>' || line[0] == ';' {
			continue
		}
		for _, c := range line {
			if c == ' ' || c == '\t' || c == '\r' {
				continue
			}
			seq = append(seq, c)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta: read: %w", err)
	}

	return seq, nil
}

// ReadFile loads one sequence from the FASTA file at path. See Read.
func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fasta: open: %w", err)
	}
	defer f.Close()

	return Read(f)
}
