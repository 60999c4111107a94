// Package fasta loads symbol sequences from FASTA-formatted files.
//
// A FASTA file holds one or more records: a header line starting with '>'
// (or the legacy ';' comment marker) followed by sequence lines. This
// package concatenates every sequence line into one contiguous byte slice,
// dropping headers, comments and whitespace — the shape the alignment
// solvers consume. Plain text without any header is accepted too.
//
// ⚙️ Usage:
//
//	seq, err := fasta.ReadFile("ba52_recent_omicron.fasta")
//	if err != nil { ... }
//	dist, err := nw.Distance(seq, other, nil)
//
// The loader performs no symbol classification: invalid symbols are kept
// as-is, because the solvers skip them at zero cost and report them through
// the alphabet notifier.
package fasta
