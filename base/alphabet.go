package base

import (
	"errors"
	"fmt"
)

// Sentinel errors for alphabet construction.
var (
	// ErrEmptyAlphabet indicates the canonical symbol set is empty.
	ErrEmptyAlphabet = errors.New("base: canonical symbol set must be non-empty")
	// ErrWildcardCollision indicates the wildcard is also a canonical symbol.
	ErrWildcardCollision = errors.New("base: wildcard must not be a canonical symbol")
	// ErrBadSymbol indicates a canonical or wildcard symbol is not an ASCII letter.
	ErrBadSymbol = errors.New("base: symbols must be ASCII letters")
)

// symbol classes stored in the per-byte table.
const (
	classInvalid byte = iota
	classCanonical
	classWildcard
)

// NotifyFunc receives each invalid (non-alphabet) symbol encountered during
// a computation. It is for diagnostics only: implementations may log or
// count, but nothing they do can change a computed distance.
type NotifyFunc func(sym byte)

// Alphabet is an immutable symbol-classification table.
//
// Construct it once (New or DNA), optionally attach a notifier with
// OnInvalid, then pass it by reference into every solver call.  All methods
// are read-only, so a single Alphabet may be shared freely.
type Alphabet struct {
	class  [256]byte // classInvalid / classCanonical / classWildcard
	fold   [256]byte // case-folded identity of alphabet members
	notify NotifyFunc
}

// New builds an Alphabet from a set of canonical symbols and one wildcard
// symbol. Matching is case-insensitive: both cases of every symbol are
// registered, and Same treats 'a' and 'A' as equal.
//
// Returns ErrEmptyAlphabet, ErrBadSymbol, or ErrWildcardCollision on
// malformed input.
func New(canonical string, wildcard byte) (*Alphabet, error) {
	if len(canonical) == 0 {
		return nil, ErrEmptyAlphabet
	}
	if !isLetter(wildcard) {
		return nil, fmt.Errorf("%w: wildcard %q", ErrBadSymbol, wildcard)
	}

	a := &Alphabet{}
	for i := 0; i < len(canonical); i++ {
		c := canonical[i]
		if !isLetter(c) {
			return nil, fmt.Errorf("%w: canonical %q", ErrBadSymbol, c)
		}
		if toUpper(c) == toUpper(wildcard) {
			return nil, ErrWildcardCollision
		}
		a.register(c, classCanonical)
	}
	a.register(wildcard, classWildcard)

	return a, nil
}

// DNA returns the standard genetic alphabet: canonical bases {A,C,G,T} plus
// the wildcard base N (an unknown nucleotide). This is the alphabet used by
// FASTA sequence files.
func DNA() *Alphabet {
	a, err := New("ACGT", 'N')
	if err != nil {
		// unreachable: the literal input is well-formed
		panic(err)
	}

	return a
}

// OnInvalid returns a copy of the alphabet that reports invalid symbols to
// fn. The receiver is left untouched, preserving immutability; the copy
// shares no mutable state with it.
func (a *Alphabet) OnInvalid(fn NotifyFunc) *Alphabet {
	clone := *a
	clone.notify = fn

	return &clone
}

// IsBase reports whether c is an alphabet member: canonical or wildcard.
func (a *Alphabet) IsBase(c byte) bool {
	return a.class[c] != classInvalid
}

// IsWildcard reports whether c is the wildcard (unknown) symbol.
func (a *Alphabet) IsWildcard(c byte) bool {
	return a.class[c] == classWildcard
}

// Same reports whether x and y are equal under the alphabet's equivalence
// (case-insensitive). Non-members are never equal to anything.
func (a *Alphabet) Same(x, y byte) bool {
	if a.class[x] == classInvalid || a.class[y] == classInvalid {
		return false
	}

	return a.fold[x] == a.fold[y]
}

// ReportInvalid forwards an invalid symbol to the notifier, if one was
// attached with OnInvalid. It must be called at most once per occurrence of
// an invalid symbol in an input sequence.
func (a *Alphabet) ReportInvalid(c byte) {
	if a.notify != nil {
		a.notify(c)
	}
}

// register records both cases of symbol c under the given class.
func (a *Alphabet) register(c byte, class byte) {
	up := toUpper(c)
	lo := up + ('a' - 'A')
	a.class[up] = class
	a.class[lo] = class
	a.fold[up] = up
	a.fold[lo] = up
}

// isLetter reports whether c is an ASCII letter.
func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// toUpper folds an ASCII letter to upper case.
func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}

	return c
}
