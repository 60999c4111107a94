// Package base classifies raw input symbols for sequence alignment.
//
// 🚀 What is base?
//
//	An Alphabet is an immutable classification table built once and shared
//	(read-only) by every solver call.  It answers three questions about a
//	raw input byte:
//	  • is it a canonical symbol of the alphabet?
//	  • is it the wildcard ("unknown") symbol?
//	  • do two symbols compare equal under the alphabet's equivalence?
//
// ✨ Key features:
//   - immutable after construction — safe to share across goroutines
//   - case-insensitive matching ('a' and 'A' classify the same)
//   - a standard DNA alphabet ({A,C,G,T} + N wildcard) out of the box
//   - optional diagnostics notifier for invalid symbols (OnInvalid),
//     guaranteed to never influence a computed distance
//
// ⚙️ Usage:
//
//	ab := base.DNA()
//	ab.IsBase('G')     // true
//	ab.IsWildcard('n') // true
//	ab.Same('a', 'A')  // true
//
//	// with stderr diagnostics:
//	ab = base.DNA().OnInvalid(func(sym byte) {
//	  fmt.Fprintf(os.Stderr, "invalid symbol %q skipped\n", sym)
//	})
//
// Invalid symbols (anything outside canonical ∪ {wildcard}) are not an
// error: alignment algorithms skip them at zero cost, reporting each
// occurrence through the notifier.
package base
