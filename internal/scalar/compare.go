package scalar

import "cmp"

// Comparisons look at values only; derivatives do not take part.

// Compare returns -1, 0 or +1 depending on whether a's value is less than,
// equal to, or greater than b's.
func Compare[S Number[S]](a, b S) int { return cmp.Compare(a.Value(), b.Value()) }

// Less reports whether a's value is less than b's.
func Less[S Number[S]](a, b S) bool { return a.Value() < b.Value() }

// Greater reports whether a's value is greater than b's.
func Greater[S Number[S]](a, b S) bool { return a.Value() > b.Value() }

// Equal reports whether a and b have the same value.
func Equal[S Number[S]](a, b S) bool { return a.Value() == b.Value() }
