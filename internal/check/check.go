// Package check implements fail-fast contract checks.
//
// A failed check panics with a *ContractError. Contract violations are
// programming errors in the calling numerical code (wrong variable count,
// index out of range) and are never returned as error values.
package check

import "fmt"

// ContractError describes a violated precondition.
type ContractError struct {
	What string // Name of the checked quantity, e.g. "active index".
	Op   string // Relation that was required: ">=", "<=", "<", "==".
	LHS  int
	RHS  int
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("hessad: %s: %d %s %d violated", e.What, e.LHS, e.Op, e.RHS)
}

// GEQ panics unless v >= bound.
func GEQ(what string, v, bound int) {
	if v < bound {
		panic(&ContractError{What: what, Op: ">=", LHS: v, RHS: bound})
	}
}

// Less panics unless v < bound.
func Less(what string, v, bound int) {
	if v >= bound {
		panic(&ContractError{What: what, Op: "<", LHS: v, RHS: bound})
	}
}

// LEQ panics unless v <= bound.
func LEQ(what string, v, bound int) {
	if v > bound {
		panic(&ContractError{What: what, Op: "<=", LHS: v, RHS: bound})
	}
}

// Equal panics unless v == want.
func Equal(what string, v, want int) {
	if v != want {
		panic(&ContractError{What: what, Op: "==", LHS: v, RHS: want})
	}
}

// Index panics unless 0 <= idx < n.
func Index(what string, idx, n int) {
	GEQ(what, idx, 0)
	Less(what, idx, n)
}
