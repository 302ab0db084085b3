// Package scalar implements forward-mode differentiable scalars that carry
// exact first derivatives (gradient) and, optionally, second derivatives
// (Hessian) with respect to k independent variables.
//
// Two orthogonal choices select the concrete type:
//
//	                 with Hessian     gradient only
//	static k (D)     Scalar[D]        FirstOrder[D]
//	dynamic k        Dynamic          DynamicFirstOrder
//
// Static types fix k through a Dim type parameter (D1..D8, or any type with a
// Len method). Dynamic types store k per value and receive it at construction.
// Static-only constructors (Constant, Active) do not exist for dynamic types,
// and first-order types have no Hessian accessor, so both misuses are compile
// errors.
//
// The generic factories MakePassive, MakeActive and MakeActiveVector work for
// every type. Code written against them compiles and behaves correctly in
// either sizing mode:
//
//	func energy[S scalar.Number[S]](x []float64) S {
//	    v := scalar.MakeActiveVector[S](x)
//	    return scalar.Mul(v[0], scalar.Sin(v[1]))
//	}
//
//	e := energy[scalar.Scalar[scalar.D2]]([]float64{1, 2})
//	d := energy[scalar.Dynamic]([]float64{1, 2})
//
// Invalid indices and sizes are programming errors: the factories panic with
// a *check.ContractError instead of returning an error.
package scalar
