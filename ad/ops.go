// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ad

import "github.com/born-ml/hessad/internal/scalar"

// Add returns a + b.
func Add[S Number[S]](a, b S) S { return scalar.Add(a, b) }

// Sub returns a - b.
func Sub[S Number[S]](a, b S) S { return scalar.Sub(a, b) }

// Mul returns a * b.
func Mul[S Number[S]](a, b S) S { return scalar.Mul(a, b) }

// Div returns a / b.
func Div[S Number[S]](a, b S) S { return scalar.Div(a, b) }

// Neg returns -a.
func Neg[S Number[S]](a S) S { return scalar.Neg(a) }

// AddConst returns a + c.
func AddConst[S Number[S]](a S, c float64) S { return scalar.AddConst(a, c) }

// Scale returns c * a.
func Scale[S Number[S]](a S, c float64) S { return scalar.Scale(a, c) }

// Inv returns 1 / a.
func Inv[S Number[S]](a S) S { return scalar.Inv(a) }

// Square returns a².
func Square[S Number[S]](a S) S { return scalar.Square(a) }

// Sqrt returns √a.
func Sqrt[S Number[S]](a S) S { return scalar.Sqrt(a) }

// Pow returns a^p.
func Pow[S Number[S]](a S, p float64) S { return scalar.Pow(a, p) }

// Powi returns a^n.
func Powi[S Number[S]](a S, n int) S { return scalar.Powi(a, n) }

// Exp returns e^a.
func Exp[S Number[S]](a S) S { return scalar.Exp(a) }

// Log returns ln(a).
func Log[S Number[S]](a S) S { return scalar.Log(a) }

// Sin returns sin(a).
func Sin[S Number[S]](a S) S { return scalar.Sin(a) }

// Cos returns cos(a).
func Cos[S Number[S]](a S) S { return scalar.Cos(a) }

// Tan returns tan(a).
func Tan[S Number[S]](a S) S { return scalar.Tan(a) }

// Tanh returns tanh(a).
func Tanh[S Number[S]](a S) S { return scalar.Tanh(a) }

// Abs returns |a|.
func Abs[S Number[S]](a S) S { return scalar.Abs(a) }

// Max returns the operand with the larger value.
func Max[S Number[S]](a, b S) S { return scalar.Max(a, b) }

// Min returns the operand with the smaller value.
func Min[S Number[S]](a, b S) S { return scalar.Min(a, b) }

// Compare compares values, ignoring derivatives.
func Compare[S Number[S]](a, b S) int { return scalar.Compare(a, b) }

// Less reports whether a's value is less than b's.
func Less[S Number[S]](a, b S) bool { return scalar.Less(a, b) }

// Greater reports whether a's value is greater than b's.
func Greater[S Number[S]](a, b S) bool { return scalar.Greater(a, b) }

// Equal reports whether a and b have equal values.
func Equal[S Number[S]](a, b S) bool { return scalar.Equal(a, b) }

// Values returns the plain values of xs.
func Values[S Number[S]](xs []S) []float64 { return scalar.Values(xs) }

// Sum returns Σ xs[i].
func Sum[S Number[S]](xs []S) S { return scalar.Sum(xs) }

// Dot returns Σ xs[i]*ys[i].
func Dot[S Number[S]](xs, ys []S) S { return scalar.Dot(xs, ys) }

// VecSub returns xs - ys element-wise.
func VecSub[S Number[S]](xs, ys []S) []S { return scalar.VecSub(xs, ys) }

// SquaredNorm returns Σ xs[i]².
func SquaredNorm[S Number[S]](xs []S) S { return scalar.SquaredNorm(xs) }

// Norm returns the Euclidean norm of xs.
func Norm[S Number[S]](xs []S) S { return scalar.Norm(xs) }

// L1Norm returns Σ |xs[i]|.
func L1Norm[S Number[S]](xs []S) S { return scalar.L1Norm(xs) }

// InfNorm returns max |xs[i]|.
func InfNorm[S Number[S]](xs []S) S { return scalar.InfNorm(xs) }

// Asin returns arcsin(a).
func Asin[S Number[S]](a S) S { return scalar.Asin(a) }

// Acos returns arccos(a).
func Acos[S Number[S]](a S) S { return scalar.Acos(a) }

// Atan returns arctan(a).
func Atan[S Number[S]](a S) S { return scalar.Atan(a) }

// Atan2 returns the angle of the point (b, a).
func Atan2[S Number[S]](a, b S) S { return scalar.Atan2(a, b) }

// Sinh returns sinh(a).
func Sinh[S Number[S]](a S) S { return scalar.Sinh(a) }

// Cosh returns cosh(a).
func Cosh[S Number[S]](a S) S { return scalar.Cosh(a) }

// Asinh returns arsinh(a).
func Asinh[S Number[S]](a S) S { return scalar.Asinh(a) }

// Acosh returns arcosh(a).
func Acosh[S Number[S]](a S) S { return scalar.Acosh(a) }

// Atanh returns artanh(a).
func Atanh[S Number[S]](a S) S { return scalar.Atanh(a) }

// LogBase returns the logarithm of a in base.
func LogBase[S Number[S]](a S, base float64) S { return scalar.LogBase(a, base) }

// Log2 returns log₂(a).
func Log2[S Number[S]](a S) S { return scalar.Log2(a) }

// Log10 returns log₁₀(a).
func Log10[S Number[S]](a S) S { return scalar.Log10(a) }

// Log1p returns ln(1 + a).
func Log1p[S Number[S]](a S) S { return scalar.Log1p(a) }

// Exp2 returns 2^a.
func Exp2[S Number[S]](a S) S { return scalar.Exp2(a) }

// Expm1 returns e^a - 1.
func Expm1[S Number[S]](a S) S { return scalar.Expm1(a) }

// Cbrt returns ∛a.
func Cbrt[S Number[S]](a S) S { return scalar.Cbrt(a) }

// Hypot returns √(a² + b²).
func Hypot[S Number[S]](a, b S) S { return scalar.Hypot(a, b) }

// MulAdd returns a*m + b.
func MulAdd[S Number[S]](a, m, b S) S { return scalar.MulAdd(a, m, b) }

// Signum returns the sign of a as a constant.
func Signum[S Number[S]](a S) S { return scalar.Signum(a) }

// LkNorm returns (Σ |xs[i]|^k)^(1/k).
func LkNorm[S Number[S]](xs []S, k int) S { return scalar.LkNorm(xs, k) }

// MaxDetSize is the largest matrix Det accepts.
const MaxDetSize = scalar.MaxDetSize

// Det returns the determinant of the square matrix m given as rows.
func Det[S Number[S]](m [][]S) S { return scalar.Det(m) }
