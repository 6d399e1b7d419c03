// SPDX-License-Identifier: MIT
// Package rational: the Rational scalar (spec §4.1).
//
// Contract:
//   - Every value is a reduced fraction; the zero value of Rational is
//     the rational zero (0/1), ready to use without a constructor.
//   - All four field operations are exact; there is no lossy path.
package rational

import (
	"math/big"
)

// Rational is an exact rational number. The zero value is 0.
type Rational struct {
	v big.Rat
}

// Zero returns the additive identity.
func Zero() Rational { return Rational{} }

// One returns the multiplicative identity.
func One() Rational {
	var r Rational
	r.v.SetInt64(1)
	return r
}

// FromInt64 builds a Rational equal to n.
func FromInt64(n int64) Rational {
	var r Rational
	r.v.SetInt64(n)
	return r
}

// FromInts builds a Rational equal to num/den.
//
// Contract: den != 0 (ErrDivisionByZero otherwise).
func FromInts(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, ratErrorf("FromInts", ErrDivisionByZero)
	}
	var r Rational
	r.v.SetFrac64(num, den)
	return r, nil
}

// FromBigInts builds a Rational equal to num/den for arbitrary-precision
// integers, taking ownership of neither argument.
func FromBigInts(num, den *big.Int) (Rational, error) {
	if den == nil || den.Sign() == 0 {
		return Rational{}, ratErrorf("FromBigInts", ErrDivisionByZero)
	}
	var r Rational
	r.v.SetFrac(num, den)
	return r, nil
}

// FromFloat64 builds a Rational that represents f exactly, bit for bit,
// as IEEE-754 doubles are themselves dyadic rationals. NaN/Inf are
// rejected by returning the zero Rational and false.
func FromFloat64(f float64) (Rational, bool) {
	var r Rational
	br := r.v.SetFloat64(f)
	if br == nil {
		return Rational{}, false
	}
	return r, true
}

// Neg returns -q.
func (q Rational) Neg() Rational {
	var r Rational
	r.v.Neg(&q.v)
	return r
}

// Add returns q + o.
func (q Rational) Add(o Rational) Rational {
	var r Rational
	r.v.Add(&q.v, &o.v)
	return r
}

// Sub returns q - o.
func (q Rational) Sub(o Rational) Rational {
	var r Rational
	r.v.Sub(&q.v, &o.v)
	return r
}

// Mul returns q * o.
func (q Rational) Mul(o Rational) Rational {
	var r Rational
	r.v.Mul(&q.v, &o.v)
	return r
}

// Div returns q / o.
//
// Contract: o != 0 (ErrDivisionByZero otherwise, per spec §4.1/§7).
func (q Rational) Div(o Rational) (Rational, error) {
	if o.IsZero() {
		return Rational{}, ratErrorf("Div", ErrDivisionByZero)
	}
	var r Rational
	r.v.Quo(&q.v, &o.v)
	return r, nil
}

// Inv returns 1/q.
//
// Contract: q != 0 (ErrDivisionByZero otherwise).
func (q Rational) Inv() (Rational, error) {
	if q.IsZero() {
		return Rational{}, ratErrorf("Inv", ErrDivisionByZero)
	}
	var r Rational
	r.v.Inv(&q.v)
	return r, nil
}

// IsZero reports whether q == 0.
func (q Rational) IsZero() bool { return q.v.Sign() == 0 }

// Sign returns -1, 0, or +1 according to the sign of q.
func (q Rational) Sign() int { return q.v.Sign() }

// Equal reports whether q == o.
func (q Rational) Equal(o Rational) bool { return q.v.Cmp(&o.v) == 0 }

// Cmp returns -1, 0, or +1 as q <, ==, > o.
func (q Rational) Cmp(o Rational) int { return q.v.Cmp(&o.v) }

// Numerator returns the numerator of q in lowest terms.
func (q Rational) Numerator() *big.Int { return new(big.Int).Set(q.v.Num()) }

// Denominator returns the denominator of q in lowest terms; always > 0.
func (q Rational) Denominator() *big.Int { return new(big.Int).Set(q.v.Denom()) }

// IsInteger reports whether den(q) == 1, i.e. q has no fractional part.
func (q Rational) IsInteger() bool { return q.v.IsInt() }

// Int64 returns q as an int64 and true when den(q) == 1 and the value
// fits in an int64; otherwise it returns 0 and false (it does not
// truncate a fractional value).
func (q Rational) Int64() (int64, bool) {
	if !q.IsInteger() {
		return 0, false
	}
	n := q.v.Num()
	if !n.IsInt64() {
		return 0, false
	}
	return n.Int64(), true
}

// String renders q as "num" when integral, else "num/den".
func (q Rational) String() string { return q.v.RatString() }

// Abs returns |q|.
func (q Rational) Abs() Rational {
	var r Rational
	r.v.Abs(&q.v)
	return r
}
