// SPDX-License-Identifier: MIT
package affeq

import (
	"math/big"
	"strings"

	"github.com/goaffine/affineeq/sparsevec"
	"github.com/goaffine/affineeq/varenv"
)

// Show renders t in spec §4.5/§6's canonical textual form: any bottom
// state (canonical ⊥ or a bottom-over-env) as the literal "Bottom Env",
// otherwise "[|row; row; ...|]" with each row scaled to integer
// coefficients of gcd 1 and a positive leading (pivot) coefficient —
// RREF already guarantees the pivot is positive (it's exactly 1 before
// scaling), so scaling to integers never flips the leading sign.
func Show(t State) string {
	if t.IsBotEnv() {
		return "Bottom Env"
	}
	rows := t.matrix.Rows()
	parts := make([]string, len(rows))
	for i, row := range rows {
		parts[i] = showRow(row, t.env)
	}
	return "[|" + strings.Join(parts, "; ") + "|]"
}

// String makes State satisfy fmt.Stringer.
func (t State) String() string { return Show(t) }

func showRow(row sparsevec.SparseVector, env varenv.Environment) string {
	n := env.Size()
	ints, k := integerize(row, n)

	var b strings.Builder
	first := true
	for _, e := range ints {
		v, _ := env.VariableAt(e.index)
		term(&b, e.coeff, v.Name, first)
		first = false
	}
	if k.Sign() != 0 {
		term(&b, k, "", first)
	}
	if b.Len() == 0 {
		b.WriteString("0")
	}
	b.WriteString("=0")
	return b.String()
}

func term(b *strings.Builder, coeff *big.Int, name string, first bool) {
	neg := coeff.Sign() < 0
	abs := new(big.Int).Abs(coeff)
	switch {
	case first && neg:
		b.WriteString("-")
	case first:
		// no sign
	case neg:
		b.WriteString("-")
	default:
		b.WriteString("+")
	}
	one := big.NewInt(1)
	if name == "" {
		b.WriteString(abs.String())
		return
	}
	if abs.Cmp(one) != 0 {
		b.WriteString(abs.String())
		b.WriteString("*")
	}
	b.WriteString(name)
}

type intEntry struct {
	index int
	coeff *big.Int
}

// integerize scales row (length n+1) by the LCM of its denominators
// then divides through by the gcd of the resulting integer
// coefficients, returning the variable entries (index < n) and the
// scaled constant term separately.
func integerize(row sparsevec.SparseVector, n int) ([]intEntry, *big.Int) {
	entries := row.Entries()
	if len(entries) == 0 {
		return nil, big.NewInt(0)
	}

	lcm := big.NewInt(1)
	for _, e := range entries {
		lcm = lcmBig(lcm, e.Value.Denominator())
	}

	nums := make([]*big.Int, len(entries))
	g := big.NewInt(0)
	for i, e := range entries {
		num := new(big.Int).Mul(e.Value.Numerator(), new(big.Int).Div(lcm, e.Value.Denominator()))
		nums[i] = num
		g = gcdBig(g, num)
	}
	if g.Sign() == 0 {
		g = big.NewInt(1)
	}

	var varEntries []intEntry
	k := big.NewInt(0)
	for i, e := range entries {
		scaled := new(big.Int).Div(nums[i], g)
		if e.Index == n {
			k = scaled
			continue
		}
		varEntries = append(varEntries, intEntry{index: e.Index, coeff: scaled})
	}
	return varEntries, k
}

// gcdBig returns gcd(|a|,|b|); big.Int.GCD requires both operands > 0,
// so the degenerate zero cases are handled directly.
func gcdBig(a, b *big.Int) *big.Int {
	aAbs, bAbs := new(big.Int).Abs(a), new(big.Int).Abs(b)
	if aAbs.Sign() == 0 {
		return bAbs
	}
	if bAbs.Sign() == 0 {
		return aAbs
	}
	return new(big.Int).GCD(nil, nil, aAbs, bAbs)
}

func lcmBig(a, b *big.Int) *big.Int {
	if a.Sign() == 0 || b.Sign() == 0 {
		return big.NewInt(1)
	}
	g := gcdBig(a, b)
	return new(big.Int).Div(new(big.Int).Mul(new(big.Int).Abs(a), new(big.Int).Abs(b)), g)
}
