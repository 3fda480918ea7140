package simplex

import (
	"math/big"
)

// maxDenominator caps the denominators produced when converting float64
// input to exact rationals. Decimal user input like 0.1 has no exact binary
// representation, so the raw big.Rat of the float64 would carry a huge
// denominator; we snap to the closest rational with a small denominator
// instead.
const maxDenominator = 1000000

// ratFromFloat converts a float64 coefficient to an exact rational.
// Returns nil for NaN and infinities; callers are expected to have
// validated finiteness already.
func ratFromFloat(f float64) *big.Rat {
	exact := new(big.Rat).SetFloat64(f)
	if exact == nil {
		return nil
	}
	return limitDenominator(exact, big.NewInt(maxDenominator))
}

// limitDenominator returns the closest rational to r whose denominator does
// not exceed maxDen, using the continued-fraction expansion of r. If r
// already satisfies the bound it is returned as-is.
func limitDenominator(r *big.Rat, maxDen *big.Int) *big.Rat {
	if r.Denom().Cmp(maxDen) <= 0 {
		return r
	}

	// Walk the continued-fraction convergents p_k/q_k of r until the next
	// denominator would exceed the bound.
	p0, q0 := big.NewInt(0), big.NewInt(1)
	p1, q1 := big.NewInt(1), big.NewInt(0)
	n := new(big.Int).Set(r.Num())
	d := new(big.Int).Set(r.Denom())
	for {
		a := new(big.Int).Div(n, d)
		q2 := new(big.Int).Add(q0, new(big.Int).Mul(a, q1))
		if q2.Cmp(maxDen) > 0 {
			break
		}
		p2 := new(big.Int).Add(p0, new(big.Int).Mul(a, p1))
		p0, q0, p1, q1 = p1, q1, p2, q2

		rem := new(big.Int).Sub(n, new(big.Int).Mul(a, d))
		n, d = d, rem
	}

	// Two candidates bound r: the semiconvergent with the largest legal
	// denominator, and the last full convergent. Pick whichever is closer,
	// preferring the convergent on a tie (it has the smaller denominator).
	k := new(big.Int).Div(new(big.Int).Sub(maxDen, q0), q1)
	semi := new(big.Rat).SetFrac(
		new(big.Int).Add(p0, new(big.Int).Mul(k, p1)),
		new(big.Int).Add(q0, new(big.Int).Mul(k, q1)),
	)
	conv := new(big.Rat).SetFrac(p1, q1)

	dSemi := new(big.Rat).Sub(semi, r)
	dSemi.Abs(dSemi)
	dConv := new(big.Rat).Sub(conv, r)
	dConv.Abs(dConv)
	if dConv.Cmp(dSemi) <= 0 {
		return conv
	}
	return semi
}

// FormatRat renders a rational the way the solution table displays it:
// integral values as a bare integer ("3"), anything else in lowest terms as
// "numerator/denominator" ("10/3"). big.Rat keeps itself reduced, so no
// extra simplification is needed here.
func FormatRat(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	return r.RatString()
}
