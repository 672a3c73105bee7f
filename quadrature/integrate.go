package quadrature

import (
	"math/big"

	"github.com/tuneinsight/sinquad/utils/bignum"
)

// referencePrec is the precision in bits of the reference values.
const referencePrec = 128

// Integrate divides in into n sub-intervals of equal width, applies k on each of them
// and returns the sum of the contributions.
// The method panics if n < 1.
func Integrate(in Interval, n int, k Kernel) (value float64) {
	in.Partition(n, func(sub Interval) {
		value += k(sub)
	})
	return
}

// Exact returns the exact value of the integral of sin over in, cos(Left) - cos(Right),
// evaluated with arbitrary precision and rounded to the nearest float64.
func Exact(in Interval) float64 {
	a := bignum.Cos(bignum.NewFloat(in.Left, referencePrec))
	b := bignum.Cos(bignum.NewFloat(in.Right, referencePrec))
	v, _ := new(big.Float).Sub(a, b).Float64()
	return v
}

// ConvergenceOrder returns the observed order of convergence p between two
// partition sizes n1 < n2 with absolute errors e1 and e2, i.e. e1/e2 = (n2/n1)^p.
// The second return value is false if the order is undefined (a zero error or
// equal partition sizes).
func ConvergenceOrder(n1 int, e1 float64, n2 int, e2 float64) (p float64, ok bool) {

	if e1 <= 0 || e2 <= 0 || n1 <= 0 || n2 <= 0 || n1 == n2 {
		return 0, false
	}

	num := bignum.Log(bignum.NewFloat(e1/e2, referencePrec))
	den := bignum.Log(bignum.NewFloat(float64(n2)/float64(n1), referencePrec))

	p, _ = new(big.Float).Quo(num, den).Float64()
	return p, true
}
