package bignum

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloat(t *testing.T) {
	testFunc1("Sin", 1.4142135623730951, math.Sin, Sin, 1e-15, t)
	testFunc1("Cos", 1.4142135623730951, math.Cos, Cos, 1e-15, t)
	testFunc1("Log", 1.4142135623730951, math.Log, Log, 1e-15, t)

	t.Run("Pi", func(t *testing.T) {
		y, _ := Pi(53).Float64()
		require.Equal(t, math.Pi, y)
	})

	t.Run("Cos/HighPrecision", func(t *testing.T) {
		for _, x := range []float64{0, 0.5, 1, 2, 3, math.Pi} {
			y, _ := Cos(NewFloat(x, 128)).Float64()
			require.InDelta(t, math.Cos(x), y, 1e-14, "x=%v", x)
		}
	})

	t.Run("NewFloat/InvalidType", func(t *testing.T) {
		require.Panics(t, func() { NewFloat("1", 53) })
	})
}

func testFunc1(name string, x float64, f func(x float64) (y float64), g func(x *big.Float) (y *big.Float), delta float64, t *testing.T) {
	t.Run(name, func(t *testing.T) {
		y, _ := g(NewFloat(x, 53)).Float64()
		require.InDelta(t, f(x), y, delta)
	})
}
