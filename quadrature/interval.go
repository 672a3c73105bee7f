package quadrature

import (
	"fmt"
	"math"
)

// Interval is a closed interval [Left, Right].
// Intervals built by NewInterval satisfy 0 <= Left <= Right <= pi.
type Interval struct {
	Left, Right float64
}

// NewInterval validates the borders and returns the corresponding Interval.
// Checks are applied in order: left >= 0, right <= pi, left <= right.
func NewInterval(left, right float64) (Interval, error) {
	if err := checkLeftBorder(left); err != nil {
		return Interval{}, err
	}
	if err := checkRightBorder(right); err != nil {
		return Interval{}, err
	}
	if left > right {
		return Interval{}, newError(InputError, "Right border of the interval must be greater than left")
	}
	return Interval{Left: left, Right: right}, nil
}

func checkLeftBorder(left float64) error {
	if math.IsNaN(left) || math.IsInf(left, 0) {
		return newError(InputError, "Left border of the interval must be a finite number")
	}
	if left < 0 {
		return newError(InputError, "Left border of the interval must be greater than or equal to 0")
	}
	return nil
}

func checkRightBorder(right float64) error {
	if math.IsNaN(right) || math.IsInf(right, 0) {
		return newError(InputError, "Right border of the interval must be a finite number")
	}
	if right > math.Pi {
		return newError(InputError, "Right border of the interval must be less than or equal to pi")
	}
	return nil
}

// Width returns Right - Left.
func (in Interval) Width() float64 {
	return in.Right - in.Left
}

// Partition divides in into n sub-intervals of equal width and calls f on each
// of them, from left to right. The right border of a sub-interval is the left
// border of the next one.
// The method panics if n < 1.
func (in Interval) Partition(n int, f func(sub Interval)) {

	if n < 1 {
		panic(fmt.Errorf("cannot Partition: n must be positive but is %d", n))
	}

	width := in.Width() / float64(n)

	left := in.Left
	for i := 0; i < n; i++ {
		right := left + width
		f(Interval{Left: left, Right: right})
		left = right
	}
}

func (in Interval) String() string {
	return fmt.Sprintf("[%g, %g]", in.Left, in.Right)
}
