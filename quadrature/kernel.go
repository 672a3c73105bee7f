package quadrature

import (
	"fmt"
	"math"
)

// Kernel approximates the integral of sin over a sub-interval.
type Kernel func(sub Interval) float64

// RectangleRule is the midpoint rectangle rule: (b-a) * sin((a+b)/2).
func RectangleRule(sub Interval) float64 {
	return sub.Width() * math.Sin((sub.Left+sub.Right)/2)
}

// SimpsonRule is Simpson's rule: (b-a)/6 * (sin(a) + 4*sin((a+b)/2) + sin(b)).
func SimpsonRule(sub Interval) float64 {
	return sub.Width() / 6 * (math.Sin(sub.Left) + 4*math.Sin((sub.Left+sub.Right)/2) + math.Sin(sub.Right))
}

// Method identifies one of the quadrature rules.
type Method int

const (
	Rectangle Method = iota
	Simpson

	// NumMethods is the number of available methods.
	NumMethods = 2
)

// Methods lists the methods in the order of the table columns.
var Methods = [NumMethods]Method{Rectangle, Simpson}

var kernels = [NumMethods]Kernel{
	Rectangle: RectangleRule,
	Simpson:   SimpsonRule,
}

var methodNames = [NumMethods]string{
	Rectangle: "rectangle",
	Simpson:   "simpson",
}

// Kernel returns the kernel implementing m.
// The method panics if m is not a valid Method.
func (m Method) Kernel() Kernel {
	if m < 0 || int(m) >= NumMethods {
		panic(fmt.Errorf("invalid method: %d", int(m)))
	}
	return kernels[m]
}

func (m Method) String() string {
	if m < 0 || int(m) >= NumMethods {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return methodNames[m]
}
