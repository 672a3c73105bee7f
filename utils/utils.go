// Package utils implements various helper functions.
package utils

import (
	"golang.org/x/exp/constraints"
)

// AllPositive returns true if all elements of s are strictly positive.
func AllPositive[T constraints.Integer | constraints.Float](s []T) bool {
	for _, v := range s {
		if v <= 0 {
			return false
		}
	}
	return true
}
