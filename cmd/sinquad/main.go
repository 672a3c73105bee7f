// Package main implements sinquad, which estimates the integral of sin over an
// interval read from the standard input with the rectangle and Simpson rules
// for the partition sizes 5, 10, 20, 100, 500 and 1000.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
