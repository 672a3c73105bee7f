/*
Package quadrature estimates the definite integral of the sine function over an
interval of [0, pi] with the midpoint rectangle rule and Simpson's rule, repeated
across a fixed set of partition sizes, and renders the estimates as a comparison table.
*/
package quadrature
