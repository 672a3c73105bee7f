package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllPositive(t *testing.T) {
	require.True(t, AllPositive([]int{}))
	require.True(t, AllPositive([]int{5, 10, 20}))
	require.False(t, AllPositive([]int{5, 0, 20}))
	require.False(t, AllPositive([]float64{1.5, -2}))
}
