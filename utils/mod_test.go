package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	values := []int{4, 8, 15, 16}

	require.Equal(t, 2, FindIndex(values, func(v int) bool { return v == 15 }))
	require.Equal(t, -1, FindIndex(values, func(v int) bool { return v > 100 }))
	require.Equal(t, -1, FindIndex([]int{}, func(v int) bool { return true }))
}

func TestClamp(t *testing.T) {
	require.Equal(t, 0.1, Clamp(0.05, 0.1, 0.7))
	require.Equal(t, 0.7, Clamp(0.9, 0.1, 0.7))
	require.Equal(t, 0.5, Clamp(0.5, 0.1, 0.7))
	require.Equal(t, 3, Clamp(3, 1, 5))
}
