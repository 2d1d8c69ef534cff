package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetAnySlice(t *testing.T) {
	s, cleanup := GetAnySlice(16)
	require.Empty(t, s)
	require.GreaterOrEqual(t, cap(s), 16)

	s = append(s, 1, "two", 3.0)
	require.Len(t, s, 3)
	cleanup()
}

func TestGetIntSlice(t *testing.T) {
	s, cleanup := GetIntSlice(8)
	require.Empty(t, s)
	require.GreaterOrEqual(t, cap(s), 8)

	s = append(s, 1, 2, 3)
	require.Equal(t, []int{1, 2, 3}, s)
	cleanup()
}

func TestGetIntSlice_Reuse(t *testing.T) {
	// Pooled slices always come back empty, regardless of prior use.
	s, cleanup := GetIntSlice(4)
	s = append(s, 9, 9, 9)
	_ = s
	cleanup()

	s2, cleanup2 := GetIntSlice(4)
	defer cleanup2()
	require.Empty(t, s2)
}
