package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gauge/matrix"
	"github.com/stretchr/testify/require"
)

func nan() float64 { return math.NaN() }

// requireClose asserts element-wise closeness with an absolute tolerance.
func requireClose(t *testing.T, want, got matrix.Matrix, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "want\n%v\ngot\n%v", want, got)
}
