package connection_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gauge/connection"
	"github.com/katalvlaran/gauge/matrix"
)

// TestConcurrentReadOnly evaluates one connection from many goroutines and
// expects identical results and no leaked goroutines.
func TestConcurrentReadOnly(t *testing.T) {
	defer goleak.VerifyNone(t)

	c, err := connection.New(planeBundle(t), linearField)
	require.NoError(t, err)
	p := []float64{0.5, -1.5}
	want, err := c.Curvature(p, 0, 1)
	require.NoError(t, err)

	var g errgroup.Group
	results := make([]*matrix.Dense, 16)
	for i := range results {
		i := i
		g.Go(func() error {
			f, err := c.Curvature(p, 0, 1)
			if err != nil {
				return err
			}
			if _, err := c.IsFlat(p); err != nil {
				return err
			}
			results[i] = f

			return nil
		})
	}
	require.NoError(t, g.Wait())
	for _, got := range results {
		require.Equal(t, want.RawData(), got.RawData())
	}
}
