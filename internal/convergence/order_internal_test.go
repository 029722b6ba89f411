package convergence

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIterateOrder_EqualRatiosMatchClosedForm runs the general iteration with
// r21 == r32, which SolveOrder short-circuits.
func TestIterateOrder_EqualRatiosMatchClosedForm(t *testing.T) {
	tests := []struct {
		f Triple
		r float64
	}{
		{Triple{F1: 1, F2: 1.02, F3: 1.08}, 1.306094},
		{Triple{F1: 1, F2: 1.02, F3: 0.98}, 2},
		{Triple{F1: 10, F2: 9.5, F3: 8.1}, 1.5},
	}
	for _, tc := range tests {
		closed, err := SolveOrder(tc.f, tc.r, tc.r, nil)
		require.NoError(t, err)
		require.True(t, closed.ClosedForm)

		ratio := (tc.f.F3 - tc.f.F2) / (tc.f.F2 - tc.f.F1)
		s := 1.0
		if ratio < 0 {
			s = -1
		}
		p, n, err := iterateOrder(closed.Order, math.Log(math.Abs(ratio)), tc.r, tc.r, s, DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.InDelta(t, closed.Order, p, 1e-6)
	}
}
