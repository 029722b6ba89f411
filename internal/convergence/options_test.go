package convergence_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gcat/internal/convergence"
)

func TestOptions_Validate(t *testing.T) {
	require.NoError(t, convergence.DefaultOptions().Validate())

	tests := []struct {
		name   string
		mutate func(*convergence.Options)
		field  string
	}{
		{"zero tolerance", func(o *convergence.Options) { o.Tolerance = 0 }, "tolerance"},
		{"infinite tolerance", func(o *convergence.Options) { o.Tolerance = math.Inf(1) }, "tolerance"},
		{"zero iterations", func(o *convergence.Options) { o.MaxIterations = 0 }, "max_iterations"},
		{"relaxation above one", func(o *convergence.Options) { o.Relaxation = 1.5 }, "relaxation"},
		{"zero relaxation", func(o *convergence.Options) { o.Relaxation = 0 }, "relaxation"},
		{"NaN residual", func(o *convergence.Options) { o.MaxResidual = math.NaN() }, "max_residual"},
		{"negative safety factor", func(o *convergence.Options) { o.SafetyFactor = -1 }, "safety_factor"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := convergence.DefaultOptions()
			tc.mutate(&o)
			err := o.Validate()
			require.ErrorIs(t, err, convergence.ErrInvalidInput)

			var ie *convergence.InputError
			require.True(t, errors.As(err, &ie))
			assert.Equal(t, tc.field, ie.Name)
		})
	}
}
