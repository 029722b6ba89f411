package digest_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gcat/internal/digest"
	"gcat/internal/domain"
)

func TestOf_Deterministic(t *testing.T) {
	req := domain.CheckRequest{N1: 7250, N2: 4250, N3: 2500, Measure: 0.5e6, Dim: 2}

	a, err := digest.Of(req)
	require.NoError(t, err)
	b, err := digest.Of(req)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a.String(), 20)
}

func TestOf_DistinguishesInputs(t *testing.T) {
	a, err := digest.Of(domain.CheckRequest{N1: 3, N2: 2, N3: 1, Measure: 1, Dim: 2})
	require.NoError(t, err)
	b, err := digest.Of(domain.CheckRequest{N1: 3, N2: 2, N3: 1, Measure: 1, Dim: 3})
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestOf_UnencodableValue(t *testing.T) {
	_, err := digest.Of(math.NaN())
	assert.Error(t, err)
}

func TestSum_MatchesOfForRawJSON(t *testing.T) {
	got, err := digest.Of(map[string]int{"n": 1})
	require.NoError(t, err)
	assert.Equal(t, digest.Sum([]byte(`{"n":1}`)), got)
}
