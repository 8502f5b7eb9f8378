package mapping_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oksentia/gedcore/mapping"
)

func TestNewAllEpsilon(t *testing.T) {
	m := mapping.New(2, 3)
	require.Equal(t, []int{3, 3}, m.Fwd)
	require.Equal(t, []int{2, 2, 2}, m.Rev)
	require.NoError(t, m.Validate())
}

func TestValidateConsistent(t *testing.T) {
	m := mapping.Mapping{Fwd: []int{1, 2}, Rev: []int{2, 0, 1}}
	require.NoError(t, m.Validate())
}

func TestValidateInconsistent(t *testing.T) {
	m := mapping.Mapping{Fwd: []int{1, 2}, Rev: []int{2, 1, 1}}
	require.True(t, errors.Is(m.Validate(), mapping.ErrInconsistent))
}

func TestValidateOutOfRange(t *testing.T) {
	m := mapping.Mapping{Fwd: []int{5}, Rev: []int{}}
	require.True(t, errors.Is(m.Validate(), mapping.ErrOutOfRange))
}

func TestClone(t *testing.T) {
	m := mapping.New(1, 1)
	c := m.Clone()
	c.Fwd[0] = 0
	require.NotEqual(t, m.Fwd[0], c.Fwd[0])
}
