package matrix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDenseRejectsNonPositiveDimensions(t *testing.T) {
	_, err := NewDense(0, 4)
	require.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = NewDense(4, -1)
	require.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestAtSetRoundTrip(t *testing.T) {
	m, err := NewDense(4, 4)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7, v)
}

func TestAtSetOutOfBounds(t *testing.T) {
	m, err := NewDense(4, 4)
	require.NoError(t, err)

	_, err = m.At(4, 0)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)
	require.ErrorIs(t, m.Set(0, -1, 1), ErrIndexOutOfBounds)
}

func TestCloneIsIndependent(t *testing.T) {
	m, err := NewDense(4, 4)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 5))

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 9))

	orig, _ := m.At(0, 0)
	cloned, _ := c.At(0, 0)
	require.Equal(t, 5, orig)
	require.Equal(t, 9, cloned)
}

func TestRowBlockMinAndSubtract(t *testing.T) {
	const inf = 1 << 30
	m, err := NewDense(8, 8)
	require.NoError(t, err)
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			require.NoError(t, m.Set(r, c, inf))
		}
	}
	require.NoError(t, m.Set(0, 3, 10))
	require.NoError(t, m.Set(1, 5, 4))
	require.NoError(t, m.Set(2, 2, inf)) // stays infinite

	min := m.RowBlockMin(0, inf)
	require.Equal(t, 4, min)

	m.SubtractRowBlock(0, min, inf)
	v, _ := m.At(0, 3)
	require.Equal(t, 6, v)
	v, _ = m.At(1, 5)
	require.Equal(t, 0, v)
	v, _ = m.At(2, 2)
	require.Equal(t, inf, v) // infinite entries are never shifted
}

func TestColBlockMinAndSubtract(t *testing.T) {
	const inf = 1 << 30
	m, err := NewDense(8, 8)
	require.NoError(t, err)
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			require.NoError(t, m.Set(r, c, inf))
		}
	}
	require.NoError(t, m.Set(3, 0, 10))
	require.NoError(t, m.Set(5, 1, 4))

	min := m.ColBlockMin(0, inf)
	require.Equal(t, 4, min)

	m.SubtractColBlock(0, min, inf)
	v, _ := m.At(3, 0)
	require.Equal(t, 6, v)
	v, _ = m.At(5, 1)
	require.Equal(t, 0, v)
}

func TestSetRowColBlockInf(t *testing.T) {
	const inf = 1 << 30
	m, err := NewDense(8, 8)
	require.NoError(t, err)

	m.SetRowBlockInf(0, inf)
	for c := 0; c < 8; c++ {
		v, _ := m.At(0, c)
		require.Equal(t, inf, v)
	}

	m.SetColBlockInf(4, inf)
	for r := 0; r < 8; r++ {
		v, _ := m.At(r, 4)
		require.Equal(t, inf, v)
	}
}
