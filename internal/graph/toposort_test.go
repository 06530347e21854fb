package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopoSort_Order(t *testing.T) {
	order, err := TopoSort(4, func(i int) []int {
		switch i {
		case 0:
			return []int{2}
		case 1:
			return []int{0, 3}
		default:
			return nil
		}
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 3, 1}, order)
}

func TestTopoSort_Cycle(t *testing.T) {
	_, err := TopoSort(2, func(i int) []int {
		if i == 0 {
			return []int{1}
		}

		return []int{0}
	})
	require.ErrorIs(t, err, ErrCycle)
}

func TestTopoSort_CycleReportsBlockedNodes(t *testing.T) {
	// 0 -> 1 -> 2 -> 1, 3 is independent.
	_, err := TopoSort(4, func(i int) []int {
		switch i {
		case 0:
			return []int{1}
		case 1:
			return []int{2}
		case 2:
			return []int{1}
		default:
			return nil
		}
	})

	var cerr *CycleError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, []int{0, 1, 2}, cerr.Unordered)
	assert.ErrorIs(t, err, ErrCycle)
}

func TestTopoSort_RepeatedDependency(t *testing.T) {
	order, err := TopoSort(2, func(i int) []int {
		if i == 0 {
			return []int{1, 1}
		}

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, order)
}

func TestTopoSort_OutOfRange(t *testing.T) {
	_, err := TopoSort(1, func(int) []int { return []int{5} })
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCycle)
}

func TestTopoSort_Empty(t *testing.T) {
	order, err := TopoSort(0, nil)
	require.NoError(t, err)
	assert.Empty(t, order)
}
