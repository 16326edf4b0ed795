package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKmeansClusterSeparatesObviousGroups(t *testing.T) {
	points := [][]float64{
		{0, 0}, {0.1, 0.1}, {0.05, 0},
		{10, 10}, {10.1, 9.9}, {9.9, 10.2},
	}

	assignments := kmeansCluster(points, 2)
	require.Len(t, assignments, 6)

	assert.Equal(t, assignments[0], assignments[1])
	assert.Equal(t, assignments[0], assignments[2])
	assert.Equal(t, assignments[3], assignments[4])
	assert.Equal(t, assignments[3], assignments[5])
	assert.NotEqual(t, assignments[0], assignments[3])
}

func TestKmeansClusterDeterministic(t *testing.T) {
	points := [][]float64{
		{1, 2, 3, 4}, {4, 3, 2, 1}, {0, 0, 0, 0}, {5, 5, 5, 5}, {2, 2, 2, 2},
	}

	first := kmeansCluster(points, 3)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, kmeansCluster(points, 3))
	}
}

func TestKmeansClusterEdgeCases(t *testing.T) {
	assert.Nil(t, kmeansCluster(nil, 3))
	assert.Nil(t, kmeansCluster([][]float64{{1, 2}}, 0))

	// k capped at the number of points.
	single := kmeansCluster([][]float64{{1, 1}}, 3)
	assert.Equal(t, []int{0}, single)

	// k = 1 puts everything in one cluster.
	all := kmeansCluster([][]float64{{1, 1}, {2, 2}, {9, 9}}, 1)
	assert.Equal(t, []int{0, 0, 0}, all)
}

func TestKmeansClusterIdenticalPoints(t *testing.T) {
	points := [][]float64{{1, 1}, {1, 1}, {1, 1}}
	assignments := kmeansCluster(points, 2)
	require.Len(t, assignments, 3)
	for _, a := range assignments {
		assert.GreaterOrEqual(t, a, 0)
		assert.Less(t, a, 2)
	}
}
