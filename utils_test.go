package dfjtsp_test

import (
	"testing"

	"git.solver4all.com/azaryc2s/dfjtsp"
	"github.com/stretchr/testify/require"
)

func TestCalcEdgeDistEuclidean(t *testing.T) {
	coords := [][]float64{{0, 0}, {3, 4}, {0, 4}}
	d := dfjtsp.CalcEdgeDist(coords, "EUC_2D")
	require.Equal(t, 0.0, d[0][0])
	require.Equal(t, 5.0, d[0][1])
	require.Equal(t, 5.0, d[1][0])
	require.Equal(t, 4.0, d[0][2])
	require.Equal(t, 3.0, d[1][2])
}

func TestCalcEdgeDistCeil(t *testing.T) {
	coords := [][]float64{{0, 0}, {1, 1}}
	d := dfjtsp.CalcEdgeDist(coords, "CEIL_2D")
	require.Equal(t, 2.0, d[0][1])
}

func TestArrayIntFlags(t *testing.T) {
	var a dfjtsp.ArrayIntFlags
	require.NoError(t, a.Set("5"))
	require.NoError(t, a.Set("11"))
	require.Error(t, a.Set("x"))
	require.Equal(t, dfjtsp.ArrayIntFlags{5, 11}, a)
	require.Equal(t, "5,11", a.String())
}
