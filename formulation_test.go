package dfjtsp_test

import (
	"encoding/json"
	"io/ioutil"
	"strings"
	"testing"

	"git.solver4all.com/azaryc2s/dfjtsp"
	"github.com/stretchr/testify/require"
)

// the 4-node unit square from spec and lvlath's exact solver tests;
// optimal cycle cost is 4
var unitSquare = [][]float64{
	{0, 1, 2, 1},
	{1, 0, 1, 2},
	{2, 1, 0, 1},
	{1, 2, 1, 0},
}

func countByPrefix(f *dfjtsp.Formulation, prefix string) int {
	count := 0
	for _, c := range f.Constrs {
		if strings.HasPrefix(c.Name, prefix) {
			count++
		}
	}
	return count
}

// violated returns the names of all constraints the assignment x breaks.
func violated(f *dfjtsp.Formulation, x []float64) []string {
	var names []string
	for _, c := range f.Constrs {
		lhs := 0.0
		for k := range c.Ind {
			lhs += c.Val[k] * x[c.Ind[k]]
		}
		ok := true
		switch c.Sense {
		case dfjtsp.SENSE_LE:
			ok = lhs <= c.RHS
		case dfjtsp.SENSE_GE:
			ok = lhs >= c.RHS
		default:
			ok = lhs == c.RHS
		}
		if !ok {
			names = append(names, c.Name)
		}
	}
	return names
}

func TestBuildFormulationCounts(t *testing.T) {
	m := [][]float64{
		{0, 1, 2},
		{1, 0, 1},
		{2, 1, 0},
	}
	f, err := dfjtsp.BuildFormulation(3, m)
	require.NoError(t, err)

	// n0 = 4 nodes, all ordered arcs without self-loops
	require.Equal(t, 4, f.NodeCount)
	require.Equal(t, 4*3, f.VarCount)
	require.Len(t, f.VarNames, f.VarCount)
	require.Len(t, f.Obj, f.VarCount)

	// one inbound + one outbound constraint per node 1..n-1, none for 0 and n
	require.Equal(t, 2, countByPrefix(f, "indeg_"))
	require.Equal(t, 2, countByPrefix(f, "outdeg_"))
	require.Zero(t, countByPrefix(f, "indeg_0"))
	require.Zero(t, countByPrefix(f, "indeg_3"))
	require.Zero(t, countByPrefix(f, "outdeg_0"))
	require.Zero(t, countByPrefix(f, "outdeg_3"))

	// all subsets of size 2..n0-1: 2^4 - 2 - 4
	require.Equal(t, 10, countByPrefix(f, "sec_"))
	require.Len(t, f.Constrs, 14)
}

func TestBuildFormulationCountsSquare(t *testing.T) {
	f, err := dfjtsp.BuildFormulation(4, unitSquare)
	require.NoError(t, err)

	require.Equal(t, 5, f.NodeCount)
	require.Equal(t, 5*4, f.VarCount)
	require.Equal(t, 2*3, countByPrefix(f, "indeg_")+countByPrefix(f, "outdeg_"))
	require.Equal(t, 1<<5-2-5, countByPrefix(f, "sec_"))
}

func TestBuildFormulationDimensionMismatch(t *testing.T) {
	_, err := dfjtsp.BuildFormulation(3, unitSquare)
	require.ErrorIs(t, err, dfjtsp.ErrDimensionMismatch)

	ragged := [][]float64{{0, 1}, {1}}
	_, err = dfjtsp.BuildFormulation(2, ragged)
	require.ErrorIs(t, err, dfjtsp.ErrDimensionMismatch)

	_, err = dfjtsp.BuildFormulation(0, nil)
	require.ErrorIs(t, err, dfjtsp.ErrDimensionMismatch)
}

func TestBuildFormulationCostWrap(t *testing.T) {
	f, err := dfjtsp.BuildFormulation(4, unitSquare)
	require.NoError(t, err)
	n0 := f.NodeCount

	// interior arcs read costMatrix[i-1][j-1]
	require.Equal(t, unitSquare[0][1], f.Obj[dfjtsp.GetArcIndex(1, 2, n0)])
	require.Equal(t, unitSquare[2][0], f.Obj[dfjtsp.GetArcIndex(3, 1, n0)])

	// node 0 wraps to the last physical row/column, aliasing node n
	require.Equal(t, unitSquare[3][0], f.Obj[dfjtsp.GetArcIndex(0, 1, n0)])
	require.Equal(t, unitSquare[3][0], f.Obj[dfjtsp.GetArcIndex(4, 1, n0)])
	require.Equal(t, unitSquare[1][3], f.Obj[dfjtsp.GetArcIndex(2, 0, n0)])
	require.Equal(t, 0.0, f.Obj[dfjtsp.GetArcIndex(0, 4, n0)])
	require.Equal(t, 0.0, f.Obj[dfjtsp.GetArcIndex(4, 0, n0)])
}

func TestUnitSquareOptimalAssignment(t *testing.T) {
	f, err := dfjtsp.BuildFormulation(4, unitSquare)
	require.NoError(t, err)
	n0 := f.NodeCount

	// the known optimum: 0 -> 1 -> 2 -> 3 -> 4 -> 0, total cost 4
	x := make([]float64, f.VarCount)
	tour := []int{0, 1, 2, 3, 4}
	for k := range tour {
		x[dfjtsp.GetArcIndex(tour[k], tour[(k+1)%len(tour)], n0)] = 1.0
	}

	obj := 0.0
	for idx := range x {
		obj += f.Obj[idx] * x[idx]
	}
	require.Equal(t, 4.0, obj)
	require.Empty(t, violated(f, x))
}

func TestUnitSquareSubtourSplitIsCutOff(t *testing.T) {
	f, err := dfjtsp.BuildFormulation(4, unitSquare)
	require.NoError(t, err)
	n0 := f.NodeCount

	// two disjoint cycles: 0 <-> 4 (both zero-cost aliased arcs) and 1 -> 2 -> 3 -> 1
	x := make([]float64, f.VarCount)
	x[dfjtsp.GetArcIndex(0, 4, n0)] = 1.0
	x[dfjtsp.GetArcIndex(4, 0, n0)] = 1.0
	x[dfjtsp.GetArcIndex(1, 2, n0)] = 1.0
	x[dfjtsp.GetArcIndex(2, 3, n0)] = 1.0
	x[dfjtsp.GetArcIndex(3, 1, n0)] = 1.0

	broken := violated(f, x)
	require.NotEmpty(t, broken)
	for _, name := range broken {
		require.True(t, strings.HasPrefix(name, "sec_"), "unexpected violation %s", name)
	}
}

func TestBuildFormulationReferenceInstance(t *testing.T) {
	data, err := ioutil.ReadFile("testdata/setyotw_11.json")
	require.NoError(t, err)
	var inst dfjtsp.TSPInstance
	require.NoError(t, json.Unmarshal(data, &inst))

	f, err := dfjtsp.BuildFormulation(inst.Dimension, inst.EdgeWeights)
	require.NoError(t, err)
	require.Equal(t, 12*11, f.VarCount)
	require.Equal(t, 2*10, countByPrefix(f, "indeg_")+countByPrefix(f, "outdeg_"))
	require.Equal(t, 1<<12-2-12, countByPrefix(f, "sec_"))
}
