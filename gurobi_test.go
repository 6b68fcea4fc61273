package dfjtsp_test

import (
	"os"
	"testing"

	"git.solver4all.com/azaryc2s/dfjtsp"
	"github.com/stretchr/testify/require"
)

// Needs a gurobi installation and license; enable with DFJTSP_GUROBI_TESTS=1.
func TestSolveUnitSquareRoundTrip(t *testing.T) {
	if os.Getenv("DFJTSP_GUROBI_TESTS") == "" {
		t.Skip("set DFJTSP_GUROBI_TESTS=1 to run tests against a live gurobi installation")
	}

	f, err := dfjtsp.BuildFormulation(4, unitSquare)
	require.NoError(t, err)

	report, err := dfjtsp.Solve(nil, f, dfjtsp.SolveOptions{TimeLimit: 60})
	require.NoError(t, err)
	require.Equal(t, dfjtsp.STATUS_OPTIMAL, report.Status)

	sol, err := dfjtsp.ExtractSolution(f, report)
	require.NoError(t, err)
	require.InDelta(t, 4.0, sol.Objective, 1e-6)
	require.InDelta(t, 0.0, sol.Gap, 1e-6)
	require.True(t, sol.Optimal)

	// the tour closes a single circuit through all nodes
	next := map[int]int{}
	for _, av := range sol.Tour {
		require.InDelta(t, 1.0, av.Value, 1e-6)
		_, dup := next[av.Arc.I]
		require.False(t, dup)
		next[av.Arc.I] = av.Arc.J
	}
	require.Len(t, next, f.NodeCount)
	node, steps := 0, 0
	for {
		node = next[node]
		steps++
		if node == 0 {
			break
		}
		require.LessOrEqual(t, steps, f.NodeCount)
	}
	require.Equal(t, f.NodeCount, steps)
}
