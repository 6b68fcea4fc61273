package dfjtsp

// ExtractSolution derives the reported solution from a solver report: the
// objective of the best incumbent, the gap (UB-LB)/UB and every arc with a
// strictly positive value, in ascending arc index order. It fails with
// ErrNoSolutionAvailable when the report carries no incumbent and never
// returns degenerate zero values instead.
func ExtractSolution(f *Formulation, report *SolverReport) (*Solution, error) {
	if report == nil || report.Status == STATUS_INF_OR_UNBD || report.SolCount < 1 || len(report.X) == 0 {
		return nil, ErrNoSolutionAvailable
	}
	if len(report.X) != f.VarCount {
		return nil, ErrDimensionMismatch
	}

	ub := report.Objective
	lb := report.ObjBound
	if ub == 0 {
		return nil, ErrDivisionByZeroGap
	}

	sol := &Solution{
		Objective: ub,
		Gap:       (ub - lb) / ub,
		LBound:    lb,
		UBound:    ub,
		Optimal:   report.Status == STATUS_OPTIMAL,
		Runtime:   report.Runtime,
	}

	n0 := f.NodeCount
	for i := 0; i < n0; i++ {
		for j := 0; j < n0; j++ {
			if j == i {
				continue
			}
			v := report.X[GetArcIndex(i, j, n0)]
			if v > 0 {
				sol.Tour = append(sol.Tour, ArcValue{Arc: Arc{I: i, J: j}, Value: v})
				Log(3, "%s = %f", f.VarNames[GetArcIndex(i, j, n0)], v)
			}
		}
	}
	return sol, nil
}
