package dfjtsp

import "errors"

// ErrDimensionMismatch is returned when the cost matrix shape is
// inconsistent with the declared node count.
var ErrDimensionMismatch = errors.New("dfjtsp: cost matrix dimension mismatch")

// ErrSolverUnavailable is returned when the gurobi environment cannot be
// created (missing library, license or log file permissions).
var ErrSolverUnavailable = errors.New("dfjtsp: solver unavailable")

// ErrInfeasibleOrUnbounded is returned when the solver proves the model
// has no valid solution.
var ErrInfeasibleOrUnbounded = errors.New("dfjtsp: model is infeasible or unbounded")

// ErrNoSolutionAvailable is returned when extraction is attempted without
// any incumbent solution.
var ErrNoSolutionAvailable = errors.New("dfjtsp: no solution available")

// ErrDivisionByZeroGap is returned when the gap (UB-LB)/UB is undefined
// because the upper bound is zero.
var ErrDivisionByZeroGap = errors.New("dfjtsp: gap undefined for zero upper bound")
