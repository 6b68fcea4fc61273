package dfjtsp

import (
	"fmt"
	"time"

	"git.solver4all.com/azaryc2s/gorobi/gurobi"
)

func gurobiSense(sense int8) int8 {
	switch sense {
	case SENSE_LE:
		return gurobi.LESS_EQUAL
	case SENSE_GE:
		return gurobi.GREATER_EQUAL
	default:
		return gurobi.EQUAL
	}
}

// Solve loads the formulation into a gurobi model, optimizes it and returns
// the raw report. A blocking call; for larger instances the runtime is
// bounded only by opts.TimeLimit. Passing a nil env creates a fresh one for
// the duration of the call.
func Solve(env *gurobi.Env, f *Formulation, opts SolveOptions) (*SolverReport, error) {
	var err error
	if env == nil {
		env, err = gurobi.LoadEnv("dfjtsp_gurobi.log")
		if err != nil {
			Log(1, err.Error())
			return nil, fmt.Errorf("%w: %s", ErrSolverUnavailable, err.Error())
		}
		defer env.Free()
	}

	if !opts.LogToConsole {
		env.SetIntParam("LogToConsole", int32(0))
		defer env.SetIntParam("LogToConsole", int32(1))
	}
	if opts.TimeLimit > 0 {
		env.SetDblParam("TimeLimit", opts.TimeLimit)
	}
	if opts.MIPGap > 0 {
		env.SetDblParam("MIPGap", opts.MIPGap)
	}

	varTypes := make([]int8, f.VarCount)
	for i := 0; i < f.VarCount; i++ {
		varTypes[i] = gurobi.BINARY
	}

	model, err := env.NewModel("tsp_dfj", int32(f.VarCount), f.Obj, nil, nil, varTypes, f.VarNames)
	if err != nil {
		Log(1, err.Error())
		return nil, err
	}
	defer model.Free()

	err = model.SetIntAttr(gurobi.INT_ATTR_MODELSENSE, gurobi.MINIMIZE)
	if err != nil {
		Log(1, err.Error())
		return nil, err
	}

	for _, c := range f.Constrs {
		err = model.AddConstr(c.Ind, c.Val, gurobiSense(c.Sense), c.RHS, c.Name)
		if err != nil {
			Log(1, "Error adding constraint %s: %s\n", c.Name, err.Error())
			return nil, err
		}
	}

	Log(3, "Full model dump:\n%s", f.String())
	if opts.WriteLP != "" {
		err = model.Write(opts.WriteLP)
		if err != nil {
			Log(1, err.Error())
			return nil, err
		}
	}

	startTime := time.Now()
	err = model.Optimize()
	if err != nil {
		Log(1, err.Error())
		return nil, err
	}
	report := &SolverReport{Runtime: time.Since(startTime).Seconds()}

	optimstatus, err := model.GetIntAttr(gurobi.INT_ATTR_STATUS)
	if err != nil {
		Log(1, "Couldn't retrieve optimization status: %s\n", err.Error())
		return nil, err
	}
	switch optimstatus {
	case gurobi.OPTIMAL:
		report.Status = STATUS_OPTIMAL
	case gurobi.INF_OR_UNBD:
		report.Status = STATUS_INF_OR_UNBD
		return report, ErrInfeasibleOrUnbounded
	case gurobi.TIME_LIMIT:
		report.Status = STATUS_TIME_LIMIT
	default:
		report.Status = STATUS_INTERRUPTED
	}

	report.SolCount, err = model.GetIntAttr(gurobi.INT_ATTR_SOLCOUNT)
	if err != nil {
		Log(1, err.Error())
		return nil, err
	}

	report.ObjBound, err = model.GetDblAttr(gurobi.DBL_ATTR_OBJBOUND)
	if err != nil {
		Log(1, "Couldn't retrieve the lower-bound-value: %s\n", err.Error())
		return nil, err
	}

	if report.SolCount > 0 {
		report.Objective, err = model.GetDblAttr(gurobi.DBL_ATTR_OBJVAL)
		if err != nil {
			Log(1, "Couldn't retrieve the obj-value: %s\n", err.Error())
			return nil, err
		}
		report.X, err = model.GetDblAttrArray(gurobi.DBL_ATTR_X, 0, int32(f.VarCount))
		if err != nil {
			Log(1, err.Error())
			return nil, err
		}
	}

	Log(2, "Optimization finished with status %s after %.2fs", report.Status, report.Runtime)
	return report, nil
}
