/* Copyright 2022, Arkadiusz Zarychta, arkadiusz.zarychta@h-brs.de */
/* Copyright 2022, Gurobi Optimization, LLC */

package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/ioutil"
	"strings"

	"git.solver4all.com/azaryc2s/dfjtsp"
	"git.solver4all.com/azaryc2s/gorobi/gurobi"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

var (
	edgeDist [][]float64
	sol      dfjtsp.Solution
	pInst    dfjtsp.TSPInstance

	inputF    *string
	outputF   *string
	timeLimit *float64
	mipGap    *float64
	writeLP   *bool
	console   *bool
	logLvl    *int
)

func main() {
	var err error

	inputF = flag.String("input", "input.json", "Path to the input instance")
	outputF = flag.String("output", "", "Path to the output file. By default the input file will be overwritten adding the solution")
	timeLimit = flag.Float64("time", 0, "Time limit for the solver in seconds. 0 means no limit")
	mipGap = flag.Float64("mipgap", 0, "Relative MIP gap tolerance. 0 means solver default")
	writeLP = flag.Bool("lp", false, "Write the model to '<inputName>.lp' before solving")
	console = flag.Bool("console", false, "Let the solver log to the console")
	logLvl = flag.Int("log", 2, "Level of the logging output. Higher value is more verbose. Range 1-4")

	flag.Parse()

	hostStat, _ := host.Info()
	cpuStat, _ := cpu.Info()
	vmStat, _ := mem.VirtualMemory()
	sol = dfjtsp.Solution{Comment: "", System: dfjtsp.SysInfo{Platform: hostStat.Platform, CPU: cpuStat[0].ModelName, RAM: fmt.Sprintf("%d GB", (vmStat.Total / 1024 / 1024 / 1024))}}

	dfjtsp.InitLoggers(*logLvl)

	instStr, err := ioutil.ReadFile(*inputF)
	if err != nil {
		dfjtsp.Log(1, "At %s: %s\n", *inputF, err.Error())
		return
	}

	err = json.Unmarshal(instStr, &pInst)
	if err != nil {
		dfjtsp.Log(1, "At %s: %s\n", *inputF, err.Error())
		return
	}

	edgeDist = pInst.EdgeWeights
	if edgeDist == nil {
		edgeDist = dfjtsp.CalcEdgeDist(pInst.NodeCoordinates, pInst.EdgeWeightType)
		pInst.EdgeWeights = edgeDist
	}
	n := pInst.Dimension
	if n == 0 {
		n = len(edgeDist)
	}
	pInst.Solution = &sol

	formulation, err := dfjtsp.BuildFormulation(n, edgeDist)
	if err != nil {
		dfjtsp.Log(1, "At %s: %s\n", *inputF, err.Error())
		return
	}
	dfjtsp.Log(2, "Built DFJ model with %d variables and %d constraints", formulation.VarCount, len(formulation.Constrs))

	// Create environment
	env, err := gurobi.LoadEnv("tsp_dfj.log")
	if err != nil {
		dfjtsp.Log(1, "At %s: %s\n", *inputF, err.Error())
		return
	}
	defer env.Free()
	threads, _ := env.GetIntParam(gurobi.INT_PAR_THREADS)
	sol.Comment = fmt.Sprintf("Solver-Settings: Threads=%d, TimeLimit=%.0f, MIPGap=%f", threads, *timeLimit, *mipGap)

	opts := dfjtsp.SolveOptions{TimeLimit: *timeLimit, MIPGap: *mipGap, LogToConsole: *console}
	if *writeLP {
		opts.WriteLP = strings.ReplaceAll(*inputF, ".json", ".lp")
	}

	report, err := dfjtsp.Solve(env, formulation, opts)
	if err != nil {
		if errors.Is(err, dfjtsp.ErrInfeasibleOrUnbounded) {
			sol.Comment += ". Model is infeasible or unbounded"
			writeSolution()
		}
		dfjtsp.Log(1, "At %s: %s\n", *inputF, err.Error())
		return
	}
	if report.Status == dfjtsp.STATUS_TIME_LIMIT {
		sol.Comment += ". Time limit reached"
	}

	dfjtsp.Log(2, "\n---OPTIMIZATION DONE---\n")

	solved, err := dfjtsp.ExtractSolution(formulation, report)
	if err != nil {
		sol.Comment += fmt.Sprintf(". Couldn't extract a solution: %s", err.Error())
		writeSolution()
		dfjtsp.Log(1, "At %s: %s\n", *inputF, err.Error())
		return
	}
	solved.System = sol.System
	solved.Comment = sol.Comment
	solved.Time = fmt.Sprintf("%fs", report.Runtime)
	sol = *solved
	pInst.Solution = &sol
	writeSolution()

	dfjtsp.Log(2, "Found a tour with obj-value of %f (gap %f) over %d arcs\n", sol.Objective, sol.Gap, len(sol.Tour))
}

func writeSolution() {
	jsonInst, err := json.MarshalIndent(pInst, "", "\t")
	if err != nil {
		dfjtsp.Log(1, "At %s: %s\n", *inputF, err.Error())
		return
	}
	jsonInst = []byte(dfjtsp.SanitizeJsonArrayLineBreaks(string(jsonInst)))
	var fileName string
	if *outputF == "" {
		fileName = *inputF //overwrite the input file
	} else {
		fileName = *outputF
	}
	err = ioutil.WriteFile(fileName, jsonInst, 0644)
	if err != nil {
		dfjtsp.Log(1, "At %s: %s\n", *inputF, err.Error())
		return
	}
}
