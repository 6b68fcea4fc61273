package dfjtsp

import (
	"fmt"
	"strings"
)

// LinConstr is a single linear constraint in sparse form.
type LinConstr struct {
	Ind   []int32
	Val   []float64
	Sense int8
	RHS   float64
	Name  string
}

// Formulation is the complete DFJ model description: one binary variable
// per ordered arc over the nodes 0..N, a minimization objective and the
// degree plus subtour elimination constraints. It is plain data, ready to
// be loaded into a solver.
type Formulation struct {
	N         int // cost matrix dimension
	NodeCount int // number of nodes, N+1 (node 0 is the depot)
	VarCount  int
	VarNames  []string
	Obj       []float64
	Constrs   []LinConstr
}

// GetArcIndex maps the ordered arc (i,j) to its variable index, with all
// arcs of a tail node stored contiguously and the self-loop slot skipped.
func GetArcIndex(i, j, n0 int) int {
	val := i*(n0-1) + j
	if j > i {
		val--
	}
	return val
}

// BuildFormulation transforms (n, costMatrix) into the DFJ model. Arc costs
// are looked up as costMatrix[i-1][j-1] with the index wrapping below zero,
// so node 0 and node n read the same physical row. The number of subtour
// elimination constraints is 2^(n+1) - 2 - (n+1), which makes the build
// itself intractable for much more than 12-15 nodes.
func BuildFormulation(n int, costMatrix [][]float64) (*Formulation, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: node count %d", ErrDimensionMismatch, n)
	}
	if len(costMatrix) != n {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrDimensionMismatch, n, len(costMatrix))
	}
	for i := 0; i < n; i++ {
		if len(costMatrix[i]) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrDimensionMismatch, i, len(costMatrix[i]), n)
		}
	}

	n0 := n + 1
	f := &Formulation{
		N:         n,
		NodeCount: n0,
		VarCount:  n0 * (n0 - 1),
	}
	f.VarNames = make([]string, f.VarCount)
	f.Obj = make([]float64, f.VarCount)

	for i := 0; i < n0; i++ {
		for j := 0; j < n0; j++ {
			if j == i {
				continue
			}
			idx := GetArcIndex(i, j, n0)
			f.VarNames[idx] = fmt.Sprintf("X_%d_%d", i, j)
			f.Obj[idx] = costMatrix[((i-1)+n)%n][((j-1)+n)%n]
		}
	}

	// Each node 1..n-1 gets exactly one inbound and one outbound arc. The
	// depot and node n carry no explicit degree constraint.
	for j := 1; j < n; j++ {
		ind := make([]int32, 0, n0-1)
		val := make([]float64, 0, n0-1)
		for i := 0; i < n0; i++ {
			if i == j {
				continue
			}
			ind = append(ind, int32(GetArcIndex(i, j, n0)))
			val = append(val, 1.0)
		}
		f.Constrs = append(f.Constrs, LinConstr{Ind: ind, Val: val, Sense: SENSE_EQ, RHS: 1.0, Name: fmt.Sprintf("indeg_%d", j)})

		ind = make([]int32, 0, n0-1)
		val = make([]float64, 0, n0-1)
		for k := 0; k < n0; k++ {
			if k == j {
				continue
			}
			ind = append(ind, int32(GetArcIndex(j, k, n0)))
			val = append(val, 1.0)
		}
		f.Constrs = append(f.Constrs, LinConstr{Ind: ind, Val: val, Sense: SENSE_EQ, RHS: 1.0, Name: fmt.Sprintf("outdeg_%d", j)})
	}

	// Subtour elimination over every node subset S with 2 <= |S| < |N0|:
	// sum of arcs within S <= |S|-1.
	nodes := make([]int, n0)
	for i := 0; i < n0; i++ {
		nodes[i] = i
	}
	secCount := 0
	ps := NewPowerset(nodes)
	for {
		s, ok := ps.Next()
		if !ok {
			break
		}
		if len(s) < 2 || len(s) == n0 {
			continue
		}
		var (
			ind []int32
			val []float64
		)
		for _, i := range s {
			for _, j := range s {
				if j == i {
					continue
				}
				ind = append(ind, int32(GetArcIndex(i, j, n0)))
				val = append(val, 1.0)
			}
		}
		f.Constrs = append(f.Constrs, LinConstr{Ind: ind, Val: val, Sense: SENSE_LE, RHS: float64(len(s) - 1), Name: fmt.Sprintf("sec_%d", secCount)})
		secCount++
	}

	return f, nil
}

// String renders the whole model, one constraint per line. Only meant as a
// diagnostic dump for small instances.
func (f *Formulation) String() string {
	var b strings.Builder
	b.WriteString("minimize")
	for idx := 0; idx < f.VarCount; idx++ {
		fmt.Fprintf(&b, " + %g %s", f.Obj[idx], f.VarNames[idx])
	}
	b.WriteString("\nsubject to\n")
	for _, c := range f.Constrs {
		fmt.Fprintf(&b, "%s:", c.Name)
		for k := range c.Ind {
			fmt.Fprintf(&b, " + %g %s", c.Val[k], f.VarNames[c.Ind[k]])
		}
		fmt.Fprintf(&b, " %c= %g\n", c.Sense, c.RHS)
	}
	return b.String()
}
