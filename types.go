package dfjtsp

const (
	STATUS_OPTIMAL     = "OPTIMAL"
	STATUS_TIME_LIMIT  = "TIME_LIMIT"
	STATUS_INF_OR_UNBD = "INF_OR_UNBD"
	STATUS_INTERRUPTED = "INTERRUPTED"

	SENSE_LE int8 = '<'
	SENSE_GE int8 = '>'
	SENSE_EQ int8 = '='
)

type TSPInstance struct {
	Name    string `json:"name"`
	Comment string `json:"comment"`
	Type    string `json:"type"`

	Dimension       int         `json:"dimension"`
	DisplayDataType string      `json:"display_data_type"`
	EdgeWeightType  string      `json:"edge_weight_type"`
	NodeCoordinates [][]float64 `json:"node_coordinates"`
	EdgeWeights     [][]float64 `json:"edge_weights"`

	Solution *Solution `json:"solution,omitempty"`
}

// Arc is an ordered node pair (I,J) with I != J.
type Arc struct {
	I int `json:"i"`
	J int `json:"j"`
}

// ArcValue is a solved arc variable with a strictly positive value. The
// value may be fractional if the solver returned a relaxed incumbent.
type ArcValue struct {
	Arc   Arc     `json:"arc"`
	Value float64 `json:"value"`
}

type Solution struct {
	Objective float64    `json:"obj"`
	Gap       float64    `json:"gap"`
	LBound    float64    `json:"lbound"`
	UBound    float64    `json:"ubound"`
	Optimal   bool       `json:"optimal"`
	Tour      []ArcValue `json:"tour"`
	Runtime   float64    `json:"runtime"`

	Time    string  `json:"time"`
	System  SysInfo `json:"system"`
	Comment string  `json:"comment"`
}

// SysInfo saves the basic system information
type SysInfo struct {
	Platform string
	CPU      string
	RAM      string
}

// SolveOptions are the knobs passed through to the solver.
type SolveOptions struct {
	TimeLimit    float64 // seconds, 0 = unlimited
	MIPGap       float64 // relative gap tolerance, 0 = solver default
	LogToConsole bool
	WriteLP      string // write the model as .lp to this path if set
}

// SolverReport is what the solver hands back: status, bounds, timing and
// the raw variable assignment. Extraction works on this alone, so it can
// be exercised without a solver license.
type SolverReport struct {
	Status    string    `json:"status"`
	SolCount  int32     `json:"sol_count"`
	Objective float64   `json:"objective"` // best incumbent (upper bound)
	ObjBound  float64   `json:"obj_bound"` // best known lower bound
	Runtime   float64   `json:"runtime"`   // seconds
	X         []float64 `json:"-"`         // variable values, indexed by arc index
}
