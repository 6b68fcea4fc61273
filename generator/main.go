package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"math/rand"
	"time"

	"git.solver4all.com/azaryc2s/dfjtsp"
)

var nodes dfjtsp.ArrayIntFlags
var name *string
var output *string
var count *int
var xTo *int
var yTo *int
var w *string

func main() {
	flag.Var(&nodes, "n", "List of number of nodes")
	name = flag.String("name", "zarychta", "Name for the instance")
	output = flag.String("outputDir", ".", "Output directory")
	count = flag.Int("count", 1, "Number of instances per node count")
	xTo = flag.Int("x", 10000, "Max value on the x-axis")
	yTo = flag.Int("y", 10000, "Max value on the y-axis")
	w = flag.String("w", "EUC_2D", "EDGE_WEIGHT_TYPE - how the distance between nodes is calculated.")

	flag.Parse()

	for l := 0; l < *count; l++ {
		rand.Seed(time.Now().UnixNano())
		for i := 0; i < len(nodes); i++ {
			n := nodes[i]
			coordinatesArray := make([][]float64, n)
			for node := 0; node < n; node++ {
				x := rand.Intn(*xTo)
				y := rand.Intn(*yTo)
				coordinatesArray[node] = []float64{float64(x), float64(y)}
			}
			edgeWeights := dfjtsp.CalcEdgeDist(coordinatesArray, *w)

			comment := fmt.Sprintf("%s instance Nr. %d with %d nodes", *name, l, n)
			instName := fmt.Sprintf("%s_%d_%d", *name, n, l)
			inst := dfjtsp.TSPInstance{Name: instName, Comment: comment, Type: "TSP", Dimension: n, NodeCoordinates: coordinatesArray, EdgeWeights: edgeWeights, DisplayDataType: "COORD_DISPLAY", EdgeWeightType: *w}

			jsonInst, err := json.MarshalIndent(inst, "", "\t")
			if err != nil {
				log.Fatal(err)
			}

			jsonInst = []byte(dfjtsp.SanitizeJsonArrayLineBreaks(string(jsonInst)))
			err = ioutil.WriteFile(fmt.Sprintf("%s/%s.json", *output, instName), jsonInst, 0644)
			if err != nil {
				log.Fatal(err)
			}
		}
	}
}
