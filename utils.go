package dfjtsp

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

type ArrayIntFlags []int

func (a *ArrayIntFlags) String() string {
	parts := make([]string, len(*a))
	for i, v := range *a {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (a *ArrayIntFlags) Set(value string) error {
	v, err := strconv.Atoi(value)
	if err != nil {
		return err
	}
	*a = append(*a, v)
	return nil
}

func CalcEdgeDist(coordinates [][]float64, distType string) [][]float64 {
	n := len(coordinates)
	result := make([][]float64, n)
	for node := 0; node < n; node++ {
		result[node] = make([]float64, n)
	}
	for node := 0; node < n; node++ {
		for node2 := 0; node2 < node; node2++ {
			xDist := coordinates[node][0] - coordinates[node2][0]
			yDist := coordinates[node][1] - coordinates[node2][1]
			distance := math.Sqrt(math.Pow(xDist, 2) + math.Pow(yDist, 2))
			if distType == "CEIL_2D" {
				distance = math.Ceil(distance)
			}
			result[node][node2] = distance
			result[node2][node] = distance
		}
	}
	return result
}

func Print2DArray(a [][]float64) string {
	res := ""
	for _, x := range a {
		for _, y := range x {
			res += fmt.Sprintf("%.3f,", y)
		}
		res += fmt.Sprintln("")
	}
	return res
}

func SanitizeJsonArrayLineBreaks(json string) string {
	res := fmt.Sprintf("%s", json)
	var numbers = regexp.MustCompile(`\s*([-]?[0-9]+(\.[0-9]+)?),\s+([-]?[0-9]+(\.[0-9]+)?)(,)?`)
	var brackets = regexp.MustCompile(`\[(([-]?[0-9]+(\.[0-9]+)?,)+[-]?[0-9]+(\.[0-9]+)?)\s+\](,?)(\s+)`)
	for numbers.MatchString(res) {
		res = numbers.ReplaceAllString(res, "$1,$3$5")
	}
	for brackets.MatchString(res) {
		res = brackets.ReplaceAllString(res, "[$1]$5$6")
	}
	return res
}
