package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"git.solver4all.com/azaryc2s/dfjtsp"
)

func main() {
	if len(os.Args) < 2 {
		log.Printf("No arguments passed!")
		return
	}
	dirName := os.Args[1]
	dir, err := ioutil.ReadDir(dirName)
	if err != nil {
		log.Printf("Couldn't open directory %s: %s\n", os.Args[1], err.Error())
		return
	}
	fmt.Printf("Name,Optimal,Time,Obj,LBound,Gap,Dimension,Comment\n")
	for _, f := range dir {
		fileName := dirName + "/" + f.Name()
		if strings.Contains(fileName, ".json") {
			inst := dfjtsp.TSPInstance{}
			instStr, err := ioutil.ReadFile(fileName)
			if err != nil {
				log.Printf("Couldn't read %s: %s\n", f.Name(), err.Error())
				return
			}
			err = json.Unmarshal(instStr, &inst)
			if err != nil {
				log.Printf("Couldn't parse %s: %s\n", f.Name(), err.Error())
				return
			}
			if inst.Solution == nil {
				fmt.Printf("No solution for %s\n", inst.Name)
				continue
			}
			sol := *inst.Solution
			fmt.Printf("%s,%t,%s,%.3f,%.3f,%.4f,%d,%s\n", inst.Name, sol.Optimal, sol.Time, sol.Objective, sol.LBound, sol.Gap, inst.Dimension, sol.Comment)
		}
	}
}
