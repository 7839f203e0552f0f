// Command export writes test case definitions to JSON for the Python reference checker.
// Run from the go-aperture module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/aperture/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name  string  `json:"name"`
	Shape string  `json:"shape"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     float64 `json:"w,omitempty"`
	H     float64 `json:"h,omitempty"`
	WIn   float64 `json:"w_in,omitempty"`
	WOut  float64 `json:"w_out,omitempty"`
	HOut  float64 `json:"h_out,omitempty"`
	Theta float64 `json:"theta"`
	Area  float64 `json:"area"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name: category + "_" + tc.Name,
		Area: tc.Area,
	}
	switch op := tc.Op.(type) {
	case testcases.Rect:
		jtc.Shape = "rect"
		jtc.X, jtc.Y = op.X, op.Y
		jtc.W, jtc.H = op.W, op.H
		jtc.Theta = op.Theta
	case testcases.Annulus:
		jtc.Shape = "annulus"
		jtc.X, jtc.Y = op.X, op.Y
		jtc.WIn, jtc.WOut = op.WIn, op.WOut
		jtc.HOut = op.HOut
		jtc.Theta = op.Theta
	}
	return jtc
}
