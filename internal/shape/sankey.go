// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

package shape

import (
	"fmt"
	"math/rand"

	"github.com/apexgrid/pitwall/internal/models"
)

// rootNodeLabel is the single source node every constructor flow hangs off.
const rootNodeLabel = "Points"

// Sankey is the node/link representation a flow diagram renders directly.
// Node index 0 is always the root "Points" node; constructors and drivers
// get stable integer indices in order of first appearance in the input.
type Sankey struct {
	Labels     []string  `json:"labels"`
	NodeValues []float64 `json:"node_values"`
	Sources    []int     `json:"sources"`
	Targets    []int     `json:"targets"`
	LinkValues []float64 `json:"link_values"`
	LinkColors []string  `json:"link_colors"`
}

// RandomColor returns a translucent RGBA color string with each channel in
// [100, 255] and alpha in [0.30, 1.00]. Purely cosmetic; never feeds into
// ordering or aggregation.
func RandomColor(rnd *rand.Rand) string {
	r := 100 + rnd.Intn(156)
	g := 100 + rnd.Intn(156)
	b := 100 + rnd.Intn(156)
	o := float64(30+rnd.Intn(71)) / 100
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", r, g, b, o)
}

// BuildSankey turns constructor-to-driver point flows into a two-level flow
// graph: one link from the root to each constructor carrying the
// constructor's accumulated points, and one link from the constructor to
// each of its drivers carrying the driver's points.
//
// Node indices depend only on first-appearance order, so reordering the
// input rows permutes indices but never changes any node's accumulated
// total.
func BuildSankey(rows []models.SankeyRow, rnd *rand.Rand) Sankey {
	s := Sankey{
		Labels:     []string{rootNodeLabel},
		NodeValues: []float64{0},
	}
	index := map[string]int{rootNodeLabel: 0}

	nodeFor := func(label string) int {
		if i, ok := index[label]; ok {
			return i
		}
		i := len(s.Labels)
		index[label] = i
		s.Labels = append(s.Labels, label)
		s.NodeValues = append(s.NodeValues, 0)
		return i
	}

	link := func(src, dst int, value float64) {
		s.Sources = append(s.Sources, src)
		s.Targets = append(s.Targets, dst)
		s.LinkValues = append(s.LinkValues, value)
		s.LinkColors = append(s.LinkColors, RandomColor(rnd))
	}

	// One root link per constructor, added when the constructor is first
	// seen. Its value is patched up as further driver rows accumulate.
	rootLink := map[int]int{}

	for _, row := range rows {
		ci := nodeFor(row.ConstructorName)
		di := nodeFor(row.DriverSurname)

		if _, ok := rootLink[ci]; !ok {
			rootLink[ci] = len(s.LinkValues)
			link(0, ci, 0)
		}

		s.NodeValues[0] += row.TotalPoints
		s.NodeValues[ci] += row.TotalPoints
		s.NodeValues[di] += row.TotalPoints
		s.LinkValues[rootLink[ci]] += row.TotalPoints

		link(ci, di, row.TotalPoints)
	}

	return s
}
