package layout

import (
	"math"

	"github.com/graphscape/graphscape/pkg/graph"
)

// layoutArea is the reference area from which the ideal edge length is
// derived; it matches the unit square the random layout seeds into.
const layoutArea = 1.0

// FruchtermanReingold runs the classical force-directed algorithm with an
// explicit cooling schedule. With k = sqrt(area/n) the ideal distance:
//
//   - repulsion between any two nodes is k²/d
//   - attraction between connected nodes is d²/k
//   - Gravity pulls every node toward the current centroid with the same
//     d²/k law scaled by the Gravity parameter
//
// The temperature starts at a tenth of the frame and decreases linearly
// to zero over p.Iterations steps, capping the displacement permitted per
// node per step. Iterations == 0 returns the input positions unchanged.
func FruchtermanReingold(g *graph.Graph, p Params) ([]graph.Point, error) {
	if err := p.checkIterations(); err != nil {
		return nil, err
	}
	if err := p.checkGravity(); err != nil {
		return nil, err
	}

	pos := g.Positions()
	n := len(pos)
	if n == 0 || p.Iterations == 0 {
		return pos, nil
	}

	k := math.Sqrt(layoutArea / float64(n))
	initialTemp := math.Sqrt(layoutArea) / 10
	edges := g.Edges()
	disp := make([]graph.Point, n)

	for iter := 0; iter < p.Iterations; iter++ {
		for i := range disp {
			disp[i] = graph.Point{}
		}

		// Repulsion k²/d between every pair.
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				delta := pos[i].Sub(pos[j])
				d := delta.Norm()
				if d < minSeparation {
					d = minSeparation
				}
				force := k * k / d
				disp[i] = disp[i].Add(delta.Scale(force / d))
			}
		}

		// Attraction d²/k along every edge.
		for _, e := range edges {
			delta := pos[e.Source].Sub(pos[e.Target])
			d := delta.Norm()
			if d == 0 {
				continue
			}
			force := d * d / k
			pull := delta.Scale(force / d)
			disp[e.Source] = disp[e.Source].Sub(pull)
			disp[e.Target] = disp[e.Target].Add(pull)
		}

		// Gravity toward the centroid, attraction-shaped and scaled.
		if p.Gravity > 0 {
			centroid := centroidOf(pos)
			for i := 0; i < n; i++ {
				delta := pos[i].Sub(centroid)
				d := delta.Norm()
				if d == 0 {
					continue
				}
				force := p.Gravity * d * d / k
				disp[i] = disp[i].Sub(delta.Scale(force / d))
			}
		}

		// Linear cooling caps the step; the final iteration freezes.
		temp := initialTemp * (1 - float64(iter)/float64(p.Iterations))
		for i := 0; i < n; i++ {
			step := disp[i].Norm()
			if step == 0 {
				continue
			}
			if step > temp {
				disp[i] = disp[i].Scale(temp / step)
			}
			pos[i] = pos[i].Add(disp[i])
		}
	}

	return pos, nil
}

func centroidOf(pos []graph.Point) graph.Point {
	var c graph.Point
	for _, p := range pos {
		c = c.Add(p)
	}
	return c.Scale(1 / float64(len(pos)))
}
