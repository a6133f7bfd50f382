package layout

import (
	"github.com/graphscape/graphscape/pkg/graph"
)

const (
	// minSeparation is the distance floor that keeps the repulsion term
	// away from its singularity at zero distance.
	minSeparation = 1e-2

	// maxStep caps the per-node displacement applied in one simulation
	// step.
	maxStep = 1.0

	// speedFactor is the global damping applied to accumulated forces
	// before integration; without it the spring terms overshoot and the
	// simulation cycles instead of settling.
	speedFactor = 0.1
)

// ForceAtlas2 runs an iterative force simulation for p.Iterations steps,
// starting from the graph's input positions. Per step:
//
//   - every node pair repels with magnitude ScalingRatio/d (d clamped to
//     a small floor)
//   - every edge pulls its endpoints together with magnitude proportional
//     to their distance; duplicate edges and self-loops simply contribute
//     additional (for self-loops, zero) force terms
//   - every node is pulled toward the origin with magnitude Gravity
//
// Accumulated force is applied as a displacement capped at maxStep.
// Termination is purely iteration-count based; Iterations == 0 returns
// the input positions unchanged.
func ForceAtlas2(g *graph.Graph, p Params) ([]graph.Point, error) {
	if err := p.checkIterations(); err != nil {
		return nil, err
	}
	if err := p.checkGravity(); err != nil {
		return nil, err
	}
	if err := p.checkScalingRatio(); err != nil {
		return nil, err
	}

	pos := g.Positions()
	n := len(pos)
	if n == 0 {
		return pos, nil
	}

	edges := g.Edges()
	disp := make([]graph.Point, n)

	for iter := 0; iter < p.Iterations; iter++ {
		for i := range disp {
			disp[i] = graph.Point{}
		}

		// Repulsion: pairwise, distance-scaled.
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
				force := p.ScalingRatio / d
				disp[i] = disp[i].Add(delta.Scale(force / d))
			}
		}

		// Attraction: spring-like, proportional to distance, so the
		// displacement contribution is the edge vector itself.
		for _, e := range edges {
			delta := pos[e.Source].Sub(pos[e.Target])
			disp[e.Source] = disp[e.Source].Sub(delta)
			disp[e.Target] = disp[e.Target].Add(delta)
		}

		// Gravity: unit pull toward the origin scaled by Gravity.
		if p.Gravity > 0 {
			for i := 0; i < n; i++ {
				if d := pos[i].Norm(); d > 0 {
					disp[i] = disp[i].Sub(pos[i].Scale(p.Gravity / d))
				}
			}
		}

		// Integration: damp, cap, apply.
		for i := 0; i < n; i++ {
			disp[i] = disp[i].Scale(speedFactor)
			step := disp[i].Norm()
			if step == 0 {
				continue
			}
			if step > maxStep {
				disp[i] = disp[i].Scale(maxStep / step)
			}
			pos[i] = pos[i].Add(disp[i])
		}
	}

	return pos, nil
}
