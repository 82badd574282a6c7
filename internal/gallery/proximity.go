package gallery

import "math"

// State holds the two independent proximity zones for a viewer position.
// The zones are not mutually exclusive by construction; for halls longer
// than twice the threshold they are in practice.
type State struct {
	NearStartWall   bool    `json:"near_start_wall"`
	NearEndWall     bool    `json:"near_end_wall"`
	DistanceToStart float64 `json:"distance_to_start"`
	DistanceToEnd   float64 `json:"distance_to_end"`
}

// InitialState is the detector state before the first successful poll:
// both zones off, both distances unbounded.
func InitialState() State {
	return State{
		DistanceToStart: math.Inf(1),
		DistanceToEnd:   math.Inf(1),
	}
}

// Poll computes zone membership for a position along the hall axis.
// Membership is strict: a position exactly threshold away is outside.
func Poll(position float64, layout *Layout, threshold float64) State {
	distStart := math.Abs(position - layout.StartWallX)
	distEnd := math.Abs(position - layout.EndWallX)
	return State{
		NearStartWall:   distStart < threshold,
		NearEndWall:     distEnd < threshold,
		DistanceToStart: distStart,
		DistanceToEnd:   distEnd,
	}
}
