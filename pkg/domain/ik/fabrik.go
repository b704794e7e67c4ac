// 指示: miu200521358
package ik

import "github.com/miu200521358/mu_vrmik/pkg/domain/mmath"

// FABRIK_ITERATIONS は到達可能時の反復回数。早期終了はしない。
const FABRIK_ITERATIONS = 30

// SolveOptions はFABRIK解決の追加設定を表す。
type SolveOptions struct {
	Pole PoleVector
}

// Solution はFABRIK解決結果を表す。
type Solution struct {
	Points     ChainPoints
	Reachable  bool
	Iterations int
	Degenerate bool
}

// End は末端点を返す。
func (s Solution) End() mmath.Vec3 {
	return s.Points[CHAIN_JOINT_COUNT-1]
}

// SolveFabrik は基点を固定したまま末端を目標へ寄せる解決点を求める。
func SolveFabrik(points ChainPoints, target mmath.Vec3, lengths SegmentLengths, opts SolveOptions) Solution {
	base := points[0]
	total := 0.0
	for _, length := range lengths {
		total += length
	}

	if base.Distance(target) > total {
		return solveUnreachable(base, target, lengths)
	}

	solver := newFabrikSolver(points, target, lengths)
	desired := points
	for iteration := 0; iteration < FABRIK_ITERATIONS; iteration++ {
		solver.forward(&desired, target)
		if opts.Pole.Enabled {
			desired = ApplyPoleVectorConstraint(desired, lengths, opts.Pole)
		}
		solver.backward(&desired, base)
		if opts.Pole.Enabled {
			desired = ApplyPoleVectorConstraint(desired, lengths, opts.Pole)
		}
	}
	return Solution{
		Points:     desired,
		Reachable:  true,
		Iterations: FABRIK_ITERATIONS,
		Degenerate: solver.degenerate,
	}
}

// solveUnreachable は基点から目標への半直線上に累積長で点を並べる。
func solveUnreachable(base mmath.Vec3, target mmath.Vec3, lengths SegmentLengths) Solution {
	direction, ok := target.Subed(base).TryNormalized()
	if !ok {
		direction = mmath.UNIT_Y_NEG_VEC3
	}
	var desired ChainPoints
	desired[0] = base
	cumulative := 0.0
	for i, length := range lengths {
		cumulative += length
		desired[i+1] = base.Added(direction.MuledScalar(cumulative))
	}
	return Solution{Points: desired, Reachable: false, Degenerate: !ok}
}

// fabrikSolver は区間ごとの最後に有効だった方向を保持する。
type fabrikSolver struct {
	lengths    SegmentLengths
	directions [CHAIN_SEGMENT_COUNT]mmath.Vec3
	degenerate bool
}

func newFabrikSolver(points ChainPoints, target mmath.Vec3, lengths SegmentLengths) *fabrikSolver {
	fallback, ok := target.Subed(points[0]).TryNormalized()
	if !ok {
		fallback = mmath.UNIT_Y_NEG_VEC3
	}
	solver := &fabrikSolver{lengths: lengths}
	for i := range solver.directions {
		direction, ok := points[i+1].Subed(points[i]).TryNormalized()
		if !ok {
			direction = fallback
			solver.degenerate = true
		}
		solver.directions[i] = direction
	}
	return solver
}

// direction は区間 i の向きを返す。退化時は最後に有効だった向きを使う。
func (s *fabrikSolver) direction(segment int, from mmath.Vec3, to mmath.Vec3) mmath.Vec3 {
	direction, ok := to.Subed(from).TryNormalized()
	if !ok {
		s.degenerate = true
		return s.directions[segment]
	}
	s.directions[segment] = direction
	return direction
}

// forward は末端を目標に固定して根元側へ詰める。
func (s *fabrikSolver) forward(desired *ChainPoints, target mmath.Vec3) {
	desired[CHAIN_JOINT_COUNT-1] = target
	for i := CHAIN_JOINT_COUNT - 1; i > 0; i-- {
		direction := s.direction(i-1, desired[i-1], desired[i])
		desired[i-1] = desired[i].Subed(direction.MuledScalar(s.lengths[i-1]))
	}
}

// backward は基点を固定して末端側へ詰める。
func (s *fabrikSolver) backward(desired *ChainPoints, base mmath.Vec3) {
	desired[0] = base
	for i := 1; i < CHAIN_JOINT_COUNT; i++ {
		direction := s.direction(i-1, desired[i-1], desired[i])
		desired[i] = desired[i-1].Added(direction.MuledScalar(s.lengths[i-1]))
	}
}
