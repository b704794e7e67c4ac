// 指示: miu200521358
package ik

import "github.com/miu200521358/mu_vrmik/pkg/domain/mmath"

// DEFAULT_POLE_WEIGHT はポールベクトルの既定強度。
const DEFAULT_POLE_WEIGHT = 1.0

// PoleVector は肘の向きを寄せる平面の指定を表す。既定では無効。
type PoleVector struct {
	Enabled   bool
	Direction mmath.Vec3
	Weight    float64
}

// NewPoleVector は下向きのポールベクトル設定を無効状態で生成する。
func NewPoleVector() PoleVector {
	return PoleVector{Enabled: false, Direction: mmath.UNIT_Y_NEG_VEC3, Weight: DEFAULT_POLE_WEIGHT}
}

// ApplyPoleVectorConstraint は肘を上腕→手首軸とポール方向が張る平面のポール側へ寄せる。
// 上腕と手首の位置、上腕→肘の長さは保つ。
func ApplyPoleVectorConstraint(points ChainPoints, lengths SegmentLengths, pole PoleVector) ChainPoints {
	if !pole.Enabled || pole.Weight <= 0 {
		return points
	}
	root := points[0]
	elbow := points[1]
	hand := points[2]

	axis, ok := hand.Subed(root).TryNormalized()
	if !ok {
		return points
	}
	normal, ok := axis.Cross(pole.Direction).TryNormalized()
	if !ok {
		return points
	}

	projected := elbow.Subed(normal.MuledScalar(elbow.Subed(root).Dot(normal)))
	axisPoint := root.Added(axis.MuledScalar(projected.Subed(root).Dot(axis)))
	offset := projected.Subed(axisPoint)
	if offset.Dot(pole.Direction) < 0 {
		projected = axisPoint.Subed(offset)
	}

	weight := pole.Weight
	if weight > 1 {
		weight = 1
	}
	blended := elbow.Lerp(projected, weight)
	direction, ok := blended.Subed(root).TryNormalized()
	if !ok {
		return points
	}
	points[1] = root.Added(direction.MuledScalar(lengths[0]))
	return points
}
