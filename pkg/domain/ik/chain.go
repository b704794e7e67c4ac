// 指示: miu200521358
// Package ik は腕チェーンのIK計算を提供する。
package ik

import (
	"github.com/miu200521358/mu_vrmik/pkg/domain/mmath"
	"github.com/miu200521358/mu_vrmik/pkg/domain/model"
)

const (
	// CHAIN_JOINT_COUNT はチェーンの関節数。
	CHAIN_JOINT_COUNT = 4
	// CHAIN_SEGMENT_COUNT はチェーンの区間数。
	CHAIN_SEGMENT_COUNT = CHAIN_JOINT_COUNT - 1
	// DEFAULT_GRASP_OFFSET は手首から把持点までの既定距離。
	DEFAULT_GRASP_OFFSET = 0.1
)

// ChainJoints は [肩, 上腕, 前腕, 手首] の関節Index。
type ChainJoints [CHAIN_JOINT_COUNT]int

// ChainPoints は [上腕, 前腕, 手首, 把持点] の解決点。
type ChainPoints [CHAIN_JOINT_COUNT]mmath.Vec3

// SegmentLengths は [上腕→前腕, 前腕→手首, 手首→把持点] の区間長。
type SegmentLengths [CHAIN_SEGMENT_COUNT]float64

// Chain は片腕のIKチェーンを表す。肩は基点として回転させない。
// 目標点に一致させるのは手首関節ではなく、手首から把持距離だけ先の把持点である。
type Chain struct {
	Direction  model.BoneDirection
	Joints     ChainJoints
	Lengths    SegmentLengths
	GraspLocal mmath.Vec3
}

// NewChain は休息姿勢の骨格からチェーンを生成する。
func NewChain(skeleton *model.Skeleton, direction model.BoneDirection, joints ChainJoints, graspOffset float64) (*Chain, error) {
	lengths, err := BuildSegmentLengths(skeleton, joints, graspOffset)
	if err != nil {
		return nil, err
	}
	graspLocal, err := buildGraspLocal(skeleton, joints, lengths[CHAIN_SEGMENT_COUNT-1])
	if err != nil {
		return nil, err
	}
	return &Chain{
		Direction:  direction,
		Joints:     joints,
		Lengths:    lengths,
		GraspLocal: graspLocal,
	}, nil
}

// BuildSegmentLengths は休息姿勢のグローバル距離から区間長を求める。肩→上腕は含めず、末尾に把持距離を加える。
func BuildSegmentLengths(skeleton *model.Skeleton, joints ChainJoints, graspOffset float64) (SegmentLengths, error) {
	var lengths SegmentLengths
	for i := 1; i < CHAIN_JOINT_COUNT-1; i++ {
		from, err := skeleton.Get(joints[i])
		if err != nil {
			return lengths, err
		}
		to, err := skeleton.Get(joints[i+1])
		if err != nil {
			return lengths, err
		}
		lengths[i-1] = from.GlobalPosition.Distance(to.GlobalPosition)
	}
	lengths[CHAIN_SEGMENT_COUNT-1] = graspOffset
	return lengths, nil
}

// buildGraspLocal は手首ローカル空間での把持点オフセットを求める。
func buildGraspLocal(skeleton *model.Skeleton, joints ChainJoints, graspOffset float64) (mmath.Vec3, error) {
	lower, err := skeleton.Get(joints[2])
	if err != nil {
		return mmath.ZERO_VEC3, err
	}
	hand, err := skeleton.Get(joints[3])
	if err != nil {
		return mmath.ZERO_VEC3, err
	}
	direction, ok := hand.GlobalPosition.Subed(lower.GlobalPosition).TryNormalized()
	if !ok {
		direction = mmath.UNIT_Y_NEG_VEC3
	}
	return hand.GlobalRotation.Inverted().MulVec3(direction.MuledScalar(graspOffset)), nil
}

// TotalLength は区間長の合計を返す。
func (c *Chain) TotalLength() float64 {
	total := 0.0
	for _, length := range c.Lengths {
		total += length
	}
	return total
}

// SolveJoint は区間 i を回す関節Indexを返す。
func (c *Chain) SolveJoint(segment int) int {
	return c.Joints[segment+1]
}

// CurrentPoints は骨格の現在のグローバルキャッシュから解決点を返す。
func (c *Chain) CurrentPoints(skeleton *model.Skeleton) (ChainPoints, error) {
	var points ChainPoints
	var hand *model.Joint
	for i := 0; i < CHAIN_SEGMENT_COUNT; i++ {
		joint, err := skeleton.Get(c.SolveJoint(i))
		if err != nil {
			return points, err
		}
		points[i] = joint.GlobalPosition
		hand = joint
	}
	points[CHAIN_JOINT_COUNT-1] = hand.GlobalPosition.Added(hand.GlobalRotation.MulVec3(c.GraspLocal))
	return points, nil
}

// Contains はチェーンに関節が含まれるか判定する。
func (c *Chain) Contains(index int) bool {
	for _, joint := range c.Joints {
		if joint == index {
			return true
		}
	}
	return false
}
