// 指示: miu200521358
package minteractor

import (
	"math"

	"github.com/miu200521358/mu_vrmik/pkg/domain/ik"
	"github.com/miu200521358/mu_vrmik/pkg/domain/mmath"
	"github.com/miu200521358/mu_vrmik/pkg/domain/model"
)

const (
	tstanceAxisEpsilon     = 1e-8
	tstanceUpDownTolerance = 10.0
	tstanceSideTolerance   = 30.0
)

// RestStance は休息姿勢の腕の構えを表す。
type RestStance string

const (
	// REST_STANCE_T は腕を水平に広げた構え。
	REST_STANCE_T RestStance = "t"
	// REST_STANCE_A は腕を下げた構え。
	REST_STANCE_A RestStance = "a"
	// REST_STANCE_OTHER はどちらにも当てはまらない構え。
	REST_STANCE_OTHER RestStance = "other"
)

// DetectRestStance は左右の上腕→肘の向きから休息姿勢の構えを判定する。
func DetectRestStance(skeleton *model.Skeleton, rig *ik.Rig) RestStance {
	if skeleton == nil || rig == nil {
		return REST_STANCE_OTHER
	}
	left, leftOk := restArmVector(skeleton, rig.Chain(model.BONE_DIRECTION_LEFT))
	right, rightOk := restArmVector(skeleton, rig.Chain(model.BONE_DIRECTION_RIGHT))
	if !leftOk || !rightOk || left.X*right.X >= 0 {
		return REST_STANCE_OTHER
	}
	if isTstanceArmVector(left) && isTstanceArmVector(right) {
		return REST_STANCE_T
	}
	if left.Y < 0 && right.Y < 0 {
		return REST_STANCE_A
	}
	return REST_STANCE_OTHER
}

// restArmVector は上腕から肘への休息姿勢のベクトルを返す。
func restArmVector(skeleton *model.Skeleton, chain *ik.Chain) (mmath.Vec3, bool) {
	if chain == nil {
		return mmath.ZERO_VEC3, false
	}
	positions, err := skeleton.GlobalPositions([]int{chain.Joints[1], chain.Joints[2]})
	if err != nil {
		return mmath.ZERO_VEC3, false
	}
	return positions[1].Subed(positions[0]), true
}

// isTstanceArmVector は片腕ベクトルが水平に横へ伸びているか判定する。
func isTstanceArmVector(armVector mmath.Vec3) bool {
	length := armVector.Length()
	if length <= tstanceAxisEpsilon {
		return false
	}

	upDownRatio := math.Max(-1.0, math.Min(1.0, armVector.Y/length))
	if mmath.RadToDeg(math.Abs(math.Asin(upDownRatio))) > tstanceUpDownTolerance {
		return false
	}
	if math.Hypot(armVector.X, armVector.Z) <= tstanceAxisEpsilon {
		return false
	}
	sideDegree := mmath.RadToDeg(math.Atan2(math.Abs(armVector.Z), math.Abs(armVector.X)))
	return sideDegree <= tstanceSideTolerance
}
