// 指示: miu200521358
package model

import "github.com/miu200521358/mu_vrmik/pkg/domain/mmath"

// NO_PARENT は親を持たない関節の親Index。
const NO_PARENT = -1

// Joint は骨格の関節を表す。
type Joint struct {
	Index          int
	Name           string
	Humanoid       string
	ParentIndex    int
	LocalPosition  mmath.Vec3
	LocalRotation  mmath.Quaternion
	GlobalPosition mmath.Vec3
	GlobalRotation mmath.Quaternion
}

// NewJoint は回転なしの関節を生成する。
func NewJoint(name string, parentIndex int, localPosition mmath.Vec3) *Joint {
	return &Joint{
		Index:          -1,
		Name:           name,
		ParentIndex:    parentIndex,
		LocalPosition:  localPosition,
		LocalRotation:  mmath.NewQuaternion(),
		GlobalPosition: localPosition,
		GlobalRotation: mmath.NewQuaternion(),
	}
}

// HasParent は親Indexを持つか判定する。
func (j *Joint) HasParent() bool {
	return j != nil && j.ParentIndex >= 0
}

// IsHumanoid はヒューマノイド名が一致するか判定する。
func (j *Joint) IsHumanoid(name string) bool {
	if j == nil || j.Humanoid == "" {
		return false
	}
	return SameHumanoidName(j.Humanoid, name)
}
