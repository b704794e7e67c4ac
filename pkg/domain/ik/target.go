// 指示: miu200521358
package ik

import (
	"github.com/miu200521358/mu_vrmik/pkg/domain/mmath"
	"github.com/miu200521358/mu_vrmik/pkg/domain/model"
)

// Target は片腕が追従するワールド座標の目標点を表す。
type Target struct {
	Direction model.BoneDirection
	Position  mmath.Vec3
}

// NewTarget は原点に置いた目標点を生成する。
func NewTarget(direction model.BoneDirection) *Target {
	return &Target{Direction: direction, Position: mmath.ZERO_VEC3}
}

// SetPosition は目標位置を更新する。
func (t *Target) SetPosition(position mmath.Vec3) {
	if t == nil {
		return
	}
	t.Position = position
}

// CurrentPosition は目標位置を返す。
func (t *Target) CurrentPosition() mmath.Vec3 {
	if t == nil {
		return mmath.ZERO_VEC3
	}
	return t.Position
}
