// 指示: miu200521358
package ik

import (
	"github.com/google/uuid"

	"github.com/miu200521358/mu_vrmik/pkg/domain/model"
)

// Rig は左右のチェーンと目標点、休息姿勢をまとめたIKリグを表す。
type Rig struct {
	ID       string
	chains   [2]*Chain
	targets  [2]*Target
	poles    [2]PoleVector
	RestPose *RestPose
}

// NewRig は左右のチェーンからリグを生成する。目標点は原点に置く。
func NewRig(left *Chain, right *Chain, restPose *RestPose) *Rig {
	return &Rig{
		ID:       uuid.NewString(),
		chains:   [2]*Chain{left, right},
		targets:  [2]*Target{NewTarget(model.BONE_DIRECTION_LEFT), NewTarget(model.BONE_DIRECTION_RIGHT)},
		poles:    [2]PoleVector{NewPoleVector(), NewPoleVector()},
		RestPose: restPose,
	}
}

// Chain は左右指定のチェーンを返す。
func (r *Rig) Chain(direction model.BoneDirection) *Chain {
	return r.chains[direction]
}

// Target は左右指定の目標点を返す。
func (r *Rig) Target(direction model.BoneDirection) *Target {
	return r.targets[direction]
}

// Pole は左右指定のポールベクトル設定を返す。
func (r *Rig) Pole(direction model.BoneDirection) PoleVector {
	return r.poles[direction]
}

// SetPole は左右指定のポールベクトル設定を更新する。
func (r *Rig) SetPole(direction model.BoneDirection, pole PoleVector) {
	r.poles[direction] = pole
}

// Chains は左、右の順にチェーンを返す。
func (r *Rig) Chains() []*Chain {
	return []*Chain{r.chains[model.BONE_DIRECTION_LEFT], r.chains[model.BONE_DIRECTION_RIGHT]}
}
