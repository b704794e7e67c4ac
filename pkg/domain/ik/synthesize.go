// 指示: miu200521358
package ik

import (
	"github.com/miu200521358/mu_vrmik/pkg/domain/mmath"
	"github.com/miu200521358/mu_vrmik/pkg/domain/model"
)

// SynthesizeRotations は解決前後の区間方向の差分を各関節の回転へ書き戻す。
// 関節のグローバル回転は即時に更新し、子の計算では更新後の親回転を使う。
// 戻り値は方向が退化して回転を据え置いた区間数。
func SynthesizeRotations(skeleton *model.Skeleton, chain *Chain, current ChainPoints, desired ChainPoints) (int, error) {
	degenerate := 0
	for i := 0; i < CHAIN_SEGMENT_COUNT; i++ {
		joint, err := skeleton.Get(chain.SolveJoint(i))
		if err != nil {
			return degenerate, err
		}

		delta := mmath.NewQuaternion()
		currentDir, currentOK := current[i+1].Subed(current[i]).TryNormalized()
		desiredDir, desiredOK := desired[i+1].Subed(desired[i]).TryNormalized()
		if currentOK && desiredOK {
			delta = mmath.NewQuaternionRotationArc(currentDir, desiredDir)
		} else {
			degenerate++
		}

		global := delta.Muled(joint.GlobalRotation).Normalized()
		joint.GlobalRotation = global
		if parent := skeleton.Parent(joint.Index); parent != nil {
			joint.LocalRotation = parent.GlobalRotation.Inverted().Muled(global).Normalized()
		} else {
			joint.LocalRotation = global
		}
	}
	return degenerate, nil
}
