// 指示: miu200521358
package ik

import (
	"github.com/miu200521358/mu_vrmik/pkg/domain/mmath"
	"github.com/miu200521358/mu_vrmik/pkg/domain/model"
)

// RestRotation は関節の休息回転を表す。
type RestRotation struct {
	Local  mmath.Quaternion
	Global mmath.Quaternion
}

// RestPose はチェーン関節の休息回転を保持する。生成後は更新しない。
type RestPose struct {
	rotations map[int]RestRotation
}

// CaptureRestPose はチェーン関節の現在回転を休息姿勢として記録する。
func CaptureRestPose(skeleton *model.Skeleton, chains ...*Chain) (*RestPose, error) {
	pose := &RestPose{rotations: make(map[int]RestRotation, len(chains)*CHAIN_JOINT_COUNT)}
	for _, chain := range chains {
		for _, index := range chain.Joints {
			joint, err := skeleton.Get(index)
			if err != nil {
				return nil, err
			}
			pose.rotations[index] = RestRotation{Local: joint.LocalRotation, Global: joint.GlobalRotation}
		}
	}
	return pose, nil
}

// Rotation は記録済みの休息回転を返す。
func (p *RestPose) Rotation(index int) (RestRotation, bool) {
	if p == nil {
		return RestRotation{}, false
	}
	rotation, ok := p.rotations[index]
	return rotation, ok
}

// Len は記録した関節数を返す。
func (p *RestPose) Len() int {
	if p == nil {
		return 0
	}
	return len(p.rotations)
}

// Restore はチェーン関節のローカル回転とグローバル回転を休息値に戻す。
func (p *RestPose) Restore(skeleton *model.Skeleton, chain *Chain) error {
	for _, index := range chain.Joints {
		joint, err := skeleton.Get(index)
		if err != nil {
			return err
		}
		rotation, ok := p.Rotation(index)
		if !ok {
			continue
		}
		joint.LocalRotation = rotation.Local
		joint.GlobalRotation = rotation.Global
	}
	return nil
}
