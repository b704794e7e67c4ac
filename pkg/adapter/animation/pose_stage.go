// 指示: miu200521358
package animation

import (
	"sync"

	"github.com/miu200521358/mu_vrmik/pkg/domain/mmath"
	"github.com/miu200521358/mu_vrmik/pkg/domain/model"
	"github.com/miu200521358/mu_vrmik/pkg/domain/model/merrors"
)

// Pose は関節名ごとのローカル回転を表す。
type Pose map[string]mmath.Quaternion

// PoseStage はフレームごとの姿勢を骨格へ書き込むアニメーション段を表す。
type PoseStage struct {
	mu      sync.Mutex
	poses   map[int]Pose
	current Pose
}

// NewPoseStage はフレーム番号ごとの姿勢を持つPoseStageを生成する。
func NewPoseStage(poses map[int]Pose) *PoseStage {
	copied := make(map[int]Pose, len(poses))
	for frame, pose := range poses {
		copied[frame] = pose
	}
	return &PoseStage{poses: copied}
}

// SetFrame は次に適用する姿勢を選ぶ。姿勢の無いフレームでは直前の姿勢を維持する。
func (s *PoseStage) SetFrame(frame int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pose, ok := s.poses[frame]; ok {
		s.current = pose
	}
}

// ApplyAnimation は選択中の姿勢を名前または役割が一致する関節へ書き込み、姿勢を再計算する。
func (s *PoseStage) ApplyAnimation(skeleton *model.Skeleton) error {
	s.mu.Lock()
	pose := s.current
	s.mu.Unlock()
	if skeleton == nil || len(pose) == 0 {
		return nil
	}
	for name, rotation := range pose {
		joint, err := resolvePoseJoint(skeleton, name)
		if err != nil {
			return err
		}
		joint.LocalRotation = rotation.Normalized()
	}
	return skeleton.Propagate()
}

// resolvePoseJoint は関節名、次にヒューマノイド名で関節を探す。
func resolvePoseJoint(skeleton *model.Skeleton, name string) (*model.Joint, error) {
	if joint, err := skeleton.GetByName(name); err == nil {
		return joint, nil
	}
	if joint, ok := skeleton.FindByHumanoid(name); ok {
		return joint, nil
	}
	return nil, merrors.NewJointNotFoundError(name)
}
