// 指示: miu200521358
package io_scenario

import (
	"math"

	"github.com/miu200521358/mu_vrmik/pkg/adapter/io_common"
	"github.com/miu200521358/mu_vrmik/pkg/domain/model"
)

// Validate はシナリオの値を検証する。
func (s *Scenario) Validate() error {
	if s.Rig.GraspOffset != nil && !(*s.Rig.GraspOffset > 0) {
		return io_common.NewIoParseFailed("rig.grasp_offset は正の値が必要です: %v", nil, *s.Rig.GraspOffset)
	}
	pole := s.Rig.PoleVector
	if pole.Weight != nil && (*pole.Weight < 0 || math.IsNaN(*pole.Weight)) {
		return io_common.NewIoParseFailed("rig.pole_vector.weight は0以上が必要です: %v", nil, *pole.Weight)
	}
	if err := validateDirection("rig.pole_vector.left", pole.Left); err != nil {
		return err
	}
	if err := validateDirection("rig.pole_vector.right", pole.Right); err != nil {
		return err
	}
	for i, id := range s.Avatars {
		if id == "" {
			return io_common.NewIoParseFailed("avatars[%d] が空です", nil, i)
		}
	}
	if s.Skeleton != nil {
		if err := s.Skeleton.validate(); err != nil {
			return err
		}
	}
	for i, frame := range s.Frames {
		if err := frame.validate(i); err != nil {
			return err
		}
	}
	return nil
}

// validate はインライン骨格の関節名と親参照を検証する。
func (s *SkeletonSection) validate() error {
	if len(s.Joints) == 0 {
		return io_common.NewIoParseFailed("skeleton.joints が空です", nil)
	}
	names := make(map[string]struct{}, len(s.Joints))
	for i, joint := range s.Joints {
		if joint.Name == "" {
			return io_common.NewIoParseFailed("skeleton.joints[%d].name が空です", nil, i)
		}
		if _, exists := names[joint.Name]; exists {
			return io_common.NewIoParseFailed("skeleton.joints[%d].name が重複しています: %s", nil, i, joint.Name)
		}
		names[joint.Name] = struct{}{}
		if err := validateLength("skeleton.joints.translation", joint.Translation, 3); err != nil {
			return err
		}
		if err := validateLength("skeleton.joints.rotation", joint.Rotation, 4); err != nil {
			return err
		}
	}
	for i, joint := range s.Joints {
		if joint.Parent == "" {
			continue
		}
		if _, exists := names[joint.Parent]; !exists {
			return io_common.NewIoParseFailed("skeleton.joints[%d].parent が見つかりません: %s", nil, i, joint.Parent)
		}
	}
	return nil
}

// validate はフレーム入力を検証する。
func (f FrameSection) validate(index int) error {
	if f.Status != "" {
		if _, ok := model.ParseTrackingStatus(f.Status); !ok {
			return io_common.NewIoParseFailed("frames[%d].status が不正です: %s", nil, index, f.Status)
		}
	}
	if f.Repeat < 0 {
		return io_common.NewIoParseFailed("frames[%d].repeat は0以上が必要です: %d", nil, index, f.Repeat)
	}
	if err := validateLength("frames.left", f.Left, 3); err != nil {
		return err
	}
	if err := validateLength("frames.right", f.Right, 3); err != nil {
		return err
	}
	for name, rotation := range f.Pose {
		if err := validateLength("frames.pose."+name, rotation, 4); err != nil {
			return err
		}
	}
	return nil
}

// validateLength は省略または指定要素数であることを検証する。
func validateLength(label string, values []float64, want int) error {
	if len(values) != 0 && len(values) != want {
		return io_common.NewIoParseFailed("%s の要素数が不正です: got=%d want=%d", nil, label, len(values), want)
	}
	for _, value := range values {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return io_common.NewIoParseFailed("%s に有限でない値があります", nil, label)
		}
	}
	return nil
}

// validateDirection は方向ベクトルが省略または3要素の非ゼロであることを検証する。
func validateDirection(label string, values []float64) error {
	if len(values) == 0 {
		return nil
	}
	if err := validateLength(label, values, 3); err != nil {
		return err
	}
	if values[0] == 0 && values[1] == 0 && values[2] == 0 {
		return io_common.NewIoParseFailed("%s がゼロベクトルです", nil, label)
	}
	return nil
}
