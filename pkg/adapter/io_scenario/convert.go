// 指示: miu200521358
package io_scenario

import (
	"path/filepath"

	"github.com/miu200521358/mu_vrmik/pkg/adapter/animation"
	"github.com/miu200521358/mu_vrmik/pkg/adapter/io_common"
	"github.com/miu200521358/mu_vrmik/pkg/adapter/tracking"
	"github.com/miu200521358/mu_vrmik/pkg/domain/ik"
	"github.com/miu200521358/mu_vrmik/pkg/domain/mmath"
	"github.com/miu200521358/mu_vrmik/pkg/domain/model"
	"github.com/miu200521358/mu_vrmik/pkg/usecase/minteractor"
)

// RigConfig はシナリオのリグ設定をユースケース設定へ変換する。
func (s *Scenario) RigConfig() minteractor.RigConfig {
	config := minteractor.NewRigConfig()
	if s == nil {
		return config
	}
	if s.Rig.GraspOffset != nil {
		config.GraspOffset = *s.Rig.GraspOffset
	}
	config.ParallelChains = s.Rig.ParallelChains
	config.AvatarRoot = s.Rig.AvatarRoot
	config.PoleLeft = s.Rig.PoleVector.poleVector(s.Rig.PoleVector.Left)
	config.PoleRight = s.Rig.PoleVector.poleVector(s.Rig.PoleVector.Right)
	return config
}

// poleVector は片側のポールベクトル設定を生成する。
func (p PoleSection) poleVector(direction []float64) ik.PoleVector {
	pole := ik.NewPoleVector()
	pole.Enabled = p.Enabled
	if p.Weight != nil {
		pole.Weight = *p.Weight
	}
	if len(direction) == 3 {
		pole.Direction = toVec3(direction)
	}
	return pole
}

// HasSkeleton はインライン骨格を持つか判定する。
func (s *Scenario) HasSkeleton() bool {
	return s != nil && s.Skeleton != nil && len(s.Skeleton.Joints) > 0
}

// ModelPath はシナリオファイル基準で解決したモデルパスを返す。未指定時は空文字。
func (s *Scenario) ModelPath() string {
	if s == nil || s.Model == "" {
		return ""
	}
	if filepath.IsAbs(s.Model) || s.baseDir == "" {
		return s.Model
	}
	return filepath.Join(s.baseDir, s.Model)
}

// BuildSkeleton はインライン骨格から姿勢計算済みの骨格を生成する。
func (s *Scenario) BuildSkeleton() (*model.Skeleton, error) {
	if !s.HasSkeleton() {
		return nil, io_common.NewIoFormatNotSupported("シナリオにインライン骨格がありません", nil)
	}
	name := s.Skeleton.Name
	if name == "" {
		name = s.Name
	}

	indexes := make(map[string]int, len(s.Skeleton.Joints))
	for i, joint := range s.Skeleton.Joints {
		indexes[joint.Name] = i
	}
	skeleton := model.NewSkeleton(name)
	for _, section := range s.Skeleton.Joints {
		parent := model.NO_PARENT
		if section.Parent != "" {
			parent = indexes[section.Parent]
		}
		joint := model.NewJoint(section.Name, parent, toVec3(section.Translation))
		joint.Humanoid = section.Role
		if len(section.Rotation) == 4 {
			joint.LocalRotation = toQuaternion(section.Rotation)
		}
		skeleton.AppendJoint(joint)
	}
	if err := skeleton.Validate(); err != nil {
		return nil, io_common.NewIoParseFailed("インライン骨格の親子関係が不正です", err)
	}
	if err := skeleton.Propagate(); err != nil {
		return nil, io_common.NewIoParseFailed("インライン骨格の姿勢計算に失敗しました", err)
	}
	return skeleton, nil
}

// TrackingFrames は繰り返しを展開したトラッキング入力を返す。
func (s *Scenario) TrackingFrames() []tracking.Frame {
	if s == nil {
		return nil
	}
	frames := make([]tracking.Frame, 0, s.FrameCount())
	for _, section := range s.Frames {
		frame := tracking.Frame{}
		if status, ok := model.ParseTrackingStatus(section.Status); ok && section.Status != "" {
			frame.Status = &status
		}
		if len(section.Left) == 3 {
			left := toVec3(section.Left)
			frame.Left = &left
		}
		if len(section.Right) == 3 {
			right := toVec3(section.Right)
			frame.Right = &right
		}
		for i := 0; i < section.repeatCount(); i++ {
			frames = append(frames, frame)
		}
	}
	return frames
}

// Poses は繰り返しを展開したフレーム番号ごとの姿勢を返す。姿勢指定の無いフレームは含めない。
func (s *Scenario) Poses() map[int]animation.Pose {
	poses := map[int]animation.Pose{}
	if s == nil {
		return poses
	}
	frame := 0
	for _, section := range s.Frames {
		if len(section.Pose) > 0 {
			pose := make(animation.Pose, len(section.Pose))
			for name, rotation := range section.Pose {
				pose[name] = toQuaternion(rotation)
			}
			for i := 0; i < section.repeatCount(); i++ {
				poses[frame+i] = pose
			}
		}
		frame += section.repeatCount()
	}
	return poses
}

// toVec3 は3要素スライスをVec3へ変換する。省略時は原点。
func toVec3(values []float64) mmath.Vec3 {
	if len(values) != 3 {
		return mmath.ZERO_VEC3
	}
	return mmath.NewVec3(values[0], values[1], values[2])
}

// toQuaternion は [x, y, z, w] をQuaternionへ変換する。
func toQuaternion(values []float64) mmath.Quaternion {
	if len(values) != 4 {
		return mmath.NewQuaternion()
	}
	return mmath.NewQuaternionByValues(values[0], values[1], values[2], values[3]).Normalized()
}
