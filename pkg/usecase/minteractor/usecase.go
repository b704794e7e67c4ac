// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_vrmik/pkg/domain/ik"
	"github.com/miu200521358/mu_vrmik/pkg/domain/model"
	"github.com/miu200521358/mu_vrmik/pkg/usecase/port/moutput"
)

// RigConfig はIKリグの設定を表す。
type RigConfig struct {
	GraspOffset    float64
	ParallelChains bool
	AvatarRoot     string
	PoleLeft       ik.PoleVector
	PoleRight      ik.PoleVector
}

// NewRigConfig は既定のIKリグ設定を生成する。
func NewRigConfig() RigConfig {
	return RigConfig{
		GraspOffset: ik.DEFAULT_GRASP_OFFSET,
		PoleLeft:    ik.NewPoleVector(),
		PoleRight:   ik.NewPoleVector(),
	}
}

// Pole は左右指定のポールベクトル設定を返す。
func (c RigConfig) Pole(direction model.BoneDirection) ik.PoleVector {
	if direction == model.BONE_DIRECTION_RIGHT {
		return c.PoleRight
	}
	return c.PoleLeft
}

// IkUsecaseDeps は腕IKユースケースの依存を表す。
type IkUsecaseDeps struct {
	SkeletonReader moutput.ISkeletonReader
	TrackingRoot   moutput.ITrackingRoot
	TrackingStatus moutput.ITrackingStatusSource
	AvatarRegistry moutput.IAvatarRegistry
	AnimationStage moutput.IAnimationStage
	FrameReporter  IFrameReporter
	Config         RigConfig
}

// IkUsecase は腕IKのリグ構築とフレーム処理をまとめたユースケースを表す。
type IkUsecase struct {
	skeletonReader moutput.ISkeletonReader
	trackingRoot   moutput.ITrackingRoot
	trackingStatus moutput.ITrackingStatusSource
	avatarRegistry moutput.IAvatarRegistry
	animationStage moutput.IAnimationStage
	frameReporter  IFrameReporter
	config         RigConfig

	skeleton *model.Skeleton
	rig      *ik.Rig
	state    RigState
	stance   RestStance
	gate     GateState
}

// NewIkUsecase は腕IKユースケースを生成する。
func NewIkUsecase(deps IkUsecaseDeps) *IkUsecase {
	config := deps.Config
	if config.GraspOffset <= 0 {
		config.GraspOffset = ik.DEFAULT_GRASP_OFFSET
	}
	return &IkUsecase{
		skeletonReader: deps.SkeletonReader,
		trackingRoot:   deps.TrackingRoot,
		trackingStatus: deps.TrackingStatus,
		avatarRegistry: deps.AvatarRegistry,
		animationStage: deps.AnimationStage,
		frameReporter:  deps.FrameReporter,
		config:         config,
		state:          RigStateUnbuilt,
		stance:         REST_STANCE_OTHER,
	}
}

// SetSkeleton は処理対象の骨格を設定する。
func (uc *IkUsecase) SetSkeleton(skeleton *model.Skeleton) {
	uc.skeleton = skeleton
}

// Skeleton は処理対象の骨格を返す。
func (uc *IkUsecase) Skeleton() *model.Skeleton {
	return uc.skeleton
}

// Rig は構築済みのリグを返す。未構築時は nil。
func (uc *IkUsecase) Rig() *ik.Rig {
	return uc.rig
}

// RigState はリグ構築状態を返す。
func (uc *IkUsecase) RigState() RigState {
	return uc.state
}

// GateOpen はIKゲートが開いているか返す。
func (uc *IkUsecase) GateOpen() bool {
	return uc.gate.Open()
}

// RestStance はリグ構築時に判定した休息姿勢の構えを返す。
func (uc *IkUsecase) RestStance() RestStance {
	return uc.stance
}
