// 指示: miu200521358
package moutput

import (
	"github.com/miu200521358/mu_vrmik/pkg/domain/ik"
	"github.com/miu200521358/mu_vrmik/pkg/domain/model"
)

// ISkeletonReader は骨格階層の読み込み契約を表す。
type ISkeletonReader interface {
	// CanLoad は読み込み可能なパスか判定する。
	CanLoad(path string) bool
	// Load は骨格を読み込む。
	Load(path string) (*model.Skeleton, error)
}

// ITrackingRoot は目標点を接続するトラッキング側の契約を表す。
type ITrackingRoot interface {
	// AttachTargets は左右の目標点を接続する。
	AttachTargets(left *ik.Target, right *ik.Target)
}

// ITrackingStatusSource はトラッキング状態の取得契約を表す。
type ITrackingStatusSource interface {
	// TrackingStatus は現在の状態と、状態が存在するかを返す。
	TrackingStatus() (model.TrackingStatus, bool)
}

// IAvatarRegistry はアニメーショングラフを持つアバターの管理契約を表す。
type IAvatarRegistry interface {
	// AvatarsWithAnimationGraph はアニメーショングラフを持つアバターIDを返す。
	AvatarsWithAnimationGraph() []string
	// RemoveAnimationGraph はアバターからアニメーショングラフを外す。
	RemoveAnimationGraph(id string)
}

// IAnimationStage はIKより前に走るアニメーション段の契約を表す。
type IAnimationStage interface {
	// ApplyAnimation は骨格のローカル値へアニメーションを書き込む。
	ApplyAnimation(skeleton *model.Skeleton) error
}
