// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_vrmik/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_vrmik/pkg/domain/model"
)

// GateState はIK実行可否のゲートを表す。初期値は閉。
type GateState struct {
	open bool
}

// NewGateState は指定値のゲートを生成する。
func NewGateState(open bool) GateState {
	return GateState{open: open}
}

// Open はゲートが開いているか返す。
func (g GateState) Open() bool {
	return g.open
}

// FrameContext は1フレーム分の処理に引き回す状態を表す。
type FrameContext struct {
	Frame       int
	Gate        GateState
	GateChanged bool
}

// NextGateState はトラッキング状態からゲートの次の値と切替有無を返す。
// 状態が存在しない場合はゲートを変えない。
func NextGateState(gate GateState, status model.TrackingStatus, exists bool) (GateState, bool) {
	if !exists {
		return gate, false
	}
	next := NewGateState(status.IsActive())
	return next, next.open != gate.open
}

// UpdateGate はトラッキング状態を読み、ゲートを更新する。
// 切替が起きたフレームに限り、アニメーショングラフを持つ全アバターからグラフを外す。
func (uc *IkUsecase) UpdateGate(frameCtx *FrameContext) bool {
	if uc.trackingStatus == nil {
		return false
	}
	status, exists := uc.trackingStatus.TrackingStatus()
	next, changed := NextGateState(frameCtx.Gate, status, exists)
	frameCtx.Gate = next
	frameCtx.GateChanged = changed
	if !changed {
		return false
	}

	removed := 0
	if uc.avatarRegistry != nil {
		for _, avatarID := range uc.avatarRegistry.AvatarsWithAnimationGraph() {
			uc.avatarRegistry.RemoveAnimationGraph(avatarID)
			removed++
		}
	}
	logIkInfo(messages.LogGateChanged, frameCtx.Frame, next.Open(), removed)
	rigID := ""
	if uc.rig != nil {
		rigID = uc.rig.ID
	}
	reportFrame(uc.frameReporter, FrameEvent{
		Type:     FrameEventTypeGateChanged,
		Frame:    frameCtx.Frame,
		RigID:    rigID,
		GateOpen: next.Open(),
	})
	return true
}
