// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_vrmik/pkg/domain/mmath"
	"github.com/miu200521358/mu_vrmik/pkg/domain/model"
)

// FrameEventType はフレーム処理の進捗イベント種別を表す。
type FrameEventType string

const (
	// FrameEventTypeRigBuilt はリグ構築完了イベントを表す。
	FrameEventTypeRigBuilt FrameEventType = "rig_built"
	// FrameEventTypeGateChanged はIKゲート切替イベントを表す。
	FrameEventTypeGateChanged FrameEventType = "gate_changed"
	// FrameEventTypeChainSolved はチェーン解決イベントを表す。
	FrameEventTypeChainSolved FrameEventType = "chain_solved"
	// FrameEventTypeChainSkipped はチェーン見送りイベントを表す。
	FrameEventTypeChainSkipped FrameEventType = "chain_skipped"
)

// FrameEvent はフレーム処理の進捗イベントを表す。
type FrameEvent struct {
	Type      FrameEventType
	Frame     int
	RigID     string
	Direction model.BoneDirection
	GateOpen  bool
	ErrorID   string
}

// IFrameReporter はフレーム処理の進捗通知契約を表す。
type IFrameReporter interface {
	// ReportFrame はフレーム処理進捗を通知する。
	ReportFrame(event FrameEvent)
}

// ChainOutcome は片腕チェーンの1フレーム分の結果を表す。
type ChainOutcome struct {
	Direction  model.BoneDirection
	Solved     bool
	Reachable  bool
	Degenerate int
	Target     mmath.Vec3
	End        mmath.Vec3
	ErrorID    string
	Err        error
}

// FrameResult は1フレーム分の処理結果を表す。
type FrameResult struct {
	Frame       int
	RigBuilt    bool
	GateOpen    bool
	GateChanged bool
	IkApplied   bool
	Chains      []ChainOutcome
}

// Skipped は見送ったチェーンの結果を返す。
func (r *FrameResult) Skipped() []ChainOutcome {
	if r == nil {
		return nil
	}
	skipped := make([]ChainOutcome, 0)
	for _, outcome := range r.Chains {
		if !outcome.Solved {
			skipped = append(skipped, outcome)
		}
	}
	return skipped
}

// Chain は左右指定のチェーン結果を返す。
func (r *FrameResult) Chain(direction model.BoneDirection) (ChainOutcome, bool) {
	if r == nil {
		return ChainOutcome{}, false
	}
	for _, outcome := range r.Chains {
		if outcome.Direction == direction {
			return outcome, true
		}
	}
	return ChainOutcome{}, false
}

// reportFrame は進捗通知先が設定されている場合だけ通知する。
func reportFrame(reporter IFrameReporter, event FrameEvent) {
	if reporter == nil {
		return
	}
	reporter.ReportFrame(event)
}
