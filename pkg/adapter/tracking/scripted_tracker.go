// 指示: miu200521358
package tracking

import (
	"sync"

	"github.com/miu200521358/mu_vrmik/pkg/domain/ik"
	"github.com/miu200521358/mu_vrmik/pkg/domain/mmath"
	"github.com/miu200521358/mu_vrmik/pkg/domain/model"
)

// Frame は1フレーム分のトラッキング入力を表す。nil の項目は前フレームの値を維持する。
type Frame struct {
	Status *model.TrackingStatus
	Left   *mmath.Vec3
	Right  *mmath.Vec3
}

// ScriptedTracker は記録済みフレームを再生するトラッキング機能を表す。
type ScriptedTracker struct {
	mu        sync.Mutex
	frames    []Frame
	left      *ik.Target
	right     *ik.Target
	status    model.TrackingStatus
	hasStatus bool
	current   int
}

// NewScriptedTracker はScriptedTrackerを生成する。
func NewScriptedTracker(frames []Frame) *ScriptedTracker {
	return &ScriptedTracker{
		frames:  append([]Frame(nil), frames...),
		current: -1,
	}
}

// AttachTargets は左右の目標点をトラッキングの子として受け取る。
func (t *ScriptedTracker) AttachTargets(left *ik.Target, right *ik.Target) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.left = left
	t.right = right
}

// TrackingStatus は現在の状態を返す。状態が一度も記録されていない場合は false。
func (t *ScriptedTracker) TrackingStatus() (model.TrackingStatus, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status, t.hasStatus
}

// Len は記録済みフレーム数を返す。
func (t *ScriptedTracker) Len() int {
	return len(t.frames)
}

// Current は最後に再生したフレーム番号を返す。未再生時は -1。
func (t *ScriptedTracker) Current() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Advance は指定フレームの入力を状態と目標点へ反映する。範囲外の場合は false を返す。
func (t *ScriptedTracker) Advance(frame int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if frame < 0 || frame >= len(t.frames) {
		return false
	}
	input := t.frames[frame]
	if input.Status != nil {
		t.status = *input.Status
		t.hasStatus = true
	}
	if input.Left != nil {
		t.left.SetPosition(*input.Left)
	}
	if input.Right != nil {
		t.right.SetPosition(*input.Right)
	}
	t.current = frame
	return true
}
