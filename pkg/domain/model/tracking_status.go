// 指示: miu200521358
package model

import "strings"

// TrackingStatus はトラッキング機能の状態を表す。
type TrackingStatus int

const (
	// TRACKING_STATUS_UNAVAILABLE は利用不可。
	TRACKING_STATUS_UNAVAILABLE TrackingStatus = iota
	// TRACKING_STATUS_IDLE は待機中。
	TRACKING_STATUS_IDLE
	// TRACKING_STATUS_READY は開始可能。
	TRACKING_STATUS_READY
	// TRACKING_STATUS_RUNNING は実行中。
	TRACKING_STATUS_RUNNING
	// TRACKING_STATUS_STOPPING は停止処理中。
	TRACKING_STATUS_STOPPING
	// TRACKING_STATUS_EXITING は終了処理中。
	TRACKING_STATUS_EXITING
)

var trackingStatusNames = map[TrackingStatus]string{
	TRACKING_STATUS_UNAVAILABLE: "unavailable",
	TRACKING_STATUS_IDLE:        "idle",
	TRACKING_STATUS_READY:       "ready",
	TRACKING_STATUS_RUNNING:     "running",
	TRACKING_STATUS_STOPPING:    "stopping",
	TRACKING_STATUS_EXITING:     "exiting",
}

// IsActive はIKゲートを開く状態か判定する。
func (s TrackingStatus) IsActive() bool {
	return s == TRACKING_STATUS_READY || s == TRACKING_STATUS_RUNNING
}

// String は状態名を返す。
func (s TrackingStatus) String() string {
	if name, ok := trackingStatusNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseTrackingStatus は状態名から状態を解決する。
func ParseTrackingStatus(value string) (TrackingStatus, bool) {
	key := strings.ToLower(strings.TrimSpace(value))
	for status, name := range trackingStatusNames {
		if name == key {
			return status, true
		}
	}
	return TRACKING_STATUS_UNAVAILABLE, false
}
