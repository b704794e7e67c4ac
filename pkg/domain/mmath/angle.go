// 指示: miu200521358
package mmath

import "math"

// RadToDeg はラジアンを度へ変換する。
func RadToDeg(radians float64) float64 {
	return radians * 180.0 / math.Pi
}
