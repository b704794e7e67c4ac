// 指示: miu200521358
// Package mmath はIK計算で使うベクトルと回転を提供する。
package mmath

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

// DirectionEpsilon は方向ベクトルとして扱える最小長を表す。
const DirectionEpsilon = 1e-9

// Vec3 は3次元ベクトルを表す。
type Vec3 struct {
	r3.Vec
}

var (
	// ZERO_VEC3 は零ベクトル。
	ZERO_VEC3 = Vec3{}
	// UNIT_X_VEC3 はX軸単位ベクトル。
	UNIT_X_VEC3 = Vec3{Vec: r3.Vec{X: 1}}
	// UNIT_Y_VEC3 はY軸単位ベクトル。
	UNIT_Y_VEC3 = Vec3{Vec: r3.Vec{Y: 1}}
	// UNIT_Y_NEG_VEC3 はY軸負方向単位ベクトル。
	UNIT_Y_NEG_VEC3 = Vec3{Vec: r3.Vec{Y: -1}}
	// UNIT_Z_VEC3 はZ軸単位ベクトル。
	UNIT_Z_VEC3 = Vec3{Vec: r3.Vec{Z: 1}}
)

// NewVec3 は成分からベクトルを生成する。
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{Vec: r3.Vec{X: x, Y: y, Z: z}}
}

// Added は加算結果を返す。
func (v Vec3) Added(other Vec3) Vec3 {
	return Vec3{Vec: r3.Add(v.Vec, other.Vec)}
}

// Subed は減算結果を返す。
func (v Vec3) Subed(other Vec3) Vec3 {
	return Vec3{Vec: r3.Sub(v.Vec, other.Vec)}
}

// MuledScalar はスカラー倍を返す。
func (v Vec3) MuledScalar(f float64) Vec3 {
	return Vec3{Vec: r3.Scale(f, v.Vec)}
}

// Dot は内積を返す。
func (v Vec3) Dot(other Vec3) float64 {
	return r3.Dot(v.Vec, other.Vec)
}

// Cross は外積を返す。
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{Vec: r3.Cross(v.Vec, other.Vec)}
}

// Length は長さを返す。
func (v Vec3) Length() float64 {
	return r3.Norm(v.Vec)
}

// Distance は2点間の距離を返す。
func (v Vec3) Distance(other Vec3) float64 {
	return v.Subed(other).Length()
}

// Normalized は正規化したベクトルを返す。長さが無い場合は零ベクトルを返す。
func (v Vec3) Normalized() Vec3 {
	normalized, ok := v.TryNormalized()
	if !ok {
		return ZERO_VEC3
	}
	return normalized
}

// TryNormalized は正規化したベクトルと、正規化できたかを返す。
func (v Vec3) TryNormalized() (Vec3, bool) {
	length := v.Length()
	if length <= DirectionEpsilon || math.IsNaN(length) || math.IsInf(length, 0) {
		return ZERO_VEC3, false
	}
	return v.MuledScalar(1 / length), true
}

// Lerp は線形補間したベクトルを返す。
func (v Vec3) Lerp(other Vec3, t float64) Vec3 {
	return v.Added(other.Subed(v).MuledScalar(t))
}

// AnyOrthogonal は自身に直交する単位ベクトルを返す。
func (v Vec3) AnyOrthogonal() Vec3 {
	axis := UNIT_X_VEC3
	if math.Abs(v.X) >= 0.9 {
		axis = UNIT_Y_VEC3
	}
	return v.Cross(axis).Normalized()
}

// NearEquals は各成分が許容誤差内で一致するか判定する。
func (v Vec3) NearEquals(other Vec3, epsilon float64) bool {
	return scalar.EqualWithinAbs(v.X, other.X, epsilon) &&
		scalar.EqualWithinAbs(v.Y, other.Y, epsilon) &&
		scalar.EqualWithinAbs(v.Z, other.Z, epsilon)
}

// IsFinite は全成分が有限値か判定する。
func (v Vec3) IsFinite() bool {
	for _, value := range []float64{v.X, v.Y, v.Z} {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return false
		}
	}
	return true
}

// String は表示用文字列を返す。
func (v Vec3) String() string {
	return fmt.Sprintf("[x=%.5f, y=%.5f, z=%.5f]", v.X, v.Y, v.Z)
}
