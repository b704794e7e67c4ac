// 指示: miu200521358
package mmath

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// arcParallelEpsilon は回転弧で平行/反平行とみなす内積の余裕を表す。
const arcParallelEpsilon = 1e-9

// Quaternion は回転を表すクォータニオン。Real が W、Imag/Jmag/Kmag が X/Y/Z に対応する。
type Quaternion struct {
	quat.Number
}

// NewQuaternion は単位クォータニオンを返す。
func NewQuaternion() Quaternion {
	return Quaternion{Number: quat.Number{Real: 1}}
}

// NewQuaternionByValues は X,Y,Z,W 成分からクォータニオンを生成する。
func NewQuaternionByValues(x, y, z, w float64) Quaternion {
	return Quaternion{Number: quat.Number{Real: w, Imag: x, Jmag: y, Kmag: z}}
}

// NewQuaternionFromAxisAngle は軸と角度(ラジアン)から回転を生成する。
func NewQuaternionFromAxisAngle(axis Vec3, radians float64) Quaternion {
	unitAxis, ok := axis.TryNormalized()
	if !ok || radians == 0 {
		return NewQuaternion()
	}
	return Quaternion{Number: quat.Number(r3.NewRotation(radians, unitAxis.Vec))}
}

// NewQuaternionRotationArc は単位ベクトル from を to へ写す最小回転を返す。
func NewQuaternionRotationArc(from Vec3, to Vec3) Quaternion {
	dot := from.Dot(to)
	if dot >= 1-arcParallelEpsilon {
		return NewQuaternion()
	}
	if dot <= -1+arcParallelEpsilon {
		axis := from.AnyOrthogonal()
		return NewQuaternionByValues(axis.X, axis.Y, axis.Z, 0)
	}
	c := from.Cross(to)
	return NewQuaternionByValues(c.X, c.Y, c.Z, 1+dot).Normalized()
}

// NewQuaternionFromRotationMatrix は行優先の回転行列から回転を生成する。
func NewQuaternionFromRotationMatrix(m [3][3]float64) Quaternion {
	trace := m[0][0] + m[1][1] + m[2][2]
	switch {
	case trace > 0:
		s := math.Sqrt(trace+1) * 2
		return NewQuaternionByValues((m[2][1]-m[1][2])/s, (m[0][2]-m[2][0])/s, (m[1][0]-m[0][1])/s, s/4).Normalized()
	case m[0][0] > m[1][1] && m[0][0] > m[2][2]:
		s := math.Sqrt(1+m[0][0]-m[1][1]-m[2][2]) * 2
		return NewQuaternionByValues(s/4, (m[0][1]+m[1][0])/s, (m[0][2]+m[2][0])/s, (m[2][1]-m[1][2])/s).Normalized()
	case m[1][1] > m[2][2]:
		s := math.Sqrt(1+m[1][1]-m[0][0]-m[2][2]) * 2
		return NewQuaternionByValues((m[0][1]+m[1][0])/s, s/4, (m[1][2]+m[2][1])/s, (m[0][2]-m[2][0])/s).Normalized()
	default:
		s := math.Sqrt(1+m[2][2]-m[0][0]-m[1][1]) * 2
		return NewQuaternionByValues((m[0][2]+m[2][0])/s, (m[1][2]+m[2][1])/s, s/4, (m[1][0]-m[0][1])/s).Normalized()
	}
}

// X はX成分を返す。
func (q Quaternion) X() float64 { return q.Imag }

// Y はY成分を返す。
func (q Quaternion) Y() float64 { return q.Jmag }

// Z はZ成分を返す。
func (q Quaternion) Z() float64 { return q.Kmag }

// W はW成分を返す。
func (q Quaternion) W() float64 { return q.Real }

// Muled は q * other を返す。other を先に適用する回転になる。
func (q Quaternion) Muled(other Quaternion) Quaternion {
	return Quaternion{Number: quat.Mul(q.Number, other.Number)}
}

// Inverted は逆回転を返す。
func (q Quaternion) Inverted() Quaternion {
	if quat.Abs(q.Number) == 0 {
		return NewQuaternion()
	}
	return Quaternion{Number: quat.Inv(q.Number)}
}

// Normalized は正規化したクォータニオンを返す。
func (q Quaternion) Normalized() Quaternion {
	length := quat.Abs(q.Number)
	if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return NewQuaternion()
	}
	return Quaternion{Number: quat.Scale(1/length, q.Number)}
}

// MulVec3 はベクトルを回転させる。
func (q Quaternion) MulVec3(v Vec3) Vec3 {
	return Vec3{Vec: r3.Rotation(q.Number).Rotate(v.Vec)}
}

// Dot は4次元内積を返す。
func (q Quaternion) Dot(other Quaternion) float64 {
	return q.Real*other.Real + q.Imag*other.Imag + q.Jmag*other.Jmag + q.Kmag*other.Kmag
}

// NearEquals は同じ回転を表すか許容誤差内で判定する。q と -q は同一回転として扱う。
func (q Quaternion) NearEquals(other Quaternion, epsilon float64) bool {
	return nearEqualsComponents(q.Number, other.Number, epsilon) ||
		nearEqualsComponents(q.Number, quat.Scale(-1, other.Number), epsilon)
}

// IsFinite は全成分が有限値か判定する。
func (q Quaternion) IsFinite() bool {
	for _, value := range []float64{q.Real, q.Imag, q.Jmag, q.Kmag} {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return false
		}
	}
	return true
}

// String は表示用文字列を返す。
func (q Quaternion) String() string {
	return fmt.Sprintf("[x=%.5f, y=%.5f, z=%.5f, w=%.5f]", q.Imag, q.Jmag, q.Kmag, q.Real)
}

// nearEqualsComponents は成分ごとの近似一致を判定する。
func nearEqualsComponents(a quat.Number, b quat.Number, epsilon float64) bool {
	return scalar.EqualWithinAbs(a.Real, b.Real, epsilon) &&
		scalar.EqualWithinAbs(a.Imag, b.Imag, epsilon) &&
		scalar.EqualWithinAbs(a.Jmag, b.Jmag, epsilon) &&
		scalar.EqualWithinAbs(a.Kmag, b.Kmag, epsilon)
}
