// 指示: PakkanenAnastacia
package mmath

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Quaternion は回転クォータニオンを表す。
type Quaternion struct {
	quat.Number
}

// NewQuaternion は単位クォータニオンを生成する。
func NewQuaternion() Quaternion {
	return Quaternion{Number: quat.Number{Real: 1}}
}

// NewQuaternionFromAxisAngle は軸と回転角(ラジアン)からクォータニオンを生成する。
func NewQuaternionFromAxisAngle(axis Vec3, rad float64) Quaternion {
	unit := axis.Normalized()
	half := rad / 2
	sin := math.Sin(half)
	return Quaternion{Number: quat.Number{
		Real: math.Cos(half),
		Imag: unit.X * sin,
		Jmag: unit.Y * sin,
		Kmag: unit.Z * sin,
	}}
}

// Muled は合成結果 q*other を返す。other の回転が先に適用される。
func (q Quaternion) Muled(other Quaternion) Quaternion {
	return Quaternion{Number: quat.Mul(q.Number, other.Number)}
}

// Normalized は正規化結果を返す。
func (q Quaternion) Normalized() Quaternion {
	norm := quat.Abs(q.Number)
	if norm == 0 {
		return NewQuaternion()
	}
	return Quaternion{Number: quat.Scale(1/norm, q.Number)}
}

// MulVec3 はベクトルをこの回転で回した結果を返す。
func (q Quaternion) MulVec3(v Vec3) Vec3 {
	unit := q.Normalized()
	p := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	r := quat.Mul(quat.Mul(unit.Number, p), quat.Conj(unit.Number))
	return NewVec3(r.Imag, r.Jmag, r.Kmag)
}
