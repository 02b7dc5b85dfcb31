// 指示: PakkanenAnastacia
package mmath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 は3次元ベクトルを表す。
type Vec3 struct {
	r3.Vec
}

// NewVec3 は指定成分のベクトルを生成する。
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{Vec: r3.Vec{X: x, Y: y, Z: z}}
}

// UnitX はX軸単位ベクトルを返す。
func UnitX() Vec3 { return NewVec3(1, 0, 0) }

// UnitY はY軸単位ベクトルを返す。
func UnitY() Vec3 { return NewVec3(0, 1, 0) }

// UnitZ はZ軸単位ベクトルを返す。
func UnitZ() Vec3 { return NewVec3(0, 0, 1) }

// Added は加算結果を返す。
func (v Vec3) Added(other Vec3) Vec3 {
	return Vec3{Vec: r3.Add(v.Vec, other.Vec)}
}

// Subed は減算結果を返す。
func (v Vec3) Subed(other Vec3) Vec3 {
	return Vec3{Vec: r3.Sub(v.Vec, other.Vec)}
}

// Muled は成分ごとの乗算結果を返す。
func (v Vec3) Muled(other Vec3) Vec3 {
	return NewVec3(v.X*other.X, v.Y*other.Y, v.Z*other.Z)
}

// MuledScalar はスカラー倍の結果を返す。
func (v Vec3) MuledScalar(s float64) Vec3 {
	return Vec3{Vec: r3.Scale(s, v.Vec)}
}

// Length はベクトル長を返す。
func (v Vec3) Length() float64 {
	return r3.Norm(v.Vec)
}

// Normalized は正規化結果を返す。零ベクトルは零ベクトルのまま返す。
func (v Vec3) Normalized() Vec3 {
	if r3.Norm(v.Vec) == 0 {
		return v
	}
	return Vec3{Vec: r3.Unit(v.Vec)}
}

// Dot は内積を返す。
func (v Vec3) Dot(other Vec3) float64 {
	return r3.Dot(v.Vec, other.Vec)
}

// Cross は外積を返す。
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{Vec: r3.Cross(v.Vec, other.Vec)}
}

// Abs は成分ごとの絶対値を返す。
func (v Vec3) Abs() Vec3 {
	return NewVec3(math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z))
}

// NearEquals は各成分が epsilon 以内で一致するかを返す。
func (v Vec3) NearEquals(other Vec3, epsilon float64) bool {
	return math.Abs(v.X-other.X) <= epsilon &&
		math.Abs(v.Y-other.Y) <= epsilon &&
		math.Abs(v.Z-other.Z) <= epsilon
}
