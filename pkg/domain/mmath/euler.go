// 指示: PakkanenAnastacia
package mmath

import (
	"fmt"
	"math"
)

// EulerOrder はオイラー角の回転軸適用順を表す。
type EulerOrder string

const (
	// EulerOrderXYZ は X→Y→Z の順に回転を適用する。
	EulerOrderXYZ EulerOrder = "XYZ"
	// EulerOrderXZY は X→Z→Y の順に回転を適用する。
	EulerOrderXZY EulerOrder = "XZY"
	// EulerOrderYXZ は Y→X→Z の順に回転を適用する。
	EulerOrderYXZ EulerOrder = "YXZ"
	// EulerOrderYZX は Y→Z→X の順に回転を適用する。
	EulerOrderYZX EulerOrder = "YZX"
	// EulerOrderZXY は Z→X→Y の順に回転を適用する。
	EulerOrderZXY EulerOrder = "ZXY"
	// EulerOrderZYX は Z→Y→X の順に回転を適用する。
	EulerOrderZYX EulerOrder = "ZYX"
)

// Valid は既知の回転順かを返す。
func (o EulerOrder) Valid() bool {
	switch o {
	case EulerOrderXYZ, EulerOrderXZY, EulerOrderYXZ, EulerOrderYZX, EulerOrderZXY, EulerOrderZYX:
		return true
	}
	return false
}

// EulerRotation はラジアンのオイラー角と適用順の組を表す。
type EulerRotation struct {
	Radians Vec3
	Order   EulerOrder
}

// NewEulerRotation は XYZ 順のオイラー角(ラジアン)を生成する。
func NewEulerRotation(x, y, z float64) EulerRotation {
	return EulerRotation{Radians: NewVec3(x, y, z), Order: EulerOrderXYZ}
}

// Quaternion は回転順に従って合成したクォータニオンを返す。
func (e EulerRotation) Quaternion() (Quaternion, error) {
	order := e.Order
	if order == "" {
		order = EulerOrderXYZ
	}
	if !order.Valid() {
		return NewQuaternion(), fmt.Errorf("オイラー回転順 %q は未対応です", e.Order)
	}
	q := NewQuaternion()
	for _, axis := range order {
		var step Quaternion
		switch axis {
		case 'X':
			step = NewQuaternionFromAxisAngle(UnitX(), e.Radians.X)
		case 'Y':
			step = NewQuaternionFromAxisAngle(UnitY(), e.Radians.Y)
		case 'Z':
			step = NewQuaternionFromAxisAngle(UnitZ(), e.Radians.Z)
		}
		q = step.Muled(q)
	}
	return q, nil
}

// DegToRad は度をラジアンへ変換する。
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg はラジアンを度へ変換する。
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
