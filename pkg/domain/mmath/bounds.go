// 指示: PakkanenAnastacia
package mmath

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// AxisSlices は頂点列を軸ごとの成分列に分解する。
func AxisSlices(points []Vec3) (xs, ys, zs []float64) {
	xs = make([]float64, len(points))
	ys = make([]float64, len(points))
	zs = make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
		zs[i] = p.Z
	}
	return xs, ys, zs
}

// AxisBounds は頂点列の軸ごとの最小・最大を返す。
func AxisBounds(points []Vec3) (min, max Vec3, err error) {
	if len(points) == 0 {
		return Vec3{}, Vec3{}, fmt.Errorf("頂点列が空のため境界を求められません")
	}
	xs, ys, zs := AxisSlices(points)
	min = NewVec3(floats.Min(xs), floats.Min(ys), floats.Min(zs))
	max = NewVec3(floats.Max(xs), floats.Max(ys), floats.Max(zs))
	return min, max, nil
}

// MeanPoint は頂点列の重心を返す。空列は零ベクトルを返す。
func MeanPoint(points []Vec3) Vec3 {
	if len(points) == 0 {
		return Vec3{}
	}
	xs, ys, zs := AxisSlices(points)
	return NewVec3(stat.Mean(xs, nil), stat.Mean(ys, nil), stat.Mean(zs, nil))
}

// TypicalSize は軸ごとの絶対値最大からなるベクトルの長さを返す。
// 空列は 0 を返す。
func TypicalSize(points []Vec3) float64 {
	if len(points) == 0 {
		return 0
	}
	absMax := Vec3{}
	for i, p := range points {
		a := p.Abs()
		if i == 0 {
			absMax = a
			continue
		}
		if a.X > absMax.X {
			absMax.X = a.X
		}
		if a.Y > absMax.Y {
			absMax.Y = a.Y
		}
		if a.Z > absMax.Z {
			absMax.Z = a.Z
		}
	}
	return absMax.Length()
}
