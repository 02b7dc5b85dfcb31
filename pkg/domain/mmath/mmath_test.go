// 指示: PakkanenAnastacia
package mmath

import (
	"math"
	"testing"
)

const testEpsilon = 1e-9

func TestVec3BasicOps(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(-4, 5, 0.5)

	if got := a.Added(b); !got.NearEquals(NewVec3(-3, 7, 3.5), testEpsilon) {
		t.Fatalf("Added の結果が不正: %+v", got)
	}
	if got := a.Subed(b); !got.NearEquals(NewVec3(5, -3, 2.5), testEpsilon) {
		t.Fatalf("Subed の結果が不正: %+v", got)
	}
	if got := a.MuledScalar(2); !got.NearEquals(NewVec3(2, 4, 6), testEpsilon) {
		t.Fatalf("MuledScalar の結果が不正: %+v", got)
	}
	if got := a.Muled(b); !got.NearEquals(NewVec3(-4, 10, 1.5), testEpsilon) {
		t.Fatalf("Muled の結果が不正: %+v", got)
	}
	if got := a.Dot(b); math.Abs(got-7.5) > testEpsilon {
		t.Fatalf("Dot の結果が不正: %f", got)
	}
	if got := NewVec3(3, 4, 0).Length(); math.Abs(got-5) > testEpsilon {
		t.Fatalf("Length の結果が不正: %f", got)
	}
	if got := NewVec3(0, 0, 0).Normalized(); !got.NearEquals(Vec3{}, testEpsilon) {
		t.Fatalf("零ベクトルの Normalized が不正: %+v", got)
	}
	if got := UnitX().Cross(UnitY()); !got.NearEquals(UnitZ(), testEpsilon) {
		t.Fatalf("Cross の結果が不正: %+v", got)
	}
}

func TestQuaternionRotatesVector(t *testing.T) {
	q := NewQuaternionFromAxisAngle(UnitZ(), math.Pi/2)
	got := q.MulVec3(UnitX())
	if !got.NearEquals(UnitY(), testEpsilon) {
		t.Fatalf("Z軸90度回転で X→Y になるべき: %+v", got)
	}

	// 合成: Z90 の後に X90。
	qx := NewQuaternionFromAxisAngle(UnitX(), math.Pi/2)
	combined := qx.Muled(q)
	got = combined.MulVec3(UnitX())
	if !got.NearEquals(UnitZ(), testEpsilon) {
		t.Fatalf("合成回転の結果が不正: %+v", got)
	}
}

func TestEulerRotationQuaternion(t *testing.T) {
	e := EulerRotation{Radians: NewVec3(0, 0, math.Pi/2), Order: EulerOrderXYZ}
	q, err := e.Quaternion()
	if err != nil {
		t.Fatalf("Quaternion が失敗: %v", err)
	}
	if got := q.MulVec3(UnitX()); !got.NearEquals(UnitY(), testEpsilon) {
		t.Fatalf("XYZ 順 Z90 の結果が不正: %+v", got)
	}

	// XYZ 順は X が先に適用される: X90 の後 Z90 で Y→(0,0,1)→(0,0,1)。
	e = EulerRotation{Radians: NewVec3(math.Pi/2, 0, math.Pi/2), Order: EulerOrderXYZ}
	q, err = e.Quaternion()
	if err != nil {
		t.Fatalf("Quaternion が失敗: %v", err)
	}
	if got := q.MulVec3(UnitY()); !got.NearEquals(UnitZ(), testEpsilon) {
		t.Fatalf("XYZ 順 X90+Z90 の結果が不正: %+v", got)
	}

	// ZYX 順では Z が先に適用される: Y→(-1,0,0)→X90 は影響なし→(-1,0,0)。
	e = EulerRotation{Radians: NewVec3(math.Pi/2, 0, math.Pi/2), Order: EulerOrderZYX}
	q, err = e.Quaternion()
	if err != nil {
		t.Fatalf("Quaternion が失敗: %v", err)
	}
	if got := q.MulVec3(UnitY()); !got.NearEquals(NewVec3(-1, 0, 0), testEpsilon) {
		t.Fatalf("ZYX 順の結果が不正: %+v", got)
	}

	if _, err := (EulerRotation{Order: "ABC"}).Quaternion(); err == nil {
		t.Fatalf("未対応の回転順はエラーになるべき")
	}
}

func TestAxisBounds(t *testing.T) {
	points := []Vec3{
		NewVec3(-1, 2, 0.5),
		NewVec3(3, -2, 0.25),
		NewVec3(0, 0, -4),
	}
	min, max, err := AxisBounds(points)
	if err != nil {
		t.Fatalf("AxisBounds が失敗: %v", err)
	}
	if !min.NearEquals(NewVec3(-1, -2, -4), testEpsilon) {
		t.Fatalf("最小値が不正: %+v", min)
	}
	if !max.NearEquals(NewVec3(3, 2, 0.5), testEpsilon) {
		t.Fatalf("最大値が不正: %+v", max)
	}

	if _, _, err := AxisBounds(nil); err == nil {
		t.Fatalf("空の頂点列はエラーになるべき")
	}
}

func TestMeanPointAndTypicalSize(t *testing.T) {
	points := []Vec3{
		NewVec3(1, 0, 0),
		NewVec3(-1, 2, 0),
		NewVec3(0, 4, 3),
	}
	if got := MeanPoint(points); !got.NearEquals(NewVec3(0, 2, 1), testEpsilon) {
		t.Fatalf("MeanPoint の結果が不正: %+v", got)
	}

	// 軸ごとの絶対値最大 (1, 4, 3) の長さ。
	want := math.Sqrt(1 + 16 + 9)
	if got := TypicalSize(points); math.Abs(got-want) > testEpsilon {
		t.Fatalf("TypicalSize の結果が不正: got=%f want=%f", got, want)
	}
	if got := TypicalSize(nil); got != 0 {
		t.Fatalf("空の頂点列の TypicalSize は 0 になるべき: %f", got)
	}
}
