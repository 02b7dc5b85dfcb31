// 指示: PakkanenAnastacia
package minteractor

import (
	"fmt"
	"math"

	"github.com/PakkanenAnastacia/MrBoxman/pkg/domain/mmath"
	"github.com/PakkanenAnastacia/MrBoxman/pkg/domain/model"
	"github.com/PakkanenAnastacia/MrBoxman/pkg/usecase/port/mscene"
)

// ControlMesh はボーン表示を置き換える制御用ワイヤメッシュを表す。
type ControlMesh struct {
	Name     string
	Vertices []mmath.Vec3
	Edges    [][2]int
}

// NewUnitCube はバウンディングボックスへ拡縮する前提の単位立方体を生成する。
func NewUnitCube(name string) *ControlMesh {
	return &ControlMesh{
		Name: name,
		Vertices: []mmath.Vec3{
			mmath.NewVec3(0, 0, 0),
			mmath.NewVec3(0, 0, 1),
			mmath.NewVec3(0, 1, 0),
			mmath.NewVec3(0, 1, 1),
			mmath.NewVec3(1, 0, 0),
			mmath.NewVec3(1, 0, 1),
			mmath.NewVec3(1, 1, 0),
			mmath.NewVec3(1, 1, 1),
		},
		Edges: [][2]int{
			{0, 2}, {0, 1}, {1, 3}, {2, 3}, {2, 6}, {3, 7},
			{6, 7}, {4, 6}, {5, 7}, {4, 5}, {0, 4}, {1, 5},
		},
	}
}

// NewRegularPolygon は Z 軸向きの正多角形リングを生成する。
func NewRegularPolygon(name string, sides int) (*ControlMesh, error) {
	if sides <= 0 {
		return nil, fmt.Errorf("多角形の辺数が不正です: %d", sides)
	}
	control := &ControlMesh{Name: name}
	fraction := 2 * math.Pi / float64(sides)
	for i := 0; i <= sides; i++ {
		angle := fraction * float64(i)
		control.Vertices = append(control.Vertices, mmath.NewVec3(math.Cos(angle), math.Sin(angle), 0))
		control.Edges = append(control.Edges, [2]int{i, i + 1})
	}
	// 終端は始点へ戻す
	control.Edges[len(control.Edges)-1][1] = 0
	return control, nil
}

// NewCrossPolygon は直交する二つの正多角形リングを組み合わせた十字形を生成する。
func NewCrossPolygon(name string, sides int) (*ControlMesh, error) {
	control, err := NewRegularPolygon(name, sides)
	if err != nil {
		return nil, err
	}
	fraction := 2 * math.Pi / float64(sides)
	base := sides + 1
	for i := 0; i <= sides; i++ {
		angle := fraction * float64(i)
		control.Vertices = append(control.Vertices, mmath.NewVec3(0, math.Cos(angle), math.Sin(angle)))
		control.Edges = append(control.Edges, [2]int{base + i, base + i + 1})
	}
	control.Edges[len(control.Edges)-1][1] = base
	return control, nil
}

// ScaleToBounds は自身の頂点を対象頂点群のバウンディングボックスへ
// 軸ごとの線形写像で拡縮する。自身または対象の軸幅が零の軸は写像できない。
func (c *ControlMesh) ScaleToBounds(target []mmath.Vec3) error {
	ownMin, ownMax, err := mmath.AxisBounds(c.Vertices)
	if err != nil {
		return err
	}
	targetMin, targetMax, err := mmath.AxisBounds(target)
	if err != nil {
		return err
	}

	ownExtent := ownMax.Subed(ownMin)
	targetExtent := targetMax.Subed(targetMin)
	axes := [3]struct {
		label        string
		ownExtent    float64
		targetExtent float64
	}{
		{"x", ownExtent.X, targetExtent.X},
		{"y", ownExtent.Y, targetExtent.Y},
		{"z", ownExtent.Z, targetExtent.Z},
	}
	for _, axis := range axes {
		if axis.ownExtent == 0 || axis.targetExtent == 0 {
			return &model.DegenerateBoundsError{Target: c.Name, Axis: axis.label}
		}
	}

	scaled := make([]mmath.Vec3, 0, len(c.Vertices))
	for _, v := range c.Vertices {
		scaled = append(scaled, mmath.NewVec3(
			targetMin.X+(v.X-ownMin.X)*(targetMax.X-targetMin.X)/ownExtent.X,
			targetMin.Y+(v.Y-ownMin.Y)*(targetMax.Y-targetMin.Y)/ownExtent.Y,
			targetMin.Z+(v.Z-ownMin.Z)*(targetMax.Z-targetMin.Z)/ownExtent.Z,
		))
	}
	c.Vertices = scaled
	return nil
}

// Definition はシーン生成用のメッシュ定義へ変換する。
func (c *ControlMesh) Definition(location mmath.Vec3) mscene.MeshDefinition {
	return mscene.MeshDefinition{
		Name:     c.Name,
		Location: location,
		Vertices: c.Vertices,
		Edges:    c.Edges,
	}
}
