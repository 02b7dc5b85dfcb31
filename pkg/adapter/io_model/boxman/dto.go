// 指示: PakkanenAnastacia
package boxman

import (
	"encoding/json"
	"fmt"

	"github.com/PakkanenAnastacia/MrBoxman/pkg/domain/mmath"
	"github.com/PakkanenAnastacia/MrBoxman/pkg/domain/model"
)

// rotationsDTO はオイラー角と回転順の異種混合ペア [[x,y,z],"ORDER"] を表す。
type rotationsDTO struct {
	Angles [3]float64
	Order  string
}

// MarshalJSON は [[x,y,z],"ORDER"] 形式で書き出す。
func (r rotationsDTO) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{r.Angles, r.Order})
}

// UnmarshalJSON は [[x,y,z],"ORDER"] 形式を読み取る。
func (r *rotationsDTO) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("rotations の形式が不正です: %w", err)
	}
	if err := json.Unmarshal(pair[0], &r.Angles); err != nil {
		return fmt.Errorf("rotations の角度が不正です: %w", err)
	}
	if err := json.Unmarshal(pair[1], &r.Order); err != nil {
		return fmt.Errorf("rotations の回転順が不正です: %w", err)
	}
	return nil
}

// propertiesDTO はノードのタグ情報のファイル表現を表す。
type propertiesDTO struct {
	Name        string `json:"name"`
	Orientation string `json:"orientation"`
	JointType   string `json:"joint_type"`
	Description string `json:"description"`
}

// boxmanDTO はボックスマンノードのファイル表現を表す。
type boxmanDTO struct {
	Location   [3]float64    `json:"location"`
	Scale      [3]float64    `json:"scale"`
	Rotations  rotationsDTO  `json:"rotations"`
	VertexList [][3]float64  `json:"vertex_list"`
	PolygonList [][]int     `json:"polygon_list"`
	Properties propertiesDTO `json:"properties"`
	Children   []*boxmanDTO  `json:"children"`
}

// dtoFromNode はドメインノードをファイル表現へ変換する。
func dtoFromNode(node *model.BoxmanNode) *boxmanDTO {
	dto := &boxmanDTO{
		Location: vecToArray(node.Location),
		Scale:    vecToArray(node.Scale),
		Rotations: rotationsDTO{
			Angles: vecToArray(node.Rotation.Radians),
			Order:  string(node.Rotation.Order),
		},
		Properties: propertiesDTO{
			Name:        node.Properties.Name,
			Orientation: string(node.Properties.Orientation),
			JointType:   string(node.Properties.JointType),
			Description: node.Properties.Description,
		},
	}
	dto.VertexList = make([][3]float64, 0, len(node.Vertices))
	for _, vert := range node.Vertices {
		dto.VertexList = append(dto.VertexList, vecToArray(vert))
	}
	dto.PolygonList = append(dto.PolygonList, node.Polygons...)
	for _, child := range node.Children {
		dto.Children = append(dto.Children, dtoFromNode(child))
	}
	return dto
}

// toNode はファイル表現をドメインノードへ変換する。
func (dto *boxmanDTO) toNode() (*model.BoxmanNode, error) {
	order := mmath.EulerOrder(dto.Rotations.Order)
	if order == "" {
		order = mmath.EulerOrderXYZ
	}
	if !order.Valid() {
		return nil, fmt.Errorf("ノード %s の回転順 %q は未対応です", dto.Properties.Name, dto.Rotations.Order)
	}
	node := &model.BoxmanNode{
		Location: arrayToVec(dto.Location),
		Scale:    arrayToVec(dto.Scale),
		Rotation: mmath.EulerRotation{
			Radians: arrayToVec(dto.Rotations.Angles),
			Order:   order,
		},
		Polygons: dto.PolygonList,
		Properties: model.BoxmanProperties{
			Name:        dto.Properties.Name,
			Orientation: model.Orientation(dto.Properties.Orientation),
			JointType:   model.JointType(dto.Properties.JointType),
			Description: dto.Properties.Description,
		},
	}
	node.Vertices = make([]mmath.Vec3, 0, len(dto.VertexList))
	for _, vert := range dto.VertexList {
		node.Vertices = append(node.Vertices, arrayToVec(vert))
	}
	for _, child := range dto.Children {
		childNode, err := child.toNode()
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, childNode)
	}
	return node, nil
}

func vecToArray(v mmath.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func arrayToVec(a [3]float64) mmath.Vec3 {
	return mmath.NewVec3(a[0], a[1], a[2])
}
