// 指示: PakkanenAnastacia
package model

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"

	"github.com/PakkanenAnastacia/MrBoxman/pkg/domain/mmath"
)

// BoxmanObjectPrefix はシーン上のボックスマンオブジェクト名の接頭辞。
const BoxmanObjectPrefix = "bxm"

// BoxmanProperties はノードのタグ情報を表す。
type BoxmanProperties struct {
	Name        string
	Orientation Orientation
	JointType   JointType
	Description string
}

// BoxmanNode は比例メッシュツリーの1ノードを表す。
// Children は親が所有する順序付きツリーで、循環や共有は持たない。
type BoxmanNode struct {
	Location   mmath.Vec3
	Scale      mmath.Vec3
	Rotation   mmath.EulerRotation
	Vertices   []mmath.Vec3
	Polygons   [][]int
	Properties BoxmanProperties
	Children   []*BoxmanNode
}

// ObjectName はシーン上のオブジェクト名 bxm.{向き}.{名前} を返す。
func (n *BoxmanNode) ObjectName() string {
	return fmt.Sprintf("%s.%s.%s", BoxmanObjectPrefix, n.Properties.Orientation, n.Properties.Name)
}

// IsRoot はルート関節かを返す。
func (n *BoxmanNode) IsRoot() bool {
	return n.Properties.JointType == JointTypeObjectRoot
}

// Validate はツリー全体の構造制約を検証する。
// ルートが OBJECT_ROOT であること、OBJECT_ROOT がツリー内に1つだけ存在すること、
// 各ノードの関節種別と向きが既知であることを確認する。
func (n *BoxmanNode) Validate() error {
	if !n.IsRoot() {
		return fmt.Errorf("ルートノード %s の関節種別が OBJECT_ROOT ではありません: %s",
			n.Properties.Name, n.Properties.JointType)
	}
	rootCount := 0
	var walk func(node *BoxmanNode) error
	walk = func(node *BoxmanNode) error {
		if !node.Properties.JointType.Valid() {
			return fmt.Errorf("ノード %s の関節種別 %s は未知です",
				node.Properties.Name, node.Properties.JointType)
		}
		if !node.Properties.Orientation.Valid() {
			return fmt.Errorf("ノード %s の向き %s は未知です",
				node.Properties.Name, node.Properties.Orientation)
		}
		if node.Properties.JointType == JointTypeObjectRoot {
			rootCount++
		}
		for _, child := range node.Children {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(n); err != nil {
		return err
	}
	if rootCount != 1 {
		return fmt.Errorf("OBJECT_ROOT はツリー内に1つだけ必要です: %d 個", rootCount)
	}
	return nil
}

// Clone はツリー全体の独立した複製を返す。
func (n *BoxmanNode) Clone() (*BoxmanNode, error) {
	cloned := &BoxmanNode{}
	if err := deepcopy.Copy(cloned, n); err != nil {
		return nil, fmt.Errorf("ノード %s の複製に失敗しました: %w", n.Properties.Name, err)
	}
	return cloned, nil
}

// ReverseOrientation は自身と全子孫の向きを左右反転する。
func (n *BoxmanNode) ReverseOrientation() {
	n.Properties.Orientation = n.Properties.Orientation.Reversed()
	for _, child := range n.Children {
		child.ReverseOrientation()
	}
}

// MeanPoint は頂点重心をオイラー回転で回しノード位置を加えた点を返す。
func (n *BoxmanNode) MeanPoint() (mmath.Vec3, error) {
	q, err := n.Rotation.Quaternion()
	if err != nil {
		return mmath.Vec3{}, fmt.Errorf("ノード %s の回転変換に失敗しました: %w", n.Properties.Name, err)
	}
	mean := mmath.MeanPoint(n.Vertices)
	return q.MulVec3(mean).Added(n.Location), nil
}

// TypicalSize は軸ごとの絶対値最大からなるベクトルの長さを返す。
func (n *BoxmanNode) TypicalSize() float64 {
	return mmath.TypicalSize(n.Vertices)
}

// VertexBounds は頂点列の軸ごとの最小・最大を返す。
func (n *BoxmanNode) VertexBounds() (min, max mmath.Vec3, err error) {
	min, max, err = mmath.AxisBounds(n.Vertices)
	if err != nil {
		return mmath.Vec3{}, mmath.Vec3{}, fmt.Errorf("ノード %s: %w", n.Properties.Name, err)
	}
	return min, max, nil
}

// ChildrenOfType は指定種別の子ノードを出現順で返す。
func (n *BoxmanNode) ChildrenOfType(jointType JointType) []*BoxmanNode {
	var ret []*BoxmanNode
	for _, child := range n.Children {
		if child.Properties.JointType == jointType {
			ret = append(ret, child)
		}
	}
	return ret
}
