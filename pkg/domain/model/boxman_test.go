// 指示: PakkanenAnastacia
package model

import (
	"math"
	"testing"

	"github.com/PakkanenAnastacia/MrBoxman/pkg/domain/mmath"
)

func newTestNode(name string, orientation Orientation, jointType JointType, children ...*BoxmanNode) *BoxmanNode {
	return &BoxmanNode{
		Scale: mmath.NewVec3(1, 1, 1),
		Vertices: []mmath.Vec3{
			mmath.NewVec3(-0.5, -0.5, -0.5),
			mmath.NewVec3(0.5, 0.5, 0.5),
		},
		Properties: BoxmanProperties{
			Name:        name,
			Orientation: orientation,
			JointType:   jointType,
		},
		Children: children,
	}
}

func TestObjectName(t *testing.T) {
	node := newTestNode("hips", OrientationCenter, JointTypeSpineRoot)
	if got := node.ObjectName(); got != "bxm.C.hips" {
		t.Fatalf("オブジェクト名が不正: %s", got)
	}
}

func TestValidate(t *testing.T) {
	root := newTestNode("root", OrientationCenter, JointTypeObjectRoot,
		newTestNode("hips", OrientationCenter, JointTypeSpineRoot))
	if err := root.Validate(); err != nil {
		t.Fatalf("正常なツリーの検証が失敗: %v", err)
	}

	notRoot := newTestNode("hips", OrientationCenter, JointTypeSpineRoot)
	if err := notRoot.Validate(); err == nil {
		t.Fatalf("非ルート起点のツリーはエラーになるべき")
	}

	doubleRoot := newTestNode("root", OrientationCenter, JointTypeObjectRoot,
		newTestNode("root2", OrientationCenter, JointTypeObjectRoot))
	if err := doubleRoot.Validate(); err == nil {
		t.Fatalf("OBJECT_ROOT が2つあるツリーはエラーになるべき")
	}

	unknown := newTestNode("root", OrientationCenter, JointTypeObjectRoot)
	unknown.Children = []*BoxmanNode{newTestNode("x", OrientationCenter, JointType("WING"))}
	if err := unknown.Validate(); err == nil {
		t.Fatalf("未知の関節種別はエラーになるべき")
	}
}

func TestCloneIsolation(t *testing.T) {
	root := newTestNode("root", OrientationCenter, JointTypeObjectRoot,
		newTestNode("arm", OrientationLeft, JointTypeDefault))
	cloned, err := root.Clone()
	if err != nil {
		t.Fatalf("Clone が失敗: %v", err)
	}

	cloned.Children[0].Properties.Name = "changed"
	cloned.Children[0].Vertices[0] = mmath.NewVec3(9, 9, 9)
	if root.Children[0].Properties.Name != "arm" {
		t.Fatalf("複製の変更が元ツリーへ波及した")
	}
	if root.Children[0].Vertices[0].X == 9 {
		t.Fatalf("複製の頂点変更が元ツリーへ波及した")
	}
}

func TestReverseOrientation(t *testing.T) {
	root := newTestNode("root", OrientationCenter, JointTypeObjectRoot,
		newTestNode("shoulder", OrientationLeft, JointTypeShoulderRoot,
			newTestNode("humerus", OrientationLeft, JointTypeArmHumerus)),
		newTestNode("hips", OrientationCenter, JointTypeSpineRoot))

	root.ReverseOrientation()

	if got := root.Properties.Orientation; got != OrientationCenter {
		t.Fatalf("中央の向きは変わらないべき: %s", got)
	}
	if got := root.Children[0].Properties.Orientation; got != OrientationRight {
		t.Fatalf("左は右へ反転すべき: %s", got)
	}
	if got := root.Children[0].Children[0].Properties.Orientation; got != OrientationRight {
		t.Fatalf("子孫まで反転すべき: %s", got)
	}
}

func TestMeanPoint(t *testing.T) {
	node := newTestNode("x", OrientationCenter, JointTypeDefault)
	node.Location = mmath.NewVec3(1, 2, 3)
	node.Vertices = []mmath.Vec3{
		mmath.NewVec3(1, 0, 0),
		mmath.NewVec3(3, 0, 0),
	}
	// Z軸90度回転で重心 (2,0,0) は (0,2,0) になる。
	node.Rotation = mmath.EulerRotation{Radians: mmath.NewVec3(0, 0, math.Pi/2), Order: mmath.EulerOrderXYZ}

	got, err := node.MeanPoint()
	if err != nil {
		t.Fatalf("MeanPoint が失敗: %v", err)
	}
	if !got.NearEquals(mmath.NewVec3(1, 4, 3), 1e-9) {
		t.Fatalf("MeanPoint の結果が不正: %+v", got)
	}
}

func TestChildrenOfType(t *testing.T) {
	root := newTestNode("radius", OrientationLeft, JointTypeArmRadius,
		newTestNode("elbow", OrientationLeft, JointTypeArmElbow),
		newTestNode("hand", OrientationLeft, JointTypeHandRoot),
		newTestNode("acc", OrientationLeft, JointTypeAccessory))

	hands := root.ChildrenOfType(JointTypeHandRoot)
	if len(hands) != 1 || hands[0].Properties.Name != "hand" {
		t.Fatalf("ChildrenOfType の結果が不正: %+v", hands)
	}
	if got := root.ChildrenOfType(JointTypeChainRoot); len(got) != 0 {
		t.Fatalf("該当なしは空を返すべき: %+v", got)
	}
}
