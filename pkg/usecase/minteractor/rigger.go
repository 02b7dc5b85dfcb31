// 指示: PakkanenAnastacia
package minteractor

import (
	"fmt"

	"github.com/PakkanenAnastacia/MrBoxman/pkg/domain/mmath"
	"github.com/PakkanenAnastacia/MrBoxman/pkg/domain/model"
	"github.com/PakkanenAnastacia/MrBoxman/pkg/usecase/port/mscene"
)

// ボーンレイヤー番号。GLOBAL には全ボーンが所属する。
const (
	LayerDefault = 0
	LayerControl = 1
	LayerMayors  = 2
	LayerMinors  = 3
	LayerArm     = 4
	LayerHand    = 5
	LayerLeg     = 6
	LayerFeet    = 7
	LayerSpine   = 8
	LayerHead    = 9
	LayerChain   = 10
	LayerGlobal  = 31
)

// 制御・コレクションの命名接尾辞。
const (
	suffixControl      = "CTRL"
	controlNameDefault = "DEFAULT"
	suffixRoot         = "ROOT"
	suffixIk           = "IK"
	suffixPole         = "POLE"
	suffixSpine        = "SPINE"
	suffixNeck         = "NECK"

	collectionSuffix            = "COLL"
	collectionControlMeshSuffix = "MESHCTRL"
	collectionMeshSuffix        = "MESH"

	armatureNamePrefix = "Armature_"
)

// ArmatureNameFor はルートノード名からアーマチュア名を決める。
func ArmatureNameFor(root *model.BoxmanNode) string {
	return armatureNamePrefix + root.Properties.Name
}

func rootControlMeshName(armatureName string) string {
	return fmt.Sprintf("%s_%s_%s", armatureName, suffixRoot, suffixControl)
}

func defaultControlMeshName(armatureName string) string {
	return fmt.Sprintf("%s_%s_%s", armatureName, controlNameDefault, suffixControl)
}

func poleControlMeshName(armatureName string) string {
	return fmt.Sprintf("%s_%s_%s", armatureName, suffixPole, suffixControl)
}

func ikControlMeshName(armatureName string) string {
	return fmt.Sprintf("%s_%s_%s", armatureName, suffixIk, suffixControl)
}

func spineControlShapeName(armatureName, linkedName string) string {
	return fmt.Sprintf("%s_%s_%s_%s", armatureName, linkedName, suffixSpine, suffixControl)
}

func neckControlShapeName(armatureName, linkedName string) string {
	return fmt.Sprintf("%s_%s_%s_%s", armatureName, linkedName, suffixNeck, suffixControl)
}

// IRigger はボックスマンノード一つ分のリグ組立てを表す。
// Rig は編集モード中の走査で呼ばれ、ボーン構築と遅延コマンドの積み込みを行う。
type IRigger interface {
	Rig() error
	RiggerName() string
	Node() *model.BoxmanNode
	EditBone() *EditBone
	base() *riggerCore
}

// riggerCore は全リガーが共有する土台。
type riggerCore struct {
	ctx     *SynthesisContext
	node    *model.BoxmanNode
	parent  IRigger
	factory *RiggerFactory

	bone        *EditBone
	controlBone *EditBone

	// absoluteRoot は IK コントロールの親付け先となるルートリガー。
	absoluteRoot IRigger
	// localControlRoot は手などの局所コントロールの親付け先。
	localControlRoot IRigger
}

func newRiggerCore(node *model.BoxmanNode, parent IRigger, factory *RiggerFactory) riggerCore {
	core := riggerCore{
		node:    node,
		parent:  parent,
		factory: factory,
		ctx:     factory.ctx,
	}
	if parent != nil {
		core.absoluteRoot = parent.base().absoluteRoot
		core.localControlRoot = parent.base().localControlRoot
	}
	return core
}

func (c *riggerCore) base() *riggerCore { return c }

func (c *riggerCore) Node() *model.BoxmanNode { return c.node }

func (c *riggerCore) EditBone() *EditBone { return c.bone }

// ControlBone は補助コントロールボーンを返す。持たないリガーでは nil。
func (c *riggerCore) ControlBone() *EditBone { return c.controlBone }

func (c *riggerCore) armatureName() string { return c.ctx.ArmatureName }

func (c *riggerCore) mainCollectionName() string {
	return fmt.Sprintf("%s_%s", c.armatureName(), collectionSuffix)
}

func (c *riggerCore) controlMeshCollectionName() string {
	return fmt.Sprintf("%s_%s_%s", c.armatureName(), collectionSuffix, collectionControlMeshSuffix)
}

func (c *riggerCore) meshCollectionName() string {
	return fmt.Sprintf("%s_%s_%s", c.armatureName(), collectionSuffix, collectionMeshSuffix)
}

// newBone はノードの位置を頭とする編集ボーンを登録する。
func (c *riggerCore) newBone() error {
	bone, err := c.ctx.NewEditBone(c.node.ObjectName())
	if err != nil {
		return err
	}
	bone.Head = c.node.Location
	c.bone = bone
	return nil
}

// tailByTypical は末端を頭から代表サイズ分だけ X 方向へ置く。
func (c *riggerCore) tailByTypical() {
	c.bone.Tail = c.bone.Head.Added(mmath.UnitX().MuledScalar(c.node.TypicalSize()))
}

// splitChildren は子ノードを必須型とそれ以外に振り分ける。
func (c *riggerCore) splitChildren(required model.JointType) (mandatory, others []*model.BoxmanNode) {
	for _, child := range c.node.Children {
		if child.Properties.JointType == required {
			mandatory = append(mandatory, child)
		} else {
			others = append(others, child)
		}
	}
	return mandatory, others
}

// verifySingleChild は必須型の子がちょうど一つであることを確認する。
func (c *riggerCore) verifySingleChild(riggerName string, required model.JointType) (*model.BoxmanNode, []*model.BoxmanNode, error) {
	if len(c.node.Children) == 0 {
		return nil, nil, &model.RiggerError{Rigger: riggerName, Message: "子ノードが必要です"}
	}
	mandatory, others := c.splitChildren(required)
	if len(mandatory) != 1 {
		return nil, nil, &model.MissingRequiredChildError{
			Rigger:   riggerName,
			Required: required,
			Count:    len(mandatory),
		}
	}
	return mandatory[0], others, nil
}

// region 遅延コマンドの積み込み

func (c *riggerCore) queueParentMeshToBone() {
	c.ctx.QueueParenting(&ParentMeshToBoneCommand{
		MeshName:     c.node.ObjectName(),
		ArmatureName: c.armatureName(),
		BoneName:     c.bone.Name,
	})
}

func (c *riggerCore) queueAttachDefaultShape(boneName string) {
	c.ctx.QueueControlCreation(&AttachCustomShapeCommand{
		ArmatureName: c.armatureName(),
		BoneName:     boneName,
		ShapeName:    defaultControlMeshName(c.armatureName()),
		Scale:        0.5,
	})
}

func (c *riggerCore) queueAddBoneToGroup(group model.ExtremityType, boneName string) {
	c.ctx.QueueControlCreation(&AssignBoneGroupCommand{
		ArmatureName: c.armatureName(),
		BoneName:     boneName,
		GroupName:    string(group),
	})
}

func (c *riggerCore) queueAddBoneToLayers(layers []int, boneName string) {
	c.ctx.QueueControlCreation(&AssignBoneLayersCommand{
		ArmatureName: c.armatureName(),
		BoneName:     boneName,
		Layers:       layers,
	})
}

func (c *riggerCore) queueHideBone(boneName string) {
	c.ctx.QueueControlCreation(&HideBoneCommand{
		ArmatureName: c.armatureName(),
		BoneName:     boneName,
	})
}

// queueLinkMeshToCollection はメッシュのコレクション接続を積む。
// meshName が空なら自ノードのメッシュ、collectionName が空ならシーンルート。
func (c *riggerCore) queueLinkMeshToCollection(collectionName, meshName string) {
	if meshName == "" {
		meshName = c.node.ObjectName()
	}
	c.ctx.QueueCollectionAssignment(&LinkToCollectionCommand{
		CollectionName: collectionName,
		ObjectName:     meshName,
	})
}

func (c *riggerCore) queueUnlinkMeshFromCollection(collectionName, meshName string) {
	if meshName == "" {
		meshName = c.node.ObjectName()
	}
	c.ctx.QueueCollectionAssignment(&UnlinkFromCollectionCommand{
		CollectionName: collectionName,
		ObjectName:     meshName,
	})
}

func (c *riggerCore) queueCopyRotation(boneName, targetBoneName string, constraint mscene.CopyRotationConstraint) {
	constraint.TargetArmature = c.armatureName()
	constraint.TargetBone = targetBoneName
	c.ctx.QueueControlCreation(&AddCopyRotationCommand{
		ArmatureName: c.armatureName(),
		BoneName:     boneName,
		Constraint:   constraint,
	})
}

// endregion

// rigSectionChildren は脊椎・首・指の各セクションが共有する走査を行う。
// 末端は平均点へ向け、単独の子は接続、同族が一つだけなら遡って接続し直す。
// adopt は同族の子へ共有コントロールを渡したときに真を返す。
func (c *riggerCore) rigSectionChildren(self IRigger, adopt func(IRigger) bool) error {
	mean, err := c.node.MeanPoint()
	if err != nil {
		return err
	}

	if len(c.node.Children) == 0 {
		c.bone.Tail = mean
		return nil
	}

	if len(c.node.Children) == 1 {
		childNode := c.node.Children[0]
		childRigger, err := c.factory.Create(childNode, self)
		if err != nil {
			return err
		}
		adopt(childRigger)
		if err := childRigger.Rig(); err != nil {
			return err
		}
		if childBone := childRigger.EditBone(); childBone != nil {
			childBone.Parent = c.bone
			childBone.UseConnect = true
			c.bone.Tail = childNode.Location
		} else {
			c.bone.Tail = mean
		}
		return nil
	}

	c.bone.Tail = mean
	var sameType []IRigger
	for _, childNode := range c.node.Children {
		childRigger, err := c.factory.Create(childNode, self)
		if err != nil {
			return err
		}
		if adopt(childRigger) {
			sameType = append(sameType, childRigger)
		}
		if err := childRigger.Rig(); err != nil {
			return err
		}
		if childBone := childRigger.EditBone(); childBone != nil {
			childBone.Parent = c.bone
			childBone.UseConnect = false
		}
	}

	// 同族の子が一つだけなら鎖として繋ぎ直す
	if len(sameType) == 1 {
		only := sameType[0]
		only.EditBone().UseConnect = true
		c.bone.Tail = only.Node().Location
	}
	return nil
}
