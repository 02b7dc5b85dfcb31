// 指示: PakkanenAnastacia
package minteractor

import (
	"github.com/PakkanenAnastacia/MrBoxman/pkg/domain/mmath"
	"github.com/PakkanenAnastacia/MrBoxman/pkg/domain/model"
)

// boneGroupDefinitions は全リグで共通のボーングループ定義。
var boneGroupDefinitions = []BoneGroupDefinition{
	{Name: string(model.ExtremityDefault), ColorSet: "THEME01"},
	{Name: string(model.ExtremitySpine), ColorSet: "THEME02"},
	{Name: string(model.ExtremityHead), ColorSet: "THEME03"},
	{Name: string(model.ExtremityHand), ColorSet: "THEME04"},
	{Name: string(model.ExtremityArm), ColorSet: "THEME05"},
	{Name: string(model.ExtremityLeg), ColorSet: "THEME06"},
	{Name: string(model.ExtremityFeet), ColorSet: "THEME07"},
	{Name: string(model.ExtremityChain), ColorSet: "THEME08"},
}

// RootRigger はルートノード専用のリガー。
// 制御テンプレートメッシュとコレクションを用意し、全子孫のリグ生成を起動する。
type RootRigger struct {
	riggerCore
}

// NewRootRigger はルートリガーを生成する。
func NewRootRigger(node *model.BoxmanNode, factory *RiggerFactory) *RootRigger {
	r := &RootRigger{riggerCore: newRiggerCore(node, nil, factory)}
	r.absoluteRoot = r
	r.localControlRoot = r
	r.ctx.countRigger()
	return r
}

// RiggerName はリガー種別名を返す。
func (r *RootRigger) RiggerName() string { return "RootRigger" }

// Rig はルートボーンを構築し、テンプレート生成と子孫の走査を行う。
func (r *RootRigger) Rig() error {
	if !r.node.IsRoot() {
		return &model.RiggerError{Rigger: r.RiggerName(), Message: "ルートノードではありません"}
	}

	if err := r.queueControlMeshTemplates(); err != nil {
		return err
	}

	if err := r.newBone(); err != nil {
		return err
	}
	r.bone.Tail = r.bone.Head.Added(mmath.UnitX())

	// グループとコレクションは他の制御コマンドより先に作られている必要がある
	r.queueCreateBoneGroups()
	r.queueCreateCollections()

	for _, childNode := range r.node.Children {
		childRigger, err := r.factory.Create(childNode, r)
		if err != nil {
			return err
		}
		if err := childRigger.Rig(); err != nil {
			return err
		}
		if childBone := childRigger.EditBone(); childBone != nil {
			childBone.Parent = r.bone
			childBone.UseConnect = false
		}
	}

	r.queueParentMeshToBone()
	r.queueAttachRootShape()
	r.queueHideTemplateMeshes()
	r.queueAddBoneToGroup(model.ExtremityDefault, r.bone.Name)
	r.queueAddBoneToLayers([]int{LayerMayors, LayerControl, LayerGlobal}, r.bone.Name)

	r.queueUnlinkMeshFromCollection("", "")
	r.queueLinkMeshToCollection(r.controlMeshCollectionName(), "")

	r.queueLinkTemplatesToCollection()
	r.queueUnlinkTemplatesFromSceneRoot()
	return nil
}

// templateMeshNames はルートが生成する四つのテンプレート名を返す。
func (r *RootRigger) templateMeshNames() []string {
	armature := r.armatureName()
	return []string{
		rootControlMeshName(armature),
		defaultControlMeshName(armature),
		poleControlMeshName(armature),
		ikControlMeshName(armature),
	}
}

// queueControlMeshTemplates はボーン表示置換用のテンプレート群の生成を積む。
// ルートリング、既定十字、ポール十字、IK 十字を X 方向に 1 ずつずらして置く。
func (r *RootRigger) queueControlMeshTemplates() error {
	armature := r.armatureName()
	location := r.node.Location

	rootRing, err := NewRegularPolygon(rootControlMeshName(armature), 8)
	if err != nil {
		return err
	}
	defaultCross, err := NewCrossPolygon(defaultControlMeshName(armature), 8)
	if err != nil {
		return err
	}
	poleCross, err := NewCrossPolygon(poleControlMeshName(armature), 4)
	if err != nil {
		return err
	}
	ikCross, err := NewCrossPolygon(ikControlMeshName(armature), 3)
	if err != nil {
		return err
	}

	templates := []struct {
		mesh   *ControlMesh
		offset float64
	}{
		{rootRing, 0},
		{defaultCross, 1},
		{poleCross, 2},
		{ikCross, 3},
	}
	for _, template := range templates {
		at := location.Added(mmath.UnitX().MuledScalar(template.offset))
		r.ctx.QueueMeshCreation(&CreateControlMeshCommand{Mesh: template.mesh.Definition(at)})
	}
	return nil
}

func (r *RootRigger) queueHideTemplateMeshes() {
	for _, name := range r.templateMeshNames() {
		r.ctx.QueueMeshCreation(&HideObjectCommand{ObjectName: name})
	}
}

func (r *RootRigger) queueLinkTemplatesToCollection() {
	for _, name := range r.templateMeshNames() {
		r.queueLinkMeshToCollection(r.controlMeshCollectionName(), name)
	}
}

func (r *RootRigger) queueUnlinkTemplatesFromSceneRoot() {
	for _, name := range r.templateMeshNames() {
		r.queueUnlinkMeshFromCollection("", name)
	}
}

func (r *RootRigger) queueAttachRootShape() {
	r.ctx.QueueControlCreation(&AttachCustomShapeCommand{
		ArmatureName: r.armatureName(),
		BoneName:     r.bone.Name,
		ShapeName:    rootControlMeshName(r.armatureName()),
		Scale:        0.5,
	})
}

func (r *RootRigger) queueCreateBoneGroups() {
	r.ctx.QueueControlCreation(&CreateBoneGroupsCommand{
		ArmatureName: r.armatureName(),
		Groups:       boneGroupDefinitions,
	})
}

func (r *RootRigger) queueCreateCollections() {
	r.ctx.QueueControlCreation(&CreateCollectionsCommand{
		Names: []string{
			r.mainCollectionName(),
			r.controlMeshCollectionName(),
			r.meshCollectionName(),
		},
	})
}

// QueueLinkArmatureToMainCollection はアーマチュア本体のコレクション移設を積む。
// 駆動側が全リグ生成後に呼ぶ。
func (r *RootRigger) QueueLinkArmatureToMainCollection() {
	r.queueLinkMeshToCollection(r.mainCollectionName(), r.armatureName())
	r.queueUnlinkMeshFromCollection("", r.armatureName())
}
