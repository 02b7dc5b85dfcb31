// 指示: PakkanenAnastacia
package minteractor

import (
	"fmt"

	"github.com/PakkanenAnastacia/MrBoxman/pkg/domain/mmath"
	"github.com/PakkanenAnastacia/MrBoxman/pkg/domain/model"
	"github.com/PakkanenAnastacia/MrBoxman/pkg/usecase/port/mscene"
)

// spineFamilyRigger は脊椎の各リガーが満たす。根元のコントロールを
// 節へ伝搬させ、同族の一本鎖を遡って接続し直す判定に使う。
type spineFamilyRigger interface {
	IRigger
	adoptSpineControl(control *EditBone)
}

// spineChainRig は脊椎の節が共有する回転元コントロールを保持する。
type spineChainRig struct {
	sharedControl *EditBone
}

func (s *spineChainRig) adoptSpineControl(control *EditBone) {
	s.sharedControl = control
}

// adoptSpineFamily は子が脊椎族ならコントロールを渡して真を返す。
func adoptSpineFamily(control *EditBone) func(IRigger) bool {
	return func(child IRigger) bool {
		spine, ok := child.(spineFamilyRigger)
		if !ok {
			return false
		}
		spine.adoptSpineControl(control)
		return true
	}
}

// queueTorsoRotationConstraint は胴ボーンをコントロールへ追加回転で
// 追従させる。脊椎の節は半分の影響度で緩やかに曲がる。
func (c *riggerCore) queueTorsoRotationConstraint(control *EditBone, influence float64) {
	if control == nil {
		return
	}
	c.queueCopyRotation(c.bone.Name, control.Name, mscene.CopyRotationConstraint{
		MixMode:     mscene.MixModeAdd,
		OwnerSpace:  mscene.ConstraintSpaceWorld,
		TargetSpace: mscene.ConstraintSpaceLocal,
		Influence:   influence,
	})
}

// queueTorsoLocationConstraint は胴の根ボーンをコントロールの位置へ追従させる。
func (c *riggerCore) queueTorsoLocationConstraint(control *EditBone) {
	c.ctx.controlCreation = append(c.ctx.controlCreation, &AddCopyLocationCommand{
		ArmatureName: c.armatureName(),
		BoneName:     c.bone.Name,
		Constraint: mscene.CopyLocationConstraint{
			TargetArmature: c.armatureName(),
			TargetBone:     control.Name,
		},
	})
}

// queueProportionShape はノードの外形に合わせた直方体シェイプを生成して積む。
// シェイプ本体は脇に退避させ、表示からは隠す。
func (c *riggerCore) queueProportionShape(shapeName string) error {
	cube := NewUnitCube(shapeName)
	if err := cube.ScaleToBounds(c.node.Vertices); err != nil {
		return err
	}
	location := c.node.Location.Added(mmath.UnitX())
	c.ctx.meshCreation = append(c.ctx.meshCreation,
		&CreateControlMeshCommand{Mesh: cube.Definition(location)},
		&HideObjectCommand{ObjectName: shapeName},
	)
	c.queueLinkMeshToCollection(c.controlMeshCollectionName(), shapeName)
	c.queueUnlinkMeshFromCollection("", shapeName)
	return nil
}

// SpineRootRigger は脊椎の根元のリガー。体格に合わせた直方体シェイプの
// コントロールを大元直下に置き、脊椎列全体を牽引する。
type SpineRootRigger struct {
	riggerCore
}

// NewSpineRootRigger は脊椎根元リガーを生成する。
func NewSpineRootRigger(node *model.BoxmanNode, parent IRigger, factory *RiggerFactory) *SpineRootRigger {
	r := &SpineRootRigger{riggerCore: newRiggerCore(node, parent, factory)}
	r.localControlRoot = r
	return r
}

// RiggerName はリガー種別名を返す。
func (r *SpineRootRigger) RiggerName() string { return "SpineRootRigger" }

// Rig は脊椎根元のボーンとコントロールを構築する。
func (r *SpineRootRigger) Rig() error {
	if err := r.newBone(); err != nil {
		return err
	}

	control, err := r.ctx.NewEditBone(fmt.Sprintf("%s_%s", r.bone.Name, suffixControl))
	if err != nil {
		return err
	}
	control.Head = r.bone.Head
	control.Tail = r.bone.Head.Added(mmath.UnitY())
	control.Parent = r.absoluteRoot.EditBone()
	control.UseConnect = false
	r.controlBone = control

	if err := r.rigSectionChildren(r, adoptSpineFamily(control)); err != nil {
		return err
	}
	return r.queue()
}

func (r *SpineRootRigger) queue() error {
	shapeName := spineControlShapeName(r.armatureName(), r.node.ObjectName())
	if err := r.queueProportionShape(shapeName); err != nil {
		return err
	}
	r.ctx.controlCreation = append(r.ctx.controlCreation, &AttachCustomShapeCommand{
		ArmatureName: r.armatureName(),
		BoneName:     r.controlBone.Name,
		ShapeName:    shapeName,
		Scale:        1.0,
	})
	r.queueParentMeshToBone()
	r.queueHideBone(r.bone.Name)
	r.queueTorsoRotationConstraint(r.controlBone, 1.0)
	r.queueTorsoLocationConstraint(r.controlBone)
	r.queueAddBoneToGroup(model.ExtremitySpine, r.bone.Name)
	r.queueAddBoneToGroup(model.ExtremitySpine, r.controlBone.Name)
	r.queueAddBoneToLayers([]int{LayerGlobal, LayerSpine}, r.bone.Name)
	r.queueAddBoneToLayers([]int{LayerGlobal, LayerMayors, LayerControl, LayerSpine}, r.controlBone.Name)
	r.queueLinkMeshToCollection(r.meshCollectionName(), "")
	r.queueUnlinkMeshFromCollection("", "")
	return nil
}

// SpineSectionRigger は脊椎の節のリガー。根元のコントロールに
// 半分の影響度で追従し、列全体を滑らかに湾曲させる。
type SpineSectionRigger struct {
	riggerCore
	spineChainRig
}

// NewSpineSectionRigger は脊椎節リガーを生成する。
func NewSpineSectionRigger(node *model.BoxmanNode, parent IRigger, factory *RiggerFactory) *SpineSectionRigger {
	r := &SpineSectionRigger{riggerCore: newRiggerCore(node, parent, factory)}
	r.localControlRoot = r
	return r
}

// RiggerName はリガー種別名を返す。
func (r *SpineSectionRigger) RiggerName() string { return "SpineSectionRigger" }

// Rig は脊椎の節ボーンを構築する。
func (r *SpineSectionRigger) Rig() error {
	if err := r.newBone(); err != nil {
		return err
	}
	if err := r.rigSectionChildren(r, adoptSpineFamily(r.sharedControl)); err != nil {
		return err
	}
	r.queue()
	return nil
}

func (r *SpineSectionRigger) queue() {
	r.queueParentMeshToBone()
	r.queueAttachDefaultShape(r.bone.Name)
	r.queueTorsoRotationConstraint(r.sharedControl, 0.5)
	r.queueAddBoneToGroup(model.ExtremitySpine, r.bone.Name)
	r.queueAddBoneToLayers([]int{LayerGlobal, LayerMayors, LayerSpine}, r.bone.Name)
	r.queueLinkMeshToCollection(r.meshCollectionName(), "")
	r.queueUnlinkMeshFromCollection("", "")
}
