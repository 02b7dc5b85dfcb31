// 指示: PakkanenAnastacia
package minteractor

import (
	"fmt"

	"github.com/PakkanenAnastacia/MrBoxman/pkg/domain/mmath"
	"github.com/PakkanenAnastacia/MrBoxman/pkg/domain/model"
)

// neckFamilyRigger は首の各リガーが満たす。根元のコントロールを
// 節へ伝搬させ、同族の一本鎖を遡って接続し直す判定に使う。
type neckFamilyRigger interface {
	IRigger
	adoptNeckControl(control *EditBone)
}

// neckChainRig は首の節が共有する回転元コントロールを保持する。
type neckChainRig struct {
	sharedControl *EditBone
}

func (n *neckChainRig) adoptNeckControl(control *EditBone) {
	n.sharedControl = control
}

// adoptNeckFamily は子が首族ならコントロールを渡して真を返す。
func adoptNeckFamily(control *EditBone) func(IRigger) bool {
	return func(child IRigger) bool {
		neck, ok := child.(neckFamilyRigger)
		if !ok {
			return false
		}
		neck.adoptNeckControl(control)
		return true
	}
}

// NeckRootRigger は首の根元のリガー。体格に合わせた直方体シェイプの
// コントロールを親ボーン直下に置き、首から上を牽引する。
type NeckRootRigger struct {
	riggerCore
}

// NewNeckRootRigger は首根元リガーを生成する。
func NewNeckRootRigger(node *model.BoxmanNode, parent IRigger, factory *RiggerFactory) *NeckRootRigger {
	return &NeckRootRigger{riggerCore: newRiggerCore(node, parent, factory)}
}

// RiggerName はリガー種別名を返す。
func (r *NeckRootRigger) RiggerName() string { return "NeckRootRigger" }

// Rig は首根元のボーンとコントロールを構築する。
func (r *NeckRootRigger) Rig() error {
	if err := r.rigNeckRoot(); err != nil {
		return err
	}
	if err := r.rigSectionChildren(r, adoptNeckFamily(r.controlBone)); err != nil {
		return err
	}
	return r.queue()
}

// rigNeckRoot はボーンとコントロールの共通部分を構築する。
func (r *riggerCore) rigNeckRoot() error {
	if err := r.newBone(); err != nil {
		return err
	}
	control, err := r.ctx.NewEditBone(fmt.Sprintf("%s_%s", r.bone.Name, suffixControl))
	if err != nil {
		return err
	}
	control.Head = r.bone.Head
	control.Tail = r.bone.Head.Added(mmath.UnitY())
	control.Parent = r.parent.EditBone()
	control.UseConnect = false
	r.controlBone = control
	return nil
}

func (r *riggerCore) queueNeckRoot() error {
	shapeName := neckControlShapeName(r.armatureName(), r.node.Properties.Name)
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
	r.queueAddBoneToGroup(model.ExtremityHead, r.bone.Name)
	r.queueAddBoneToGroup(model.ExtremityHead, r.controlBone.Name)
	r.queueAddBoneToLayers([]int{LayerGlobal, LayerHead}, r.bone.Name)
	r.queueAddBoneToLayers([]int{LayerGlobal, LayerHead, LayerMayors, LayerControl}, r.controlBone.Name)
	r.queueLinkMeshToCollection(r.meshCollectionName(), "")
	r.queueUnlinkMeshFromCollection("", "")
	return nil
}

func (r *NeckRootRigger) queue() error {
	return r.queueNeckRoot()
}

// NeckSectionRigger は首の節のリガー。根元のコントロールに全量で追従する。
type NeckSectionRigger struct {
	riggerCore
	neckChainRig
}

// NewNeckSectionRigger は首節リガーを生成する。
func NewNeckSectionRigger(node *model.BoxmanNode, parent IRigger, factory *RiggerFactory) *NeckSectionRigger {
	return &NeckSectionRigger{riggerCore: newRiggerCore(node, parent, factory)}
}

// RiggerName はリガー種別名を返す。
func (r *NeckSectionRigger) RiggerName() string { return "NeckSectionRigger" }

// Rig は首の節ボーンを構築する。
func (r *NeckSectionRigger) Rig() error {
	if err := r.newBone(); err != nil {
		return err
	}
	if err := r.rigSectionChildren(r, adoptNeckFamily(r.sharedControl)); err != nil {
		return err
	}
	r.queue()
	return nil
}

func (r *NeckSectionRigger) queue() {
	r.queueParentMeshToBone()
	r.queueAttachDefaultShape(r.bone.Name)
	r.queueTorsoRotationConstraint(r.sharedControl, 1.0)
	r.queueAddBoneToGroup(model.ExtremityHead, r.bone.Name)
	r.queueAddBoneToLayers([]int{LayerGlobal, LayerHead}, r.bone.Name)
	r.queueLinkMeshToCollection(r.meshCollectionName(), "")
	r.queueUnlinkMeshFromCollection("", "")
}

// HeadRigger は頭のリガー。首根元と同じコントロールを持つが、
// 尾は常に重心へ向け、子はすべて切り離したままぶら下げる。
type HeadRigger struct {
	riggerCore
}

// NewHeadRigger は頭リガーを生成する。
func NewHeadRigger(node *model.BoxmanNode, parent IRigger, factory *RiggerFactory) *HeadRigger {
	return &HeadRigger{riggerCore: newRiggerCore(node, parent, factory)}
}

// RiggerName はリガー種別名を返す。
func (r *HeadRigger) RiggerName() string { return "HeadRigger" }

// Rig は頭のボーンとコントロールを構築する。
func (r *HeadRigger) Rig() error {
	if err := r.rigNeckRoot(); err != nil {
		return err
	}
	mean, err := r.node.MeanPoint()
	if err != nil {
		return err
	}
	r.bone.Tail = mean

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
	return r.queueNeckRoot()
}
