// 指示: PakkanenAnastacia
package minteractor

import (
	"fmt"

	"github.com/PakkanenAnastacia/MrBoxman/pkg/domain/model"
	"github.com/PakkanenAnastacia/MrBoxman/pkg/usecase/port/mscene"
)

// HandRootRigger は手首のリガー。腕の IK 鎖の終端となり、
// 向きに応じたポール角で肘のポールターゲットを参照する。
type HandRootRigger struct {
	riggerCore
	ikControlRig
}

// NewHandRootRigger は手首リガーを生成する。
func NewHandRootRigger(node *model.BoxmanNode, parent IRigger, factory *RiggerFactory) *HandRootRigger {
	r := &HandRootRigger{
		riggerCore:   newRiggerCore(node, parent, factory),
		ikControlRig: newIkControlRig(),
	}
	r.angleOrient = true
	return r
}

// RiggerName はリガー種別名を返す。
func (r *HandRootRigger) RiggerName() string { return "HandRootRigger" }

// Rig は手首ボーンと IK コントロールを構築する。
func (r *HandRootRigger) Rig() error {
	if err := r.newBone(); err != nil {
		return err
	}
	if err := r.rigDefaultChildren(r); err != nil {
		return err
	}
	if err := r.createIkControlBone(&r.riggerCore, false); err != nil {
		return err
	}
	return r.queue()
}

func (r *HandRootRigger) queue() error {
	r.queueParentMeshToBone()
	r.queueAttachDefaultShape(r.bone.Name)
	if err := r.queueIkConstraint(&r.riggerCore, 180.0, 2); err != nil {
		return err
	}
	r.queueAddRotationConstraint(&r.riggerCore)
	r.queueAddBoneToGroup(model.ExtremityHand, r.bone.Name)
	r.queueAddBoneToGroup(model.ExtremityArm, r.controlBone.Name)
	r.queueAddBoneToLayers([]int{LayerGlobal, LayerHand, LayerArm}, r.bone.Name)
	r.queueAddBoneToLayers([]int{LayerGlobal, LayerControl, LayerMayors, LayerArm}, r.controlBone.Name)
	r.queueLinkMeshToCollection(r.meshCollectionName(), "")
	r.queueUnlinkMeshFromCollection("", "")
	return nil
}

// fingerFamilyRigger は指と足指の各リガーが満たす。根元のコントロールを
// 節へ伝搬させ、同族の一本鎖を遡って接続し直す判定に使う。
type fingerFamilyRigger interface {
	IRigger
	adoptFingerControl(control *EditBone)
}

// fingerChainRig は指の節が共有する回転元コントロールを保持する。
type fingerChainRig struct {
	sharedControl *EditBone
}

func (f *fingerChainRig) adoptFingerControl(control *EditBone) {
	f.sharedControl = control
}

// adoptFingerFamily は子が指族ならコントロールを渡して真を返す。
func adoptFingerFamily(control *EditBone) func(IRigger) bool {
	return func(child IRigger) bool {
		finger, ok := child.(fingerFamilyRigger)
		if !ok {
			return false
		}
		finger.adoptFingerControl(control)
		return true
	}
}

// queueFingerRotationConstraint は指ボーンを共有コントロールへ追加回転で
// 追従させる。コントロールが無い節は素通しになる。
func (c *riggerCore) queueFingerRotationConstraint(control *EditBone) {
	if control == nil {
		return
	}
	c.queueCopyRotation(c.bone.Name, control.Name, mscene.CopyRotationConstraint{
		MixMode:     mscene.MixModeAdd,
		OwnerSpace:  mscene.ConstraintSpaceLocal,
		TargetSpace: mscene.ConstraintSpaceLocal,
		Influence:   1.0,
	})
}

// rigFingerRoot は指の根元共通の構築を行う。根元は自前のコントロールを
// 持ち、それを節へ伝搬させる。コントロールの尾はボーンの尾に揃える。
func rigFingerRoot(c *riggerCore, self IRigger) error {
	if err := c.newBone(); err != nil {
		return err
	}

	control, err := c.ctx.NewEditBone(fmt.Sprintf("%s_%s", c.bone.Name, suffixControl))
	if err != nil {
		return err
	}
	control.Head = c.bone.Head
	control.Parent = c.parent.EditBone()
	control.UseConnect = false
	c.controlBone = control

	if err := c.rigSectionChildren(self, adoptFingerFamily(control)); err != nil {
		return err
	}
	control.Tail = c.bone.Tail
	return nil
}

// rigFingerSection は指の節共通の構築を行う。
func rigFingerSection(c *riggerCore, f *fingerChainRig, self IRigger) error {
	if err := c.newBone(); err != nil {
		return err
	}
	return c.rigSectionChildren(self, adoptFingerFamily(f.sharedControl))
}

// FingerRootRigger は指の根元のリガー。
type FingerRootRigger struct {
	riggerCore
}

// NewFingerRootRigger は指根元リガーを生成する。
func NewFingerRootRigger(node *model.BoxmanNode, parent IRigger, factory *RiggerFactory) *FingerRootRigger {
	return &FingerRootRigger{riggerCore: newRiggerCore(node, parent, factory)}
}

// RiggerName はリガー種別名を返す。
func (r *FingerRootRigger) RiggerName() string { return "FingerRootRigger" }

// Rig は指の根元ボーンとコントロールを構築する。
func (r *FingerRootRigger) Rig() error {
	if err := rigFingerRoot(&r.riggerCore, r); err != nil {
		return err
	}
	r.queue()
	return nil
}

func (r *FingerRootRigger) queue() {
	r.queueParentMeshToBone()
	r.queueAttachDefaultShape(r.controlBone.Name)
	r.queueFingerRotationConstraint(r.controlBone)
	r.queueAddBoneToGroup(model.ExtremityHand, r.bone.Name)
	r.queueAddBoneToGroup(model.ExtremityHand, r.controlBone.Name)
	r.queueAddBoneToLayers([]int{LayerGlobal, LayerArm, LayerHand, LayerMinors}, r.bone.Name)
	r.queueAddBoneToLayers([]int{LayerGlobal, LayerArm, LayerHand, LayerMinors, LayerControl}, r.controlBone.Name)
	r.queueLinkMeshToCollection(r.meshCollectionName(), "")
	r.queueUnlinkMeshFromCollection("", "")
}

// FingerSectionRigger は指の節のリガー。根元のコントロールに追加回転で追従する。
type FingerSectionRigger struct {
	riggerCore
	fingerChainRig
}

// NewFingerSectionRigger は指節リガーを生成する。
func NewFingerSectionRigger(node *model.BoxmanNode, parent IRigger, factory *RiggerFactory) *FingerSectionRigger {
	return &FingerSectionRigger{riggerCore: newRiggerCore(node, parent, factory)}
}

// RiggerName はリガー種別名を返す。
func (r *FingerSectionRigger) RiggerName() string { return "FingerSectionRigger" }

// Rig は指の節ボーンを構築する。
func (r *FingerSectionRigger) Rig() error {
	if err := rigFingerSection(&r.riggerCore, &r.fingerChainRig, r); err != nil {
		return err
	}
	r.queue()
	return nil
}

func (r *FingerSectionRigger) queue() {
	r.queueParentMeshToBone()
	r.queueFingerRotationConstraint(r.sharedControl)
	r.queueAddBoneToGroup(model.ExtremityHand, r.bone.Name)
	r.queueAddBoneToLayers([]int{LayerGlobal, LayerArm, LayerHand, LayerMinors}, r.bone.Name)
	r.queueLinkMeshToCollection(r.meshCollectionName(), "")
	r.queueUnlinkMeshFromCollection("", "")
}

// ToeRootRigger は足指の根元のリガー。構築は指根元と同じで配色と層だけ異なる。
type ToeRootRigger struct {
	riggerCore
}

// NewToeRootRigger は足指根元リガーを生成する。
func NewToeRootRigger(node *model.BoxmanNode, parent IRigger, factory *RiggerFactory) *ToeRootRigger {
	return &ToeRootRigger{riggerCore: newRiggerCore(node, parent, factory)}
}

// RiggerName はリガー種別名を返す。
func (r *ToeRootRigger) RiggerName() string { return "ToeRootRigger" }

// Rig は足指の根元ボーンとコントロールを構築する。
func (r *ToeRootRigger) Rig() error {
	if err := rigFingerRoot(&r.riggerCore, r); err != nil {
		return err
	}
	r.queue()
	return nil
}

func (r *ToeRootRigger) queue() {
	r.queueParentMeshToBone()
	r.queueAttachDefaultShape(r.controlBone.Name)
	r.queueFingerRotationConstraint(r.controlBone)
	r.queueAddBoneToGroup(model.ExtremityFeet, r.bone.Name)
	r.queueAddBoneToGroup(model.ExtremityFeet, r.controlBone.Name)
	r.queueAddBoneToLayers([]int{LayerGlobal, LayerLeg, LayerFeet, LayerMinors}, r.bone.Name)
	r.queueAddBoneToLayers([]int{LayerGlobal, LayerLeg, LayerFeet, LayerMinors, LayerControl}, r.controlBone.Name)
	r.queueLinkMeshToCollection(r.meshCollectionName(), "")
	r.queueUnlinkMeshFromCollection("", "")
}

// ToeSectionRigger は足指の節のリガー。
type ToeSectionRigger struct {
	riggerCore
	fingerChainRig
}

// NewToeSectionRigger は足指節リガーを生成する。
func NewToeSectionRigger(node *model.BoxmanNode, parent IRigger, factory *RiggerFactory) *ToeSectionRigger {
	return &ToeSectionRigger{riggerCore: newRiggerCore(node, parent, factory)}
}

// RiggerName はリガー種別名を返す。
func (r *ToeSectionRigger) RiggerName() string { return "ToeSectionRigger" }

// Rig は足指の節ボーンを構築する。
func (r *ToeSectionRigger) Rig() error {
	if err := rigFingerSection(&r.riggerCore, &r.fingerChainRig, r); err != nil {
		return err
	}
	r.queue()
	return nil
}

func (r *ToeSectionRigger) queue() {
	r.queueParentMeshToBone()
	r.queueFingerRotationConstraint(r.sharedControl)
	r.queueAddBoneToGroup(model.ExtremityFeet, r.bone.Name)
	r.queueAddBoneToLayers([]int{LayerGlobal, LayerLeg, LayerFeet, LayerMinors}, r.bone.Name)
	r.queueLinkMeshToCollection(r.meshCollectionName(), "")
	r.queueUnlinkMeshFromCollection("", "")
}
