// 指示: PakkanenAnastacia
package minteractor

import (
	"fmt"

	"github.com/PakkanenAnastacia/MrBoxman/pkg/domain/mmath"
	"github.com/PakkanenAnastacia/MrBoxman/pkg/domain/model"
	"github.com/PakkanenAnastacia/MrBoxman/pkg/usecase/port/mscene"
)

// ShoulderRigger は肩のリガー。隠しボーンの回転を外側に置いたコントロールへ委ねる。
// 上腕の子がちょうど一つ必要。
type ShoulderRigger struct {
	riggerCore
}

// NewShoulderRigger は肩リガーを生成する。
func NewShoulderRigger(node *model.BoxmanNode, parent IRigger, factory *RiggerFactory) *ShoulderRigger {
	return &ShoulderRigger{riggerCore: newRiggerCore(node, parent, factory)}
}

// RiggerName はリガー種別名を返す。
func (r *ShoulderRigger) RiggerName() string { return "ShoulderRigger" }

// Rig は肩ボーンと回転コントロールを構築する。
func (r *ShoulderRigger) Rig() error {
	mandatory, others, err := r.verifySingleChild(r.RiggerName(), model.JointTypeArmHumerus)
	if err != nil {
		return err
	}

	if err := r.newBone(); err != nil {
		return err
	}

	humerusRigger, err := r.factory.Create(mandatory, r)
	if err != nil {
		return err
	}
	if err := humerusRigger.Rig(); err != nil {
		return err
	}
	humerusBone := humerusRigger.EditBone()
	humerusBone.Parent = r.bone
	humerusBone.UseConnect = true
	r.bone.Tail = mandatory.Location

	for _, childNode := range others {
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

	// コントロールはボーン全体を代表サイズ分 X 方向へ平行移動した位置に置く
	typical := r.node.TypicalSize()
	control, err := r.ctx.NewEditBone(fmt.Sprintf("%s_%s", r.bone.Name, suffixControl))
	if err != nil {
		return err
	}
	control.Head = r.bone.Head.Added(mmath.UnitX().MuledScalar(typical))
	control.Tail = r.bone.Tail.Added(mmath.UnitX().MuledScalar(typical))
	control.Parent = r.parent.EditBone()
	control.UseConnect = false
	r.controlBone = control

	r.queue()
	return nil
}

func (r *ShoulderRigger) queue() {
	r.queueParentMeshToBone()
	r.queueShoulderConstraint()
	r.queueHideBone(r.bone.Name)
	r.queueAddBoneToGroup(model.ExtremityArm, r.controlBone.Name)
	r.queueAddBoneToLayers([]int{LayerGlobal, LayerArm}, r.bone.Name)
	r.queueAddBoneToLayers([]int{LayerGlobal, LayerMayors, LayerControl, LayerArm}, r.controlBone.Name)
	r.queueLinkMeshToCollection(r.meshCollectionName(), "")
	r.queueUnlinkMeshFromCollection("", "")
}

// queueShoulderConstraint はボーンをコントロールへ追従させる回転コピーを積む。
// 合わせてコントロールへ既定シェイプを割り当てる。
func (r *ShoulderRigger) queueShoulderConstraint() {
	r.queueCopyRotation(r.bone.Name, r.controlBone.Name, mscene.CopyRotationConstraint{
		MixMode:     mscene.MixModeReplace,
		OwnerSpace:  mscene.ConstraintSpaceWorld,
		TargetSpace: mscene.ConstraintSpaceWorld,
		Influence:   1.0,
	})
	r.queueAttachDefaultShape(r.controlBone.Name)
}

// HumerusRigger は上腕のリガー。橈骨の子をちょうど一つ要求し、
// IK の鎖が二節以上になることを保証する橋渡し役。
type HumerusRigger struct {
	riggerCore
}

// NewHumerusRigger は上腕リガーを生成する。
func NewHumerusRigger(node *model.BoxmanNode, parent IRigger, factory *RiggerFactory) *HumerusRigger {
	return &HumerusRigger{riggerCore: newRiggerCore(node, parent, factory)}
}

// RiggerName はリガー種別名を返す。
func (r *HumerusRigger) RiggerName() string { return "HumerusRigger" }

// Rig は上腕ボーンを構築し、橈骨を接続する。
func (r *HumerusRigger) Rig() error {
	mandatory, others, err := r.verifySingleChild(r.RiggerName(), model.JointTypeArmRadius)
	if err != nil {
		return err
	}

	if err := r.newBone(); err != nil {
		return err
	}

	radiusRigger, err := r.factory.Create(mandatory, r)
	if err != nil {
		return err
	}
	if err := radiusRigger.Rig(); err != nil {
		return err
	}
	radiusBone := radiusRigger.EditBone()
	radiusBone.Parent = r.bone
	radiusBone.UseConnect = true
	r.bone.Tail = mandatory.Location

	for _, childNode := range others {
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
	r.queueAddBoneToGroup(model.ExtremityArm, r.bone.Name)
	r.queueAddBoneToLayers([]int{LayerGlobal, LayerMayors, LayerArm}, r.bone.Name)
	r.queueLinkMeshToCollection(r.meshCollectionName(), "")
	r.queueUnlinkMeshFromCollection("", "")
	return nil
}

// ElbowRigger は肘のリガー。隠しボーンとポールターゲットコントロールを置く袋小路。
type ElbowRigger struct {
	riggerCore
	poleTargetRig
}

// NewElbowRigger は肘リガーを生成する。
func NewElbowRigger(node *model.BoxmanNode, parent IRigger, factory *RiggerFactory) *ElbowRigger {
	r := &ElbowRigger{riggerCore: newRiggerCore(node, parent, factory)}
	r.offsetSign = -1
	return r
}

// RiggerName はリガー種別名を返す。
func (r *ElbowRigger) RiggerName() string { return "ElbowRigger" }

// Rig は肘ボーンとポールターゲットを構築する。子ノードは無視される。
func (r *ElbowRigger) Rig() error {
	if err := r.newBone(); err != nil {
		return err
	}
	mean, err := r.node.MeanPoint()
	if err != nil {
		return err
	}
	r.bone.Tail = mean

	if err := r.createPoleControlBone(&r.riggerCore); err != nil {
		return err
	}
	r.controlBone.Parent = r.localControlRoot.EditBone()
	r.controlBone.UseConnect = false

	r.queueHideBone(r.bone.Name)
	r.queueAttachPoleShape(&r.riggerCore)
	r.queueAddBoneToGroup(model.ExtremityArm, r.bone.Name)
	r.queueAddBoneToGroup(model.ExtremityArm, r.controlBone.Name)
	r.queueAddBoneToLayers([]int{LayerGlobal, LayerArm}, r.bone.Name)
	r.queueAddBoneToLayers([]int{LayerGlobal, LayerControl, LayerMayors, LayerArm}, r.controlBone.Name)
	r.queueLinkMeshToCollection(r.meshCollectionName(), "")
	r.queueUnlinkMeshFromCollection("", "")
	return nil
}

// RadiusRigger は橈骨のリガー。手首の子をちょうど一つ要求し、
// 肘の子が見つかればポールターゲットとして引き渡す。
type RadiusRigger struct {
	riggerCore
}

// NewRadiusRigger は橈骨リガーを生成する。
func NewRadiusRigger(node *model.BoxmanNode, parent IRigger, factory *RiggerFactory) *RadiusRigger {
	return &RadiusRigger{riggerCore: newRiggerCore(node, parent, factory)}
}

// RiggerName はリガー種別名を返す。
func (r *RadiusRigger) RiggerName() string { return "RadiusRigger" }

// Rig は橈骨ボーンを構築する。ポール検出のため必須でない子を先に処理する。
func (r *RadiusRigger) Rig() error {
	mandatory, others, err := r.verifySingleChild(r.RiggerName(), model.JointTypeHandRoot)
	if err != nil {
		return err
	}

	if err := r.newBone(); err != nil {
		return err
	}

	var poleTargetBone *EditBone
	var poleOffsetSign float64
	for _, childNode := range others {
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
		if elbow, ok := childRigger.(*ElbowRigger); ok {
			poleTargetBone = elbow.ControlBone()
			poleOffsetSign = elbow.offsetSign
		}
	}

	handRigger, err := r.factory.Create(mandatory, r)
	if err != nil {
		return err
	}
	if ikRigger, ok := handRigger.(ikTargetRigger); ok && poleTargetBone != nil {
		ikRigger.adoptPoleTarget(poleTargetBone, poleOffsetSign)
	}
	if err := handRigger.Rig(); err != nil {
		return err
	}
	handBone := handRigger.EditBone()
	handBone.Parent = r.bone
	handBone.UseConnect = true
	r.bone.Tail = mandatory.Location

	r.queueParentMeshToBone()
	r.queueAddBoneToGroup(model.ExtremityArm, r.bone.Name)
	r.queueAddBoneToLayers([]int{LayerGlobal, LayerArm}, r.bone.Name)
	r.queueLinkMeshToCollection(r.meshCollectionName(), "")
	r.queueUnlinkMeshFromCollection("", "")
	return nil
}
