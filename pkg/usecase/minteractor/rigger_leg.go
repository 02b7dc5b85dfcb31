// 指示: PakkanenAnastacia
package minteractor

import (
	"github.com/PakkanenAnastacia/MrBoxman/pkg/domain/model"
	"github.com/PakkanenAnastacia/MrBoxman/pkg/usecase/port/mscene"
)

// ThighRigger は大腿のリガー。脛の子をちょうど一つ要求し、
// IK の鎖が二節以上になることを保証する橋渡し役。
type ThighRigger struct {
	riggerCore
}

// NewThighRigger は大腿リガーを生成する。
func NewThighRigger(node *model.BoxmanNode, parent IRigger, factory *RiggerFactory) *ThighRigger {
	return &ThighRigger{riggerCore: newRiggerCore(node, parent, factory)}
}

// RiggerName はリガー種別名を返す。
func (r *ThighRigger) RiggerName() string { return "ThighRigger" }

// Rig は大腿ボーンを構築し、脛を接続する。
func (r *ThighRigger) Rig() error {
	mandatory, others, err := r.verifySingleChild(r.RiggerName(), model.JointTypeLegShin)
	if err != nil {
		return err
	}

	if err := r.newBone(); err != nil {
		return err
	}

	shinRigger, err := r.factory.Create(mandatory, r)
	if err != nil {
		return err
	}
	if err := shinRigger.Rig(); err != nil {
		return err
	}
	shinBone := shinRigger.EditBone()
	shinBone.Parent = r.bone
	shinBone.UseConnect = true
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
	r.queueAddBoneToGroup(model.ExtremityLeg, r.bone.Name)
	r.queueAddBoneToLayers([]int{LayerGlobal, LayerMayors, LayerLeg}, r.bone.Name)
	r.queueLinkMeshToCollection(r.meshCollectionName(), "")
	r.queueUnlinkMeshFromCollection("", "")
	return nil
}

// KneeRigger は膝のリガー。隠しボーンとポールターゲットコントロールを置く袋小路。
// 肘と違いポールは前方へ張り出す。
type KneeRigger struct {
	riggerCore
	poleTargetRig
}

// NewKneeRigger は膝リガーを生成する。
func NewKneeRigger(node *model.BoxmanNode, parent IRigger, factory *RiggerFactory) *KneeRigger {
	r := &KneeRigger{riggerCore: newRiggerCore(node, parent, factory)}
	r.offsetSign = 1
	return r
}

// RiggerName はリガー種別名を返す。
func (r *KneeRigger) RiggerName() string { return "KneeRigger" }

// Rig は膝ボーンとポールターゲットを構築する。子ノードは無視される。
func (r *KneeRigger) Rig() error {
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
	r.controlBone.Parent = r.absoluteRoot.EditBone()
	r.controlBone.UseConnect = false

	r.queueHideBone(r.bone.Name)
	r.queueAttachPoleShape(&r.riggerCore)
	r.queueAddBoneToGroup(model.ExtremityLeg, r.bone.Name)
	r.queueAddBoneToGroup(model.ExtremityLeg, r.controlBone.Name)
	r.queueAddBoneToLayers([]int{LayerGlobal, LayerLeg}, r.bone.Name)
	r.queueAddBoneToLayers([]int{LayerGlobal, LayerMayors, LayerControl, LayerLeg}, r.controlBone.Name)
	r.queueLinkMeshToCollection(r.meshCollectionName(), "")
	r.queueUnlinkMeshFromCollection("", "")
	return nil
}

// ShinRigger は脛のリガー。足首の子をちょうど一つ要求し、
// 膝の子が見つかればポールターゲットとして引き渡す。
// 足首ボーンは接続せず大元のコントロールへぶら下げる。
type ShinRigger struct {
	riggerCore
}

// NewShinRigger は脛リガーを生成する。
func NewShinRigger(node *model.BoxmanNode, parent IRigger, factory *RiggerFactory) *ShinRigger {
	return &ShinRigger{riggerCore: newRiggerCore(node, parent, factory)}
}

// RiggerName はリガー種別名を返す。
func (r *ShinRigger) RiggerName() string { return "ShinRigger" }

// Rig は脛ボーンを構築する。ポール検出のため必須でない子を先に処理する。
func (r *ShinRigger) Rig() error {
	mandatory, others, err := r.verifySingleChild(r.RiggerName(), model.JointTypeFootRoot)
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
		if knee, ok := childRigger.(*KneeRigger); ok {
			poleTargetBone = knee.ControlBone()
			poleOffsetSign = knee.offsetSign
		}
	}

	footRigger, err := r.factory.Create(mandatory, r)
	if err != nil {
		return err
	}
	if ikRigger, ok := footRigger.(ikTargetRigger); ok && poleTargetBone != nil {
		ikRigger.adoptPoleTarget(poleTargetBone, poleOffsetSign)
	}
	if err := footRigger.Rig(); err != nil {
		return err
	}
	// 足首は脛から切り離し、IK で浮かせたまま大元に追従させる
	footBone := footRigger.EditBone()
	footBone.Parent = r.absoluteRoot.EditBone()
	footBone.UseConnect = false
	r.bone.Tail = mandatory.Location

	r.queueParentMeshToBone()
	r.queueAddBoneToGroup(model.ExtremityLeg, r.bone.Name)
	r.queueAddBoneToLayers([]int{LayerGlobal, LayerLeg}, r.bone.Name)
	r.queueLinkMeshToCollection(r.meshCollectionName(), "")
	r.queueUnlinkMeshFromCollection("", "")
	return nil
}

// FeetRigger は足首のリガー。脚の IK 鎖の終端となり、
// 踵位置の IK コントロールと脛への位置追従を併せ持つ。
type FeetRigger struct {
	riggerCore
	ikControlRig
}

// NewFeetRigger は足首リガーを生成する。
func NewFeetRigger(node *model.BoxmanNode, parent IRigger, factory *RiggerFactory) *FeetRigger {
	return &FeetRigger{
		riggerCore:   newRiggerCore(node, parent, factory),
		ikControlRig: newIkControlRig(),
	}
}

// RiggerName はリガー種別名を返す。
func (r *FeetRigger) RiggerName() string { return "FeetRigger" }

// Rig は足首ボーンと IK コントロールを構築する。
func (r *FeetRigger) Rig() error {
	if err := r.newBone(); err != nil {
		return err
	}
	if err := r.rigDefaultChildren(r); err != nil {
		return err
	}
	if err := r.createIkControlBone(&r.riggerCore, true); err != nil {
		return err
	}
	return r.queue()
}

func (r *FeetRigger) queue() error {
	r.queueParentMeshToBone()
	r.queueAttachDefaultShape(r.bone.Name)
	if err := r.queueIkConstraint(&r.riggerCore, 0.0, 2); err != nil {
		return err
	}
	// 足首の頭を脛の尾へ吸着させ、IK の解と足のボーンを繋ぎ止める
	r.ctx.controlCreation = append(r.ctx.controlCreation, &AddCopyLocationCommand{
		ArmatureName: r.armatureName(),
		BoneName:     r.bone.Name,
		Constraint: mscene.CopyLocationConstraint{
			TargetArmature: r.armatureName(),
			TargetBone:     r.parent.EditBone().Name,
			HeadTail:       1.0,
		},
	})
	r.queueAddRotationConstraint(&r.riggerCore)
	r.queueAddBoneToGroup(model.ExtremityFeet, r.bone.Name)
	r.queueAddBoneToGroup(model.ExtremityLeg, r.controlBone.Name)
	r.queueAddBoneToLayers([]int{LayerGlobal, LayerLeg, LayerFeet}, r.bone.Name)
	r.queueAddBoneToLayers([]int{LayerGlobal, LayerMayors, LayerLeg, LayerControl}, r.controlBone.Name)
	r.queueLinkMeshToCollection(r.meshCollectionName(), "")
	r.queueUnlinkMeshFromCollection("", "")
	return nil
}
