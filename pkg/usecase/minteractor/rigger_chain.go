// 指示: PakkanenAnastacia
package minteractor

import (
	"github.com/PakkanenAnastacia/MrBoxman/pkg/domain/model"
)

// ChainRootRigger は尾や房の付け根のリガー。節の子をちょうど一つ要求し、
// 末端まで一本鎖で繋がる IK 鎖の起点となる。
type ChainRootRigger struct {
	riggerCore
}

// NewChainRootRigger は鎖根元リガーを生成する。
func NewChainRootRigger(node *model.BoxmanNode, parent IRigger, factory *RiggerFactory) *ChainRootRigger {
	return &ChainRootRigger{riggerCore: newRiggerCore(node, parent, factory)}
}

// RiggerName はリガー種別名を返す。
func (r *ChainRootRigger) RiggerName() string { return "ChainRootRigger" }

// Rig は鎖根元のボーンを構築し、節を接続する。
func (r *ChainRootRigger) Rig() error {
	mandatory, others, err := r.verifySingleChild(r.RiggerName(), model.JointTypeChainSegment)
	if err != nil {
		return err
	}

	if err := r.newBone(); err != nil {
		return err
	}

	segmentRigger, err := r.factory.Create(mandatory, r)
	if err != nil {
		return err
	}
	if segment, ok := segmentRigger.(*ChainSegmentRigger); ok {
		segment.chainLength = 2
	}
	if err := segmentRigger.Rig(); err != nil {
		return err
	}
	segmentBone := segmentRigger.EditBone()
	segmentBone.Parent = r.bone
	segmentBone.UseConnect = true
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
	r.queueAddBoneToGroup(model.ExtremityChain, r.bone.Name)
	r.queueAddBoneToLayers([]int{LayerGlobal, LayerMayors, LayerChain}, r.bone.Name)
	r.queueLinkMeshToCollection(r.meshCollectionName(), "")
	r.queueUnlinkMeshFromCollection("", "")
	return nil
}

// ChainSegmentRigger は鎖の節のリガー。節が続く限り鎖長を伸ばしながら
// 接続し、末端に達したら鎖全体を引く IK コントロールを置く。
type ChainSegmentRigger struct {
	riggerCore
	ikControlRig
	chainLength int
}

// NewChainSegmentRigger は鎖節リガーを生成する。
func NewChainSegmentRigger(node *model.BoxmanNode, parent IRigger, factory *RiggerFactory) *ChainSegmentRigger {
	r := &ChainSegmentRigger{
		riggerCore:   newRiggerCore(node, parent, factory),
		ikControlRig: newIkControlRig(),
		chainLength:  2,
	}
	r.affectParent = false
	r.placeOnHead = false
	return r
}

// RiggerName はリガー種別名を返す。
func (r *ChainSegmentRigger) RiggerName() string { return "ChainSegmentRigger" }

// Rig は鎖の節ボーンを構築する。
func (r *ChainSegmentRigger) Rig() error {
	segments := r.node.ChildrenOfType(model.JointTypeChainSegment)
	if len(segments) > 1 {
		return &model.MissingRequiredChildError{
			Rigger:   r.RiggerName(),
			Required: model.JointTypeChainSegment,
			Count:    len(segments),
		}
	}

	if err := r.newBone(); err != nil {
		return err
	}

	if len(segments) == 1 {
		segmentNode := segments[0]
		segmentRigger, err := r.factory.Create(segmentNode, r)
		if err != nil {
			return err
		}
		if segment, ok := segmentRigger.(*ChainSegmentRigger); ok {
			segment.chainLength = r.chainLength + 1
		}
		if err := segmentRigger.Rig(); err != nil {
			return err
		}
		segmentBone := segmentRigger.EditBone()
		segmentBone.Parent = r.bone
		segmentBone.UseConnect = true
		r.bone.Tail = segmentNode.Location
	} else {
		// 末端の節に鎖全体を引くコントロールを置く
		mean, err := r.node.MeanPoint()
		if err != nil {
			return err
		}
		r.bone.Tail = mean
		if err := r.createIkControlBone(&r.riggerCore, false); err != nil {
			return err
		}
		if err := r.queueIkConstraint(&r.riggerCore, 180.0, r.chainLength); err != nil {
			return err
		}
	}

	for _, childNode := range r.node.Children {
		if childNode.Properties.JointType == model.JointTypeChainSegment {
			continue
		}
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
	r.queueAddBoneToGroup(model.ExtremityChain, r.bone.Name)
	r.queueAddBoneToLayers([]int{LayerGlobal, LayerMinors, LayerChain}, r.bone.Name)
	if r.controlBone != nil {
		r.queueAddBoneToGroup(model.ExtremityChain, r.controlBone.Name)
		r.queueAddBoneToLayers([]int{LayerGlobal, LayerMayors, LayerControl, LayerChain}, r.controlBone.Name)
	}
	r.queueLinkMeshToCollection(r.meshCollectionName(), "")
	r.queueUnlinkMeshFromCollection("", "")
	return nil
}
