// 指示: PakkanenAnastacia
package minteractor

import (
	"github.com/PakkanenAnastacia/MrBoxman/pkg/domain/model"
)

// RiggerFactory は関節種別からリガーを組み立てる。親子の適合も検査する。
type RiggerFactory struct {
	ctx *SynthesisContext
}

// NewRiggerFactory はリガーファクトリを生成する。
func NewRiggerFactory(ctx *SynthesisContext) *RiggerFactory {
	return &RiggerFactory{ctx: ctx}
}

// Context は共有する合成コンテキストを返す。
func (f *RiggerFactory) Context() *SynthesisContext { return f.ctx }

var rootJointTypes = []model.JointType{model.JointTypeObjectRoot}

// ikDirectJointTypes は IK 終端となる種別。親からの直接接続を原則禁じる。
var ikDirectJointTypes = []model.JointType{
	model.JointTypeFootRoot,
	model.JointTypeHandRoot,
	model.JointTypeChainSegment,
}

// forbiddenChildren は親の関節種別ごとの、子として許さない種別の一覧。
var forbiddenChildren = map[model.JointType][]model.JointType{
	model.JointTypeObjectRoot:    joinJointTypes(rootJointTypes, ikDirectJointTypes),
	model.JointTypeDefault:       joinJointTypes(rootJointTypes, ikDirectJointTypes),
	model.JointTypeAccessory:     {},
	model.JointTypeSpineRoot:     joinJointTypes(rootJointTypes, ikDirectJointTypes),
	model.JointTypeSpineSection:  joinJointTypes(rootJointTypes, ikDirectJointTypes),
	model.JointTypeNeckRoot:      joinJointTypes(rootJointTypes, ikDirectJointTypes),
	model.JointTypeNeckSection:   joinJointTypes(rootJointTypes, ikDirectJointTypes),
	model.JointTypeHead:          joinJointTypes(rootJointTypes, ikDirectJointTypes),
	model.JointTypeShoulderRoot:  joinJointTypes(rootJointTypes, ikDirectJointTypes),
	model.JointTypeArmHumerus:    joinJointTypes(rootJointTypes, ikDirectJointTypes, []model.JointType{model.JointTypeLegShin}),
	model.JointTypeArmRadius:     joinJointTypes(rootJointTypes, []model.JointType{model.JointTypeFootRoot, model.JointTypeChainSegment}),
	model.JointTypeArmElbow:      joinJointTypes(rootJointTypes, ikDirectJointTypes),
	model.JointTypeHandRoot:      joinJointTypes(rootJointTypes, ikDirectJointTypes),
	model.JointTypeFingerRoot:    joinJointTypes(rootJointTypes, ikDirectJointTypes),
	model.JointTypeFingerSection: joinJointTypes(rootJointTypes, ikDirectJointTypes),
	model.JointTypeLegThigh:      joinJointTypes(rootJointTypes, ikDirectJointTypes, []model.JointType{model.JointTypeArmRadius}),
	model.JointTypeLegShin:       joinJointTypes(rootJointTypes, []model.JointType{model.JointTypeHandRoot, model.JointTypeChainSegment}),
	model.JointTypeLegKnee:       joinJointTypes(rootJointTypes, ikDirectJointTypes),
	model.JointTypeFootRoot:      joinJointTypes(rootJointTypes, ikDirectJointTypes),
	model.JointTypeToeRoot:       joinJointTypes(rootJointTypes, ikDirectJointTypes),
	model.JointTypeToeSection:    joinJointTypes(rootJointTypes, ikDirectJointTypes),
	model.JointTypeChainRoot:     joinJointTypes(rootJointTypes, []model.JointType{model.JointTypeHandRoot, model.JointTypeFootRoot}),
	model.JointTypeChainSegment:  joinJointTypes(rootJointTypes, []model.JointType{model.JointTypeHandRoot, model.JointTypeFootRoot}),
}

func joinJointTypes(lists ...[]model.JointType) []model.JointType {
	var ret []model.JointType
	for _, list := range lists {
		ret = append(ret, list...)
	}
	return ret
}

// verifyChain は親の関節種別の下に子の関節種別を繋げられるかを検査する。
func verifyChain(parent, child model.JointType) error {
	forbidden, ok := forbiddenChildren[parent]
	if !ok {
		return &model.UnsupportedJointTypeError{JointType: parent}
	}
	for _, jointType := range forbidden {
		if jointType == child {
			return &model.IncompatibleChainError{Parent: parent, Child: child}
		}
	}
	return nil
}

// Create は子ノードの関節種別に応じたリガーを生成する。
// 親子の適合検査に通らない組み合わせはエラーになる。
func (f *RiggerFactory) Create(node *model.BoxmanNode, parent IRigger) (IRigger, error) {
	jointType := node.Properties.JointType
	if !jointType.Valid() {
		return nil, &model.UnsupportedJointTypeError{JointType: jointType}
	}
	if err := verifyChain(parent.Node().Properties.JointType, jointType); err != nil {
		return nil, err
	}

	var rigger IRigger
	switch jointType {
	case model.JointTypeDefault:
		rigger = NewDefaultRigger(node, parent, f)
	case model.JointTypeAccessory:
		rigger = NewAccessoryRigger(node, parent, f)
	case model.JointTypeSpineRoot:
		rigger = NewSpineRootRigger(node, parent, f)
	case model.JointTypeSpineSection:
		rigger = NewSpineSectionRigger(node, parent, f)
	case model.JointTypeNeckRoot:
		rigger = NewNeckRootRigger(node, parent, f)
	case model.JointTypeNeckSection:
		rigger = NewNeckSectionRigger(node, parent, f)
	case model.JointTypeHead:
		rigger = NewHeadRigger(node, parent, f)
	case model.JointTypeShoulderRoot:
		rigger = NewShoulderRigger(node, parent, f)
	case model.JointTypeArmHumerus:
		rigger = NewHumerusRigger(node, parent, f)
	case model.JointTypeArmRadius:
		rigger = NewRadiusRigger(node, parent, f)
	case model.JointTypeArmElbow:
		rigger = NewElbowRigger(node, parent, f)
	case model.JointTypeHandRoot:
		rigger = NewHandRootRigger(node, parent, f)
	case model.JointTypeFingerRoot:
		rigger = NewFingerRootRigger(node, parent, f)
	case model.JointTypeFingerSection:
		rigger = NewFingerSectionRigger(node, parent, f)
	case model.JointTypeLegThigh:
		rigger = NewThighRigger(node, parent, f)
	case model.JointTypeLegShin:
		rigger = NewShinRigger(node, parent, f)
	case model.JointTypeLegKnee:
		rigger = NewKneeRigger(node, parent, f)
	case model.JointTypeFootRoot:
		rigger = NewFeetRigger(node, parent, f)
	case model.JointTypeToeRoot:
		rigger = NewToeRootRigger(node, parent, f)
	case model.JointTypeToeSection:
		rigger = NewToeSectionRigger(node, parent, f)
	case model.JointTypeChainRoot:
		rigger = NewChainRootRigger(node, parent, f)
	case model.JointTypeChainSegment:
		rigger = NewChainSegmentRigger(node, parent, f)
	default:
		return nil, &model.UnsupportedJointTypeError{JointType: jointType}
	}

	f.ctx.countRigger()
	return rigger, nil
}
