// 指示: PakkanenAnastacia
package model

// JointType はボックスマンノードの関節種別を表す。
type JointType string

const (
	// JointTypeObjectRoot はツリー唯一のルート関節。
	JointTypeObjectRoot JointType = "OBJECT_ROOT"
	// JointTypeDefault は汎用関節。
	JointTypeDefault JointType = "DEFAULT"
	// JointTypeAccessory はリグ対象外の装飾関節。
	JointTypeAccessory JointType = "ACCESSORY"

	// JointTypeSpineRoot は腰などの脊椎起点関節。局所ルートを再定義する。
	JointTypeSpineRoot JointType = "SPINE_ROOT"
	// JointTypeSpineSection は脊椎中間関節。
	JointTypeSpineSection JointType = "SPINE_SECTION"

	// JointTypeNeckRoot は首の付け根関節。
	JointTypeNeckRoot JointType = "NECK_ROOT"
	// JointTypeNeckSection は首の中間関節。
	JointTypeNeckSection JointType = "NECK_SECTION"
	// JointTypeHead は頭部関節。
	JointTypeHead JointType = "HEAD"

	// JointTypeShoulderRoot は肩関節。ARM_HUMERUS の子をちょうど1つ必要とする。
	JointTypeShoulderRoot JointType = "SHOULDER_ROOT"
	// JointTypeArmHumerus は上腕関節。
	JointTypeArmHumerus JointType = "ARM_HUMERUS"
	// JointTypeArmRadius は前腕関節。IK 対象の子へポール情報を引き渡す。
	JointTypeArmRadius JointType = "ARM_RADIUS"
	// JointTypeArmElbow は肘のポールターゲット関節。
	JointTypeArmElbow JointType = "ARM_ELBOW"

	// JointTypeHandRoot は手首関節。腕チェーンの IK 終端になる。
	JointTypeHandRoot JointType = "HAND_ROOT"
	// JointTypeFingerRoot は指の第1関節。
	JointTypeFingerRoot JointType = "FINGER_ROOT"
	// JointTypeFingerSection は指の第2・第3関節。
	JointTypeFingerSection JointType = "FINGER_SECTION"

	// JointTypeLegThigh は大腿関節。
	JointTypeLegThigh JointType = "LEG_THIGH"
	// JointTypeLegShin は脛関節。IK 対象の子へポール情報を引き渡す。
	JointTypeLegShin JointType = "LEG_SHIN"
	// JointTypeLegKnee は膝のポールターゲット関節。
	JointTypeLegKnee JointType = "LEG_KNEE"

	// JointTypeFootRoot は足首関節。脚チェーンの IK 終端になる。
	JointTypeFootRoot JointType = "FOOT_ROOT"
	// JointTypeToeRoot は足指の第1関節。
	JointTypeToeRoot JointType = "TOE_ROOT"
	// JointTypeToeSection は足指の中間関節。
	JointTypeToeSection JointType = "TOE_SECTION"

	// JointTypeChainRoot は鎖・触手の起点関節。CHAIN_SEGMENT の子をちょうど1つ必要とする。
	JointTypeChainRoot JointType = "CHAIN_ROOT"
	// JointTypeChainSegment は鎖の中間関節。末端で IK 制御を生成する。
	JointTypeChainSegment JointType = "CHAIN_SEGMENT"
)

// ExtremityType は関節のグルーピング種別を表す。
type ExtremityType string

const (
	// ExtremityDefault は汎用グループ。
	ExtremityDefault ExtremityType = "DEFAULT"
	// ExtremitySpine は脊椎グループ。
	ExtremitySpine ExtremityType = "SPINE"
	// ExtremityHead は頭部グループ。
	ExtremityHead ExtremityType = "HEAD"
	// ExtremityHand は手グループ。
	ExtremityHand ExtremityType = "HAND"
	// ExtremityArm は腕グループ。
	ExtremityArm ExtremityType = "ARM"
	// ExtremityLeg は脚グループ。
	ExtremityLeg ExtremityType = "LEG"
	// ExtremityFeet は足グループ。
	ExtremityFeet ExtremityType = "FEET"
	// ExtremityChain は鎖グループ。
	ExtremityChain ExtremityType = "CHAIN"
)

var jointTypeExtremities = map[JointType]ExtremityType{
	JointTypeObjectRoot:    ExtremityDefault,
	JointTypeDefault:       ExtremityDefault,
	JointTypeAccessory:     ExtremityDefault,
	JointTypeSpineRoot:     ExtremitySpine,
	JointTypeSpineSection:  ExtremitySpine,
	JointTypeNeckRoot:      ExtremityHead,
	JointTypeNeckSection:   ExtremityHead,
	JointTypeHead:          ExtremityHead,
	JointTypeShoulderRoot:  ExtremityArm,
	JointTypeArmHumerus:    ExtremityArm,
	JointTypeArmRadius:     ExtremityArm,
	JointTypeArmElbow:      ExtremityArm,
	JointTypeHandRoot:      ExtremityHand,
	JointTypeFingerRoot:    ExtremityHand,
	JointTypeFingerSection: ExtremityHand,
	JointTypeLegThigh:      ExtremityLeg,
	JointTypeLegShin:       ExtremityLeg,
	JointTypeLegKnee:       ExtremityLeg,
	JointTypeFootRoot:      ExtremityFeet,
	JointTypeToeRoot:       ExtremityFeet,
	JointTypeToeSection:    ExtremityFeet,
	JointTypeChainRoot:     ExtremityChain,
	JointTypeChainSegment:  ExtremityChain,
}

// AllJointTypes は既知の関節種別を定義順で返す。
func AllJointTypes() []JointType {
	return []JointType{
		JointTypeObjectRoot,
		JointTypeDefault,
		JointTypeAccessory,
		JointTypeSpineRoot,
		JointTypeSpineSection,
		JointTypeNeckRoot,
		JointTypeNeckSection,
		JointTypeHead,
		JointTypeShoulderRoot,
		JointTypeArmHumerus,
		JointTypeArmRadius,
		JointTypeArmElbow,
		JointTypeHandRoot,
		JointTypeFingerRoot,
		JointTypeFingerSection,
		JointTypeLegThigh,
		JointTypeLegShin,
		JointTypeLegKnee,
		JointTypeFootRoot,
		JointTypeToeRoot,
		JointTypeToeSection,
		JointTypeChainRoot,
		JointTypeChainSegment,
	}
}

// Valid は既知の関節種別かを返す。
func (t JointType) Valid() bool {
	_, ok := jointTypeExtremities[t]
	return ok
}

// Extremity は関節の属するグルーピング種別を返す。
func (t JointType) Extremity() ExtremityType {
	if e, ok := jointTypeExtremities[t]; ok {
		return e
	}
	return ExtremityDefault
}
