// 指示: PakkanenAnastacia
package mscene

import "github.com/PakkanenAnastacia/MrBoxman/pkg/domain/mmath"

// EditorMode はホストシーンの編集モードを表す。
type EditorMode string

const (
	// EditorModeEdit はボーン編集モード。
	EditorModeEdit EditorMode = "EDIT"
	// EditorModeObject はオブジェクトモード。
	EditorModeObject EditorMode = "OBJECT"
	// EditorModePose はポーズモード。
	EditorModePose EditorMode = "POSE"
)

// ArmatureDisplayType はアーマチュア表示形式を表す。
type ArmatureDisplayType string

const (
	// ArmatureDisplayStick はスティック表示。
	ArmatureDisplayStick ArmatureDisplayType = "STICK"
	// ArmatureDisplayOctahedral は八面体表示。
	ArmatureDisplayOctahedral ArmatureDisplayType = "OCTAHEDRAL"
)

// MixMode は回転コピー制約の合成方法を表す。
type MixMode string

const (
	// MixModeReplace は置換合成。
	MixModeReplace MixMode = "REPLACE"
	// MixModeAdd は加算合成。
	MixModeAdd MixMode = "ADD"
)

// ConstraintSpace は制約の評価空間を表す。
type ConstraintSpace string

const (
	// ConstraintSpaceWorld はワールド空間。
	ConstraintSpaceWorld ConstraintSpace = "WORLD"
	// ConstraintSpaceLocal はローカル空間。
	ConstraintSpaceLocal ConstraintSpace = "LOCAL"
)

// BoneDefinition はボーン生成仕様を表す。親やターゲットは名前で参照する。
type BoneDefinition struct {
	Name       string
	Head       mmath.Vec3
	Tail       mmath.Vec3
	ParentName string
	UseConnect bool
}

// MeshDefinition はメッシュ生成仕様を表す。
type MeshDefinition struct {
	Name     string
	Location mmath.Vec3
	Vertices []mmath.Vec3
	Edges    [][2]int
	Polygons [][]int
}

// IkConstraint は IK 制約のパラメータを表す。
type IkConstraint struct {
	TargetArmature string
	TargetBone     string
	ChainCount     int
	PoleArmature   string
	PoleBone       string
	PoleAngleDeg   float64
}

// CopyRotationConstraint は回転コピー制約のパラメータを表す。
type CopyRotationConstraint struct {
	TargetArmature string
	TargetBone     string
	MixMode        MixMode
	OwnerSpace     ConstraintSpace
	TargetSpace    ConstraintSpace
	Influence      float64
}

// CopyLocationConstraint は位置コピー制約のパラメータを表す。
type CopyLocationConstraint struct {
	TargetArmature string
	TargetBone     string
	HeadTail       float64
}

// IRigScene はリグ合成が利用するホストシーンの契約を表す。
// すべての参照は名前で解決され、ハンドルは越境しない。
type IRigScene interface {
	// SetMode はアクティブオブジェクトの編集モードを切り替える。
	SetMode(armatureName string, mode EditorMode) error
	// CreateArmature はアーマチュアオブジェクトを生成する。
	CreateArmature(name string) error
	// CreateBone は編集モードでボーンを追加する。
	CreateBone(armatureName string, bone BoneDefinition) error
	// SetArmatureDisplay はアーマチュアの表示形式を設定する。
	SetArmatureDisplay(armatureName string, displayType ArmatureDisplayType, showInFront bool) error

	// CreateMesh はメッシュオブジェクトを生成する。
	CreateMesh(mesh MeshDefinition) error
	// SetObjectHidden はオブジェクトの表示状態を設定する。
	SetObjectHidden(name string, hidden bool) error
	// ParentMeshToBone はメッシュをボーンへ親子付けする。
	ParentMeshToBone(meshName, armatureName, boneName string) error

	// AttachCustomShape はポーズボーンへカスタムシェイプを割り当てる。
	AttachCustomShape(armatureName, boneName, shapeObjectName string, scale float64) error
	// AddIkConstraint はポーズボーンへ IK 制約を追加する。
	AddIkConstraint(armatureName, boneName string, constraint IkConstraint) error
	// AddCopyRotationConstraint はポーズボーンへ回転コピー制約を追加する。
	AddCopyRotationConstraint(armatureName, boneName string, constraint CopyRotationConstraint) error
	// AddCopyLocationConstraint はポーズボーンへ位置コピー制約を追加する。
	AddCopyLocationConstraint(armatureName, boneName string, constraint CopyLocationConstraint) error

	// CreateBoneGroup はボーングループを生成する。
	CreateBoneGroup(armatureName, groupName, colorSet string) error
	// AssignBoneGroup はボーンをグループへ割り当てる。
	AssignBoneGroup(armatureName, boneName, groupName string) error
	// AssignBoneLayers はボーンの所属レイヤー(0-31)を設定する。
	AssignBoneLayers(armatureName, boneName string, layers []int) error
	// SetBoneHidden はボーンの表示状態を設定する。
	SetBoneHidden(armatureName, boneName string, hidden bool) error

	// CreateCollection は表示コレクションを生成する。
	CreateCollection(name string) error
	// LinkObjectToCollection はオブジェクトをコレクションへ接続する。
	// コレクション名が空のときはシーンルートを指す。
	LinkObjectToCollection(collectionName, objectName string) error
	// UnlinkObjectFromCollection はオブジェクトをコレクションから切り離す。
	UnlinkObjectFromCollection(collectionName, objectName string) error
}
