// 指示: PakkanenAnastacia
// Package memscene は IRigScene のメモリ内実装を提供する。
// ホスト不在のままリグ合成を検証・実行するために使う。
package memscene

import (
	"fmt"

	"github.com/PakkanenAnastacia/MrBoxman/pkg/usecase/port/mscene"
)

// Bone はアーマチュア内のボーンの状態を表す。
type Bone struct {
	Definition       mscene.BoneDefinition
	GroupName        string
	Layers           []int
	Hidden           bool
	CustomShapeName  string
	CustomShapeScale float64
	IkConstraints    []mscene.IkConstraint
	CopyRotations    []mscene.CopyRotationConstraint
	CopyLocations    []mscene.CopyLocationConstraint
}

// Armature はアーマチュアオブジェクトの状態を表す。
type Armature struct {
	Name        string
	DisplayType mscene.ArmatureDisplayType
	ShowInFront bool
	Bones       map[string]*Bone
	BoneOrder   []string
	BoneGroups  map[string]string
}

// Mesh はメッシュオブジェクトの状態を表す。
type Mesh struct {
	Definition     mscene.MeshDefinition
	Hidden         bool
	ParentArmature string
	ParentBone     string
}

// MemScene はホストシーンのメモリ内模造を表す。
// 全操作を順序付きログに記録し、モード前提を強制する。
type MemScene struct {
	mode        mscene.EditorMode
	armatures   map[string]*Armature
	meshes      map[string]*Mesh
	collections map[string][]string
	sceneRoot   []string
	ops         []string
}

// NewMemScene はオブジェクトモードの空シーンを生成する。
func NewMemScene() *MemScene {
	return &MemScene{
		mode:        mscene.EditorModeObject,
		armatures:   map[string]*Armature{},
		meshes:      map[string]*Mesh{},
		collections: map[string][]string{},
	}
}

// Mode は現在の編集モードを返す。
func (s *MemScene) Mode() mscene.EditorMode { return s.mode }

// Ops は実行した操作のログを実行順で返す。
func (s *MemScene) Ops() []string { return s.ops }

// Armature は名前でアーマチュアを引く。存在しなければ nil。
func (s *MemScene) Armature(name string) *Armature { return s.armatures[name] }

// Mesh は名前でメッシュを引く。存在しなければ nil。
func (s *MemScene) Mesh(name string) *Mesh { return s.meshes[name] }

// Bone はアーマチュアとボーン名でボーンを引く。存在しなければ nil。
func (s *MemScene) Bone(armatureName, boneName string) *Bone {
	armature := s.armatures[armatureName]
	if armature == nil {
		return nil
	}
	return armature.Bones[boneName]
}

// Collection はコレクションの所属オブジェクト名を返す。
func (s *MemScene) Collection(name string) ([]string, bool) {
	objects, ok := s.collections[name]
	return objects, ok
}

// SceneRoot はシーンルート直下のオブジェクト名を返す。
func (s *MemScene) SceneRoot() []string { return s.sceneRoot }

func (s *MemScene) log(format string, args ...any) {
	s.ops = append(s.ops, fmt.Sprintf(format, args...))
}

func (s *MemScene) requireMode(mode mscene.EditorMode, op string) error {
	if s.mode != mode {
		return fmt.Errorf("%s は %s モードでしか実行できません(現在: %s)", op, mode, s.mode)
	}
	return nil
}

func (s *MemScene) requireArmature(name string) (*Armature, error) {
	armature := s.armatures[name]
	if armature == nil {
		return nil, fmt.Errorf("アーマチュア %s が存在しません", name)
	}
	return armature, nil
}

func (s *MemScene) requireBone(armatureName, boneName string) (*Bone, error) {
	armature, err := s.requireArmature(armatureName)
	if err != nil {
		return nil, err
	}
	bone := armature.Bones[boneName]
	if bone == nil {
		return nil, fmt.Errorf("ボーン %s が %s に存在しません", boneName, armatureName)
	}
	return bone, nil
}

func (s *MemScene) objectExists(name string) bool {
	if _, ok := s.meshes[name]; ok {
		return true
	}
	_, ok := s.armatures[name]
	return ok
}

// SetMode はアクティブオブジェクトの編集モードを切り替える。
func (s *MemScene) SetMode(armatureName string, mode mscene.EditorMode) error {
	if _, err := s.requireArmature(armatureName); err != nil {
		return err
	}
	s.mode = mode
	s.log("set_mode:%s:%s", armatureName, mode)
	return nil
}

// CreateArmature はアーマチュアオブジェクトを生成してシーンルートへ接続する。
func (s *MemScene) CreateArmature(name string) error {
	if err := s.requireMode(mscene.EditorModeObject, "create_armature"); err != nil {
		return err
	}
	if s.objectExists(name) {
		return fmt.Errorf("オブジェクト %s は既に存在します", name)
	}
	s.armatures[name] = &Armature{
		Name:        name,
		DisplayType: mscene.ArmatureDisplayOctahedral,
		Bones:       map[string]*Bone{},
		BoneGroups:  map[string]string{},
	}
	s.sceneRoot = append(s.sceneRoot, name)
	s.log("create_armature:%s", name)
	return nil
}

// CreateBone は編集モードでボーンを追加する。親は先に存在していなければならない。
func (s *MemScene) CreateBone(armatureName string, bone mscene.BoneDefinition) error {
	if err := s.requireMode(mscene.EditorModeEdit, "create_bone"); err != nil {
		return err
	}
	armature, err := s.requireArmature(armatureName)
	if err != nil {
		return err
	}
	if _, ok := armature.Bones[bone.Name]; ok {
		return fmt.Errorf("ボーン %s は既に %s に存在します", bone.Name, armatureName)
	}
	if bone.ParentName != "" {
		if _, ok := armature.Bones[bone.ParentName]; !ok {
			return fmt.Errorf("親ボーン %s が %s に存在しません", bone.ParentName, armatureName)
		}
	}
	armature.Bones[bone.Name] = &Bone{Definition: bone}
	armature.BoneOrder = append(armature.BoneOrder, bone.Name)
	s.log("create_bone:%s:%s", armatureName, bone.Name)
	return nil
}

// SetArmatureDisplay はアーマチュアの表示形式を設定する。
func (s *MemScene) SetArmatureDisplay(armatureName string, displayType mscene.ArmatureDisplayType, showInFront bool) error {
	armature, err := s.requireArmature(armatureName)
	if err != nil {
		return err
	}
	armature.DisplayType = displayType
	armature.ShowInFront = showInFront
	s.log("set_display:%s:%s", armatureName, displayType)
	return nil
}

// CreateMesh はメッシュオブジェクトを生成してシーンルートへ接続する。
func (s *MemScene) CreateMesh(mesh mscene.MeshDefinition) error {
	if err := s.requireMode(mscene.EditorModeObject, "create_mesh"); err != nil {
		return err
	}
	if s.objectExists(mesh.Name) {
		return fmt.Errorf("オブジェクト %s は既に存在します", mesh.Name)
	}
	s.meshes[mesh.Name] = &Mesh{Definition: mesh}
	s.sceneRoot = append(s.sceneRoot, mesh.Name)
	s.log("create_mesh:%s", mesh.Name)
	return nil
}

// SetObjectHidden はオブジェクトの表示状態を設定する。
func (s *MemScene) SetObjectHidden(name string, hidden bool) error {
	mesh, ok := s.meshes[name]
	if !ok {
		return fmt.Errorf("メッシュ %s が存在しません", name)
	}
	mesh.Hidden = hidden
	s.log("set_object_hidden:%s:%t", name, hidden)
	return nil
}

// ParentMeshToBone はメッシュをボーンへ親子付けする。
func (s *MemScene) ParentMeshToBone(meshName, armatureName, boneName string) error {
	if err := s.requireMode(mscene.EditorModeObject, "parent_mesh"); err != nil {
		return err
	}
	mesh, ok := s.meshes[meshName]
	if !ok {
		return fmt.Errorf("メッシュ %s が存在しません", meshName)
	}
	if _, err := s.requireBone(armatureName, boneName); err != nil {
		return err
	}
	mesh.ParentArmature = armatureName
	mesh.ParentBone = boneName
	s.log("parent_mesh:%s->%s:%s", meshName, armatureName, boneName)
	return nil
}

// AttachCustomShape はポーズボーンへカスタムシェイプを割り当てる。
func (s *MemScene) AttachCustomShape(armatureName, boneName, shapeObjectName string, scale float64) error {
	if err := s.requireMode(mscene.EditorModePose, "attach_shape"); err != nil {
		return err
	}
	bone, err := s.requireBone(armatureName, boneName)
	if err != nil {
		return err
	}
	if _, ok := s.meshes[shapeObjectName]; !ok {
		return fmt.Errorf("シェイプ %s が存在しません", shapeObjectName)
	}
	bone.CustomShapeName = shapeObjectName
	bone.CustomShapeScale = scale
	s.log("attach_shape:%s:%s:%s", armatureName, boneName, shapeObjectName)
	return nil
}

// AddIkConstraint はポーズボーンへ IK 制約を追加する。
func (s *MemScene) AddIkConstraint(armatureName, boneName string, constraint mscene.IkConstraint) error {
	if err := s.requireMode(mscene.EditorModePose, "add_ik"); err != nil {
		return err
	}
	bone, err := s.requireBone(armatureName, boneName)
	if err != nil {
		return err
	}
	if _, err := s.requireBone(constraint.TargetArmature, constraint.TargetBone); err != nil {
		return err
	}
	if constraint.PoleBone != "" {
		if _, err := s.requireBone(constraint.PoleArmature, constraint.PoleBone); err != nil {
			return err
		}
	}
	bone.IkConstraints = append(bone.IkConstraints, constraint)
	s.log("add_ik:%s:%s", armatureName, boneName)
	return nil
}

// AddCopyRotationConstraint はポーズボーンへ回転コピー制約を追加する。
func (s *MemScene) AddCopyRotationConstraint(armatureName, boneName string, constraint mscene.CopyRotationConstraint) error {
	if err := s.requireMode(mscene.EditorModePose, "add_copy_rotation"); err != nil {
		return err
	}
	bone, err := s.requireBone(armatureName, boneName)
	if err != nil {
		return err
	}
	if _, err := s.requireBone(constraint.TargetArmature, constraint.TargetBone); err != nil {
		return err
	}
	bone.CopyRotations = append(bone.CopyRotations, constraint)
	s.log("add_copy_rotation:%s:%s", armatureName, boneName)
	return nil
}

// AddCopyLocationConstraint はポーズボーンへ位置コピー制約を追加する。
func (s *MemScene) AddCopyLocationConstraint(armatureName, boneName string, constraint mscene.CopyLocationConstraint) error {
	if err := s.requireMode(mscene.EditorModePose, "add_copy_location"); err != nil {
		return err
	}
	bone, err := s.requireBone(armatureName, boneName)
	if err != nil {
		return err
	}
	if _, err := s.requireBone(constraint.TargetArmature, constraint.TargetBone); err != nil {
		return err
	}
	bone.CopyLocations = append(bone.CopyLocations, constraint)
	s.log("add_copy_location:%s:%s", armatureName, boneName)
	return nil
}

// CreateBoneGroup はボーングループを生成する。
func (s *MemScene) CreateBoneGroup(armatureName, groupName, colorSet string) error {
	armature, err := s.requireArmature(armatureName)
	if err != nil {
		return err
	}
	if _, ok := armature.BoneGroups[groupName]; ok {
		return fmt.Errorf("ボーングループ %s は既に存在します", groupName)
	}
	armature.BoneGroups[groupName] = colorSet
	s.log("create_bone_group:%s:%s", armatureName, groupName)
	return nil
}

// AssignBoneGroup はボーンをグループへ割り当てる。
func (s *MemScene) AssignBoneGroup(armatureName, boneName, groupName string) error {
	armature, err := s.requireArmature(armatureName)
	if err != nil {
		return err
	}
	if _, ok := armature.BoneGroups[groupName]; !ok {
		return fmt.Errorf("ボーングループ %s が存在しません", groupName)
	}
	bone, err := s.requireBone(armatureName, boneName)
	if err != nil {
		return err
	}
	bone.GroupName = groupName
	s.log("assign_group:%s:%s:%s", armatureName, boneName, groupName)
	return nil
}

// AssignBoneLayers はボーンの所属レイヤーを設定する。
func (s *MemScene) AssignBoneLayers(armatureName, boneName string, layers []int) error {
	bone, err := s.requireBone(armatureName, boneName)
	if err != nil {
		return err
	}
	for _, layer := range layers {
		if layer < 0 || layer > 31 {
			return fmt.Errorf("レイヤー番号 %d は範囲外です", layer)
		}
	}
	bone.Layers = append([]int(nil), layers...)
	s.log("assign_layers:%s:%s", armatureName, boneName)
	return nil
}

// SetBoneHidden はボーンの表示状態を設定する。
func (s *MemScene) SetBoneHidden(armatureName, boneName string, hidden bool) error {
	bone, err := s.requireBone(armatureName, boneName)
	if err != nil {
		return err
	}
	bone.Hidden = hidden
	s.log("set_bone_hidden:%s:%s:%t", armatureName, boneName, hidden)
	return nil
}

// CreateCollection は表示コレクションを生成する。
func (s *MemScene) CreateCollection(name string) error {
	if name == "" {
		return fmt.Errorf("コレクション名が未指定です")
	}
	if _, ok := s.collections[name]; ok {
		return fmt.Errorf("コレクション %s は既に存在します", name)
	}
	s.collections[name] = []string{}
	s.log("create_collection:%s", name)
	return nil
}

// LinkObjectToCollection はオブジェクトをコレクションへ接続する。
// コレクション名が空のときはシーンルートへ接続する。
func (s *MemScene) LinkObjectToCollection(collectionName, objectName string) error {
	if !s.objectExists(objectName) {
		return fmt.Errorf("オブジェクト %s が存在しません", objectName)
	}
	if collectionName == "" {
		s.sceneRoot = append(s.sceneRoot, objectName)
		s.log("link:%s->%s", objectName, "<root>")
		return nil
	}
	objects, ok := s.collections[collectionName]
	if !ok {
		return fmt.Errorf("コレクション %s が存在しません", collectionName)
	}
	s.collections[collectionName] = append(objects, objectName)
	s.log("link:%s->%s", objectName, collectionName)
	return nil
}

// UnlinkObjectFromCollection はオブジェクトをコレクションから切り離す。
// 所属していないオブジェクトの切り離しはエラーになる。
func (s *MemScene) UnlinkObjectFromCollection(collectionName, objectName string) error {
	if collectionName == "" {
		for i, name := range s.sceneRoot {
			if name == objectName {
				s.sceneRoot = append(s.sceneRoot[:i], s.sceneRoot[i+1:]...)
				s.log("unlink:%s-x%s", objectName, "<root>")
				return nil
			}
		}
		return fmt.Errorf("オブジェクト %s はシーンルートに接続されていません", objectName)
	}
	objects, ok := s.collections[collectionName]
	if !ok {
		return fmt.Errorf("コレクション %s が存在しません", collectionName)
	}
	for i, name := range objects {
		if name == objectName {
			s.collections[collectionName] = append(objects[:i], objects[i+1:]...)
			s.log("unlink:%s-x%s", objectName, collectionName)
			return nil
		}
	}
	return fmt.Errorf("オブジェクト %s はコレクション %s に接続されていません", objectName, collectionName)
}
