// 指示: PakkanenAnastacia
package minteractor

import (
	"fmt"

	"github.com/PakkanenAnastacia/MrBoxman/pkg/domain/model"
	"github.com/PakkanenAnastacia/MrBoxman/pkg/usecase/port/mscene"
)

// ISceneCommand はモード切替後に実行される遅延シーン操作を表す。
// コマンドは名前と数値だけを捕捉し、シーン内の実体への参照を持たない。
type ISceneCommand interface {
	Label() string
	Apply(scene mscene.IRigScene) error
}

func wrapHostError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &model.HostOperationFailedError{Op: op, Cause: err}
}

// CreateControlMeshCommand は制御用メッシュの生成コマンドを表す。
type CreateControlMeshCommand struct {
	Mesh mscene.MeshDefinition
}

func (c *CreateControlMeshCommand) Label() string {
	return fmt.Sprintf("create_mesh:%s", c.Mesh.Name)
}

func (c *CreateControlMeshCommand) Apply(scene mscene.IRigScene) error {
	return wrapHostError(c.Label(), scene.CreateMesh(c.Mesh))
}

// HideObjectCommand はオブジェクト非表示化コマンドを表す。
type HideObjectCommand struct {
	ObjectName string
}

func (c *HideObjectCommand) Label() string {
	return fmt.Sprintf("hide_object:%s", c.ObjectName)
}

func (c *HideObjectCommand) Apply(scene mscene.IRigScene) error {
	return wrapHostError(c.Label(), scene.SetObjectHidden(c.ObjectName, true))
}

// ParentMeshToBoneCommand はメッシュとボーンの親子付けコマンドを表す。
type ParentMeshToBoneCommand struct {
	MeshName     string
	ArmatureName string
	BoneName     string
}

func (c *ParentMeshToBoneCommand) Label() string {
	return fmt.Sprintf("parent_mesh:%s->%s", c.MeshName, c.BoneName)
}

func (c *ParentMeshToBoneCommand) Apply(scene mscene.IRigScene) error {
	return wrapHostError(c.Label(), scene.ParentMeshToBone(c.MeshName, c.ArmatureName, c.BoneName))
}

// AttachCustomShapeCommand はポーズボーンへのカスタムシェイプ割当コマンドを表す。
type AttachCustomShapeCommand struct {
	ArmatureName string
	BoneName     string
	ShapeName    string
	Scale        float64
}

func (c *AttachCustomShapeCommand) Label() string {
	return fmt.Sprintf("attach_shape:%s->%s", c.ShapeName, c.BoneName)
}

func (c *AttachCustomShapeCommand) Apply(scene mscene.IRigScene) error {
	return wrapHostError(c.Label(),
		scene.AttachCustomShape(c.ArmatureName, c.BoneName, c.ShapeName, c.Scale))
}

// AddIkConstraintCommand は IK 制約追加コマンドを表す。
// 制約追加と同時に IK コントロールへのシェイプ割当も行う。
type AddIkConstraintCommand struct {
	ArmatureName    string
	BoneName        string
	Constraint      mscene.IkConstraint
	ControlBoneName string
	ControlShape    string
}

func (c *AddIkConstraintCommand) Label() string {
	return fmt.Sprintf("add_ik:%s", c.BoneName)
}

func (c *AddIkConstraintCommand) Apply(scene mscene.IRigScene) error {
	if err := scene.AddIkConstraint(c.ArmatureName, c.BoneName, c.Constraint); err != nil {
		return wrapHostError(c.Label(), err)
	}
	if c.ControlShape != "" {
		if err := scene.AttachCustomShape(c.ArmatureName, c.ControlBoneName, c.ControlShape, 1.0); err != nil {
			return wrapHostError(c.Label(), err)
		}
	}
	return nil
}

// AddCopyRotationCommand は回転コピー制約追加コマンドを表す。
type AddCopyRotationCommand struct {
	ArmatureName string
	BoneName     string
	Constraint   mscene.CopyRotationConstraint
}

func (c *AddCopyRotationCommand) Label() string {
	return fmt.Sprintf("add_copy_rotation:%s", c.BoneName)
}

func (c *AddCopyRotationCommand) Apply(scene mscene.IRigScene) error {
	return wrapHostError(c.Label(),
		scene.AddCopyRotationConstraint(c.ArmatureName, c.BoneName, c.Constraint))
}

// AddCopyLocationCommand は位置コピー制約追加コマンドを表す。
type AddCopyLocationCommand struct {
	ArmatureName string
	BoneName     string
	Constraint   mscene.CopyLocationConstraint
}

func (c *AddCopyLocationCommand) Label() string {
	return fmt.Sprintf("add_copy_location:%s", c.BoneName)
}

func (c *AddCopyLocationCommand) Apply(scene mscene.IRigScene) error {
	return wrapHostError(c.Label(),
		scene.AddCopyLocationConstraint(c.ArmatureName, c.BoneName, c.Constraint))
}

// BoneGroupDefinition はボーングループの名前と配色を表す。
type BoneGroupDefinition struct {
	Name     string
	ColorSet string
}

// CreateBoneGroupsCommand はボーングループ一括生成コマンドを表す。
type CreateBoneGroupsCommand struct {
	ArmatureName string
	Groups       []BoneGroupDefinition
}

func (c *CreateBoneGroupsCommand) Label() string {
	return fmt.Sprintf("create_bone_groups:%s", c.ArmatureName)
}

func (c *CreateBoneGroupsCommand) Apply(scene mscene.IRigScene) error {
	for _, group := range c.Groups {
		if err := scene.CreateBoneGroup(c.ArmatureName, group.Name, group.ColorSet); err != nil {
			return wrapHostError(c.Label(), err)
		}
	}
	return nil
}

// AssignBoneGroupCommand はボーンのグループ割当コマンドを表す。
type AssignBoneGroupCommand struct {
	ArmatureName string
	BoneName     string
	GroupName    string
}

func (c *AssignBoneGroupCommand) Label() string {
	return fmt.Sprintf("assign_group:%s->%s", c.BoneName, c.GroupName)
}

func (c *AssignBoneGroupCommand) Apply(scene mscene.IRigScene) error {
	return wrapHostError(c.Label(), scene.AssignBoneGroup(c.ArmatureName, c.BoneName, c.GroupName))
}

// AssignBoneLayersCommand はボーンの所属レイヤー設定コマンドを表す。
type AssignBoneLayersCommand struct {
	ArmatureName string
	BoneName     string
	Layers       []int
}

func (c *AssignBoneLayersCommand) Label() string {
	return fmt.Sprintf("assign_layers:%s", c.BoneName)
}

func (c *AssignBoneLayersCommand) Apply(scene mscene.IRigScene) error {
	for _, index := range c.Layers {
		if index < 0 || index > 31 {
			return wrapHostError(c.Label(), fmt.Errorf("レイヤー番号が範囲外です: %d", index))
		}
	}
	return wrapHostError(c.Label(), scene.AssignBoneLayers(c.ArmatureName, c.BoneName, c.Layers))
}

// HideBoneCommand はボーン非表示化コマンドを表す。
type HideBoneCommand struct {
	ArmatureName string
	BoneName     string
}

func (c *HideBoneCommand) Label() string {
	return fmt.Sprintf("hide_bone:%s", c.BoneName)
}

func (c *HideBoneCommand) Apply(scene mscene.IRigScene) error {
	return wrapHostError(c.Label(), scene.SetBoneHidden(c.ArmatureName, c.BoneName, true))
}

// CreateCollectionsCommand はコレクション一括生成コマンドを表す。
type CreateCollectionsCommand struct {
	Names []string
}

func (c *CreateCollectionsCommand) Label() string {
	return "create_collections"
}

func (c *CreateCollectionsCommand) Apply(scene mscene.IRigScene) error {
	for _, name := range c.Names {
		if err := scene.CreateCollection(name); err != nil {
			return wrapHostError(c.Label(), err)
		}
	}
	return nil
}

// LinkToCollectionCommand はオブジェクトのコレクション接続コマンドを表す。
// コレクション名が空のときはシーンルートへ接続する。
type LinkToCollectionCommand struct {
	CollectionName string
	ObjectName     string
}

func (c *LinkToCollectionCommand) Label() string {
	return fmt.Sprintf("link:%s->%s", c.ObjectName, c.CollectionName)
}

func (c *LinkToCollectionCommand) Apply(scene mscene.IRigScene) error {
	return wrapHostError(c.Label(), scene.LinkObjectToCollection(c.CollectionName, c.ObjectName))
}

// UnlinkFromCollectionCommand はオブジェクトのコレクション切離コマンドを表す。
type UnlinkFromCollectionCommand struct {
	CollectionName string
	ObjectName     string
}

func (c *UnlinkFromCollectionCommand) Label() string {
	return fmt.Sprintf("unlink:%s<-%s", c.ObjectName, c.CollectionName)
}

func (c *UnlinkFromCollectionCommand) Apply(scene mscene.IRigScene) error {
	return wrapHostError(c.Label(), scene.UnlinkObjectFromCollection(c.CollectionName, c.ObjectName))
}
