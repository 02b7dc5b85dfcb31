// 指示: PakkanenAnastacia
package minteractor

import (
	"fmt"

	"github.com/PakkanenAnastacia/MrBoxman/pkg/domain/mmath"
)

// EditBone は編集モードで構築中のボーンを表す。
// 走査中は親子や末端座標が書き換えられ、確定後にシーンへ送出される。
type EditBone struct {
	Name       string
	Head       mmath.Vec3
	Tail       mmath.Vec3
	Parent     *EditBone
	UseConnect bool
}

// SynthesisContext はリグ合成一回分の共有状態を表す。
// 生成順のボーン列と、モード切替ごとに消化される遅延コマンド列を保持する。
type SynthesisContext struct {
	ArmatureName string

	editBones []*EditBone
	boneNames map[string]struct{}

	meshCreation          []ISceneCommand
	parenting             []ISceneCommand
	controlCreation       []ISceneCommand
	collectionAssignments []ISceneCommand

	riggerCount int
}

// NewSynthesisContext は合成コンテキストを生成する。
func NewSynthesisContext(armatureName string) *SynthesisContext {
	return &SynthesisContext{
		ArmatureName: armatureName,
		boneNames:    make(map[string]struct{}),
	}
}

// NewEditBone は編集ボーンを登録する。ボーン名は全体で一意でなければならない。
func (ctx *SynthesisContext) NewEditBone(name string) (*EditBone, error) {
	if name == "" {
		return nil, fmt.Errorf("ボーン名が空です")
	}
	if _, ok := ctx.boneNames[name]; ok {
		return nil, fmt.Errorf("ボーン名が重複しています: %s", name)
	}
	ctx.boneNames[name] = struct{}{}
	bone := &EditBone{Name: name}
	ctx.editBones = append(ctx.editBones, bone)
	return bone, nil
}

// EditBones は生成順のボーン列を返す。
func (ctx *SynthesisContext) EditBones() []*EditBone {
	return ctx.editBones
}

// QueueMeshCreation はオブジェクトモードのメッシュ生成コマンドを積む。
func (ctx *SynthesisContext) QueueMeshCreation(cmd ISceneCommand) {
	ctx.meshCreation = append(ctx.meshCreation, cmd)
}

// QueueParenting はオブジェクトモードの親子付けコマンドを積む。
func (ctx *SynthesisContext) QueueParenting(cmd ISceneCommand) {
	ctx.parenting = append(ctx.parenting, cmd)
}

// QueueControlCreation はポーズモードの制御生成コマンドを積む。
func (ctx *SynthesisContext) QueueControlCreation(cmd ISceneCommand) {
	ctx.controlCreation = append(ctx.controlCreation, cmd)
}

// QueueCollectionAssignment はコレクション整理コマンドを積む。
func (ctx *SynthesisContext) QueueCollectionAssignment(cmd ISceneCommand) {
	ctx.collectionAssignments = append(ctx.collectionAssignments, cmd)
}

// MeshCreationCommands はメッシュ生成キューを返す。
func (ctx *SynthesisContext) MeshCreationCommands() []ISceneCommand {
	return ctx.meshCreation
}

// ParentingCommands は親子付けキューを返す。
func (ctx *SynthesisContext) ParentingCommands() []ISceneCommand {
	return ctx.parenting
}

// ControlCreationCommands は制御生成キューを返す。
func (ctx *SynthesisContext) ControlCreationCommands() []ISceneCommand {
	return ctx.controlCreation
}

// CollectionAssignmentCommands はコレクション整理キューを返す。
func (ctx *SynthesisContext) CollectionAssignmentCommands() []ISceneCommand {
	return ctx.collectionAssignments
}

// CommandCount は積まれている全コマンド数を返す。
func (ctx *SynthesisContext) CommandCount() int {
	return len(ctx.meshCreation) + len(ctx.parenting) +
		len(ctx.controlCreation) + len(ctx.collectionAssignments)
}

func (ctx *SynthesisContext) countRigger() {
	ctx.riggerCount++
}

// RiggerCount は生成されたリガーの総数を返す。
func (ctx *SynthesisContext) RiggerCount() int {
	return ctx.riggerCount
}
