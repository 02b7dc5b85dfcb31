// 指示: PakkanenAnastacia
package minteractor

import (
	"fmt"

	"github.com/PakkanenAnastacia/MrBoxman/pkg/domain/model"
	"github.com/PakkanenAnastacia/MrBoxman/pkg/usecase/port/mscene"
)

// AutoRigUsecase はボックスマンツリーからコントロールスケルトンを合成する。
type AutoRigUsecase struct {
	scene mscene.IRigScene
}

// NewAutoRigUsecase はリグ合成ユースケースを生成する。
func NewAutoRigUsecase(scene mscene.IRigScene) *AutoRigUsecase {
	return &AutoRigUsecase{scene: scene}
}

// AutoRig はツリーを走査して編集ボーンと遅延コマンド列を構築し、
// ホストのモード遷移に沿って段階的に流し込む。
func (uc *AutoRigUsecase) AutoRig(request AutoRigRequest) (*AutoRigResult, error) {
	if uc.scene == nil {
		return nil, fmt.Errorf("ホストシーンが設定されていません")
	}
	root := request.Root
	if root == nil {
		return nil, fmt.Errorf("リグ対象ツリーが未設定です")
	}
	if err := root.Validate(); err != nil {
		return nil, err
	}
	reportAutoRigProgress(request.ProgressReporter, AutoRigProgressEvent{
		Phase:  AutoRigPhaseTreeValidated,
		Detail: root.ObjectName(),
	})

	ctx := NewSynthesisContext(ArmatureNameFor(root))
	factory := NewRiggerFactory(ctx)
	rootRigger := NewRootRigger(root, factory)

	// ボーンの採寸はすべて編集モードのメモリ上で済ませ、
	// ホストへは完成した定義だけを流し込む
	if err := uc.scene.CreateArmature(ctx.ArmatureName); err != nil {
		return nil, &model.HostOperationFailedError{Op: "create_armature", Cause: err}
	}
	if err := uc.setMode(ctx.ArmatureName, mscene.EditorModeEdit); err != nil {
		return nil, err
	}
	if err := rootRigger.Rig(); err != nil {
		return nil, err
	}
	bones := ctx.EditBones()
	reportAutoRigProgress(request.ProgressReporter, AutoRigProgressEvent{
		Phase:  AutoRigPhaseBonesPlanned,
		Detail: ctx.ArmatureName,
		Total:  len(bones),
	})

	for i, bone := range bones {
		definition := mscene.BoneDefinition{
			Name:       bone.Name,
			Head:       bone.Head,
			Tail:       bone.Tail,
			UseConnect: bone.UseConnect,
		}
		if bone.Parent != nil {
			definition.ParentName = bone.Parent.Name
		}
		if err := uc.scene.CreateBone(ctx.ArmatureName, definition); err != nil {
			return nil, &model.HostOperationFailedError{Op: fmt.Sprintf("create_bone:%s", bone.Name), Cause: err}
		}
		reportAutoRigProgress(request.ProgressReporter, AutoRigProgressEvent{
			Phase:  AutoRigPhaseBonesCreated,
			Detail: bone.Name,
			Index:  i + 1,
			Total:  len(bones),
		})
	}

	if err := uc.setMode(ctx.ArmatureName, mscene.EditorModeObject); err != nil {
		return nil, err
	}
	if err := uc.scene.SetArmatureDisplay(ctx.ArmatureName, mscene.ArmatureDisplayOctahedral, true); err != nil {
		return nil, &model.HostOperationFailedError{Op: "set_armature_display", Cause: err}
	}

	if err := uc.drain(ctx.MeshCreationCommands(), request.ProgressReporter, AutoRigPhaseMeshesCreated); err != nil {
		return nil, err
	}
	if err := uc.drain(ctx.ParentingCommands(), request.ProgressReporter, AutoRigPhaseMeshesParented); err != nil {
		return nil, err
	}

	if err := uc.setMode(ctx.ArmatureName, mscene.EditorModePose); err != nil {
		return nil, err
	}
	if err := uc.scene.SetArmatureDisplay(ctx.ArmatureName, mscene.ArmatureDisplayStick, true); err != nil {
		return nil, &model.HostOperationFailedError{Op: "set_armature_display", Cause: err}
	}
	if err := uc.drain(ctx.ControlCreationCommands(), request.ProgressReporter, AutoRigPhaseControlsCreated); err != nil {
		return nil, err
	}

	if err := uc.setMode(ctx.ArmatureName, mscene.EditorModeObject); err != nil {
		return nil, err
	}
	if err := uc.drain(ctx.CollectionAssignmentCommands(), request.ProgressReporter, AutoRigPhaseCollectionsAssigned); err != nil {
		return nil, err
	}

	// 最後にアーマチュア本体をコレクションへ移す
	drained := len(ctx.CollectionAssignmentCommands())
	rootRigger.QueueLinkArmatureToMainCollection()
	if err := uc.drain(ctx.CollectionAssignmentCommands()[drained:], nil, AutoRigPhaseArmatureLinked); err != nil {
		return nil, err
	}
	reportAutoRigProgress(request.ProgressReporter, AutoRigProgressEvent{
		Phase:  AutoRigPhaseArmatureLinked,
		Detail: ctx.ArmatureName,
	})

	return &AutoRigResult{
		ArmatureName: ctx.ArmatureName,
		BoneCount:    len(bones),
		RiggerCount:  ctx.RiggerCount(),
		CommandCount: ctx.CommandCount(),
	}, nil
}

func (uc *AutoRigUsecase) setMode(armatureName string, mode mscene.EditorMode) error {
	if err := uc.scene.SetMode(armatureName, mode); err != nil {
		return &model.HostOperationFailedError{Op: fmt.Sprintf("set_mode:%s", mode), Cause: err}
	}
	return nil
}

// drain はコマンド列を先頭から順に適用する。失敗した時点で打ち切る。
func (uc *AutoRigUsecase) drain(commands []ISceneCommand, reporter IAutoRigProgressReporter, phase AutoRigPhase) error {
	for i, cmd := range commands {
		if err := cmd.Apply(uc.scene); err != nil {
			return err
		}
		reportAutoRigProgress(reporter, AutoRigProgressEvent{
			Phase:  phase,
			Detail: cmd.Label(),
			Index:  i + 1,
			Total:  len(commands),
		})
	}
	return nil
}

// reportAutoRigProgress はリグ合成の進捗を通知する。
func reportAutoRigProgress(reporter IAutoRigProgressReporter, event AutoRigProgressEvent) {
	if reporter == nil {
		return
	}
	reporter.ReportAutoRigProgress(event)
}
