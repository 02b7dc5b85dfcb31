// 指示: PakkanenAnastacia
package minteractor

import (
	"github.com/PakkanenAnastacia/MrBoxman/pkg/domain/model"
)

// AutoRigPhase はリグ合成の進捗フェーズを表す。
type AutoRigPhase string

const (
	// AutoRigPhaseTreeValidated はツリー検証完了フェーズを表す。
	AutoRigPhaseTreeValidated AutoRigPhase = "tree_validated"
	// AutoRigPhaseBonesPlanned は編集ボーン構築完了フェーズを表す。
	AutoRigPhaseBonesPlanned AutoRigPhase = "bones_planned"
	// AutoRigPhaseBonesCreated はボーン生成完了フェーズを表す。
	AutoRigPhaseBonesCreated AutoRigPhase = "bones_created"
	// AutoRigPhaseMeshesCreated はコントロールメッシュ生成完了フェーズを表す。
	AutoRigPhaseMeshesCreated AutoRigPhase = "meshes_created"
	// AutoRigPhaseMeshesParented はメッシュ親子付け完了フェーズを表す。
	AutoRigPhaseMeshesParented AutoRigPhase = "meshes_parented"
	// AutoRigPhaseControlsCreated はポーズ制約・シェイプ適用完了フェーズを表す。
	AutoRigPhaseControlsCreated AutoRigPhase = "controls_created"
	// AutoRigPhaseCollectionsAssigned はコレクション整理完了フェーズを表す。
	AutoRigPhaseCollectionsAssigned AutoRigPhase = "collections_assigned"
	// AutoRigPhaseArmatureLinked はアーマチュア接続完了フェーズを表す。
	AutoRigPhaseArmatureLinked AutoRigPhase = "armature_linked"
)

// AutoRigProgressEvent はリグ合成の進捗イベントを表す。
// Index と Total はフェーズ内で処理した件数と総数を示す。
type AutoRigProgressEvent struct {
	Phase  AutoRigPhase
	Detail string
	Index  int
	Total  int
}

// IAutoRigProgressReporter はリグ合成の進捗通知契約を表す。
type IAutoRigProgressReporter interface {
	// ReportAutoRigProgress はリグ合成進捗を通知する。
	ReportAutoRigProgress(event AutoRigProgressEvent)
}

// AutoRigRequest はリグ合成要求を表す。
type AutoRigRequest struct {
	Root             *model.BoxmanNode
	ProgressReporter IAutoRigProgressReporter
}

// AutoRigResult はリグ合成結果を表す。
type AutoRigResult struct {
	ArmatureName string
	BoneCount    int
	RiggerCount  int
	CommandCount int
}
