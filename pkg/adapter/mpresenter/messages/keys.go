// 指示: PakkanenAnastacia
// Package messages はCLI表示に使うメッセージキーを提供する。
package messages

// メッセージキー一覧。
const (
	LabelInputPath    = "入力ファイル"
	LabelLibraryPath  = "ライブラリ"
	LabelTemplateName = "テンプレート名"
	LabelExportPath   = "ツリーの書き出し先"

	MessageLoadFailed      = "読み込み失敗"
	MessageRigFailed       = "リグ合成失敗"
	MessageExportFailed    = "ツリー書き出し失敗"
	MessageInputRequired   = "入力の .bxmo ファイルか、ライブラリとテンプレート名を指定してください"
	MessageTemplateMissing = "ライブラリ指定時はテンプレート名も指定してください"

	LogLoadSuccess   = "ツリー読み込み成功: %s"
	LogMirrorApplied = "向きを左右反転しました: %s"
	LogExportSuccess = "ツリーを書き出しました: %s"
	LogRigSuccess    = "リグ合成成功: armature=%s bones=%d riggers=%d commands=%d"
	LogProgress      = "[MrBoxman] %s %s (%d/%d)"
	LogPhase         = "[MrBoxman] %s %s"
)
