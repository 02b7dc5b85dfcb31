// 指示: PakkanenAnastacia
package moutput

import "github.com/PakkanenAnastacia/MrBoxman/pkg/domain/model"

// ITreeReader はボックスマンツリーの読み込み契約を表す。
type ITreeReader interface {
	// CanLoad は拡張子に応じて読み込み可否を判定する。
	CanLoad(path string) bool
	// InferName はパスからオブジェクト名を推定する。
	InferName(path string) string
	// Load はツリーを読み込む。
	Load(path string) (*model.BoxmanNode, error)
}

// ITreeWriter はボックスマンツリーの書き込み契約を表す。
type ITreeWriter interface {
	// Save はツリーを書き出す。
	Save(path string, root *model.BoxmanNode) error
}
