// 指示: PakkanenAnastacia
package boxman

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PakkanenAnastacia/MrBoxman/pkg/domain/model"
)

const (
	// ExtObject は単体オブジェクトファイルの拡張子。
	ExtObject = ".bxmo"
	// ExtLibrary はテンプレートライブラリファイルの拡張子。
	ExtLibrary = ".bxml"
	// ExtJSON は圧縮しない素の JSON ファイルの拡張子。
	ExtJSON = ".json"
)

// WrongFileExtensionError は想定外の拡張子を開こうとしたときのエラーを表す。
type WrongFileExtensionError struct {
	Path string
}

// Error はエラーメッセージを返す。
func (e *WrongFileExtensionError) Error() string {
	return fmt.Sprintf("ファイル拡張子が不正です: %s", e.Path)
}

// BoxmanRepository はボックスマンツリーのファイル入出力を担う。
// .bxmo は zlib 圧縮 JSON の 16 進表現、.json は素の JSON を扱う。
type BoxmanRepository struct{}

// NewBoxmanRepository はリポジトリを生成する。
func NewBoxmanRepository() *BoxmanRepository {
	return &BoxmanRepository{}
}

// CanLoad は拡張子に応じて読み込み可否を判定する。
func (r *BoxmanRepository) CanLoad(path string) bool {
	ext := filepath.Ext(path)
	return strings.EqualFold(ext, ExtObject) || strings.EqualFold(ext, ExtJSON)
}

// InferName はパスから表示名を推定する。
func (r *BoxmanRepository) InferName(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == "" {
		return base
	}
	return strings.TrimSuffix(base, ext)
}

// Load はボックスマンツリーを読み込む。
func (r *BoxmanRepository) Load(path string) (*model.BoxmanNode, error) {
	if !r.CanLoad(path) {
		return nil, &WrongFileExtensionError{Path: path}
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ファイルの読み取りに失敗しました: %w", err)
	}

	jsonText := string(raw)
	if strings.EqualFold(filepath.Ext(path), ExtObject) {
		jsonText, err = DecompressString(strings.TrimSpace(string(raw)))
		if err != nil {
			return nil, fmt.Errorf("%s の展開に失敗しました: %w", filepath.Base(path), err)
		}
	}

	var dto boxmanDTO
	if err := json.Unmarshal([]byte(jsonText), &dto); err != nil {
		return nil, fmt.Errorf("%s の解析に失敗しました: %w", filepath.Base(path), err)
	}
	return dto.toNode()
}

// Save はボックスマンツリーを書き出す。拡張子に応じて圧縮の有無が変わる。
func (r *BoxmanRepository) Save(path string, node *model.BoxmanNode) error {
	if node == nil {
		return fmt.Errorf("保存対象ツリーが未設定です")
	}
	if !r.CanLoad(path) {
		return &WrongFileExtensionError{Path: path}
	}

	serialized, err := json.Marshal(dtoFromNode(node))
	if err != nil {
		return fmt.Errorf("ツリーの直列化に失敗しました: %w", err)
	}

	out := string(serialized)
	if strings.EqualFold(filepath.Ext(path), ExtObject) {
		out, err = CompressString(out)
		if err != nil {
			return fmt.Errorf("%s の圧縮に失敗しました: %w", filepath.Base(path), err)
		}
	}

	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("ファイルの書き込みに失敗しました: %w", err)
	}
	return nil
}
