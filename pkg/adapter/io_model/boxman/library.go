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

// NotInLibraryError はライブラリに存在しないキーを引いたときのエラーを表す。
type NotInLibraryError struct {
	Key string
}

// Error はエラーメッセージを返す。
func (e *NotInLibraryError) Error() string {
	return fmt.Sprintf("テンプレート %s はライブラリに登録されていません", e.Key)
}

// TemplateLibrary はテンプレート名と圧縮済み直列化の辞書を表す。
// 各エントリは .bxmo と同じ形式で個別に圧縮される。
type TemplateLibrary struct {
	LibraryName        string            `json:"library_name"`
	TemplateObjects    map[string]string `json:"template_objects"`
	ObjectDescriptions map[string]string `json:"object_descriptions"`
}

// NewTemplateLibrary は空のテンプレートライブラリを生成する。
func NewTemplateLibrary(name string) *TemplateLibrary {
	return &TemplateLibrary{
		LibraryName:        name,
		TemplateObjects:    map[string]string{},
		ObjectDescriptions: map[string]string{},
	}
}

// Keys は登録済みテンプレート名を返す。
func (l *TemplateLibrary) Keys() []string {
	keys := make([]string, 0, len(l.TemplateObjects))
	for key := range l.TemplateObjects {
		keys = append(keys, key)
	}
	return keys
}

// Get はテンプレートを展開して独立したツリーとして返す。
func (l *TemplateLibrary) Get(key string) (*model.BoxmanNode, error) {
	raw, ok := l.TemplateObjects[key]
	if !ok {
		return nil, &NotInLibraryError{Key: key}
	}
	jsonText, err := DecompressString(raw)
	if err != nil {
		return nil, fmt.Errorf("テンプレート %s の展開に失敗しました: %w", key, err)
	}
	var dto boxmanDTO
	if err := json.Unmarshal([]byte(jsonText), &dto); err != nil {
		return nil, fmt.Errorf("テンプレート %s の解析に失敗しました: %w", key, err)
	}
	return dto.toNode()
}

// Put はツリーを圧縮してライブラリへ登録する。同名エントリは置き換える。
func (l *TemplateLibrary) Put(key string, node *model.BoxmanNode, description string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("テンプレート名が未指定です")
	}
	if node == nil {
		return fmt.Errorf("登録対象ツリーが未設定です")
	}
	serialized, err := json.Marshal(dtoFromNode(node))
	if err != nil {
		return fmt.Errorf("テンプレート %s の直列化に失敗しました: %w", key, err)
	}
	compressed, err := CompressString(string(serialized))
	if err != nil {
		return fmt.Errorf("テンプレート %s の圧縮に失敗しました: %w", key, err)
	}
	l.TemplateObjects[key] = compressed
	l.ObjectDescriptions[key] = description
	return nil
}

// LoadLibrary は .bxml ファイルからテンプレートライブラリを読み込む。
func (r *BoxmanRepository) LoadLibrary(path string) (*TemplateLibrary, error) {
	if !strings.EqualFold(filepath.Ext(path), ExtLibrary) {
		return nil, &WrongFileExtensionError{Path: path}
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ライブラリの読み取りに失敗しました: %w", err)
	}
	lib := NewTemplateLibrary("")
	if err := json.Unmarshal(raw, lib); err != nil {
		return nil, fmt.Errorf("%s の解析に失敗しました: %w", filepath.Base(path), err)
	}
	if lib.TemplateObjects == nil {
		lib.TemplateObjects = map[string]string{}
	}
	if lib.ObjectDescriptions == nil {
		lib.ObjectDescriptions = map[string]string{}
	}
	return lib, nil
}

// SaveLibrary はテンプレートライブラリを .bxml ファイルへ書き出す。
// 辞書本体は圧縮せず、読める JSON のまま保存する。
func (r *BoxmanRepository) SaveLibrary(path string, lib *TemplateLibrary) error {
	if lib == nil {
		return fmt.Errorf("保存対象ライブラリが未設定です")
	}
	if !strings.EqualFold(filepath.Ext(path), ExtLibrary) {
		return &WrongFileExtensionError{Path: path}
	}
	serialized, err := json.MarshalIndent(lib, "", "    ")
	if err != nil {
		return fmt.Errorf("ライブラリの直列化に失敗しました: %w", err)
	}
	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("ライブラリの書き込みに失敗しました: %w", err)
	}
	return nil
}
