// 指示: PakkanenAnastacia
package boxman

import (
	"bytes"
	"compress/zlib"
	"encoding/hex"
	"fmt"
	"io"
)

// CompressString は UTF-8 文字列を zlib 圧縮し 16 進文字列にする。
func CompressString(element string) (string, error) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write([]byte(element)); err != nil {
		return "", fmt.Errorf("zlib 圧縮に失敗しました: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("zlib 圧縮に失敗しました: %w", err)
	}
	return hex.EncodeToString(buf.Bytes()), nil
}

// DecompressString は 16 進文字列を zlib 展開して UTF-8 文字列に戻す。
func DecompressString(element string) (string, error) {
	raw, err := hex.DecodeString(element)
	if err != nil {
		return "", fmt.Errorf("16進表現の解読に失敗しました: %w", err)
	}
	r, err := zlib.NewReader(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("zlib 展開に失敗しました: %w", err)
	}
	defer r.Close()
	decoded, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("zlib 展開に失敗しました: %w", err)
	}
	return string(decoded), nil
}
