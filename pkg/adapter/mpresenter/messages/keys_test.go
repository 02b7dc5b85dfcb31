// 指示: PakkanenAnastacia
package messages

import "testing"

func TestMessageKeysAreDefinedAndUnique(t *testing.T) {
	keys := []string{
		LabelInputPath,
		LabelLibraryPath,
		LabelTemplateName,
		MessageLoadFailed,
		MessageRigFailed,
		MessageInputRequired,
		MessageTemplateMissing,
		LogLoadSuccess,
		LogMirrorApplied,
		LogRigSuccess,
		LogProgress,
		LogPhase,
	}

	seen := map[string]struct{}{}
	for _, key := range keys {
		if key == "" {
			t.Fatalf("key should not be empty")
		}
		if _, exists := seen[key]; exists {
			t.Fatalf("key should be unique: %s", key)
		}
		seen[key] = struct{}{}
	}
}
