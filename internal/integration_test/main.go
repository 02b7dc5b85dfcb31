// 指示: PakkanenAnastacia
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/PakkanenAnastacia/MrBoxman/pkg/adapter/io_model/boxman"
	"github.com/PakkanenAnastacia/MrBoxman/pkg/adapter/scene/memscene"
	"github.com/PakkanenAnastacia/MrBoxman/pkg/usecase/minteractor"
)

// batchConfig はバッチリグ合成の実行設定を表す。
type batchConfig struct {
	InputRoot string
	DryRun    bool
	FailFast  bool
}

// rigEntry は1ツリー分の合成入力情報を表す。
type rigEntry struct {
	Index      int
	SourcePath string
	ObjectName string
}

// rigResult は1ツリー分の合成結果を表す。
type rigResult struct {
	Entry         rigEntry
	Status        string
	Duration      time.Duration
	Err           error
	PhaseInfo     string
	ArmatureName  string
	BoneCount     int
	CommandCount  int
	SceneOpsCount int
}

// phaseProgressCollector は AutoRig の進捗イベントを収集する。
type phaseProgressCollector struct {
	eventCounts map[minteractor.AutoRigPhase]int
	boneMax     int
	commandSum  int
}

// main は .bxmo ツリーの一括リグ合成検証を実行する。
func main() {
	os.Exit(run())
}

// run は実行設定を解決して一括合成を実行し、終了コードを返す。
func run() int {
	config, err := parseBatchConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "設定解析に失敗しました: %v\n", err)
		return 2
	}
	entries, err := buildRigEntries(config.InputRoot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "入力探索に失敗しました: %v\n", err)
		return 2
	}
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "合成対象ツリーがありません")
		return 2
	}

	results := executeBatchRig(config, entries)
	printBatchSummary(results)

	for _, result := range results {
		if result.Status == "failed" {
			return 1
		}
	}
	return 0
}

// parseBatchConfig はコマンドライン引数から実行設定を構築する。
func parseBatchConfig() (batchConfig, error) {
	inputRoot := flag.String("input-root", "", "合成対象の .bxmo を探すルートディレクトリ")
	dryRun := flag.Bool("dry-run", false, "実合成せず、入力解決のみ表示する")
	failFast := flag.Bool("fail-fast", false, "失敗時に即時終了する")
	flag.Parse()

	trimmedInputRoot := strings.TrimSpace(*inputRoot)
	if trimmedInputRoot == "" {
		return batchConfig{}, errors.New("input-root が空です")
	}
	return batchConfig{
		InputRoot: filepath.Clean(trimmedInputRoot),
		DryRun:    *dryRun,
		FailFast:  *failFast,
	}, nil
}

// buildRigEntries は入力ルート以下の .bxmo を収集して合成対象を生成する。
func buildRigEntries(inputRoot string) ([]rigEntry, error) {
	repository := boxman.NewBoxmanRepository()
	var entries []rigEntry
	err := filepath.WalkDir(inputRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !repository.CanLoad(path) {
			return nil
		}
		entries = append(entries, rigEntry{
			Index:      len(entries) + 1,
			SourcePath: path,
			ObjectName: repository.InferName(path),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// executeBatchRig は全ツリーの合成処理を順次実行する。
func executeBatchRig(config batchConfig, entries []rigEntry) []rigResult {
	results := make([]rigResult, 0, len(entries))
	repository := boxman.NewBoxmanRepository()

	total := len(entries)
	for _, entry := range entries {
		fmt.Printf("[%d/%d] 合成開始: object=%s\n", entry.Index, total, entry.ObjectName)
		result := rigTreeEntry(repository, config, entry)
		results = append(results, result)
		switch result.Status {
		case "succeeded":
			fmt.Printf("[%d/%d] 合成成功: object=%s armature=%s bones=%d commands=%d ops=%d elapsed=%s\n",
				entry.Index, total, entry.ObjectName, result.ArmatureName,
				result.BoneCount, result.CommandCount, result.SceneOpsCount,
				result.Duration.Round(time.Millisecond))
			if strings.TrimSpace(result.PhaseInfo) != "" {
				fmt.Printf("[%d/%d] AutoRig進捗: %s\n", entry.Index, total, result.PhaseInfo)
			}
		case "dry_run":
			fmt.Printf("[%d/%d] DRY-RUN: object=%s input=%s\n", entry.Index, total, entry.ObjectName, entry.SourcePath)
		default:
			fmt.Printf("[%d/%d] 合成失敗: object=%s reason=%v\n", entry.Index, total, entry.ObjectName, result.Err)
			if config.FailFast {
				return results
			}
		}
	}
	return results
}

// rigTreeEntry は1ツリー分の合成を実行する。
func rigTreeEntry(repository *boxman.BoxmanRepository, config batchConfig, entry rigEntry) rigResult {
	result := rigResult{
		Entry:  entry,
		Status: "failed",
	}
	if config.DryRun {
		result.Status = "dry_run"
		return result
	}

	root, err := repository.Load(entry.SourcePath)
	if err != nil {
		result.Err = fmt.Errorf("ツリー読み込みに失敗しました: %w", err)
		return result
	}

	startedAt := time.Now()
	scene := memscene.NewMemScene()
	usecase := minteractor.NewAutoRigUsecase(scene)
	if err := usecase.InsertTree(root); err != nil {
		result.Err = fmt.Errorf("メッシュ挿入に失敗しました: %w", err)
		return result
	}

	progressCollector := newPhaseProgressCollector()
	rigged, err := usecase.AutoRig(minteractor.AutoRigRequest{
		Root:             root,
		ProgressReporter: progressCollector,
	})
	if err != nil {
		result.Err = fmt.Errorf("AutoRigに失敗しました: %w", err)
		return result
	}

	result.Status = "succeeded"
	result.Duration = time.Since(startedAt)
	result.PhaseInfo = progressCollector.Summary()
	result.ArmatureName = rigged.ArmatureName
	result.BoneCount = rigged.BoneCount
	result.CommandCount = rigged.CommandCount
	result.SceneOpsCount = len(scene.Ops())
	return result
}

// printBatchSummary は合成結果の集計を標準出力へ表示する。
func printBatchSummary(results []rigResult) {
	succeeded := 0
	failed := 0
	dryRun := 0
	for _, result := range results {
		switch result.Status {
		case "succeeded":
			succeeded++
		case "dry_run":
			dryRun++
		default:
			failed++
		}
	}
	fmt.Printf(
		"バッチ合成サマリ: total=%d succeeded=%d failed=%d dry_run=%d\n",
		len(results),
		succeeded,
		failed,
		dryRun,
	)
}

// newPhaseProgressCollector は AutoRig 進捗収集器を生成する。
func newPhaseProgressCollector() *phaseProgressCollector {
	return &phaseProgressCollector{
		eventCounts: map[minteractor.AutoRigPhase]int{},
	}
}

// ReportAutoRigProgress は AutoRig の進捗イベントを収集する。
func (collector *phaseProgressCollector) ReportAutoRigProgress(event minteractor.AutoRigProgressEvent) {
	if collector == nil {
		return
	}
	if collector.eventCounts == nil {
		collector.eventCounts = map[minteractor.AutoRigPhase]int{}
	}
	collector.eventCounts[event.Phase]++
	if event.Phase == minteractor.AutoRigPhaseBonesCreated && event.Total > collector.boneMax {
		collector.boneMax = event.Total
	}
	if event.Index > 0 {
		collector.commandSum++
	}
}

// Summary は収集した AutoRig 進捗の要約文字列を返す。
func (collector *phaseProgressCollector) Summary() string {
	if collector == nil || len(collector.eventCounts) == 0 {
		return ""
	}
	phases := make([]string, 0, len(collector.eventCounts))
	for phase := range collector.eventCounts {
		phases = append(phases, string(phase))
	}
	sort.Strings(phases)
	return fmt.Sprintf(
		"events=%d boneMax=%d applied=%d phases=%s",
		len(collector.eventCounts),
		collector.boneMax,
		collector.commandSum,
		strings.Join(phases, ","),
	)
}
