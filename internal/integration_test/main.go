// 指示: miu200521358
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/miu200521358/mu_vrmik/pkg/adapter/io_model/vrm"
	"github.com/miu200521358/mu_vrmik/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_vrmik/pkg/domain/ik"
	"github.com/miu200521358/mu_vrmik/pkg/domain/mmath"
	"github.com/miu200521358/mu_vrmik/pkg/domain/model"
	"github.com/miu200521358/mu_vrmik/pkg/infra/base/mlogging"
	"github.com/miu200521358/mu_vrmik/pkg/shared/base/logging"
	"github.com/miu200521358/mu_vrmik/pkg/usecase/minteractor"
)

const (
	defaultBatchFrames = 120
	// orbitRadius は肩前方を周回する目標点の半径。
	orbitRadius = 0.2
)

// batchConfig はバッチ検証の実行設定を表す。
type batchConfig struct {
	ModelPaths []string
	Frames     int
	Parallel   bool
	FailFast   bool
}

// batchEntry は1モデル分の検証入力を表す。
type batchEntry struct {
	Index      int
	SourcePath string
	ModelName  string
}

// batchResult は1モデル分の検証結果を表す。
type batchResult struct {
	Entry        batchEntry
	Status       string
	Joints       int
	RigBuilt     bool
	Duration     time.Duration
	FrameAverage time.Duration
	Skipped      int
	Err          error
	LoadInfo     string
}

// alwaysRunning は常に実行中を返すトラッキング状態を表す。
type alwaysRunning struct{}

// TrackingStatus は実行中を返す。
func (alwaysRunning) TrackingStatus() (model.TrackingStatus, bool) {
	return model.TRACKING_STATUS_RUNNING, true
}

// orbitTracker は肩前方の円周上に目標点を動かす。
type orbitTracker struct {
	left   *ik.Target
	right  *ik.Target
	center map[model.BoneDirection]mmath.Vec3
}

// AttachTargets は左右の目標点を受け取る。
func (t *orbitTracker) AttachTargets(left *ik.Target, right *ik.Target) {
	t.left = left
	t.right = right
}

// advance は指定フレームの目標位置を書き込む。
func (t *orbitTracker) advance(frame int, frames int) {
	angle := 2 * math.Pi * float64(frame) / float64(frames)
	offset := mmath.NewVec3(orbitRadius*math.Cos(angle), orbitRadius*math.Sin(angle), 0)
	t.left.SetPosition(t.center[model.BONE_DIRECTION_LEFT].Added(offset))
	t.right.SetPosition(t.center[model.BONE_DIRECTION_RIGHT].Added(offset))
}

// loadProgressCollector はVRM読込進捗イベントを収集する。
type loadProgressCollector struct {
	eventCounts map[vrm.LoadProgressEventType]int
	fileSize    int
	nodeCount   int
	humanBones  int
}

// main はVRM一覧を読み込み、腕IKのリグ構築とフレーム処理時間を検証する。
func main() {
	os.Exit(run())
}

// run は実行設定を解決して一括検証を実行し、終了コードを返す。
func run() int {
	config, err := parseBatchConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "設定解析に失敗しました: %v\n", err)
		return 2
	}
	logger := mlogging.NewLogger(os.Stderr)
	logging.SetDefaultLogger(logger.WithComponent("integration"))

	entries := buildBatchEntries(config.ModelPaths)
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "検証対象モデルがありません")
		return 2
	}

	results := executeBatch(config, entries)
	printBatchSummary(results)
	for _, result := range results {
		if result.Status == "failed" {
			return 1
		}
	}
	return 0
}

// parseBatchConfig はコマンドライン引数から実行設定を構築する。
func parseBatchConfig(args []string) (batchConfig, error) {
	fs := flag.NewFlagSet("integration_test", flag.ContinueOnError)
	frames := fs.Int("frames", defaultBatchFrames, "モデルごとのフレーム数")
	parallel := fs.Bool("parallel", false, "左右チェーンの位置解決を並行に行う")
	failFast := fs.Bool("fail-fast", false, "失敗時に即時終了する")
	if err := fs.Parse(args); err != nil {
		return batchConfig{}, err
	}
	if *frames <= 0 {
		return batchConfig{}, errors.New("frames は1以上が必要です")
	}
	if fs.NArg() == 0 {
		return batchConfig{}, errors.New("VRMファイルを1つ以上指定してください")
	}
	return batchConfig{
		ModelPaths: fs.Args(),
		Frames:     *frames,
		Parallel:   *parallel,
		FailFast:   *failFast,
	}, nil
}

// buildBatchEntries は入力パス一覧から検証対象エントリを生成する。
func buildBatchEntries(inputPaths []string) []batchEntry {
	entries := make([]batchEntry, 0, len(inputPaths))
	for i, rawPath := range inputPaths {
		if strings.TrimSpace(rawPath) == "" {
			continue
		}
		entries = append(entries, batchEntry{
			Index:      len(entries) + 1,
			SourcePath: normalizeInputPath(rawPath),
			ModelName:  resolveModelName(inputPaths[i]),
		})
	}
	return entries
}

// executeBatch は全モデルの検証を順次実行する。
func executeBatch(config batchConfig, entries []batchEntry) []batchResult {
	results := make([]batchResult, 0, len(entries))
	total := len(entries)
	for _, entry := range entries {
		fmt.Printf("[%d/%d] 検証開始: model=%s\n", entry.Index, total, entry.ModelName)
		result := solveModelEntry(config, entry)
		results = append(results, result)
		switch result.Status {
		case "succeeded":
			logging.DefaultLogger().Info(messages.LogBatchModelResult, entry.ModelName, result.RigBuilt, result.Joints, result.Duration.Round(time.Millisecond))
			fmt.Printf("[%d/%d] 検証成功: model=%s frame_avg=%s skipped=%d %s\n", entry.Index, total, entry.ModelName, result.FrameAverage, result.Skipped, result.LoadInfo)
		case "rig_incomplete":
			fmt.Printf("[%d/%d] 腕チェーン不足: model=%s joints=%d\n", entry.Index, total, entry.ModelName, result.Joints)
		case "skipped_missing":
			fmt.Printf("[%d/%d] 入力不足でスキップ: model=%s input=%s reason=%v\n", entry.Index, total, entry.ModelName, entry.SourcePath, result.Err)
		default:
			fmt.Printf("[%d/%d] 検証失敗: model=%s reason=%v\n", entry.Index, total, entry.ModelName, result.Err)
			if config.FailFast {
				return results
			}
		}
	}
	return results
}

// solveModelEntry は1モデル分の読込、リグ構築、フレーム処理を実行する。
func solveModelEntry(config batchConfig, entry batchEntry) batchResult {
	result := batchResult{Entry: entry, Status: "failed"}
	if _, err := os.Stat(entry.SourcePath); err != nil {
		result.Status = "skipped_missing"
		result.Err = err
		return result
	}

	startedAt := time.Now()
	collector := newLoadProgressCollector()
	repository := vrm.NewVrmRepository()
	repository.SetLoadProgressReporter(collector.reportLoadProgress)

	rigConfig := minteractor.NewRigConfig()
	rigConfig.ParallelChains = config.Parallel
	tracker := &orbitTracker{center: map[model.BoneDirection]mmath.Vec3{}}
	uc := minteractor.NewIkUsecase(minteractor.IkUsecaseDeps{
		TrackingRoot:   tracker,
		TrackingStatus: alwaysRunning{},
		Config:         rigConfig,
	})
	skeleton, err := uc.LoadSkeleton(repository, entry.SourcePath)
	if err != nil {
		result.Err = err
		return result
	}
	result.Joints = skeleton.Len()
	result.LoadInfo = collector.Summary()

	built, err := uc.BuildRig()
	if err != nil {
		result.Err = err
		return result
	}
	result.RigBuilt = built
	if !built {
		result.Status = "rig_incomplete"
		return result
	}
	for _, chain := range uc.Rig().Chains() {
		shoulder, err := skeleton.Get(chain.Joints[0])
		if err != nil {
			result.Err = err
			return result
		}
		tracker.center[chain.Direction] = shoulder.GlobalPosition.Added(mmath.NewVec3(0, 0, chain.TotalLength()*0.6))
	}

	framesStartedAt := time.Now()
	for frame := 0; frame < config.Frames; frame++ {
		tracker.advance(frame, config.Frames)
		frameResult, err := uc.Tick(context.Background(), frame)
		if err != nil {
			result.Err = fmt.Errorf("フレーム処理に失敗しました: frame=%d: %w", frame, err)
			return result
		}
		result.Skipped += len(frameResult.Skipped())
	}
	result.FrameAverage = time.Since(framesStartedAt) / time.Duration(config.Frames)
	result.Duration = time.Since(startedAt)
	result.Status = "succeeded"
	return result
}

// printBatchSummary は検証結果の集計を標準出力へ表示する。
func printBatchSummary(results []batchResult) {
	counts := map[string]int{}
	for _, result := range results {
		counts[result.Status]++
	}
	fmt.Printf(
		"バッチ検証サマリ: total=%d succeeded=%d failed=%d rig_incomplete=%d skipped_missing=%d\n",
		len(results),
		counts["succeeded"],
		counts["failed"],
		counts["rig_incomplete"],
		counts["skipped_missing"],
	)
}

// resolveModelName は入力パスから拡張子を除いたモデル名を返す。
func resolveModelName(path string) string {
	base := strings.TrimSpace(filepath.Base(path))
	ext := filepath.Ext(base)
	name := strings.TrimSpace(strings.TrimSuffix(base, ext))
	if name == "" {
		return "model"
	}
	return name
}

// normalizeInputPath は入力パスを実行環境向けに正規化する。
func normalizeInputPath(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ""
	}
	return filepath.Clean(convertWindowsPathToWsl(trimmed))
}

// convertWindowsPathToWsl は Linux 実行時に Windows パスを WSL パスへ変換する。
func convertWindowsPathToWsl(path string) string {
	if runtime.GOOS != "linux" {
		return path
	}
	if len(path) < 2 || path[1] != ':' {
		return path
	}
	drive := strings.ToLower(path[:1])
	rest := strings.ReplaceAll(path[2:], "\\", "/")
	if !strings.HasPrefix(rest, "/") {
		rest = "/" + rest
	}
	return filepath.ToSlash(filepath.Join("/mnt", drive) + rest)
}

// newLoadProgressCollector はVRM読込進捗収集器を生成する。
func newLoadProgressCollector() *loadProgressCollector {
	return &loadProgressCollector{eventCounts: map[vrm.LoadProgressEventType]int{}}
}

// reportLoadProgress はVRM読込進捗イベントを収集する。
func (collector *loadProgressCollector) reportLoadProgress(event vrm.LoadProgressEvent) {
	collector.eventCounts[event.Type]++
	if event.FileSizeBytes > collector.fileSize {
		collector.fileSize = event.FileSizeBytes
	}
	if event.NodeCount > collector.nodeCount {
		collector.nodeCount = event.NodeCount
	}
	if event.HumanBones > collector.humanBones {
		collector.humanBones = event.HumanBones
	}
}

// Summary は収集した読込進捗の要約文字列を返す。
func (collector *loadProgressCollector) Summary() string {
	if len(collector.eventCounts) == 0 {
		return ""
	}
	types := make([]string, 0, len(collector.eventCounts))
	for eventType := range collector.eventCounts {
		types = append(types, string(eventType))
	}
	sort.Strings(types)
	return fmt.Sprintf(
		"bytes=%d nodes=%d humanBones=%d stages=%s",
		collector.fileSize,
		collector.nodeCount,
		collector.humanBones,
		strings.Join(types, ","),
	)
}
