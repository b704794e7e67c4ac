// 指示: miu200521358
package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/miu200521358/mu_vrmik/pkg/adapter/animation"
	"github.com/miu200521358/mu_vrmik/pkg/adapter/avatar"
	"github.com/miu200521358/mu_vrmik/pkg/adapter/io_model/vrm"
	"github.com/miu200521358/mu_vrmik/pkg/adapter/io_scenario"
	"github.com/miu200521358/mu_vrmik/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_vrmik/pkg/adapter/tracking"
	"github.com/miu200521358/mu_vrmik/pkg/domain/model"
	"github.com/miu200521358/mu_vrmik/pkg/usecase/minteractor"
)

// solveOptions は solve コマンドの引数を保持する。
type solveOptions struct {
	vrmPath string
	preview bool
}

// newSolveCommand はシナリオ再生コマンドを生成する。
func newSolveCommand() *cobra.Command {
	opts := &solveOptions{}
	cmd := &cobra.Command{
		Use:   "solve <scenario.yaml>",
		Short: messages.HelpSolveShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, opts, args[0])
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.vrmPath, "vrm", "", "シナリオのモデル指定より優先するVRMファイルパス")
	f.BoolVar(&opts.preview, "preview", false, "骨格の複製に対して解決し、ゲートとアバターを変更しない")
	return cmd
}

// lineFrameReporter はフレームイベントを1行ずつ出力する。
type lineFrameReporter struct {
	out io.Writer
}

// ReportFrame はフレームイベントを出力する。
func (r lineFrameReporter) ReportFrame(event minteractor.FrameEvent) {
	switch event.Type {
	case minteractor.FrameEventTypeRigBuilt:
		fmt.Fprintf(r.out, "[mu_vrmik] frame=%d rig_built id=%s\n", event.Frame, event.RigID)
	case minteractor.FrameEventTypeGateChanged:
		fmt.Fprintf(r.out, "[mu_vrmik] frame=%d gate_changed open=%v\n", event.Frame, event.GateOpen)
	case minteractor.FrameEventTypeChainSkipped:
		fmt.Fprintf(r.out, "[mu_vrmik] frame=%d chain_skipped side=%s error=%s\n", event.Frame, event.Direction, event.ErrorID)
	}
}

// runSolve はシナリオのフレームを順に進めて結果を出力する。
func runSolve(cmd *cobra.Command, opts *solveOptions, scenarioPath string) error {
	out := cmd.OutOrStdout()
	if !io_scenario.CanLoad(scenarioPath) {
		return fmt.Errorf("%s: %s", messages.MessageScenarioRequired, scenarioPath)
	}
	scenario, err := io_scenario.LoadScenario(scenarioPath)
	if err != nil {
		return fmt.Errorf("%s: %w", messages.MessageLoadFailed, err)
	}

	tracker := tracking.NewScriptedTracker(scenario.TrackingFrames())
	registry := avatar.NewRegistry(scenario.Avatars...)
	stage := animation.NewPoseStage(scenario.Poses())
	uc := minteractor.NewIkUsecase(minteractor.IkUsecaseDeps{
		SkeletonReader: vrm.NewVrmRepository(),
		TrackingRoot:   tracker,
		TrackingStatus: tracker,
		AvatarRegistry: registry,
		AnimationStage: stage,
		FrameReporter:  lineFrameReporter{out: out},
		Config:         scenario.RigConfig(),
	})
	if _, err := loadWorkSkeleton(uc, scenario, opts.vrmPath); err != nil {
		return err
	}
	// 目標点をトラッキングへ接続してから最初のフレームを再生する。
	built, err := uc.BuildRig()
	if err != nil {
		return err
	}
	if !built {
		fmt.Fprintf(out, "[mu_vrmik] %s\n", messages.MessageRigNotBuilt)
	}

	start := time.Now()
	applied := 0
	for frame := 0; frame < tracker.Len(); frame++ {
		tracker.Advance(frame)
		stage.SetFrame(frame)

		var result *minteractor.FrameResult
		if opts.preview {
			_, result, err = uc.PreviewFrame(cmd.Context(), frame)
		} else {
			result, err = uc.Tick(cmd.Context(), frame)
		}
		if err != nil {
			return fmt.Errorf("フレーム処理に失敗しました: frame=%d: %w", frame, err)
		}
		if result.IkApplied {
			applied++
		}
		printFrameResult(out, result)
	}
	logInfo(messages.LogFrameDone, tracker.Len(), applied, time.Since(start))
	fmt.Fprintf(out, "[mu_vrmik] 完了: frames=%d applied=%d removed_graphs=%d\n", tracker.Len(), applied, registry.Removals())
	return nil
}

// printFrameResult は1フレーム分の結果を出力する。
func printFrameResult(out io.Writer, result *minteractor.FrameResult) {
	fmt.Fprintf(out, "[mu_vrmik] frame=%d gate=%v applied=%v\n", result.Frame, result.GateOpen, result.IkApplied)
	for _, direction := range model.BoneDirections() {
		outcome, ok := result.Chain(direction)
		if !ok || !outcome.Solved {
			continue
		}
		fmt.Fprintf(out, "  %s reachable=%v end=%s target=%s\n", direction, outcome.Reachable, outcome.End, outcome.Target)
	}
}
