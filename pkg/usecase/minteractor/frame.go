// 指示: miu200521358
package minteractor

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/miu200521358/mu_vrmik/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_vrmik/pkg/domain/ik"
	"github.com/miu200521358/mu_vrmik/pkg/domain/model"
	"github.com/miu200521358/mu_vrmik/pkg/domain/model/merrors"
	"github.com/miu200521358/mu_vrmik/pkg/shared/base/logging"
	"github.com/miu200521358/mu_vrmik/pkg/shared/base/merr"
)

// chainPlan は位置解決段の1チェーン分の入出力を表す。
type chainPlan struct {
	chain    *ik.Chain
	target   ik.Target
	current  ik.ChainPoints
	solution ik.Solution
	err      error
}

// Tick は1フレーム分の処理を進める。
// リグ構築の試行、ゲート更新、アニメーション段の順に進め、ゲートが開いていればIK段を実行する。
func (uc *IkUsecase) Tick(ctx context.Context, frame int) (*FrameResult, error) {
	built, err := uc.BuildRig()
	if err != nil {
		return nil, err
	}

	frameCtx := &FrameContext{Frame: frame, Gate: uc.gate}
	uc.UpdateGate(frameCtx)
	uc.gate = frameCtx.Gate

	if uc.animationStage != nil && uc.skeleton != nil {
		if err := uc.animationStage.ApplyAnimation(uc.skeleton); err != nil {
			return nil, fmt.Errorf("アニメーション段に失敗しました: %w", err)
		}
	}

	result := &FrameResult{
		Frame:       frame,
		RigBuilt:    built,
		GateOpen:    frameCtx.Gate.Open(),
		GateChanged: frameCtx.GateChanged,
	}
	if built && frameCtx.Gate.Open() {
		if err := uc.RunIkStage(ctx, uc.skeleton, result); err != nil {
			return nil, err
		}
	}
	logIkVerbose(logging.VERBOSE_INDEX_FRAME, messages.LogFrameVerbose, frame, result.GateOpen, result.IkApplied)
	return result, nil
}

// RunIkStage は骨格を休息姿勢へ戻し、左右のチェーンを解決して回転を書き戻す。
func (uc *IkUsecase) RunIkStage(ctx context.Context, skeleton *model.Skeleton, result *FrameResult) error {
	rig := uc.rig
	if rig == nil || skeleton == nil {
		return nil
	}
	skipped, err := ResetChains(skeleton, rig)
	if err != nil {
		return err
	}

	plans := make([]*chainPlan, 0, 2)
	for _, chain := range rig.Chains() {
		plan := &chainPlan{chain: chain, target: *rig.Target(chain.Direction)}
		if skipErr, ok := skipped[chain.Direction]; ok {
			plan.err = skipErr
		}
		plans = append(plans, plan)
	}

	if err := uc.solvePositions(ctx, rig, skeleton, plans); err != nil {
		return err
	}

	for _, plan := range plans {
		outcome := ChainOutcome{Direction: plan.chain.Direction, Target: plan.target.Position}
		if plan.err == nil {
			degenerate, err := ik.SynthesizeRotations(skeleton, plan.chain, plan.current, plan.solution.Points)
			if err != nil {
				plan.err = merrors.NewChainJointMissingError(plan.chain.Direction.String(), err)
			}
			outcome.Degenerate = degenerate
		}
		if plan.err != nil {
			outcome.Err = plan.err
			outcome.ErrorID = merr.ExtractErrorID(plan.err)
			logIkWarn(messages.LogChainSkipped, model.IkWarningChainSkipped, result.Frame, plan.chain.Direction, plan.err)
			reportFrame(uc.frameReporter, FrameEvent{
				Type:      FrameEventTypeChainSkipped,
				Frame:     result.Frame,
				RigID:     rig.ID,
				Direction: plan.chain.Direction,
				GateOpen:  result.GateOpen,
				ErrorID:   outcome.ErrorID,
			})
			result.Chains = append(result.Chains, outcome)
			continue
		}

		logSynthesizedRotations(skeleton, plan.chain)
		outcome.Solved = true
		outcome.Reachable = plan.solution.Reachable
		outcome.End = plan.solution.End()
		if plan.solution.Degenerate || outcome.Degenerate > 0 {
			logIkDebug(messages.LogChainDegenerate, model.IkWarningDegenerateDirection, result.Frame, plan.chain.Direction, outcome.Degenerate)
		}
		logIkDebug(messages.LogChainSolved, result.Frame, plan.chain.Direction, outcome.Reachable, outcome.End, outcome.Target)
		reportFrame(uc.frameReporter, FrameEvent{
			Type:      FrameEventTypeChainSolved,
			Frame:     result.Frame,
			RigID:     rig.ID,
			Direction: plan.chain.Direction,
			GateOpen:  result.GateOpen,
		})
		result.Chains = append(result.Chains, outcome)
		result.IkApplied = true
	}

	if err := skeleton.Propagate(); err != nil {
		return fmt.Errorf("IK後の姿勢更新に失敗しました: %w", err)
	}
	return nil
}

// solvePositions は各チェーンの位置解決段を実行する。骨格は読み取りのみ行う。
func (uc *IkUsecase) solvePositions(ctx context.Context, rig *ik.Rig, skeleton *model.Skeleton, plans []*chainPlan) error {
	if !uc.config.ParallelChains {
		for _, plan := range plans {
			if err := ctx.Err(); err != nil {
				return err
			}
			solveChainPositions(rig, skeleton, plan)
		}
		return nil
	}

	group, groupCtx := errgroup.WithContext(ctx)
	for _, plan := range plans {
		plan := plan
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			solveChainPositions(rig, skeleton, plan)
			return nil
		})
	}
	return group.Wait()
}

// solveChainPositions は1チェーンの現在点を読み、FABRIKで目標点を求める。
func solveChainPositions(rig *ik.Rig, skeleton *model.Skeleton, plan *chainPlan) {
	if plan.err != nil {
		return
	}
	current, err := plan.chain.CurrentPoints(skeleton)
	if err != nil {
		plan.err = merrors.NewChainJointMissingError(plan.chain.Direction.String(), err)
		return
	}
	plan.current = current
	plan.solution = ik.SolveFabrik(current, plan.target.Position, plan.chain.Lengths, ik.SolveOptions{
		Pole: rig.Pole(plan.chain.Direction),
	})
	logIkVerbose(logging.VERBOSE_INDEX_FABRIK, messages.LogFabrikVerbose, plan.chain.Direction, plan.solution.Reachable, plan.solution.End())
}

// logSynthesizedRotations は書き戻したローカル回転を冗長ログへ出力する。
func logSynthesizedRotations(skeleton *model.Skeleton, chain *ik.Chain) {
	logger := logging.DefaultLogger()
	if logger == nil || !logger.IsVerboseEnabled(logging.VERBOSE_INDEX_SYNTHESIZE) {
		return
	}
	for i := 0; i < ik.CHAIN_SEGMENT_COUNT; i++ {
		joint, err := skeleton.Get(chain.SolveJoint(i))
		if err != nil {
			continue
		}
		logger.Verbose(logging.VERBOSE_INDEX_SYNTHESIZE, messages.LogSynthesizeVerbose, chain.Direction, joint.Index, joint.LocalRotation)
	}
}
