// 指示: miu200521358
package minteractor

import (
	"context"
	"fmt"

	"github.com/miu200521358/mu_vrmik/pkg/domain/model"
)

// PreviewFrame は骨格の複製に対してIK段を実行し、複製と結果を返す。
// ゲートの更新やアバターへの副作用は起こさず、処理対象の骨格も変更しない。
func (uc *IkUsecase) PreviewFrame(ctx context.Context, frame int) (*model.Skeleton, *FrameResult, error) {
	if uc.skeleton == nil {
		return nil, nil, fmt.Errorf("プレビュー対象の骨格が設定されていません")
	}
	built, err := uc.BuildRig()
	if err != nil {
		return nil, nil, err
	}
	preview, err := uc.skeleton.Copy()
	if err != nil {
		return nil, nil, fmt.Errorf("骨格の複製に失敗しました: %w", err)
	}

	result := &FrameResult{Frame: frame, RigBuilt: built, GateOpen: uc.gate.Open()}
	if !built {
		return preview, result, nil
	}
	if uc.animationStage != nil {
		if err := uc.animationStage.ApplyAnimation(preview); err != nil {
			return nil, nil, fmt.Errorf("アニメーション段に失敗しました: %w", err)
		}
	}
	if err := uc.RunIkStage(ctx, preview, result); err != nil {
		return nil, nil, err
	}
	return preview, result, nil
}
