// 指示: miu200521358
package minteractor

import (
	"fmt"

	"github.com/miu200521358/mu_vrmik/pkg/domain/ik"
	"github.com/miu200521358/mu_vrmik/pkg/domain/model"
	"github.com/miu200521358/mu_vrmik/pkg/domain/model/merrors"
)

// ResetChains は姿勢を更新し、チェーン関節を休息回転へ戻して再度姿勢を更新する。
// 関節を参照できないチェーンはエラーとして返し、他方のチェーンは処理を続ける。
func ResetChains(skeleton *model.Skeleton, rig *ik.Rig) (map[model.BoneDirection]error, error) {
	if err := skeleton.Propagate(); err != nil {
		return nil, fmt.Errorf("リセット前の姿勢更新に失敗しました: %w", err)
	}
	skipped := make(map[model.BoneDirection]error)
	for _, chain := range rig.Chains() {
		if err := rig.RestPose.Restore(skeleton, chain); err != nil {
			skipped[chain.Direction] = merrors.NewChainJointMissingError(chain.Direction.String(), err)
		}
	}
	if err := skeleton.Propagate(); err != nil {
		return nil, fmt.Errorf("リセット後の姿勢更新に失敗しました: %w", err)
	}
	return skipped, nil
}
