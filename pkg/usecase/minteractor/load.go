// 指示: miu200521358
package minteractor

import (
	"fmt"

	"github.com/miu200521358/mu_vrmik/pkg/domain/model"
	"github.com/miu200521358/mu_vrmik/pkg/usecase/port/moutput"
)

// LoadSkeleton は骨格を読み込み、処理対象に設定する。
func (uc *IkUsecase) LoadSkeleton(rep moutput.ISkeletonReader, path string) (*model.Skeleton, error) {
	repo := rep
	if repo == nil {
		repo = uc.skeletonReader
	}
	if repo == nil {
		return nil, fmt.Errorf("骨格読み込みリポジトリが設定されていません")
	}
	if !repo.CanLoad(path) {
		return nil, fmt.Errorf("読み込めない形式です: %s", path)
	}
	skeleton, err := repo.Load(path)
	if err != nil {
		return nil, fmt.Errorf("骨格読み込みに失敗しました: %w", err)
	}
	if skeleton == nil {
		return nil, fmt.Errorf("骨格読み込み結果が空です")
	}
	if err := skeleton.Validate(); err != nil {
		return nil, fmt.Errorf("骨格の検証に失敗しました: %w", err)
	}
	if err := skeleton.Propagate(); err != nil {
		return nil, err
	}
	uc.SetSkeleton(skeleton)
	return skeleton, nil
}
