// 指示: miu200521358
package main

import (
	"fmt"

	"github.com/miu200521358/mu_vrmik/pkg/adapter/io_model/vrm"
	"github.com/miu200521358/mu_vrmik/pkg/adapter/io_scenario"
	"github.com/miu200521358/mu_vrmik/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_vrmik/pkg/domain/model"
	"github.com/miu200521358/mu_vrmik/pkg/shared/base/logging"
	"github.com/miu200521358/mu_vrmik/pkg/usecase/minteractor"
)

// loadWorkSkeleton は処理対象の骨格を読み込み、ユースケースへ設定する。
// VRMパス、シナリオのモデル、シナリオのインライン骨格の順に採用する。
func loadWorkSkeleton(uc *minteractor.IkUsecase, scenario *io_scenario.Scenario, vrmPath string) (*model.Skeleton, error) {
	modelPath := vrmPath
	if modelPath == "" {
		modelPath = scenario.ModelPath()
	}
	if modelPath != "" {
		skeleton, err := uc.LoadSkeleton(vrm.NewVrmRepository(), modelPath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", messages.MessageLoadFailed, err)
		}
		logInfo(messages.LogLoadSuccess, skeleton.Name, skeleton.Len())
		return skeleton, nil
	}
	if !scenario.HasSkeleton() {
		return nil, fmt.Errorf("%s", messages.MessageSkeletonRequired)
	}
	skeleton, err := scenario.BuildSkeleton()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", messages.MessageLoadFailed, err)
	}
	uc.SetSkeleton(skeleton)
	logInfo(messages.LogLoadSuccess, skeleton.Name, skeleton.Len())
	return skeleton, nil
}

// loadSource はシナリオまたはモデルのパスから、シナリオと骨格パスを解決する。
func loadSource(path string) (*io_scenario.Scenario, string, error) {
	if io_scenario.CanLoad(path) {
		scenario, err := io_scenario.LoadScenario(path)
		if err != nil {
			return nil, "", fmt.Errorf("%s: %w", messages.MessageLoadFailed, err)
		}
		return scenario, "", nil
	}
	return &io_scenario.Scenario{}, path, nil
}

// logInfo は既定ロガーへ通常ログを出力する。
func logInfo(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Info(format, params...)
}
