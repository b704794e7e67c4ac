// 指示: miu200521358
package io_scenario

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/miu200521358/mu_vrmik/pkg/adapter/io_common"
	"github.com/miu200521358/mu_vrmik/pkg/domain/ik"
)

// CanLoad は拡張子に応じて読み込み可否を判定する。
func CanLoad(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// LoadScenario はシナリオファイルを読み込み、既定値の補完と検証を行う。
func LoadScenario(path string) (*Scenario, error) {
	if !CanLoad(path) {
		return nil, io_common.NewIoExtInvalid(path, nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, io_common.NewIoFileNotFound(path, err)
		}
		return nil, io_common.NewIoParseFailed("シナリオの読み取りに失敗しました: %s", err, path)
	}
	scenario, err := ParseScenario(data)
	if err != nil {
		return nil, err
	}
	scenario.baseDir = filepath.Dir(path)
	if scenario.Name == "" {
		scenario.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return scenario, nil
}

// ParseScenario はYAMLバイト列からシナリオを生成する。未知のキーは拒否する。
func ParseScenario(data []byte) (*Scenario, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	scenario := &Scenario{}
	if err := decoder.Decode(scenario); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io_common.NewIoParseFailed("シナリオが空です", nil)
		}
		return nil, io_common.NewIoParseFailed("シナリオYAMLの解析に失敗しました", err)
	}
	scenario.applyDefaults()
	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	return scenario, nil
}

// applyDefaults は省略された設定へ既定値を補う。
func (s *Scenario) applyDefaults() {
	if s.Rig.GraspOffset == nil {
		graspOffset := ik.DEFAULT_GRASP_OFFSET
		s.Rig.GraspOffset = &graspOffset
	}
	if s.Rig.PoleVector.Weight == nil {
		weight := ik.DEFAULT_POLE_WEIGHT
		s.Rig.PoleVector.Weight = &weight
	}
	defaultPole := ik.NewPoleVector().Direction
	if len(s.Rig.PoleVector.Left) == 0 {
		s.Rig.PoleVector.Left = []float64{defaultPole.X, defaultPole.Y, defaultPole.Z}
	}
	if len(s.Rig.PoleVector.Right) == 0 {
		s.Rig.PoleVector.Right = []float64{defaultPole.X, defaultPole.Y, defaultPole.Z}
	}
}
