// 指示: miu200521358
package vrm

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/miu200521358/mu_vrmik/pkg/adapter/io_common"
)

// VrmVersion はVRM拡張のバージョンを表す。
type VrmVersion string

const (
	// VRM_VERSION_0 は VRM 0.x を表す。
	VRM_VERSION_0 VrmVersion = "0.x"
	// VRM_VERSION_1 は VRM 1.0 を表す。
	VRM_VERSION_1 VrmVersion = "1.0"
)

// vrm0Extension はVRM0拡張の必要要素を表す。
type vrm0Extension struct {
	ExporterVersion string       `json:"exporterVersion"`
	Humanoid        vrm0Humanoid `json:"humanoid"`
}

// vrm0Humanoid はVRM0 humanoid要素を表す。
type vrm0Humanoid struct {
	HumanBones []vrm0HumanBone `json:"humanBones"`
}

// vrm0HumanBone はVRM0 humanBones要素を表す。
type vrm0HumanBone struct {
	Bone string `json:"bone"`
	Node int    `json:"node"`
}

// vrm1Extension はVRM1拡張の必要要素を表す。
type vrm1Extension struct {
	SpecVersion string       `json:"specVersion"`
	Humanoid    vrm1Humanoid `json:"humanoid"`
}

// vrm1Humanoid はVRM1 humanoid要素を表す。
type vrm1Humanoid struct {
	HumanBones map[string]vrm1HumanBone `json:"humanBones"`
}

// vrm1HumanBone はVRM1 humanBones要素を表す。
type vrm1HumanBone struct {
	Node *int `json:"node"`
}

// detectVrmVersion は拡張宣言から優先バージョンを判定する。
func detectVrmVersion(doc *gltfDocument) VrmVersion {
	hasVrm1 := containsIgnoreCase(doc.ExtensionsUsed, "VRMC_vrm")
	hasVrm0 := containsIgnoreCase(doc.ExtensionsUsed, "VRM")
	if doc.Extensions != nil {
		if _, ok := doc.Extensions["VRMC_vrm"]; ok {
			hasVrm1 = true
		}
		if _, ok := doc.Extensions["VRM"]; ok {
			hasVrm0 = true
		}
	}

	// VRM0/1 同時宣言時は VRM1 を優先する。
	if hasVrm1 {
		return VRM_VERSION_1
	}
	if hasVrm0 {
		return VRM_VERSION_0
	}
	return ""
}

// containsIgnoreCase は大文字小文字を無視して要素を検索する。
func containsIgnoreCase(values []string, target string) bool {
	for _, value := range values {
		if strings.EqualFold(value, target) {
			return true
		}
	}
	return false
}

// parseHumanBones はnode index からヒューマノイド名への対応を返す。
func parseHumanBones(doc *gltfDocument, version VrmVersion) (map[int]string, error) {
	humanBones := map[int]string{}
	addBone := func(name string, node int) {
		if node < 0 || node >= len(doc.Nodes) {
			logVrmWarn("ヒューマノイドの node index が不正です: bone=%s node=%d", name, node)
			return
		}
		if _, exists := humanBones[node]; exists {
			logVrmWarn("ヒューマノイドの node が重複しています: bone=%s node=%d", name, node)
			return
		}
		humanBones[node] = name
	}

	if version == VRM_VERSION_1 {
		raw, ok := doc.Extensions["VRMC_vrm"]
		if !ok {
			return nil, io_common.NewIoFormatNotSupported("VRM1拡張が存在しません", nil)
		}
		ext := vrm1Extension{}
		if err := json.Unmarshal(raw, &ext); err != nil {
			return nil, io_common.NewIoParseFailed("VRM1拡張のJSON解析に失敗しました", err)
		}
		names := make([]string, 0, len(ext.Humanoid.HumanBones))
		for name := range ext.Humanoid.HumanBones {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			bone := ext.Humanoid.HumanBones[name]
			if bone.Node == nil {
				continue
			}
			addBone(name, *bone.Node)
		}
		return humanBones, nil
	}

	raw, ok := doc.Extensions["VRM"]
	if !ok {
		return nil, io_common.NewIoFormatNotSupported("VRM0拡張が存在しません", nil)
	}
	ext := vrm0Extension{}
	if err := json.Unmarshal(raw, &ext); err != nil {
		return nil, io_common.NewIoParseFailed("VRM0拡張のJSON解析に失敗しました", err)
	}
	for _, bone := range ext.Humanoid.HumanBones {
		addBone(bone.Bone, bone.Node)
	}
	return humanBones, nil
}
