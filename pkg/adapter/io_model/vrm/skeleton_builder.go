// 指示: miu200521358
package vrm

import (
	"fmt"
	"strings"

	"github.com/miu200521358/mu_vrmik/pkg/adapter/io_common"
	"github.com/miu200521358/mu_vrmik/pkg/domain/mmath"
	"github.com/miu200521358/mu_vrmik/pkg/domain/model"
)

// buildSkeleton はnode階層から骨格を構築する。関節Indexはnode indexと一致する。
// 拡大率は祖先の積を平行移動へ畳み込み、回転には反映しない。
func buildSkeleton(name string, nodes []gltfNode, parents []int, humanBones map[int]string) (*model.Skeleton, error) {
	transforms := make([]nodeTransform, len(nodes))
	for i, node := range nodes {
		transform, err := parseNodeTransform(node)
		if err != nil {
			return nil, err
		}
		transforms[i] = transform
	}

	skeleton := model.NewSkeleton(name)
	for i, node := range nodes {
		ancestorScale, err := resolveAncestorScale(i, parents, transforms)
		if err != nil {
			return nil, err
		}
		translation := transforms[i].translation
		localPosition := mmath.NewVec3(
			translation.X*ancestorScale.X,
			translation.Y*ancestorScale.Y,
			translation.Z*ancestorScale.Z,
		)
		joint := model.NewJoint(resolveJointName(i, node.Name), parents[i], localPosition)
		joint.LocalRotation = transforms[i].rotation
		joint.Humanoid = humanBones[i]
		skeleton.AppendJoint(joint)
	}

	if err := skeleton.Validate(); err != nil {
		return nil, io_common.NewIoParseFailed("node親子関係が不正です", err)
	}
	if err := skeleton.Propagate(); err != nil {
		return nil, io_common.NewIoParseFailed("node姿勢の計算に失敗しました", err)
	}
	return skeleton, nil
}

// resolveAncestorScale は祖先nodeの拡大率の積を返す。
func resolveAncestorScale(nodeIndex int, parents []int, transforms []nodeTransform) (mmath.Vec3, error) {
	scale := mmath.NewVec3(1, 1, 1)
	current := parents[nodeIndex]
	for steps := 0; current >= 0; steps++ {
		if steps >= len(parents) {
			return mmath.ZERO_VEC3, io_common.NewIoParseFailed("node親子関係に循環があります: %d", nil, nodeIndex)
		}
		parentScale := transforms[current].scale
		scale = mmath.NewVec3(scale.X*parentScale.X, scale.Y*parentScale.Y, scale.Z*parentScale.Z)
		current = parents[current]
	}
	return scale, nil
}

// resolveJointName はnode名が空の場合に index から名前を補う。
func resolveJointName(nodeIndex int, nodeName string) string {
	trimmed := strings.TrimSpace(nodeName)
	if trimmed != "" {
		return trimmed
	}
	return fmt.Sprintf("node_%03d", nodeIndex)
}
