// 指示: miu200521358
package minteractor

import (
	"fmt"

	"github.com/miu200521358/mu_vrmik/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_vrmik/pkg/domain/ik"
	"github.com/miu200521358/mu_vrmik/pkg/domain/model"
)

// RigState はリグ構築状態を表す。Built から戻ることはない。
type RigState int

const (
	// RigStateUnbuilt は未構築。
	RigStateUnbuilt RigState = iota
	// RigStateBuilt は構築済み。
	RigStateBuilt
)

// String は状態名を返す。
func (s RigState) String() string {
	if s == RigStateBuilt {
		return "built"
	}
	return "unbuilt"
}

// BuildRig は左右の腕チェーンが揃っていればリグを1度だけ構築する。
// 関節が不足している場合は何もせず false を返し、次の呼び出しで再試行する。
func (uc *IkUsecase) BuildRig() (bool, error) {
	if uc.state == RigStateBuilt {
		return true, nil
	}
	skeleton := uc.skeleton
	if skeleton == nil {
		return false, nil
	}
	if err := skeleton.Propagate(); err != nil {
		return false, fmt.Errorf("リグ構築前の姿勢更新に失敗しました: %w", err)
	}

	scopeRoot, ok := uc.resolveScopeRoot(skeleton)
	if !ok {
		logIkDebug(messages.LogAvatarRootMissing, model.IkWarningAvatarRootMissing, uc.config.AvatarRoot)
		return false, nil
	}

	jointsByDirection, missing := findArmChainJoints(skeleton, scopeRoot)
	if len(missing) > 0 {
		logIkDebug(messages.LogRigIncomplete, model.IkWarningChainIncomplete, missing)
		return false, nil
	}

	chains := make([]*ik.Chain, 0, len(jointsByDirection))
	for _, direction := range model.BoneDirections() {
		joints := jointsByDirection[direction]
		warnIndirectChainParents(skeleton, joints)
		chain, err := ik.NewChain(skeleton, direction, joints, uc.config.GraspOffset)
		if err != nil {
			return false, fmt.Errorf("腕チェーンの生成に失敗しました: %w", err)
		}
		chains = append(chains, chain)
	}

	restPose, err := ik.CaptureRestPose(skeleton, chains...)
	if err != nil {
		return false, fmt.Errorf("休息姿勢の記録に失敗しました: %w", err)
	}
	rig := ik.NewRig(chains[model.BONE_DIRECTION_LEFT], chains[model.BONE_DIRECTION_RIGHT], restPose)
	for _, direction := range model.BoneDirections() {
		rig.SetPole(direction, uc.config.Pole(direction))
	}

	if uc.trackingRoot != nil {
		uc.trackingRoot.AttachTargets(rig.Target(model.BONE_DIRECTION_LEFT), rig.Target(model.BONE_DIRECTION_RIGHT))
	} else {
		logIkDebug(messages.LogTrackingRootMissing, model.IkWarningTrackingRootMissing)
	}

	uc.rig = rig
	uc.state = RigStateBuilt
	uc.stance = DetectRestStance(skeleton, rig)
	logIkInfo(messages.LogRigBuilt, rig.ID, rig.Chain(model.BONE_DIRECTION_LEFT).Lengths, rig.Chain(model.BONE_DIRECTION_RIGHT).Lengths)
	logIkDebug(messages.LogRigStance, uc.stance)
	reportFrame(uc.frameReporter, FrameEvent{Type: FrameEventTypeRigBuilt, RigID: rig.ID})
	return true, nil
}

// resolveScopeRoot は関節探索の起点を返す。起点指定が無い場合は -1 を返す。
func (uc *IkUsecase) resolveScopeRoot(skeleton *model.Skeleton) (int, bool) {
	if uc.config.AvatarRoot == "" {
		return model.NO_PARENT, true
	}
	if joint, err := skeleton.GetByName(uc.config.AvatarRoot); err == nil {
		return joint.Index, true
	}
	if joint, ok := skeleton.FindByHumanoid(uc.config.AvatarRoot); ok {
		return joint.Index, true
	}
	return model.NO_PARENT, false
}

// findArmChainJoints は左右の腕チェーン関節を探し、不足したヒューマノイド名を返す。
func findArmChainJoints(skeleton *model.Skeleton, scopeRoot int) (map[model.BoneDirection]ik.ChainJoints, []string) {
	jointsByDirection := make(map[model.BoneDirection]ik.ChainJoints, 2)
	missing := make([]string, 0)
	for _, direction := range model.BoneDirections() {
		var joints ik.ChainJoints
		for i, boneName := range model.ARM_CHAIN_BONES {
			name := boneName.StringFromDirection(direction)
			index, ok := findHumanoidJoint(skeleton, name, scopeRoot)
			if !ok {
				missing = append(missing, name)
				continue
			}
			joints[i] = index
		}
		jointsByDirection[direction] = joints
	}
	return jointsByDirection, missing
}

// findHumanoidJoint は探索起点配下でヒューマノイド名に一致する関節を返す。
func findHumanoidJoint(skeleton *model.Skeleton, name string, scopeRoot int) (int, bool) {
	for _, joint := range skeleton.Joints {
		if !joint.IsHumanoid(name) {
			continue
		}
		if scopeRoot >= 0 && !skeleton.IsDescendantOf(joint.Index, scopeRoot) {
			continue
		}
		return joint.Index, true
	}
	return -1, false
}

// warnIndirectChainParents はチェーン関節の親が直前の関節でない場合に警告する。
func warnIndirectChainParents(skeleton *model.Skeleton, joints ik.ChainJoints) {
	for i := 1; i < len(joints); i++ {
		joint, err := skeleton.Get(joints[i])
		if err != nil {
			continue
		}
		if joint.ParentIndex != joints[i-1] {
			logIkWarn(messages.LogRigNotDirectParent, model.IkWarningChainNotDirectlyParented, joint.Name, joint.ParentIndex, joints[i-1])
		}
	}
}
