// 指示: miu200521358
// Package merrors はドメイン層のエラー生成を提供する。
package merrors

import (
	"github.com/miu200521358/mu_vrmik/pkg/shared/base/merr"
)

const (
	// JointNotFoundErrorID は関節が見つからないエラーID。
	JointNotFoundErrorID = "15101"
	// HierarchyCycleErrorID は親子階層の循環エラーID。
	HierarchyCycleErrorID = "15102"
	// ChainIncompleteErrorID は腕チェーン不足エラーID。
	ChainIncompleteErrorID = "15103"
	// ChainJointMissingErrorID はフレーム中のチェーン関節欠落エラーID。
	ChainJointMissingErrorID = "15104"
)

// NewJointNotFoundError は関節が見つからないエラーを生成する。
func NewJointNotFoundError(key any) error {
	return merr.NewIdError(JointNotFoundErrorID, nil, "関節が見つかりません: %v", key)
}

// NewHierarchyCycleError は親子階層の循環エラーを生成する。
func NewHierarchyCycleError(index int) error {
	return merr.NewIdError(HierarchyCycleErrorID, nil, "親子階層が循環しています: index=%d", index)
}

// NewChainIncompleteError は腕チェーン不足エラーを生成する。
func NewChainIncompleteError(missing []string) error {
	return merr.NewIdError(ChainIncompleteErrorID, nil, "腕チェーンの関節が不足しています: %v", missing)
}

// NewChainJointMissingError はチェーン関節欠落エラーを生成する。
func NewChainJointMissingError(side string, cause error) error {
	return merr.NewIdError(ChainJointMissingErrorID, cause, "チェーン関節を参照できません: side=%s", side)
}

// IsJointNotFoundError は関節未検出エラーか判定する。
func IsJointNotFoundError(err error) bool {
	return merr.HasErrorID(err, JointNotFoundErrorID)
}

// IsHierarchyCycleError は循環エラーか判定する。
func IsHierarchyCycleError(err error) bool {
	return merr.HasErrorID(err, HierarchyCycleErrorID)
}

// IsChainJointMissingError はチェーン関節欠落エラーか判定する。
func IsChainJointMissingError(err error) bool {
	return merr.HasErrorID(err, ChainJointMissingErrorID)
}
