// 指示: miu200521358
package model

import (
	"strings"
	"unicode"
)

// BoneDirection はボーンの左右を表す。
type BoneDirection int

const (
	// BONE_DIRECTION_LEFT は左側を表す。
	BONE_DIRECTION_LEFT BoneDirection = iota
	// BONE_DIRECTION_RIGHT は右側を表す。
	BONE_DIRECTION_RIGHT
)

// BoneDirections は解決順の左右一覧を返す。
func BoneDirections() []BoneDirection {
	return []BoneDirection{BONE_DIRECTION_LEFT, BONE_DIRECTION_RIGHT}
}

// String は左右の表示名を返す。
func (d BoneDirection) String() string {
	if d == BONE_DIRECTION_RIGHT {
		return "right"
	}
	return "left"
}

// BoneName はヒューマノイドボーンの基底名を表す。
type BoneName string

const (
	// HIPS は腰。
	HIPS BoneName = "hips"
	// SPINE は背骨。
	SPINE BoneName = "spine"
	// CHEST は胸。
	CHEST BoneName = "chest"
	// UPPER_CHEST は上胸。
	UPPER_CHEST BoneName = "upperChest"
	// NECK は首。
	NECK BoneName = "neck"
	// HEAD は頭。
	HEAD BoneName = "head"
	// SHOULDER は肩。左右は Left/Right で解決する。
	SHOULDER BoneName = "Shoulder"
	// UPPER_ARM は上腕。
	UPPER_ARM BoneName = "UpperArm"
	// LOWER_ARM は前腕。
	LOWER_ARM BoneName = "LowerArm"
	// HAND は手首。
	HAND BoneName = "Hand"
)

// ARM_CHAIN_BONES は腕チェーンを根元から並べたボーン名。
var ARM_CHAIN_BONES = [4]BoneName{SHOULDER, UPPER_ARM, LOWER_ARM, HAND}

// String はボーン名を返す。
func (n BoneName) String() string {
	return string(n)
}

// Left は左側のヒューマノイド名を返す。
func (n BoneName) Left() string {
	return "left" + string(n)
}

// Right は右側のヒューマノイド名を返す。
func (n BoneName) Right() string {
	return "right" + string(n)
}

// StringFromDirection は左右指定のヒューマノイド名を返す。
func (n BoneName) StringFromDirection(direction BoneDirection) string {
	if direction == BONE_DIRECTION_RIGHT {
		return n.Right()
	}
	return n.Left()
}

// NormalizeHumanoidName は比較用にヒューマノイド名を正規化する。
func NormalizeHumanoidName(name string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, name)
}

// SameHumanoidName はヒューマノイド名が同一か判定する。
func SameHumanoidName(a string, b string) bool {
	return NormalizeHumanoidName(a) == NormalizeHumanoidName(b)
}
