// 指示: miu200521358
package model

import (
	"sort"

	"github.com/tiendc/go-deepcopy"

	"github.com/miu200521358/mu_vrmik/pkg/domain/mmath"
	"github.com/miu200521358/mu_vrmik/pkg/domain/model/merrors"
)

// Skeleton は関節をIndexで管理する骨格を表す。削除済みの枠は nil になる。
type Skeleton struct {
	Name   string
	Joints []*Joint
}

// NewSkeleton は空の骨格を生成する。
func NewSkeleton(name string) *Skeleton {
	return &Skeleton{Name: name, Joints: make([]*Joint, 0)}
}

// Len は削除済みを含む関節枠数を返す。
func (s *Skeleton) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Joints)
}

// AppendJoint は関節を末尾に追加し、採番したIndexを返す。
func (s *Skeleton) AppendJoint(joint *Joint) int {
	joint.Index = len(s.Joints)
	s.Joints = append(s.Joints, joint)
	return joint.Index
}

// Contains は有効な関節が存在するか判定する。
func (s *Skeleton) Contains(index int) bool {
	return s != nil && index >= 0 && index < len(s.Joints) && s.Joints[index] != nil
}

// Get はIndexから関節を返す。
func (s *Skeleton) Get(index int) (*Joint, error) {
	if !s.Contains(index) {
		return nil, merrors.NewJointNotFoundError(index)
	}
	return s.Joints[index], nil
}

// GetByName は名前から関節を返す。
func (s *Skeleton) GetByName(name string) (*Joint, error) {
	if s != nil {
		for _, joint := range s.Joints {
			if joint != nil && joint.Name == name {
				return joint, nil
			}
		}
	}
	return nil, merrors.NewJointNotFoundError(name)
}

// FindByHumanoid はヒューマノイド名に一致する最初の関節を返す。
func (s *Skeleton) FindByHumanoid(name string) (*Joint, bool) {
	if s == nil {
		return nil, false
	}
	for _, joint := range s.Joints {
		if joint.IsHumanoid(name) {
			return joint, true
		}
	}
	return nil, false
}

// RemoveJoint は関節を削除する。子の親Indexはそのまま残り、以降は根として扱われる。
func (s *Skeleton) RemoveJoint(index int) error {
	if !s.Contains(index) {
		return merrors.NewJointNotFoundError(index)
	}
	s.Joints[index] = nil
	return nil
}

// Validate は親Indexの範囲と循環を検証する。
func (s *Skeleton) Validate() error {
	for _, joint := range s.Joints {
		if joint == nil {
			continue
		}
		if joint.ParentIndex >= len(s.Joints) || joint.ParentIndex < NO_PARENT {
			return merrors.NewJointNotFoundError(joint.ParentIndex)
		}
	}
	_, err := s.propagateOrder()
	return err
}

// Propagate はローカル値からグローバルキャッシュを根から葉へ再計算する。
func (s *Skeleton) Propagate() error {
	order, err := s.propagateOrder()
	if err != nil {
		return err
	}
	for _, index := range order {
		joint := s.Joints[index]
		parent := s.parentOf(joint)
		if parent == nil {
			joint.GlobalRotation = joint.LocalRotation
			joint.GlobalPosition = joint.LocalPosition
			continue
		}
		joint.GlobalRotation = parent.GlobalRotation.Muled(joint.LocalRotation)
		joint.GlobalPosition = parent.GlobalPosition.Added(parent.GlobalRotation.MulVec3(joint.LocalPosition))
	}
	return nil
}

// Parent は関節の親を返す。親が無いか削除済みの場合は nil を返す。
func (s *Skeleton) Parent(index int) *Joint {
	if !s.Contains(index) {
		return nil
	}
	return s.parentOf(s.Joints[index])
}

// IsDescendantOf は index が ancestor 自身かその子孫か判定する。
func (s *Skeleton) IsDescendantOf(index int, ancestor int) bool {
	if !s.Contains(index) || !s.Contains(ancestor) {
		return false
	}
	current := index
	for step := 0; step <= len(s.Joints); step++ {
		if current == ancestor {
			return true
		}
		joint := s.Joints[current]
		if !joint.HasParent() || !s.Contains(joint.ParentIndex) {
			return false
		}
		current = joint.ParentIndex
	}
	return false
}

// Copy は骨格の複製を返す。
func (s *Skeleton) Copy() (*Skeleton, error) {
	copied := &Skeleton{}
	if err := deepcopy.Copy(copied, s); err != nil {
		return nil, err
	}
	return copied, nil
}

// GlobalPositions は指定関節のグローバル位置を返す。
func (s *Skeleton) GlobalPositions(indexes []int) ([]mmath.Vec3, error) {
	positions := make([]mmath.Vec3, len(indexes))
	for i, index := range indexes {
		joint, err := s.Get(index)
		if err != nil {
			return nil, err
		}
		positions[i] = joint.GlobalPosition
	}
	return positions, nil
}

func (s *Skeleton) parentOf(joint *Joint) *Joint {
	if !joint.HasParent() || !s.Contains(joint.ParentIndex) {
		return nil
	}
	return s.Joints[joint.ParentIndex]
}

// propagateOrder は深さ順の関節Indexを返す。
func (s *Skeleton) propagateOrder() ([]int, error) {
	depths := make(map[int]int, len(s.Joints))
	order := make([]int, 0, len(s.Joints))
	for index, joint := range s.Joints {
		if joint == nil {
			continue
		}
		depth := 0
		current := joint
		for current.HasParent() && s.Contains(current.ParentIndex) {
			depth++
			if depth > len(s.Joints) {
				return nil, merrors.NewHierarchyCycleError(index)
			}
			current = s.Joints[current.ParentIndex]
		}
		depths[index] = depth
		order = append(order, index)
	}
	sort.SliceStable(order, func(i, j int) bool {
		return depths[order[i]] < depths[order[j]]
	})
	return order, nil
}
