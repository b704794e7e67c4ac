package model

import (
	"math"
	"testing"

	"github.com/miu200521358/mu_vrmik/pkg/domain/mmath"
	"github.com/miu200521358/mu_vrmik/pkg/domain/model/merrors"
)

func newChainTestSkeleton() *Skeleton {
	skeleton := NewSkeleton("chain")
	root := NewJoint("root", NO_PARENT, mmath.NewVec3(1, 0, 0))
	skeleton.AppendJoint(root)
	middle := NewJoint("middle", 0, mmath.NewVec3(0, 1, 0))
	middle.Humanoid = UPPER_ARM.Left()
	skeleton.AppendJoint(middle)
	leaf := NewJoint("leaf", 1, mmath.NewVec3(0, 1, 0))
	skeleton.AppendJoint(leaf)
	return skeleton
}

func mustGetJoint(t *testing.T, skeleton *Skeleton, index int) *Joint {
	t.Helper()
	joint, err := skeleton.Get(index)
	if err != nil {
		t.Fatalf("get joint failed: %v", err)
	}
	return joint
}

func TestSkeletonPropagateAppliesParentRotation(t *testing.T) {
	skeleton := newChainTestSkeleton()
	mustGetJoint(t, skeleton, 1).LocalRotation = mmath.NewQuaternionFromAxisAngle(mmath.UNIT_Z_VEC3, math.Pi/2)
	if err := skeleton.Propagate(); err != nil {
		t.Fatalf("propagate failed: %v", err)
	}

	middle := mustGetJoint(t, skeleton, 1)
	if !middle.GlobalPosition.NearEquals(mmath.NewVec3(1, 1, 0), 1e-9) {
		t.Fatalf("middle position mismatch: got=%v", middle.GlobalPosition)
	}
	leaf := mustGetJoint(t, skeleton, 2)
	if !leaf.GlobalPosition.NearEquals(mmath.NewVec3(0, 1, 0), 1e-9) {
		t.Fatalf("leaf position mismatch: got=%v want=%v", leaf.GlobalPosition, mmath.NewVec3(0, 1, 0))
	}
	if !leaf.GlobalRotation.NearEquals(middle.GlobalRotation, 1e-9) {
		t.Fatalf("leaf rotation should inherit parent: got=%v want=%v", leaf.GlobalRotation, middle.GlobalRotation)
	}
}

func TestSkeletonPropagateHandlesChildBeforeParent(t *testing.T) {
	skeleton := NewSkeleton("unordered")
	skeleton.AppendJoint(NewJoint("child", 1, mmath.NewVec3(0, 1, 0)))
	skeleton.AppendJoint(NewJoint("parent", NO_PARENT, mmath.NewVec3(0, 2, 0)))
	if err := skeleton.Propagate(); err != nil {
		t.Fatalf("propagate failed: %v", err)
	}
	child := mustGetJoint(t, skeleton, 0)
	if !child.GlobalPosition.NearEquals(mmath.NewVec3(0, 3, 0), 1e-9) {
		t.Fatalf("child position mismatch: got=%v", child.GlobalPosition)
	}
}

func TestSkeletonValidateDetectsCycle(t *testing.T) {
	skeleton := NewSkeleton("cycle")
	skeleton.AppendJoint(NewJoint("a", 1, mmath.ZERO_VEC3))
	skeleton.AppendJoint(NewJoint("b", 0, mmath.ZERO_VEC3))
	err := skeleton.Validate()
	if !merrors.IsHierarchyCycleError(err) {
		t.Fatalf("expected cycle error: got=%v", err)
	}
	if skeleton.IsDescendantOf(0, 5) {
		t.Fatalf("missing ancestor should not match")
	}
	if !skeleton.IsDescendantOf(0, 1) {
		t.Fatalf("cyclic parent should still be found")
	}
}

func TestSkeletonValidateDetectsParentOutOfRange(t *testing.T) {
	skeleton := NewSkeleton("range")
	skeleton.AppendJoint(NewJoint("a", 4, mmath.ZERO_VEC3))
	if err := skeleton.Validate(); !merrors.IsJointNotFoundError(err) {
		t.Fatalf("expected joint not found error: got=%v", err)
	}
}

func TestSkeletonIsDescendantOf(t *testing.T) {
	skeleton := newChainTestSkeleton()
	if !skeleton.IsDescendantOf(2, 0) {
		t.Fatalf("leaf should descend from root")
	}
	if !skeleton.IsDescendantOf(1, 1) {
		t.Fatalf("joint should match itself")
	}
	if skeleton.IsDescendantOf(0, 2) {
		t.Fatalf("root should not descend from leaf")
	}
}

func TestSkeletonRemoveJointMakesLookupFail(t *testing.T) {
	skeleton := newChainTestSkeleton()
	if err := skeleton.RemoveJoint(1); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, err := skeleton.Get(1); !merrors.IsJointNotFoundError(err) {
		t.Fatalf("expected joint not found: got=%v", err)
	}
	if err := skeleton.Propagate(); err != nil {
		t.Fatalf("propagate after remove failed: %v", err)
	}
	leaf := mustGetJoint(t, skeleton, 2)
	if !leaf.GlobalPosition.NearEquals(leaf.LocalPosition, 1e-9) {
		t.Fatalf("orphan should become root: got=%v", leaf.GlobalPosition)
	}
	if skeleton.IsDescendantOf(2, 0) {
		t.Fatalf("orphan should not descend from root")
	}
}

func TestSkeletonFindByHumanoidIgnoresCase(t *testing.T) {
	skeleton := newChainTestSkeleton()
	joint, ok := skeleton.FindByHumanoid("leftupperarm")
	if !ok || joint.Index != 1 {
		t.Fatalf("humanoid lookup mismatch: ok=%v joint=%v", ok, joint)
	}
	if _, ok := skeleton.FindByHumanoid(HAND.Right()); ok {
		t.Fatalf("unexpected humanoid match")
	}
	if _, err := skeleton.GetByName("leaf"); err != nil {
		t.Fatalf("get by name failed: %v", err)
	}
}

func TestSkeletonCopyIsIndependent(t *testing.T) {
	skeleton := newChainTestSkeleton()
	if err := skeleton.Propagate(); err != nil {
		t.Fatalf("propagate failed: %v", err)
	}
	copied, err := skeleton.Copy()
	if err != nil {
		t.Fatalf("copy failed: %v", err)
	}
	mustGetJoint(t, copied, 1).LocalRotation = mmath.NewQuaternionFromAxisAngle(mmath.UNIT_X_VEC3, 1)
	if !mustGetJoint(t, skeleton, 1).LocalRotation.NearEquals(mmath.NewQuaternion(), 1e-12) {
		t.Fatalf("copy should not share joints")
	}
	if copied.Len() != skeleton.Len() || copied.Name != skeleton.Name {
		t.Fatalf("copy mismatch: got=%d/%s want=%d/%s", copied.Len(), copied.Name, skeleton.Len(), skeleton.Name)
	}
}

func TestTrackingStatusIsActive(t *testing.T) {
	active := map[TrackingStatus]bool{
		TRACKING_STATUS_UNAVAILABLE: false,
		TRACKING_STATUS_IDLE:        false,
		TRACKING_STATUS_READY:       true,
		TRACKING_STATUS_RUNNING:     true,
		TRACKING_STATUS_STOPPING:    false,
		TRACKING_STATUS_EXITING:     false,
	}
	for status, want := range active {
		if got := status.IsActive(); got != want {
			t.Fatalf("active mismatch: status=%s got=%v want=%v", status, got, want)
		}
		parsed, ok := ParseTrackingStatus(status.String())
		if !ok || parsed != status {
			t.Fatalf("parse mismatch: got=%v ok=%v want=%v", parsed, ok, status)
		}
	}
	if _, ok := ParseTrackingStatus("paused"); ok {
		t.Fatalf("unknown status should not parse")
	}
}

func TestBoneNameDirection(t *testing.T) {
	if got := LOWER_ARM.StringFromDirection(BONE_DIRECTION_RIGHT); got != "rightLowerArm" {
		t.Fatalf("right name mismatch: got=%s", got)
	}
	if got := SHOULDER.StringFromDirection(BONE_DIRECTION_LEFT); got != "leftShoulder" {
		t.Fatalf("left name mismatch: got=%s", got)
	}
	if !SameHumanoidName("left_upper_arm", "leftUpperArm") {
		t.Fatalf("normalized names should match")
	}
}
