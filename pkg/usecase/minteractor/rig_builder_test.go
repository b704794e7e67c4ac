package minteractor

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/miu200521358/mu_vrmik/pkg/domain/ik"
	"github.com/miu200521358/mu_vrmik/pkg/domain/mmath"
	"github.com/miu200521358/mu_vrmik/pkg/domain/model"
	"github.com/miu200521358/mu_vrmik/pkg/infra/base/mlogging"
	"github.com/miu200521358/mu_vrmik/pkg/shared/base/logging"
)

func TestBuildRigNoopUntilChainComplete(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	logger := mlogging.NewLogger(buf)
	logger.SetLevel(logging.LOG_LEVEL_DEBUG)
	prev := logging.DefaultLogger()
	logging.SetDefaultLogger(logger)
	defer logging.SetDefaultLogger(prev)

	skeleton := newArmTestSkeleton(t, model.HAND.Right())
	fixture := newUsecaseFixture(t, skeleton, NewRigConfig())

	built, err := fixture.usecase.BuildRig()
	if err != nil {
		t.Fatalf("build should not fail: %v", err)
	}
	if built || fixture.usecase.RigState() != RigStateUnbuilt {
		t.Fatalf("incomplete chain should not build: built=%v state=%s", built, fixture.usecase.RigState())
	}
	if fixture.root.called != 0 || len(fixture.reporter.events) != 0 {
		t.Fatalf("incomplete chain should have no side effects: attach=%d events=%d", fixture.root.called, len(fixture.reporter.events))
	}
	if !strings.Contains(buf.String(), model.IkWarningChainIncomplete) {
		t.Fatalf("incomplete chain should be logged: %s", buf.String())
	}

	lower, err := skeleton.GetByName(model.LOWER_ARM.Right())
	if err != nil {
		t.Fatalf("lower arm missing: %v", err)
	}
	hand := model.NewJoint(model.HAND.Right(), lower.Index, mmath.NewVec3(-0.25, 0, 0))
	hand.Humanoid = model.HAND.Right()
	skeleton.AppendJoint(hand)

	built, err = fixture.usecase.BuildRig()
	if err != nil || !built {
		t.Fatalf("complete chain should build: built=%v err=%v", built, err)
	}
	if fixture.usecase.RigState() != RigStateBuilt {
		t.Fatalf("state mismatch: got=%s", fixture.usecase.RigState())
	}
}

func TestBuildRigIsLatched(t *testing.T) {
	fixture := newUsecaseFixture(t, newArmTestSkeleton(t), NewRigConfig())

	built, err := fixture.usecase.BuildRig()
	if err != nil || !built {
		t.Fatalf("build failed: built=%v err=%v", built, err)
	}
	rig := fixture.usecase.Rig()
	built, err = fixture.usecase.BuildRig()
	if err != nil || !built {
		t.Fatalf("second build failed: built=%v err=%v", built, err)
	}
	if fixture.usecase.Rig() != rig {
		t.Fatalf("rig should be built once")
	}
	if fixture.root.called != 1 {
		t.Fatalf("targets should be attached once: got=%d", fixture.root.called)
	}
	if got := fixture.reporter.types(); len(got) != 1 || got[0] != FrameEventTypeRigBuilt {
		t.Fatalf("events mismatch: got=%v", got)
	}
	if rig.RestPose.Len() != 2*ik.CHAIN_JOINT_COUNT {
		t.Fatalf("rest pose count mismatch: got=%d", rig.RestPose.Len())
	}
}

func TestBuildRigChainsAndTargets(t *testing.T) {
	config := NewRigConfig()
	config.PoleRight.Enabled = true
	fixture := newUsecaseFixture(t, newArmTestSkeleton(t), config)
	if _, err := fixture.usecase.BuildRig(); err != nil {
		t.Fatalf("build failed: %v", err)
	}
	rig := fixture.usecase.Rig()

	for _, direction := range model.BoneDirections() {
		chain := rig.Chain(direction)
		want := []float64{0.3, 0.25, ik.DEFAULT_GRASP_OFFSET}
		for i := range want {
			if math.Abs(chain.Lengths[i]-want[i]) > 1e-9 {
				t.Fatalf("%s length %d mismatch: got=%v want=%v", direction, i, chain.Lengths[i], want[i])
			}
		}
		shoulder, _ := fixture.usecase.Skeleton().Get(chain.Joints[0])
		if !shoulder.IsHumanoid(model.SHOULDER.StringFromDirection(direction)) {
			t.Fatalf("%s chain should start at shoulder: got=%s", direction, shoulder.Name)
		}
	}
	if fixture.root.left != rig.Target(model.BONE_DIRECTION_LEFT) || fixture.root.right != rig.Target(model.BONE_DIRECTION_RIGHT) {
		t.Fatalf("targets should be attached to tracking root")
	}
	if rig.Pole(model.BONE_DIRECTION_LEFT).Enabled || !rig.Pole(model.BONE_DIRECTION_RIGHT).Enabled {
		t.Fatalf("pole config should be applied per side")
	}
}

func TestBuildRigWithoutTrackingRoot(t *testing.T) {
	uc := NewIkUsecase(IkUsecaseDeps{Config: NewRigConfig()})
	uc.SetSkeleton(newArmTestSkeleton(t))
	built, err := uc.BuildRig()
	if err != nil || !built {
		t.Fatalf("build failed: built=%v err=%v", built, err)
	}
	target := uc.Rig().Target(model.BONE_DIRECTION_LEFT)
	if target.CurrentPosition() != mmath.ZERO_VEC3 {
		t.Fatalf("detached target should stay at origin: got=%v", target.CurrentPosition())
	}
}

func TestBuildRigRespectsAvatarRoot(t *testing.T) {
	skeleton := newArmTestSkeleton(t)
	other := model.NewJoint("other_avatar", model.NO_PARENT, mmath.NewVec3(5, 0, 0))
	skeleton.AppendJoint(other)

	config := NewRigConfig()
	config.AvatarRoot = "other_avatar"
	fixture := newUsecaseFixture(t, skeleton, config)
	if built, err := fixture.usecase.BuildRig(); err != nil || built {
		t.Fatalf("arms outside avatar root should not be found: built=%v err=%v", built, err)
	}

	config.AvatarRoot = "missing"
	fixture = newUsecaseFixture(t, skeleton, config)
	if built, err := fixture.usecase.BuildRig(); err != nil || built {
		t.Fatalf("missing avatar root should not build: built=%v err=%v", built, err)
	}

	config.AvatarRoot = model.HIPS.String()
	fixture = newUsecaseFixture(t, skeleton, config)
	if built, err := fixture.usecase.BuildRig(); err != nil || !built {
		t.Fatalf("arms under hips should build: built=%v err=%v", built, err)
	}
}

func TestBuildRigRejectsCycle(t *testing.T) {
	skeleton := newArmTestSkeleton(t)
	hips, _ := skeleton.Get(0)
	hips.ParentIndex = 1
	fixture := newUsecaseFixture(t, skeleton, NewRigConfig())
	if _, err := fixture.usecase.BuildRig(); err == nil {
		t.Fatalf("expected cycle error")
	}
}
