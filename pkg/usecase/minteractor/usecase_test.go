package minteractor

import (
	"testing"

	"github.com/miu200521358/mu_vrmik/pkg/domain/ik"
	"github.com/miu200521358/mu_vrmik/pkg/domain/mmath"
	"github.com/miu200521358/mu_vrmik/pkg/domain/model"
)

type fakeTrackingRoot struct {
	left   *ik.Target
	right  *ik.Target
	called int
}

func (f *fakeTrackingRoot) AttachTargets(left *ik.Target, right *ik.Target) {
	f.left = left
	f.right = right
	f.called++
}

type fakeTrackingStatus struct {
	status model.TrackingStatus
	exists bool
}

func (f *fakeTrackingStatus) TrackingStatus() (model.TrackingStatus, bool) {
	return f.status, f.exists
}

func (f *fakeTrackingStatus) set(status model.TrackingStatus) {
	f.status = status
	f.exists = true
}

type fakeAvatarRegistry struct {
	avatars  []string
	removals []string
}

func (f *fakeAvatarRegistry) AvatarsWithAnimationGraph() []string {
	return append([]string(nil), f.avatars...)
}

func (f *fakeAvatarRegistry) RemoveAnimationGraph(id string) {
	f.removals = append(f.removals, id)
}

type fakeFrameReporter struct {
	events []FrameEvent
}

func (f *fakeFrameReporter) ReportFrame(event FrameEvent) {
	f.events = append(f.events, event)
}

func (f *fakeFrameReporter) types() []FrameEventType {
	types := make([]FrameEventType, 0, len(f.events))
	for _, event := range f.events {
		types = append(types, event.Type)
	}
	return types
}

type fakeSkeletonReader struct {
	skeleton *model.Skeleton
	path     string
}

func (f *fakeSkeletonReader) CanLoad(path string) bool {
	return path != "invalid.txt"
}

func (f *fakeSkeletonReader) Load(path string) (*model.Skeleton, error) {
	f.path = path
	return f.skeleton, nil
}

// newArmTestSkeleton は腰と左右の腕を持つ骨格を生成する。skip に含む関節は作らない。
func newArmTestSkeleton(t *testing.T, skip ...string) *model.Skeleton {
	t.Helper()
	skipped := map[string]struct{}{}
	for _, name := range skip {
		skipped[name] = struct{}{}
	}

	skeleton := model.NewSkeleton("arm")
	hips := model.NewJoint("hips", model.NO_PARENT, mmath.NewVec3(0, 1, 0))
	hips.Humanoid = model.HIPS.String()
	skeleton.AppendJoint(hips)

	for _, direction := range model.BoneDirections() {
		sign := 1.0
		if direction == model.BONE_DIRECTION_RIGHT {
			sign = -1.0
		}
		offsets := []mmath.Vec3{
			mmath.NewVec3(0.1*sign, 0.4, 0),
			mmath.NewVec3(0.1*sign, 0, 0),
			mmath.NewVec3(0.3*sign, 0, 0),
			mmath.NewVec3(0.25*sign, 0, 0),
		}
		parent := hips.Index
		for i, boneName := range model.ARM_CHAIN_BONES {
			name := boneName.StringFromDirection(direction)
			if _, ok := skipped[name]; ok {
				break
			}
			joint := model.NewJoint(name, parent, offsets[i])
			joint.Humanoid = name
			if boneName == model.SHOULDER {
				joint.LocalRotation = mmath.NewQuaternionFromAxisAngle(mmath.UNIT_Z_VEC3, 0.1*sign)
			}
			parent = skeleton.AppendJoint(joint)
		}
	}
	if err := skeleton.Propagate(); err != nil {
		t.Fatalf("propagate failed: %v", err)
	}
	return skeleton
}

type usecaseFixture struct {
	usecase  *IkUsecase
	root     *fakeTrackingRoot
	status   *fakeTrackingStatus
	avatars  *fakeAvatarRegistry
	reporter *fakeFrameReporter
}

func newUsecaseFixture(t *testing.T, skeleton *model.Skeleton, config RigConfig) *usecaseFixture {
	t.Helper()
	fixture := &usecaseFixture{
		root:     &fakeTrackingRoot{},
		status:   &fakeTrackingStatus{},
		avatars:  &fakeAvatarRegistry{avatars: []string{"avatar-a", "avatar-b"}},
		reporter: &fakeFrameReporter{},
	}
	fixture.usecase = NewIkUsecase(IkUsecaseDeps{
		TrackingRoot:   fixture.root,
		TrackingStatus: fixture.status,
		AvatarRegistry: fixture.avatars,
		FrameReporter:  fixture.reporter,
		Config:         config,
	})
	fixture.usecase.SetSkeleton(skeleton)
	return fixture
}

func TestNewIkUsecaseDefaults(t *testing.T) {
	uc := NewIkUsecase(IkUsecaseDeps{})
	if uc.RigState() != RigStateUnbuilt {
		t.Fatalf("state mismatch: got=%s want=%s", uc.RigState(), RigStateUnbuilt)
	}
	if uc.GateOpen() {
		t.Fatalf("gate should start closed")
	}
	if uc.config.GraspOffset != ik.DEFAULT_GRASP_OFFSET {
		t.Fatalf("grasp offset mismatch: got=%v want=%v", uc.config.GraspOffset, ik.DEFAULT_GRASP_OFFSET)
	}
	if uc.Rig() != nil {
		t.Fatalf("rig should not exist before build")
	}
}

func TestLoadSkeletonUsesReader(t *testing.T) {
	reader := &fakeSkeletonReader{skeleton: newArmTestSkeleton(t)}
	uc := NewIkUsecase(IkUsecaseDeps{SkeletonReader: reader})

	skeleton, err := uc.LoadSkeleton(nil, "avatar.vrm")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if skeleton != uc.Skeleton() || reader.path != "avatar.vrm" {
		t.Fatalf("loaded skeleton should become current: path=%s", reader.path)
	}
	if _, err := uc.LoadSkeleton(nil, "invalid.txt"); err == nil {
		t.Fatalf("expected error for unsupported path")
	}
	if _, err := NewIkUsecase(IkUsecaseDeps{}).LoadSkeleton(nil, "avatar.vrm"); err == nil {
		t.Fatalf("expected error without reader")
	}
}
