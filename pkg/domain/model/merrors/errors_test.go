package merrors

import (
	"fmt"
	"testing"

	"github.com/miu200521358/mu_vrmik/pkg/shared/base/merr"
)

func TestDomainErrorIDs(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{name: "joint", err: NewJointNotFoundError(3), want: JointNotFoundErrorID},
		{name: "cycle", err: NewHierarchyCycleError(1), want: HierarchyCycleErrorID},
		{name: "incomplete", err: NewChainIncompleteError([]string{"leftHand"}), want: ChainIncompleteErrorID},
		{name: "missing", err: NewChainJointMissingError("left", nil), want: ChainJointMissingErrorID},
	}
	for _, tc := range cases {
		if got := merr.ExtractErrorID(tc.err); got != tc.want {
			t.Fatalf("%s: error id mismatch: got=%s want=%s", tc.name, got, tc.want)
		}
	}
}

func TestChainJointMissingKeepsCause(t *testing.T) {
	cause := NewJointNotFoundError(7)
	err := fmt.Errorf("frame: %w", NewChainJointMissingError("right", cause))
	if !IsChainJointMissingError(err) {
		t.Fatalf("expected chain joint missing error: %v", err)
	}
	if !IsJointNotFoundError(err) {
		t.Fatalf("expected wrapped joint not found error: %v", err)
	}
	if IsHierarchyCycleError(err) {
		t.Fatalf("unexpected cycle error: %v", err)
	}
}
