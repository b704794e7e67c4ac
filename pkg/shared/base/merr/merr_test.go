// 指示: miu200521358
package merr

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestExtractErrorIDThroughWrap(t *testing.T) {
	base := NewIdError("15101", nil, "joint not found: %d", 3)
	wrapped := fmt.Errorf("frame failed: %w", base)

	if got := ExtractErrorID(wrapped); got != "15101" {
		t.Fatalf("error id mismatch: got=%s want=15101", got)
	}
	if !strings.Contains(wrapped.Error(), "joint not found: 3") {
		t.Fatalf("message mismatch: %s", wrapped.Error())
	}
}

func TestHasErrorIDFindsInnerID(t *testing.T) {
	inner := NewIdError("15101", nil, "joint not found")
	outer := NewIdError("15104", inner, "chain joint missing")

	if !HasErrorID(outer, "15101") {
		t.Fatalf("inner id should be found")
	}
	if !HasErrorID(outer, "15104") {
		t.Fatalf("outer id should be found")
	}
	if HasErrorID(outer, "14101") {
		t.Fatalf("unrelated id should not be found")
	}
	if ExtractErrorID(errors.New("plain")) != "" {
		t.Fatalf("plain error should not have id")
	}
}
