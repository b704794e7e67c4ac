// 指示: miu200521358
package messages

import "testing"

func TestLogKeysAreDefinedAndUnique(t *testing.T) {
	keys := []string{
		LogLoadSuccess,
		LogRigBuilt,
		LogRigStance,
		LogRigIncomplete,
		LogRigNotDirectParent,
		LogAvatarRootMissing,
		LogTrackingRootMissing,
		LogGateChanged,
		LogChainSkipped,
		LogChainDegenerate,
		LogChainSolved,
		LogFrameVerbose,
		LogFrameDone,
		LogFabrikVerbose,
		LogSynthesizeVerbose,
		LogBatchModelResult,
		LogVrmInfoHumanoidBones,
	}

	seen := map[string]struct{}{}
	for _, key := range keys {
		if key == "" {
			t.Fatalf("key should not be empty")
		}
		if _, exists := seen[key]; exists {
			t.Fatalf("key should be unique: %s", key)
		}
		seen[key] = struct{}{}
	}
}
