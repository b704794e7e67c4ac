// 指示: miu200521358
package main

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/miu200521358/mu_vrmik/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_vrmik/pkg/shared/base/logging"
)

const testScenarioYAML = `name: cli
rig:
  avatar_root: Hips
skeleton:
  joints:
    - {name: Hips, role: hips, translation: [0, 1, 0]}
    - {name: LeftShoulder, role: leftShoulder, parent: Hips, translation: [0.1, 0.4, 0]}
    - {name: LeftUpperArm, role: leftUpperArm, parent: LeftShoulder, translation: [0.1, 0, 0]}
    - {name: LeftLowerArm, role: leftLowerArm, parent: LeftUpperArm, translation: [0.3, 0, 0]}
    - {name: LeftHand, role: leftHand, parent: LeftLowerArm, translation: [0.25, 0, 0]}
    - {name: RightShoulder, role: rightShoulder, parent: Hips, translation: [-0.1, 0.4, 0]}
    - {name: RightUpperArm, role: rightUpperArm, parent: RightShoulder, translation: [-0.1, 0, 0]}
    - {name: RightLowerArm, role: rightLowerArm, parent: RightUpperArm, translation: [-0.3, 0, 0]}
    - {name: RightHand, role: rightHand, parent: RightLowerArm, translation: [-0.25, 0, 0]}
avatars: [avatar-a, avatar-b]
frames:
  - status: idle
  - status: running
    left: [0.45, 1.2, 0.3]
    right: [-0.45, 1.2, 0.3]
    repeat: 2
  - status: stopping
`

// runForTest はCLIを実行し、標準出力を返す。既定ロガーは終了時に戻す。
func runForTest(t *testing.T, args ...string) (string, error) {
	t.Helper()
	previous := logging.DefaultLogger()
	t.Cleanup(func() { logging.SetDefaultLogger(previous) })

	outBuf := bytes.NewBuffer(nil)
	errBuf := bytes.NewBuffer(nil)
	err := run(args, outBuf, errBuf)
	return outBuf.String(), err
}

// writeScenarioForTest はシナリオを一時ディレクトリへ書き込む。
func writeScenarioForTest(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write scenario failed: %v", err)
	}
	return path
}

func TestRunSolveScenario(t *testing.T) {
	path := writeScenarioForTest(t, testScenarioYAML)

	out, err := runForTest(t, "solve", path, "--log-level", "warn")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	for _, want := range []string{
		"rig_built",
		"frame=0 gate=false applied=false",
		"frame=1 gate_changed open=true",
		"frame=2 gate=true applied=true",
		"left reachable=true",
		"frame=3 gate_changed open=false",
		"frames=4 applied=2 removed_graphs=2",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output should contain %q:\n%s", want, out)
		}
	}
}

func TestRunSolvePreviewKeepsAvatars(t *testing.T) {
	path := writeScenarioForTest(t, testScenarioYAML)

	out, err := runForTest(t, "solve", path, "--preview", "--log-format", "json")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if strings.Contains(out, "gate_changed") {
		t.Fatalf("preview should not change gate:\n%s", out)
	}
	if !strings.Contains(out, "frame=0 gate=false applied=true") {
		t.Fatalf("preview should solve while gate is closed:\n%s", out)
	}
	if !strings.Contains(out, "frames=4 applied=4 removed_graphs=0") {
		t.Fatalf("summary mismatch:\n%s", out)
	}
}

func TestRunSolveRequiresSkeleton(t *testing.T) {
	path := writeScenarioForTest(t, "frames:\n  - status: running\n")

	_, err := runForTest(t, "solve", path)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), messages.MessageSkeletonRequired) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunSolveRequiresYamlScenario(t *testing.T) {
	_, err := runForTest(t, "solve", "avatar.vrm")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), messages.MessageScenarioRequired) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunRejectsUnknownLogLevel(t *testing.T) {
	path := writeScenarioForTest(t, testScenarioYAML)

	_, err := runForTest(t, "solve", path, "--log-level", "loud")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "loud") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunHelpUsesUsageTitle(t *testing.T) {
	out, err := runForTest(t, "--help")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out, messages.HelpUsageTitle+":") || !strings.Contains(out, "solve") {
		t.Fatalf("help output mismatch:\n%s", out)
	}
}

func TestRunChainsFromVrm(t *testing.T) {
	inPath := filepath.Join(t.TempDir(), "avatar.vrm")
	writeTestGLB(t, inPath, newArmTestVrmDocument())

	out, err := runForTest(t, "chains", inPath)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	for _, want := range []string{
		"joints=9",
		"left joints=[J_leftShoulder J_leftUpperArm J_leftLowerArm J_leftHand] lengths=[0.3000 0.2500 0.1000] total=0.6500",
		"right joints=[J_rightShoulder J_rightUpperArm J_rightLowerArm J_rightHand]",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output should contain %q:\n%s", want, out)
		}
	}
}

func TestRunChainsFromScenario(t *testing.T) {
	path := writeScenarioForTest(t, testScenarioYAML)

	out, err := runForTest(t, "chains", path)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out, "left joints=[LeftShoulder LeftUpperArm LeftLowerArm LeftHand]") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestRunChainsReportsIncompleteRig(t *testing.T) {
	path := writeScenarioForTest(t, "skeleton:\n  joints:\n    - {name: Hips, role: hips}\n")

	_, err := runForTest(t, "chains", path)
	if err == nil || !strings.Contains(err.Error(), messages.MessageRigNotBuilt) {
		t.Fatalf("unexpected error: %v", err)
	}
}

// newArmTestVrmDocument は腰と左右の腕を持つVRM1文書を生成する。
func newArmTestVrmDocument() map[string]any {
	nodes := []any{
		map[string]any{"name": "J_hips", "translation": []float64{0, 1, 0}, "children": []int{1, 5}},
	}
	humanBones := map[string]any{"hips": map[string]any{"node": 0}}
	for _, side := range []struct {
		prefix string
		sign   float64
	}{{"left", 1}, {"right", -1}} {
		translations := [][]float64{{0.1 * side.sign, 0.4, 0}, {0.1 * side.sign, 0, 0}, {0.3 * side.sign, 0, 0}, {0.25 * side.sign, 0, 0}}
		for i, bone := range []string{"Shoulder", "UpperArm", "LowerArm", "Hand"} {
			name := side.prefix + bone
			node := map[string]any{"name": "J_" + name, "translation": translations[i]}
			if i < 3 {
				node["children"] = []int{len(nodes) + 1}
			}
			humanBones[name] = map[string]any{"node": len(nodes)}
			nodes = append(nodes, node)
		}
	}
	return map[string]any{
		"asset":          map[string]any{"version": "2.0"},
		"extensionsUsed": []string{"VRMC_vrm"},
		"nodes":          nodes,
		"extensions": map[string]any{
			"VRMC_vrm": map[string]any{"specVersion": "1.0", "humanoid": map[string]any{"humanBones": humanBones}},
		},
	}
}

// writeTestGLB はテスト用JSONをGLB形式で保存する。
func writeTestGLB(t *testing.T, path string, doc map[string]any) {
	t.Helper()
	jsonBytes, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("json marshal failed: %v", err)
	}
	padding := (4 - (len(jsonBytes) % 4)) % 4
	if padding > 0 {
		jsonBytes = append(jsonBytes, bytes.Repeat([]byte(" "), padding)...)
	}

	totalLength := uint32(12 + 8 + len(jsonBytes))
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, uint32(0x46546C67)); err != nil {
		t.Fatalf("write magic failed: %v", err)
	}
	if err := binary.Write(&buf, binary.LittleEndian, uint32(2)); err != nil {
		t.Fatalf("write version failed: %v", err)
	}
	if err := binary.Write(&buf, binary.LittleEndian, totalLength); err != nil {
		t.Fatalf("write total length failed: %v", err)
	}
	if err := binary.Write(&buf, binary.LittleEndian, uint32(len(jsonBytes))); err != nil {
		t.Fatalf("write chunk length failed: %v", err)
	}
	if err := binary.Write(&buf, binary.LittleEndian, uint32(0x4E4F534A)); err != nil {
		t.Fatalf("write chunk type failed: %v", err)
	}
	if _, err := buf.Write(jsonBytes); err != nil {
		t.Fatalf("write chunk body failed: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write glb file failed: %v", err)
	}
}
