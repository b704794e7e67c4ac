// 指示: miu200521358
package mlogging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/miu200521358/mu_vrmik/pkg/shared/base/logging"
)

func TestLoggerFiltersByLevel(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	logger := NewLogger(buf)
	logger.SetLevel(logging.LOG_LEVEL_WARN)

	logger.Info("info message %d", 1)
	logger.Warn("warn message %d", 2)

	out := buf.String()
	if strings.Contains(out, "info message") {
		t.Fatalf("info should be filtered: %s", out)
	}
	if !strings.Contains(out, "warn message 2") {
		t.Fatalf("warn should be written: %s", out)
	}
	if logger.Level() != logging.LOG_LEVEL_WARN {
		t.Fatalf("level mismatch: got=%d", logger.Level())
	}
}

func TestLoggerVerboseRequiresIndexAndLevel(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	logger := NewLogger(buf)
	logger.EnableVerbose(logging.VERBOSE_INDEX_FABRIK)

	if logger.IsVerboseEnabled(logging.VERBOSE_INDEX_FABRIK) {
		t.Fatalf("verbose should be disabled at info level")
	}
	logger.SetLevel(logging.LOG_LEVEL_VERBOSE)
	if !logger.IsVerboseEnabled(logging.VERBOSE_INDEX_FABRIK) {
		t.Fatalf("verbose should be enabled for fabrik")
	}
	if logger.IsVerboseEnabled(logging.VERBOSE_INDEX_FRAME) {
		t.Fatalf("verbose should be disabled for frame")
	}
	logger.Verbose(logging.VERBOSE_INDEX_FABRIK, "iteration=%d", 3)
	if !strings.Contains(buf.String(), "iteration=3") {
		t.Fatalf("verbose message missing: %s", buf.String())
	}
}

func TestNewLoggerWithFormatJSONAddsComponent(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	logger, err := NewLoggerWithFormat(buf, FormatJSON)
	if err != nil {
		t.Fatalf("logger creation failed: %v", err)
	}
	logger.WithComponent("ik").Info("solved")

	record := map[string]any{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &record); err != nil {
		t.Fatalf("json decode failed: %v (%s)", err, buf.String())
	}
	if record["component"] != "ik" {
		t.Fatalf("component mismatch: %v", record["component"])
	}
	if record["msg"] != "solved" {
		t.Fatalf("msg mismatch: %v", record["msg"])
	}
}

func TestNewLoggerWithFormatRejectsUnknown(t *testing.T) {
	if _, err := NewLoggerWithFormat(nil, "xml"); err == nil {
		t.Fatalf("expected error")
	}
}
