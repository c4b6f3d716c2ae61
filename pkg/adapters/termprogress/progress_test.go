package termprogress

import (
	"bytes"
	"strings"
	"testing"

	"github.com/micahamd/gif-tools/pkg/ports"
)

func TestReporter_Disabled(t *testing.T) {
	reporter := NewDisabled()

	// None of these may panic or draw.
	reporter.Start(10, "working")
	reporter.Add(5)
	reporter.Finish()

	if reporter.bar != nil {
		t.Error("disabled reporter must not create a bar")
	}
}

func TestReporter_DrawsToWriter(t *testing.T) {
	var buf bytes.Buffer
	reporter := &Reporter{enabled: true, out: &buf}

	reporter.Start(4, "converting")
	reporter.Add(2)
	reporter.Add(2)
	reporter.Finish()

	out := buf.String()
	if out == "" {
		t.Fatal("expected progress output")
	}
	if !strings.Contains(out, "converting") {
		t.Errorf("expected description in output, got %q", out)
	}
}

func TestReporter_FinishWithoutStart(t *testing.T) {
	reporter := NewDisabled()
	reporter.Finish()
	reporter.Add(1)
}

func TestReporter_ImplementsInterface(t *testing.T) {
	var _ ports.Progress = (*Reporter)(nil)
}
