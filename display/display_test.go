package display

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestContextRoundtrip(t *testing.T) {
	var buf bytes.Buffer
	d := NewPlain(&buf)

	ctx := WithDisplay(context.Background(), d)
	if FromContext(ctx) != d {
		t.Error("Expected the attached display back from context")
	}
}

func TestFromContextFallback(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Error("Expected a usable default display, got nil")
	}
}

func TestPlainDisplayOutput(t *testing.T) {
	var buf bytes.Buffer
	d := NewPlain(&buf)

	d.Info("checked %d files", 3)
	d.Error("boom")
	d.Success("done")
	d.Warning("careful")

	out := buf.String()
	for _, want := range []string{"INFO: checked 3 files", "ERROR: boom", "OK: done", "WARN: careful"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestPlainDisplayTable(t *testing.T) {
	var buf bytes.Buffer
	d := NewPlain(&buf)

	d.Table([]string{"name", "type"}, [][]string{{"age", "integer"}, {"city", "string"}})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "name\ttype" {
		t.Errorf("Unexpected header line: %q", lines[0])
	}
}

func TestPlainDisplayDiffLine(t *testing.T) {
	var buf bytes.Buffer
	d := NewPlain(&buf)

	d.DiffLine("-removed")
	d.DiffLine("+added")

	out := buf.String()
	if !strings.Contains(out, "-removed") || !strings.Contains(out, "+added") {
		t.Errorf("Diff lines not passed through: %q", out)
	}
}
