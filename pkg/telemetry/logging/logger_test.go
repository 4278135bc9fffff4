package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestNew_LevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Config{Level: "info", Format: "json", Writer: buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Debug("hidden")
	logger.Info("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug record was written at info level")
	}
	if !strings.Contains(out, "shown") {
		t.Error("info record was not written")
	}
}

func TestNew_Formats(t *testing.T) {
	for _, format := range []string{"json", "text", "console"} {
		buf := &bytes.Buffer{}
		logger, err := New(Config{Level: "info", Format: format, Writer: buf})
		if err != nil {
			t.Fatalf("New(%s) failed: %v", format, err)
		}
		logger.Info("probe", "key", "value")
		if buf.Len() == 0 {
			t.Errorf("format %s wrote nothing", format)
		}
	}
}

func TestNew_Rejections(t *testing.T) {
	if _, err := New(Config{Level: "loud"}); err == nil {
		t.Error("expected error for unknown level")
	}
	if _, err := New(Config{Level: "info", Format: "xml"}); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestContext_LoggerRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Config{Level: "info", Format: "json", Writer: buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx := WithLogger(context.Background(), logger)
	FromContext(ctx).Info("via context")
	if !strings.Contains(buf.String(), "via context") {
		t.Error("context logger did not write to the injected writer")
	}

	if FromContext(context.Background()) == nil {
		t.Error("FromContext must fall back to a usable logger")
	}
}

func TestContext_OperationID(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Config{Level: "info", Format: "json", Writer: buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx := WithLogger(context.Background(), logger)
	ctx, id := WithOperationID(ctx)
	if id == "" {
		t.Fatal("WithOperationID returned an empty ID")
	}
	if got := OperationID(ctx); got != id {
		t.Errorf("OperationID = %q, want %q", got, id)
	}

	FromContext(ctx).Info("stamped")
	if !strings.Contains(buf.String(), id) {
		t.Error("log record does not carry the operation ID")
	}
}
