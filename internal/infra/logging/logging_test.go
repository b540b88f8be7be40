//go:build !integration

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestWithAttachesContextFields(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	ctx := WithTraceID(context.Background(), "trace-123")
	ctx = WithSessID(ctx, "sess-456")

	With(ctx, &base).Info().Msg("turn handled")

	out := buf.String()
	if !strings.Contains(out, `"trace_id":"trace-123"`) {
		t.Errorf("expected trace_id field, got %q", out)
	}
	if !strings.Contains(out, `"session_id":"sess-456"`) {
		t.Errorf("expected session_id field, got %q", out)
	}
}

func TestWithSkipsAbsentFields(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	With(context.Background(), &base).Info().Msg("bare")

	out := buf.String()
	if strings.Contains(out, "trace_id") || strings.Contains(out, "session_id") {
		t.Errorf("expected no context fields, got %q", out)
	}
}

func TestTraceDuration(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	done := TraceDuration(&base, "TutorUC.Handle")
	done()

	out := buf.String()
	if !strings.Contains(out, `"method":"TutorUC.Handle"`) {
		t.Errorf("expected method field, got %q", out)
	}
	if !strings.Contains(out, `"message":"start"`) || !strings.Contains(out, `"message":"finish"`) {
		t.Errorf("expected start and finish events, got %q", out)
	}
	if !strings.Contains(out, `"duration"`) {
		t.Errorf("expected duration field on finish, got %q", out)
	}
}
