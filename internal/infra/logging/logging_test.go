//go:build !integration

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestWith(t *testing.T) {
	t.Run("carries trace and chat ids from context", func(t *testing.T) {
		var buf bytes.Buffer
		base := zerolog.New(&buf)
		ctx := WithChatID(WithTraceID(context.Background(), "t-123"), 42)

		With(ctx, &base).Info().Msg("hello")

		out := buf.String()
		if !strings.Contains(out, `"trace_id":"t-123"`) {
			t.Errorf("expected trace_id in output, got %s", out)
		}
		if !strings.Contains(out, `"chat_id":42`) {
			t.Errorf("expected chat_id in output, got %s", out)
		}
	})

	t.Run("bare context adds nothing", func(t *testing.T) {
		var buf bytes.Buffer
		base := zerolog.New(&buf)

		With(context.Background(), &base).Info().Msg("hello")

		if strings.Contains(buf.String(), "trace_id") || strings.Contains(buf.String(), "chat_id") {
			t.Errorf("expected no context fields, got %s", buf.String())
		}
	})
}
