// ABOUTME: Tests for logger construction
// ABOUTME: Validates level gating between quiet and verbose modes
package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("quiet by default", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&buf, false)

		log.InfoContext(context.Background(), "routine progress")
		if buf.Len() != 0 {
			t.Errorf("expected no output at info level, got %q", buf.String())
		}

		log.WarnContext(context.Background(), "something odd")
		if !strings.Contains(buf.String(), "something odd") {
			t.Errorf("expected warning in output, got %q", buf.String())
		}
	})

	t.Run("verbose enables debug", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&buf, true)

		log.DebugContext(context.Background(), "per-file detail", "file", "2023-2-3-15-59.md")
		if !strings.Contains(buf.String(), "per-file detail") {
			t.Errorf("expected debug record in output, got %q", buf.String())
		}
	})
}
