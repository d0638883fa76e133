package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var records []map[string]any

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}

		record := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &record))

		records = append(records, record)
	}

	return records
}

func TestLogger(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem: "guard",
		JSON:      true,
		MinLevel:  slog.LevelDebug,
		Output:    &buf,
	})

	Get().Info("default subsystem")

	ctx := WithSubsystem(t.Context(), "billing")
	Get(ctx).Info("overridden subsystem")

	ctx = With(ctx, "param", "amount")
	ctx = With(ctx, "kind", "negative")
	Get(ctx).Debug("with values")

	Get(WithMuted(ctx, true)).Error("muted")

	records := decodeLines(t, &buf)
	require.Len(t, records, 3)

	assert.Equal(t, "guard", records[0]["subsystem"])
	assert.Equal(t, "billing", records[1]["subsystem"])
	assert.Equal(t, "amount", records[2]["param"])
	assert.Equal(t, "negative", records[2]["kind"])
	assert.Equal(t, "DEBUG", records[2]["level"])
}

func TestMinLevel(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{Subsystem: "guard", Output: &buf, MinLevel: slog.LevelWarn})

	Get().Info("dropped")
	Get().Warn("kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept")
	assert.Contains(t, out, "subsystem=guard")
}

func TestWith_DoesNotAliasParent(t *testing.T) {
	t.Parallel()

	parent := With(context.Background(), "a", 1)
	left := With(parent, "b", 2)
	right := With(parent, "c", 3)

	assert.Equal(t, []any{"a", 1}, getValues(parent))
	assert.Equal(t, []any{"a", 1, "b", 2}, getValues(left))
	assert.Equal(t, []any{"a", 1, "c", 3}, getValues(right))
}

func TestNilContext(t *testing.T) {
	t.Parallel()

	//nolint:staticcheck // nil contexts are tolerated on purpose
	assert.NotNil(t, Get(nil))
	assert.NotNil(t, WithMuted(nil, true)) //nolint:staticcheck
	assert.True(t, isMuted(WithMuted(nil, true))) //nolint:staticcheck
}
