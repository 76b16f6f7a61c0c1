package ocr

import (
	"bytes"
	"context"
	"testing"

	"log/slog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecRunnerLogsFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := execRunner{log: logger}

	_, _, err := r.Run(context.Background(), "snapdish-no-such-binary")
	require.Error(t, err)
	assert.Contains(t, buf.String(), "ocr.exec.failed")
}

func TestExecRunnerLogsSuccess(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := execRunner{log: logger}

	out, _, err := r.Run(context.Background(), "sh", "-c", "printf recipe")
	require.NoError(t, err)
	assert.Equal(t, "recipe", string(out))
	assert.Contains(t, buf.String(), "ocr.exec.ok")
}

func TestTruncateCapsLongOutput(t *testing.T) {
	long := string(bytes.Repeat([]byte("x"), 100))
	got := truncate(long, 10)
	assert.Equal(t, "xxxxxxxxxx...(truncated)", got)
	assert.Equal(t, "short", truncate("short", 10))
}
