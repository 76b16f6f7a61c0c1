package ocr

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"log/slog"
)

// Runner lets us stub tesseract and the HEIC converters in tests.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

type execRunner struct {
	log *slog.Logger
}

func (r execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	start := time.Now()

	cmd := exec.CommandContext(ctx, name, args...)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb

	err := cmd.Run()
	elapsed := time.Since(start)

	if err != nil {
		r.log.Error("ocr.exec.failed",
			"cmd", name,
			"args", strings.Join(args, " "),
			"elapsed_ms", elapsed.Milliseconds(),
			"error", err,
			"stderr", truncate(errb.String(), 8<<10), // cap at 8KB
		)
	} else {
		r.log.Debug("ocr.exec.ok",
			"cmd", name,
			"args", strings.Join(args, " "),
			"elapsed_ms", elapsed.Milliseconds(),
			"stdout_bytes", out.Len(),
			"stderr_bytes", errb.Len(),
		)
	}

	return out.Bytes(), errb.Bytes(), err
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
