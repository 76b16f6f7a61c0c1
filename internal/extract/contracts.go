package extract

import "context"

// Source identifies which extraction tier produced a result.
type Source string

const (
	SourceOnDevice Source = "ON_DEVICE"
	SourceCloud    Source = "CLOUD"
	SourceNone     Source = "NONE"
)

// Result is the outcome of one text extraction call. Confidence is in [0,1].
// The diagnostic fields travel with the result instead of living only on the
// service, so concurrent batch items never race on shared state.
type Result struct {
	Text       string
	Confidence float32
	Source     Source
}

// TextExtractor is a single extraction tier: image reference -> text.
// Implementations return errors rather than panic, and honor ctx cancellation
// on any network or subprocess call.
type TextExtractor interface {
	Extract(ctx context.Context, imageRef string) (Result, error)
	Available(ctx context.Context) bool
}
