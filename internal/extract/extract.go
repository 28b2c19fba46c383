// Package extract converts uploaded documents into plain UTF-8 text.
// Dispatch is by declared file extension; each backend discards markup and
// returns body text only.
package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	// ErrUnsupportedFormat means the file type has no extraction backend.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrExtractionFailed means the input was recognized but could not be
	// read (corrupted or malformed file).
	ErrExtractionFailed = errors.New("document extraction failed")

	// ErrExtractionTimeout means extraction exceeded its deadline.
	ErrExtractionTimeout = errors.New("document extraction timed out")
)

// DefaultMaxTextLen caps extracted text at roughly 500 KB so a pathological
// upload cannot balloon the session.
const DefaultMaxTextLen = 500_000

// ProgressFunc reports page-level progress for multi-page formats. It is
// called between pages on the extraction goroutine.
type ProgressFunc func(page, total int)

// Result is the outcome of one extraction. Truncated is set when the text
// was cut at the configured ceiling; the loss is never silent.
type Result struct {
	Text      string
	Pages     int
	Truncated bool
}

// Extractor turns raw file bytes into text, bounded by a timeout and a
// size ceiling.
type Extractor struct {
	timeout time.Duration
	maxLen  int
	logger  *slog.Logger
}

// New creates an Extractor. Non-positive timeout or maxLen fall back to
// 30s and DefaultMaxTextLen.
func New(timeout time.Duration, maxLen int, logger *slog.Logger) *Extractor {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if maxLen <= 0 {
		maxLen = DefaultMaxTextLen
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Extractor{timeout: timeout, maxLen: maxLen, logger: logger}
}

// Extract converts data to text based on filename's extension. progress
// may be nil. The work runs under the extractor's timeout; exceeding it
// fails with ErrExtractionTimeout.
func (e *Extractor) Extract(ctx context.Context, filename string, data []byte, progress ProgressFunc) (Result, error) {
	backend, err := e.backendFor(filename)
	if err != nil {
		return Result{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	if err := ctx.Err(); err != nil {
		return Result{}, e.deadlineError(err)
	}

	type outcome struct {
		res Result
		err error
	}
	done := make(chan outcome, 1)

	go func() {
		res, err := backend(ctx, data, progress)
		done <- outcome{res, err}
	}()

	select {
	case <-ctx.Done():
		return Result{}, e.deadlineError(ctx.Err())
	case out := <-done:
		if out.err != nil {
			return Result{}, out.err
		}
		return e.truncate(out.res, filename), nil
	}
}

// deadlineError maps an expired context to ErrExtractionTimeout. A
// canceled context means the caller gave up, not that extraction was too
// slow, and is passed through as-is.
func (e *Extractor) deadlineError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w after %s", ErrExtractionTimeout, e.timeout)
	}
	return err
}

type backendFunc func(ctx context.Context, data []byte, progress ProgressFunc) (Result, error)

func (e *Extractor) backendFor(filename string) (backendFunc, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt", ".md", ".markdown":
		return extractPlainText, nil
	case ".pdf":
		return extractPDF, nil
	case ".docx":
		return extractDOCX, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

// truncate applies the size ceiling without cutting a rune in half and
// reports the event.
func (e *Extractor) truncate(res Result, filename string) Result {
	if len(res.Text) <= e.maxLen {
		return res
	}

	cut := e.maxLen
	for cut > 0 && !utf8.RuneStart(res.Text[cut]) {
		cut--
	}
	e.logger.Warn("extracted text truncated",
		"file", filepath.Base(filename),
		"original_len", len(res.Text),
		"max_len", e.maxLen,
	)
	res.Text = res.Text[:cut]
	res.Truncated = true
	return res
}

// extractPlainText decodes the bytes verbatim, replacing any invalid
// UTF-8 sequences rather than failing.
func extractPlainText(_ context.Context, data []byte, _ ProgressFunc) (Result, error) {
	return Result{Text: strings.ToValidUTF8(string(data), "�")}, nil
}
