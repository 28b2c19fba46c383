package extract

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// pageSeparator joins consecutive pages in the extracted text.
const pageSeparator = "\n\n"

// extractPDF pulls text from every page in page order. progress fires
// after each page so the caller can surface "page N of M" feedback; calls
// are ordered with extraction because they run on the same goroutine.
func extractPDF(ctx context.Context, data []byte, progress ProgressFunc) (result Result, err error) {
	// The pdf library panics on some malformed inputs; fold those into
	// ErrExtractionFailed instead of crashing the batch.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrExtractionFailed, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	total := reader.NumPage()
	var b strings.Builder

	for pageNum := 1; pageNum <= total; pageNum++ {
		if ctx.Err() != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrExtractionTimeout, ctx.Err())
		}

		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return Result{}, fmt.Errorf("%w: page %d: %v", ErrExtractionFailed, pageNum, err)
		}

		if b.Len() > 0 {
			b.WriteString(pageSeparator)
		}
		b.WriteString(strings.TrimSpace(text))

		if progress != nil {
			progress(pageNum, total)
		}
	}

	return Result{Text: b.String(), Pages: total}, nil
}
