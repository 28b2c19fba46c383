package extract

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/fumiama/go-docx"
)

// extractDOCX reads the document body and keeps paragraph and table text,
// discarding all formatting markup.
func extractDOCX(_ context.Context, data []byte, _ ProgressFunc) (result Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrExtractionFailed, r)
		}
	}()

	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	var b strings.Builder
	for _, item := range doc.Document.Body.Items {
		switch block := item.(type) {
		case *docx.Paragraph:
			writeBlock(&b, block.String())
		case *docx.Table:
			writeBlock(&b, block.String())
		}
	}

	return Result{Text: b.String()}, nil
}

func writeBlock(b *strings.Builder, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if b.Len() > 0 {
		b.WriteByte('\n')
	}
	b.WriteString(text)
}
