// Package chunk splits extracted document text into bounded-size segments,
// each small enough to serve as the context of a single generation request.
package chunk

import "strings"

// DefaultTargetSize is the chunk size threshold in characters, tuned to land
// around 1000-1500 words of typical English prose.
const DefaultTargetSize = 6000

// Splitter accumulates sentence-like segments into chunks that stay under a
// target character count.
type Splitter struct {
	targetSize int
}

// NewSplitter creates a Splitter. A non-positive targetSize falls back to
// DefaultTargetSize.
func NewSplitter(targetSize int) *Splitter {
	if targetSize <= 0 {
		targetSize = DefaultTargetSize
	}
	return &Splitter{targetSize: targetSize}
}

// Split breaks text into an ordered sequence of chunks. Segments are split
// on sentence-terminal punctuation and newlines; a segment that would push
// the running chunk past the target closes the chunk and starts the next
// one. Input at or under the target yields exactly one chunk. Empty or
// all-whitespace input yields no chunks.
//
// Concatenating the returned chunks reproduces every non-whitespace
// character of the input in order; only whitespace between segments is
// normalized.
func (s *Splitter) Split(text string) []string {
	segments := splitSegments(text)
	if len(segments) == 0 {
		return nil
	}

	var chunks []string
	var current strings.Builder

	for _, seg := range segments {
		if current.Len() > 0 && current.Len()+len(seg)+1 > s.targetSize {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(seg)
	}

	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}

// splitSegments cuts text into sentence-like pieces. A segment ends at
// sentence-terminal punctuation ('.', '!', '?') or at a newline. Iterates
// over runes so multi-byte characters are never cut in half.
func splitSegments(text string) []string {
	var segments []string
	var current strings.Builder

	flush := func() {
		seg := strings.TrimSpace(current.String())
		if seg != "" {
			segments = append(segments, seg)
		}
		current.Reset()
	}

	for _, r := range text {
		if r == '\n' {
			flush()
			continue
		}
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			flush()
		}
	}
	flush()

	return segments
}
