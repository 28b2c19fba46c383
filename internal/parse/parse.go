// Package parse converts raw model output into structured questions. The
// model is asked to emit each question as free text ending in an
// "Answer: ..." line; this package is the single place that format is
// interpreted.
package parse

import (
	"errors"
	"log/slog"
	"regexp"
	"strings"

	"github.com/quizforge/backend/internal/domain/quiz"
)

// ErrMissingAnswerMarker is returned when the raw text contains no
// "Answer:" marker and the answer cannot be located.
var ErrMissingAnswerMarker = errors.New("no Answer: marker in model output")

// answerMarker separates the question body from the canonical answer.
const answerMarker = "Answer:"

// optionsPattern matches a multiple-choice body: a stem followed by four
// sequential options labeled A. through D. (or A) style). (?s) lets the
// stem span lines; the option captures stop at the next label.
var optionsPattern = regexp.MustCompile(
	`(?s)^(.*?)\s*A[.)]\s*(.*?)\s*B[.)]\s*(.*?)\s*C[.)]\s*(.*?)\s*D[.)]\s*(.*?)\s*$`)

// Parser turns one raw model string into a quiz.Question.
type Parser struct {
	logger *slog.Logger
}

// New creates a Parser. A nil logger disables malformed-record diagnostics.
func New(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Parser{logger: logger}
}

// Question parses raw as a question of the given kind. The text after the
// LAST "Answer:" occurrence becomes the canonical answer (last, not
// first, because multiple-choice option text may itself contain the word
// "answer"). For multiple-choice input the body is further split into stem
// and options; when the option pattern does not match, the whole body
// becomes the prompt and options stay empty, which still renders fine but
// cannot back letter-based grading.
//
// An empty prompt or empty answer after trimming is an error: the record
// is unusable and must be discarded by the caller.
func (p *Parser) Question(raw string, kind quiz.Kind) (quiz.Question, error) {
	idx := strings.LastIndex(raw, answerMarker)
	if idx < 0 {
		return quiz.Question{}, ErrMissingAnswerMarker
	}

	body := strings.TrimSpace(raw[:idx])
	answer := strings.TrimSpace(raw[idx+len(answerMarker):])

	q := quiz.Question{Kind: kind, Prompt: body, Answer: answer}

	if kind == quiz.KindChoice {
		if m := optionsPattern.FindStringSubmatch(body); m != nil {
			q.Prompt = strings.TrimSpace(m[1])
			q.Options = []string{
				strings.TrimSpace(m[2]),
				strings.TrimSpace(m[3]),
				strings.TrimSpace(m[4]),
				strings.TrimSpace(m[5]),
			}
		}
	}

	if q.Prompt == "" || q.Answer == "" {
		return quiz.Question{}, errors.New("empty prompt or answer after parsing")
	}
	return q, nil
}

// Batch parses each raw string as kind and returns the questions that
// survive. Malformed items are logged and dropped; a bad item never aborts
// the rest of the batch, so callers get however many valid questions the
// model managed to produce.
func (p *Parser) Batch(raws []string, kind quiz.Kind) []quiz.Question {
	out := make([]quiz.Question, 0, len(raws))
	for i, raw := range raws {
		q, err := p.Question(raw, kind)
		if err != nil {
			p.logger.Warn("dropping malformed question",
				"kind", kind,
				"index", i,
				"error", err,
			)
			continue
		}
		out = append(out, q)
	}
	return out
}
