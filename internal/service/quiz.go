// internal/service/quiz.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/quizforge/backend/internal/chunk"
	"github.com/quizforge/backend/internal/domain/quiz"
	"github.com/quizforge/backend/internal/extract"
	"github.com/quizforge/backend/internal/generator"
	"github.com/quizforge/backend/internal/grade"
	"github.com/quizforge/backend/internal/id"
	"github.com/quizforge/backend/internal/parse"
	"github.com/quizforge/backend/internal/plan"
	"github.com/quizforge/backend/internal/store"
	"github.com/quizforge/backend/internal/worker"
)

var (
	// ErrNoDocument means no document has been uploaded yet.
	ErrNoDocument = errors.New("no document uploaded")

	// ErrRegenerationFailed means the replacement produced by the model
	// was unusable; the original question is untouched.
	ErrRegenerationFailed = errors.New("regeneration failed")

	// ErrRegenerationInFlight means a regeneration for the same question
	// is still running.
	ErrRegenerationInFlight = errors.New("regeneration already in flight for this question")
)

// UploadInfo summarizes a processed upload.
type UploadInfo struct {
	Chunks    int
	Pages     int
	TextLen   int
	Truncated bool
}

// Snapshot is a read-only view of the session for display and export.
// Result is nil when the set has not been graded (or the grade was
// invalidated by an answer edit).
type Snapshot struct {
	Questions *quiz.Set
	Result    *quiz.Result
}

type regenOutcome struct {
	question quiz.Question
	err      error
}

// QuizService orchestrates the document-to-question pipeline: extraction,
// chunking, planned generation, parsing, grading, and per-question
// regeneration. All dependencies are injected.
type QuizService struct {
	session   *store.Session
	gen       generator.Generator
	parser    *parse.Parser
	extractor *extract.Extractor
	splitter  *chunk.Splitter
	ids       id.Generator
	logger    *slog.Logger

	pool     *worker.Pool[regenOutcome]
	regenMu  sync.Mutex
	inflight map[string]chan regenOutcome
}

// NewQuizService wires the pipeline together. regenWorkers bounds how many
// regeneration calls may run concurrently.
func NewQuizService(
	session *store.Session,
	gen generator.Generator,
	extractor *extract.Extractor,
	splitter *chunk.Splitter,
	ids id.Generator,
	regenWorkers int,
	logger *slog.Logger,
) *QuizService {
	if regenWorkers < 1 {
		regenWorkers = 2
	}
	s := &QuizService{
		session:   session,
		gen:       gen,
		parser:    parse.New(logger),
		extractor: extractor,
		splitter:  splitter,
		ids:       ids,
		logger:    logger,
		pool:      worker.NewPool[regenOutcome](regenWorkers, regenWorkers*2),
		inflight:  make(map[string]chan regenOutcome),
	}
	go s.dispatchRegenResults()
	return s
}

// Close drains the regeneration pool.
func (s *QuizService) Close() {
	s.pool.Close()
}

// ── Upload ──────────────────────────────────────────────────────────────────

// UploadDocument extracts and chunks a new document, then resets the
// session: the previous question set, answers, and grade are gone and any
// still-running generation against the old document is orphaned.
func (s *QuizService) UploadDocument(ctx context.Context, filename string, data []byte, progress extract.ProgressFunc) (UploadInfo, error) {
	res, err := s.extractor.Extract(ctx, filename, data, progress)
	if err != nil {
		return UploadInfo{}, err
	}

	chunks := s.splitter.Split(res.Text)
	s.session.Reset(chunks)

	s.logger.Info("document processed",
		"file", filename,
		"chunks", len(chunks),
		"pages", res.Pages,
		"truncated", res.Truncated,
	)

	return UploadInfo{
		Chunks:    len(chunks),
		Pages:     res.Pages,
		TextLen:   len(res.Text),
		Truncated: res.Truncated,
	}, nil
}

// ── Generation ──────────────────────────────────────────────────────────────

// Generate runs a full generation pass: per-chunk allocation, sequential
// generation calls, parsing, and incremental commit after each chunk.
// Sequential processing keeps the running per-kind counts race-free, and
// committing per chunk means a later chunk's failure does not discard
// earlier chunks' questions: the partial set is returned alongside the
// error.
//
// Zero totals are a no-op yielding an empty set. The parser tolerates
// under-delivery; over-delivery is trimmed so no kind exceeds its
// requested total.
func (s *QuizService) Generate(ctx context.Context, totals plan.Counts) (*quiz.Set, error) {
	// A new run replaces the previous question set. Chunk capture and
	// reset happen under one session lock so a concurrent upload cannot
	// slip in between: the run generates from exactly the chunks that are
	// current at its epoch. The epoch bump also keeps any older,
	// still-running run from committing.
	chunks, epoch := s.session.ResetForRun()
	if len(chunks) == 0 {
		return nil, ErrNoDocument
	}

	if totals.Zero() {
		return s.session.Questions(), nil
	}

	allocation := plan.Allocate(totals, len(chunks))
	var generated plan.Counts

	for i, text := range chunks {
		remaining := plan.Counts{
			FillBlank: totals.FillBlank - generated.FillBlank,
			Choice:    totals.Choice - generated.Choice,
			TrueFalse: totals.TrueFalse - generated.TrueFalse,
		}
		req := plan.Clamp(allocation[i], remaining)
		if req.Zero() {
			continue
		}

		resp, err := s.gen.Generate(ctx, generator.GenerateRequest{Text: text, Counts: req})
		if err != nil {
			s.logger.Error("generation call failed",
				"chunk", i,
				"error", err,
			)
			// Chunks committed so far stay in place.
			return s.session.Questions(), err
		}

		questions := s.parseChunk(resp, req, text)
		if err := s.session.CommitQuestions(epoch, questions); err != nil {
			return nil, err
		}

		for _, q := range questions {
			switch q.Kind {
			case quiz.KindFillBlank:
				generated.FillBlank++
			case quiz.KindChoice:
				generated.Choice++
			case quiz.KindTrueFalse:
				generated.TrueFalse++
			}
		}
	}

	return s.session.Questions(), nil
}

// parseChunk parses one chunk's raw responses, assigns IDs, attaches the
// source context, and trims over-delivery per kind.
func (s *QuizService) parseChunk(resp generator.GenerateResponse, req plan.Counts, text string) []quiz.Question {
	var out []quiz.Question

	collect := func(raws []string, kind quiz.Kind, limit int) {
		parsed := s.parser.Batch(raws, kind)
		if len(parsed) > limit {
			parsed = parsed[:limit]
		}
		for _, q := range parsed {
			q.ID = s.ids.NewID()
			q.SourceContext = text
			out = append(out, q)
		}
	}

	collect(resp.FillBlank, quiz.KindFillBlank, req.FillBlank)
	collect(resp.Choice, quiz.KindChoice, req.Choice)
	collect(resp.TrueFalse, quiz.KindTrueFalse, req.TrueFalse)
	return out
}

// ── Answers and grading ─────────────────────────────────────────────────────

// SetAnswer records the user's answer for a question. Any stored grade
// result is invalidated until the next Grade call.
func (s *QuizService) SetAnswer(questionID, answer string) error {
	return s.session.SetAnswer(questionID, answer)
}

// Grade grades the whole set against the current answers and stores the
// result atomically.
func (s *QuizService) Grade() *quiz.Result {
	result := grade.Grade(s.session.Questions(), s.session.Answers())
	s.session.SetResult(result)
	return result
}

// Snapshot returns a read-only copy of the question set and, when one is
// current, the grade result. External formatters serialize this; the
// pipeline defines no file format.
func (s *QuizService) Snapshot() Snapshot {
	snap := Snapshot{Questions: s.session.Questions()}
	if result, err := s.session.Result(); err == nil {
		snap.Result = result
	}
	return snap
}

// Reset wipes the session entirely.
func (s *QuizService) Reset() {
	s.session.Reset(nil)
}

// ── Regeneration ────────────────────────────────────────────────────────────

// Regenerate requests a replacement for one question and swaps its
// content, preserving ID, kind, and source context. The original question
// is left untouched when the model's replacement fails to parse. Only one
// regeneration per question may be in flight; distinct questions
// regenerate concurrently on the worker pool.
//
// A caller that gives up via ctx does not release the in-flight slot: the
// pool job is still running, and a retry before it finishes gets
// ErrRegenerationInFlight. The dispatcher releases the slot when the
// job's result arrives, so an abandoned job's outcome can never be routed
// to a later caller.
func (s *QuizService) Regenerate(ctx context.Context, questionID string) (quiz.Question, error) {
	original, err := s.session.Question(questionID)
	if err != nil {
		return quiz.Question{}, err
	}
	epoch := s.session.Epoch()

	waiter, err := s.claimRegen(questionID)
	if err != nil {
		return quiz.Question{}, err
	}

	s.pool.Submit(questionID, func() regenOutcome {
		return s.regenerate(ctx, epoch, original)
	})

	select {
	case <-ctx.Done():
		return quiz.Question{}, ctx.Err()
	case out := <-waiter:
		return out.question, out.err
	}
}

// regenerate runs on a pool worker: one model call, one parse, one
// epoch-checked replacement.
func (s *QuizService) regenerate(ctx context.Context, epoch int64, original quiz.Question) regenOutcome {
	raw, err := s.gen.Regenerate(ctx, generator.RegenerateRequest{
		Kind:           string(original.Kind),
		OriginalPrompt: original.Prompt,
		Context:        original.SourceContext,
	})
	if err != nil {
		return regenOutcome{err: fmt.Errorf("%w: %v", ErrRegenerationFailed, err)}
	}

	repl, err := s.parser.Question(raw, original.Kind)
	if err != nil {
		s.logger.Warn("regenerated question unusable",
			"question_id", original.ID,
			"error", err,
		)
		return regenOutcome{err: fmt.Errorf("%w: %v", ErrRegenerationFailed, err)}
	}

	if err := s.session.ReplaceQuestion(epoch, original.ID, repl); err != nil {
		return regenOutcome{err: err}
	}

	updated, err := s.session.Question(original.ID)
	if err != nil {
		return regenOutcome{err: err}
	}
	return regenOutcome{question: updated}
}

func (s *QuizService) claimRegen(questionID string) (chan regenOutcome, error) {
	s.regenMu.Lock()
	defer s.regenMu.Unlock()

	if _, busy := s.inflight[questionID]; busy {
		return nil, ErrRegenerationInFlight
	}
	ch := make(chan regenOutcome, 1)
	s.inflight[questionID] = ch
	return ch, nil
}

// dispatchRegenResults routes pool outputs to the callers waiting on them
// and releases each question's in-flight slot once its job has finished.
// The waiter channel is buffered, so delivery never blocks even when the
// caller already gave up. Ends when the pool closes.
func (s *QuizService) dispatchRegenResults() {
	for res := range s.pool.Results() {
		s.regenMu.Lock()
		ch := s.inflight[res.JobID]
		delete(s.inflight, res.JobID)
		s.regenMu.Unlock()
		if ch != nil {
			ch <- res.Output
		}
	}
}
