package store

import (
	"sync"

	"github.com/quizforge/backend/internal/domain/quiz"
)

// Session holds the state of the active document session: the extracted
// chunks, the generated question set, the user's answers, and the current
// grade result. Everything lives in memory and is wiped by Reset; there is
// no persistence of quiz state beyond the session.
//
// Every reset bumps an epoch counter. Writers capture the epoch before
// starting slow work (a generation run, a regeneration call) and pass it
// back with the write; a mismatch means the session moved on and the write
// is refused with ErrStaleEpoch.
type Session struct {
	mu      sync.RWMutex
	epoch   int64
	chunks  []string
	set     *quiz.Set
	answers quiz.AnswerMap
	result  *quiz.Result
}

// NewSession returns an empty session at epoch zero.
func NewSession() *Session {
	return &Session{
		set:     quiz.NewSet(),
		answers: quiz.AnswerMap{},
	}
}

// Reset replaces the session's chunks and wipes questions, answers, and
// the grade result. It returns the new epoch.
func (s *Session) Reset(chunks []string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.epoch++
	s.chunks = append([]string(nil), chunks...)
	s.set = quiz.NewSet()
	s.answers = quiz.AnswerMap{}
	s.result = nil
	return s.epoch
}

// ResetForRun starts a generation run: it keeps the current chunks but
// wipes questions, answers, and the grade result, and bumps the epoch, all
// under one lock. It returns the chunks and the new epoch. Capturing both
// atomically means a run cannot re-install chunks that a concurrent upload
// replaced between a read and a reset.
func (s *Session) ResetForRun() ([]string, int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.epoch++
	s.set = quiz.NewSet()
	s.answers = quiz.AnswerMap{}
	s.result = nil
	return append([]string(nil), s.chunks...), s.epoch
}

// Epoch returns the current epoch.
func (s *Session) Epoch() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.epoch
}

// Chunks returns the chunks of the current document.
func (s *Session) Chunks() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.chunks...)
}

// CommitQuestions appends questions generated against the given epoch.
// A stale epoch leaves the session untouched.
func (s *Session) CommitQuestions(epoch int64, questions []quiz.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if epoch != s.epoch {
		return ErrStaleEpoch
	}
	for _, q := range questions {
		s.set.Add(q)
	}
	return nil
}

// ReplaceQuestion swaps the content of the question with the given ID,
// preserving its identity, kind, and source context. A stale epoch or an
// unknown ID leaves the session untouched.
func (s *Session) ReplaceQuestion(epoch int64, id string, repl quiz.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if epoch != s.epoch {
		return ErrStaleEpoch
	}
	q := s.set.Find(id)
	if q == nil {
		return ErrNotFound
	}
	q.Replace(repl)
	return nil
}

// Question returns a copy of the question with the given ID.
func (s *Session) Question(id string) (quiz.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := s.set.Find(id)
	if q == nil {
		return quiz.Question{}, ErrNotFound
	}
	return *q, nil
}

// Questions returns a deep copy of the current question set.
func (s *Session) Questions() *quiz.Set {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.Clone()
}

// SetAnswer records the user's answer for a question and invalidates any
// existing grade result: a stale score must never remain on display after
// an edit.
func (s *Session) SetAnswer(id, answer string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.set.Find(id) == nil {
		return ErrNotFound
	}
	s.answers[id] = answer
	s.result = nil
	return nil
}

// Answers returns a copy of the user's current answers.
func (s *Session) Answers() quiz.AnswerMap {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(quiz.AnswerMap, len(s.answers))
	for k, v := range s.answers {
		out[k] = v
	}
	return out
}

// SetResult stores a freshly computed grade result. The session keeps its
// own copy so the caller's value cannot mutate stored state.
func (s *Session) SetResult(r *quiz.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = r.Clone()
}

// Result returns a copy of the current grade result, or ErrNotFound when
// none is stored (never graded, or invalidated by an answer edit).
func (s *Session) Result() (*quiz.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.result == nil {
		return nil, ErrNotFound
	}
	return s.result.Clone(), nil
}
