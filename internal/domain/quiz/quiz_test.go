package quiz_test

import (
	"testing"

	"github.com/quizforge/backend/internal/domain/quiz"
)

func TestSetPartitionsByKind(t *testing.T) {
	set := quiz.NewSet()
	set.Add(quiz.Question{ID: "a", Kind: quiz.KindFillBlank, Prompt: "p1", Answer: "x"})
	set.Add(quiz.Question{ID: "b", Kind: quiz.KindChoice, Prompt: "p2", Answer: "y"})
	set.Add(quiz.Question{ID: "c", Kind: quiz.KindTrueFalse, Prompt: "p3", Answer: "True"})
	set.Add(quiz.Question{ID: "d", Kind: quiz.KindFillBlank, Prompt: "p4", Answer: "z"})

	if got := set.Count(quiz.KindFillBlank); got != 2 {
		t.Errorf("expected 2 fill-blank questions, got %d", got)
	}
	if got := set.Count(quiz.KindChoice); got != 1 {
		t.Errorf("expected 1 multiple-choice question, got %d", got)
	}
	if got := set.Count(quiz.KindTrueFalse); got != 1 {
		t.Errorf("expected 1 true-false question, got %d", got)
	}
	if set.Total() != 4 {
		t.Errorf("expected total 4, got %d", set.Total())
	}

	// Insertion order within a kind is preserved.
	if set.FillBlank[0].ID != "a" || set.FillBlank[1].ID != "d" {
		t.Errorf("fill-blank order broken: %q, %q", set.FillBlank[0].ID, set.FillBlank[1].ID)
	}
}

func TestSetIgnoresUnknownKind(t *testing.T) {
	set := quiz.NewSet()
	set.Add(quiz.Question{ID: "a", Kind: quiz.Kind("essay"), Prompt: "p", Answer: "x"})

	if set.Total() != 0 {
		t.Errorf("expected unknown kind to be ignored, total = %d", set.Total())
	}
}

func TestSetFind(t *testing.T) {
	set := quiz.NewSet()
	set.Add(quiz.Question{ID: "a", Kind: quiz.KindChoice, Prompt: "p", Answer: "x"})

	q := set.Find("a")
	if q == nil {
		t.Fatal("expected to find question a")
	}
	if q.Kind != quiz.KindChoice {
		t.Errorf("expected kind %q, got %q", quiz.KindChoice, q.Kind)
	}

	if set.Find("missing") != nil {
		t.Error("expected nil for missing ID")
	}
}

func TestSetCloneIsIndependent(t *testing.T) {
	set := quiz.NewSet()
	set.Add(quiz.Question{ID: "a", Kind: quiz.KindChoice, Prompt: "p", Answer: "B", Options: []string{"x", "y"}})

	clone := set.Clone()
	clone.Choice[0].Prompt = "changed"
	clone.Choice[0].Options[0] = "changed"

	if set.Choice[0].Prompt != "p" {
		t.Error("clone mutation leaked into original prompt")
	}
	if set.Choice[0].Options[0] != "x" {
		t.Error("clone mutation leaked into original options")
	}
}

func TestQuestionReplaceKeepsIdentity(t *testing.T) {
	q := quiz.Question{
		ID:            "a",
		Kind:          quiz.KindChoice,
		Prompt:        "old",
		Answer:        "A. old",
		Options:       []string{"old"},
		SourceContext: "chunk text",
	}

	q.Replace(quiz.Question{Prompt: "new", Answer: "B. new", Options: []string{"n1", "n2"}})

	if q.ID != "a" || q.Kind != quiz.KindChoice || q.SourceContext != "chunk text" {
		t.Error("Replace must preserve ID, kind, and source context")
	}
	if q.Prompt != "new" || q.Answer != "B. new" || len(q.Options) != 2 {
		t.Error("Replace must swap prompt, answer, and options")
	}
}

func TestResultPercent(t *testing.T) {
	tests := []struct {
		correct, total, want int
	}{
		{0, 0, 0},
		{1, 2, 50},
		{3, 3, 100},
		{1, 3, 33},
	}

	for _, tt := range tests {
		r := quiz.Result{TotalCorrect: tt.correct, TotalQuestions: tt.total}
		if got := r.Percent(); got != tt.want {
			t.Errorf("Percent(%d/%d) = %d, want %d", tt.correct, tt.total, got, tt.want)
		}
	}
}
