package grade_test

import (
	"testing"

	"github.com/quizforge/backend/internal/domain/quiz"
	"github.com/quizforge/backend/internal/grade"
)

func TestFillBlankExactMatch(t *testing.T) {
	q := quiz.Question{ID: "q1", Kind: quiz.KindFillBlank, Prompt: "Capital of France is ____.", Answer: "Paris"}

	cases := []struct {
		answer string
		want   bool
	}{
		{"Paris", true},
		{" paris ", true},
		{"PARIS", true},
		{"pariss", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := grade.Correct(q, tc.answer); got != tc.want {
			t.Errorf("Correct(%q) = %v, want %v", tc.answer, got, tc.want)
		}
	}
}

func TestTrueFalseMatch(t *testing.T) {
	q := quiz.Question{ID: "q1", Kind: quiz.KindTrueFalse, Prompt: "The sky is blue.", Answer: "True"}

	if !grade.Correct(q, "true") {
		t.Error("expected case-insensitive match for true-false")
	}
	if grade.Correct(q, "false") {
		t.Error("expected mismatch for wrong true-false answer")
	}
}

func TestChoiceToleratesAnswerForms(t *testing.T) {
	q := quiz.Question{
		ID:      "q1",
		Kind:    quiz.KindChoice,
		Prompt:  "Capital of Japan?",
		Options: []string{"Beijing", "Seoul", "Tokyo", "Bangkok"},
		Answer:  "C. Tokyo",
	}

	for _, answer := range []string{"C", "C.", "c. tokyo", "Tokyo", "c)"} {
		if !grade.Correct(q, answer) {
			t.Errorf("expected %q to be accepted for canonical %q", answer, q.Answer)
		}
	}
	for _, answer := range []string{"Seoul", "B", "d. tokyo", ""} {
		if grade.Correct(q, answer) {
			t.Errorf("expected %q to be rejected for canonical %q", answer, q.Answer)
		}
	}
}

func TestChoiceBareLetterCanonical(t *testing.T) {
	q := quiz.Question{
		ID:      "q1",
		Kind:    quiz.KindChoice,
		Prompt:  "Capital of Japan?",
		Options: []string{"Beijing", "Seoul", "Tokyo", "Bangkok"},
		Answer:  "C",
	}

	for _, answer := range []string{"c", "C.", "tokyo"} {
		if !grade.Correct(q, answer) {
			t.Errorf("expected %q to be accepted for bare-letter canonical", answer)
		}
	}
	if grade.Correct(q, "Beijing") {
		t.Error("expected wrong option to be rejected for bare-letter canonical")
	}
}

func TestChoiceFullTextCanonical(t *testing.T) {
	q := quiz.Question{
		ID:      "q1",
		Kind:    quiz.KindChoice,
		Prompt:  "Capital of Japan?",
		Options: []string{"Beijing", "Seoul", "Tokyo", "Bangkok"},
		Answer:  "Tokyo",
	}

	for _, answer := range []string{"tokyo", "C", "c."} {
		if !grade.Correct(q, answer) {
			t.Errorf("expected %q to be accepted for full-text canonical", answer)
		}
	}
	// An option that merely starts with a letter-like character must not
	// create phantom letter matches.
	wrong := quiz.Question{
		ID:      "q2",
		Kind:    quiz.KindChoice,
		Options: []string{"Beijing", "Seoul", "Tokyo", "Bangkok"},
		Answer:  "Beijing",
	}
	if grade.Correct(wrong, "B") {
		t.Error("'B' points at Seoul and must not match canonical Beijing")
	}
	if !grade.Correct(wrong, "A") {
		t.Error("'A' points at Beijing and should match")
	}
}

func TestGradeCoversEveryQuestion(t *testing.T) {
	set := quiz.NewSet()
	set.Add(quiz.Question{ID: "q1", Kind: quiz.KindFillBlank, Prompt: "p", Answer: "alpha"})
	set.Add(quiz.Question{ID: "q2", Kind: quiz.KindTrueFalse, Prompt: "p", Answer: "True"})
	set.Add(quiz.Question{ID: "q3", Kind: quiz.KindTrueFalse, Prompt: "p", Answer: "False"})

	answers := quiz.AnswerMap{
		"q1": "alpha",
		// q2 unanswered
		"q3": "true", // wrong
	}

	result := grade.Grade(set, answers)

	if result.TotalQuestions != 3 {
		t.Errorf("expected 3 graded questions, got %d", result.TotalQuestions)
	}
	if result.TotalCorrect != 1 {
		t.Errorf("expected 1 correct, got %d", result.TotalCorrect)
	}
	if len(result.PerQuestion) != 3 {
		t.Fatalf("expected per-question entry for every question, got %d", len(result.PerQuestion))
	}
	if !result.PerQuestion["q1"] || result.PerQuestion["q2"] || result.PerQuestion["q3"] {
		t.Errorf("unexpected per-question results: %v", result.PerQuestion)
	}
}

func TestGradeEmptySet(t *testing.T) {
	result := grade.Grade(quiz.NewSet(), quiz.AnswerMap{})

	if result.TotalQuestions != 0 || result.TotalCorrect != 0 {
		t.Errorf("expected zero totals, got %+v", result)
	}
	if result.Percent() != 0 {
		t.Errorf("expected 0%% for empty set, got %d", result.Percent())
	}
}

func TestGradeIsIdempotent(t *testing.T) {
	set := quiz.NewSet()
	set.Add(quiz.Question{ID: "q1", Kind: quiz.KindFillBlank, Prompt: "p", Answer: "x"})
	answers := quiz.AnswerMap{"q1": "x"}

	first := grade.Grade(set, answers)
	second := grade.Grade(set, answers)

	if first.TotalCorrect != second.TotalCorrect || first.TotalQuestions != second.TotalQuestions {
		t.Error("grading twice on unchanged input must yield identical totals")
	}
	for id, v := range first.PerQuestion {
		if second.PerQuestion[id] != v {
			t.Errorf("per-question result for %s differs between runs", id)
		}
	}
}
