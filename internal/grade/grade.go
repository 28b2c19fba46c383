// Package grade compares user answers against canonical answers. Grading
// is pure and synchronous: the same set and answers always produce the
// same result.
package grade

import (
	"regexp"
	"strings"

	"github.com/quizforge/backend/internal/domain/quiz"
)

// Grade checks every question in the set against answers and returns one
// atomic result. A question with no entry in answers is graded incorrect,
// never skipped.
func Grade(set *quiz.Set, answers quiz.AnswerMap) *quiz.Result {
	result := &quiz.Result{PerQuestion: make(map[string]bool)}

	for _, q := range set.All() {
		correct := Correct(q, answers[q.ID])
		result.PerQuestion[q.ID] = correct
		result.TotalQuestions++
		if correct {
			result.TotalCorrect++
		}
	}
	return result
}

// Correct reports whether userAnswer matches q's canonical answer under
// the kind-specific equivalence rules. Comparison is case-insensitive with
// surrounding whitespace ignored on both sides.
func Correct(q quiz.Question, userAnswer string) bool {
	user := normalize(userAnswer)
	if user == "" {
		return false
	}
	canonical := normalize(q.Answer)

	if q.Kind != quiz.KindChoice {
		return user == canonical
	}
	return choiceMatch(q, user, canonical)
}

// letterPattern recognizes a canonical answer that starts with an option
// letter and a separator: "c.", "c)", "c. tokyo". The separator is
// mandatory so option text that merely begins with a-d ("Beijing") is not
// mistaken for a letter form. Applied to normalized text.
var letterPattern = regexp.MustCompile(`^([a-d])[.)]\s*(.*)$`)

// choiceMatch implements the multiple-choice tolerance rules. Upstream
// models store the canonical answer as a bare letter, a letter plus
// punctuation, or the full option text; the user may likewise answer with
// any of those forms. Every representation that resolves to the same
// option is accepted.
func choiceMatch(q quiz.Question, user, canonical string) bool {
	accepted := map[string]bool{canonical: true}

	addLetterForms := func(letter string) {
		accepted[letter] = true
		accepted[letter+"."] = true
		accepted[letter+")"] = true
	}

	if len(canonical) == 1 && canonical[0] >= 'a' && canonical[0] <= 'd' {
		addLetterForms(canonical)
		if i := int(canonical[0] - 'a'); i < len(q.Options) {
			accepted[normalize(q.Options[i])] = true
		}
	} else if m := letterPattern.FindStringSubmatch(canonical); m != nil {
		letter, text := m[1], strings.TrimSpace(m[2])
		addLetterForms(letter)
		if text != "" {
			accepted[text] = true
			accepted[letter+". "+text] = true
		} else if i := int(letter[0] - 'a'); i < len(q.Options) {
			// "c." with no text: the option it points at is equally
			// correct.
			accepted[normalize(q.Options[i])] = true
		}
	}

	// Canonical stored as full option text: accept the option's letter too.
	for i, opt := range q.Options {
		if normalize(opt) == canonical {
			addLetterForms(string(rune('a' + i)))
		}
	}

	if accepted[user] {
		return true
	}
	// Tolerate a trailing separator on the user's side ("C." for "C").
	trimmed := strings.TrimRight(user, ".)")
	return trimmed != "" && accepted[strings.TrimSpace(trimmed)]
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
