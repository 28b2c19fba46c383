package quiz

// Kind discriminates the three question types the pipeline produces.
type Kind string

const (
	KindFillBlank Kind = "fill_blank"
	KindChoice    Kind = "multiple_choice"
	KindTrueFalse Kind = "true_false"
)

// Kinds lists all question kinds in display order.
func Kinds() []Kind {
	return []Kind{KindFillBlank, KindChoice, KindTrueFalse}
}

// Valid reports whether k is one of the three known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindFillBlank, KindChoice, KindTrueFalse:
		return true
	}
	return false
}

// Question is a single quiz item. Prompt and Answer are always non-empty;
// the parser discards records that would violate this. Options is populated
// only for multiple-choice questions. SourceContext is the text chunk the
// question was generated from, kept so regeneration can reuse the same
// grounding text.
type Question struct {
	ID            string   `json:"id"`
	Kind          Kind     `json:"kind"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options,omitempty"`
	Answer        string   `json:"answer"`
	SourceContext string   `json:"-"`
}

// Replace swaps the generated content of q for the content of repl while
// preserving identity, kind, and source context.
func (q *Question) Replace(repl Question) {
	q.Prompt = repl.Prompt
	q.Answer = repl.Answer
	q.Options = repl.Options
}
