package quiz

// Set partitions questions by kind into three ordered sequences.
// Insertion order equals generation order and is used for display and
// export numbering.
type Set struct {
	FillBlank []Question `json:"fill_blank"`
	Choice    []Question `json:"multiple_choice"`
	TrueFalse []Question `json:"true_false"`
}

// NewSet returns an empty set with non-nil sequences.
func NewSet() *Set {
	return &Set{
		FillBlank: []Question{},
		Choice:    []Question{},
		TrueFalse: []Question{},
	}
}

// Add appends q to the sequence matching its kind. Questions of an unknown
// kind are ignored rather than misfiled.
func (s *Set) Add(q Question) {
	switch q.Kind {
	case KindFillBlank:
		s.FillBlank = append(s.FillBlank, q)
	case KindChoice:
		s.Choice = append(s.Choice, q)
	case KindTrueFalse:
		s.TrueFalse = append(s.TrueFalse, q)
	}
}

// Count returns how many questions of kind k the set holds.
func (s *Set) Count(k Kind) int {
	switch k {
	case KindFillBlank:
		return len(s.FillBlank)
	case KindChoice:
		return len(s.Choice)
	case KindTrueFalse:
		return len(s.TrueFalse)
	}
	return 0
}

// Total returns the number of questions across all kinds.
func (s *Set) Total() int {
	return len(s.FillBlank) + len(s.Choice) + len(s.TrueFalse)
}

// All returns every question in kind order, insertion order within a kind.
func (s *Set) All() []Question {
	out := make([]Question, 0, s.Total())
	out = append(out, s.FillBlank...)
	out = append(out, s.Choice...)
	out = append(out, s.TrueFalse...)
	return out
}

// Find returns a pointer to the question with the given ID, or nil.
func (s *Set) Find(id string) *Question {
	for _, seq := range [][]Question{s.FillBlank, s.Choice, s.TrueFalse} {
		for i := range seq {
			if seq[i].ID == id {
				return &seq[i]
			}
		}
	}
	return nil
}

// Clone returns a deep copy, safe to hand out as a read-only snapshot.
func (s *Set) Clone() *Set {
	c := &Set{
		FillBlank: cloneQuestions(s.FillBlank),
		Choice:    cloneQuestions(s.Choice),
		TrueFalse: cloneQuestions(s.TrueFalse),
	}
	return c
}

func cloneQuestions(qs []Question) []Question {
	out := make([]Question, len(qs))
	copy(out, qs)
	for i := range out {
		if out[i].Options != nil {
			opts := make([]string, len(out[i].Options))
			copy(opts, out[i].Options)
			out[i].Options = opts
		}
	}
	return out
}

// AnswerMap maps question IDs to the user's current answer string.
// Entries are created or overwritten on input and removed only by a reset.
type AnswerMap map[string]string

// Result is the outcome of one grading pass. It is produced atomically and
// replaced wholesale on regrade, never mutated in place.
type Result struct {
	TotalCorrect   int             `json:"total_correct"`
	TotalQuestions int             `json:"total_questions"`
	PerQuestion    map[string]bool `json:"per_question"`
}

// Percent returns the score as an integer percentage, 0 for an empty set.
func (r *Result) Percent() int {
	if r.TotalQuestions == 0 {
		return 0
	}
	return r.TotalCorrect * 100 / r.TotalQuestions
}

// Clone returns a deep copy whose PerQuestion map is independent of the
// original.
func (r *Result) Clone() *Result {
	cp := &Result{
		TotalCorrect:   r.TotalCorrect,
		TotalQuestions: r.TotalQuestions,
		PerQuestion:    make(map[string]bool, len(r.PerQuestion)),
	}
	for id, correct := range r.PerQuestion {
		cp.PerQuestion[id] = correct
	}
	return cp
}
