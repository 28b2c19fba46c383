// Package plan computes how many questions of each kind to request per
// chunk so that the per-kind totals across all chunks match the user's
// request exactly.
package plan

// Counts holds a per-kind question count triple.
type Counts struct {
	FillBlank int
	Choice    int
	TrueFalse int
}

// Zero reports whether every count is zero.
func (c Counts) Zero() bool {
	return c.FillBlank == 0 && c.Choice == 0 && c.TrueFalse == 0
}

// Total returns the sum of all counts.
func (c Counts) Total() int {
	return c.FillBlank + c.Choice + c.TrueFalse
}

// Allocate distributes the requested totals across numChunks chunks. Each
// chunk receives floor(total/numChunks) of a kind, and the first
// total mod numChunks chunks receive one extra, so the per-kind sums equal
// the requested totals exactly. numChunks must be at least 1.
func Allocate(totals Counts, numChunks int) []Counts {
	if numChunks < 1 {
		return nil
	}

	fill := spread(totals.FillBlank, numChunks)
	choice := spread(totals.Choice, numChunks)
	tf := spread(totals.TrueFalse, numChunks)

	out := make([]Counts, numChunks)
	for i := range out {
		out[i] = Counts{FillBlank: fill[i], Choice: choice[i], TrueFalse: tf[i]}
	}
	return out
}

func spread(total, n int) []int {
	base := total / n
	remainder := total % n
	out := make([]int, n)
	for i := range out {
		out[i] = base
		if i < remainder {
			out[i]++
		}
	}
	return out
}

// Clamp caps each of planned's counts so a chunk never requests more than
// is still owed for its kind. remaining is requestedTotal minus the number
// already generated; upstream under- or over-delivery on earlier chunks
// therefore cannot push a running total past the requested total.
func Clamp(planned, remaining Counts) Counts {
	return Counts{
		FillBlank: min(planned.FillBlank, max(remaining.FillBlank, 0)),
		Choice:    min(planned.Choice, max(remaining.Choice, 0)),
		TrueFalse: min(planned.TrueFalse, max(remaining.TrueFalse, 0)),
	}
}
