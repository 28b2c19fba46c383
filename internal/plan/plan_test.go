package plan_test

import (
	"testing"

	"github.com/quizforge/backend/internal/plan"
)

func TestAllocateSumsMatchTotals(t *testing.T) {
	cases := []struct {
		totals    plan.Counts
		numChunks int
	}{
		{plan.Counts{FillBlank: 5, Choice: 5, TrueFalse: 5}, 3},
		{plan.Counts{FillBlank: 0, Choice: 0, TrueFalse: 0}, 4},
		{plan.Counts{FillBlank: 1, Choice: 2, TrueFalse: 3}, 7},
		{plan.Counts{FillBlank: 10, Choice: 0, TrueFalse: 1}, 1},
		{plan.Counts{FillBlank: 17, Choice: 23, TrueFalse: 9}, 5},
	}

	for _, tc := range cases {
		alloc := plan.Allocate(tc.totals, tc.numChunks)
		if len(alloc) != tc.numChunks {
			t.Fatalf("expected %d allocations, got %d", tc.numChunks, len(alloc))
		}

		var sum plan.Counts
		for _, a := range alloc {
			sum.FillBlank += a.FillBlank
			sum.Choice += a.Choice
			sum.TrueFalse += a.TrueFalse
		}

		if sum != tc.totals {
			t.Errorf("Allocate(%+v, %d) sums to %+v", tc.totals, tc.numChunks, sum)
		}
	}
}

func TestAllocateRemainderGoesToFirstChunks(t *testing.T) {
	alloc := plan.Allocate(plan.Counts{FillBlank: 5}, 3)

	want := []int{2, 2, 1}
	for i, w := range want {
		if alloc[i].FillBlank != w {
			t.Errorf("chunk %d: expected %d fill-blank, got %d", i, w, alloc[i].FillBlank)
		}
	}
}

func TestAllocateInvalidChunkCount(t *testing.T) {
	if got := plan.Allocate(plan.Counts{FillBlank: 3}, 0); got != nil {
		t.Errorf("expected nil for zero chunks, got %v", got)
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		planned, remaining, want plan.Counts
	}{
		// Nothing left to generate: everything clamps to zero.
		{plan.Counts{FillBlank: 2, Choice: 2, TrueFalse: 2}, plan.Counts{}, plan.Counts{}},
		// Remaining exceeds plan: plan unchanged.
		{plan.Counts{FillBlank: 1, Choice: 1}, plan.Counts{FillBlank: 5, Choice: 5, TrueFalse: 5}, plan.Counts{FillBlank: 1, Choice: 1}},
		// Partial clamp per kind.
		{plan.Counts{FillBlank: 3, Choice: 2, TrueFalse: 1}, plan.Counts{FillBlank: 1, Choice: 4}, plan.Counts{FillBlank: 1, Choice: 2}},
		// Over-delivery upstream made remaining negative: clamp to zero.
		{plan.Counts{Choice: 2}, plan.Counts{Choice: -1}, plan.Counts{}},
	}

	for _, tc := range cases {
		if got := plan.Clamp(tc.planned, tc.remaining); got != tc.want {
			t.Errorf("Clamp(%+v, %+v) = %+v, want %+v", tc.planned, tc.remaining, got, tc.want)
		}
	}
}

func TestCountsZero(t *testing.T) {
	if !(plan.Counts{}).Zero() {
		t.Error("empty Counts should be zero")
	}
	if (plan.Counts{TrueFalse: 1}).Zero() {
		t.Error("non-empty Counts should not be zero")
	}
}
