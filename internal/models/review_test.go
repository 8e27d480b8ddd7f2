package models

import (
	"math"
	"testing"
)

func TestNextRatingFirstReview(t *testing.T) {
	rating, count := NextRating(0, 0, 4)
	if rating != 4 || count != 1 {
		t.Errorf("got rating=%v count=%d, want 4 and 1", rating, count)
	}
}

func TestNextRatingMatchesMean(t *testing.T) {
	ratings := []int{5, 3, 4, 1, 5, 2, 4}

	var current float64
	var count int
	var sum int
	for _, r := range ratings {
		current, count = NextRating(current, count, r)
		sum += r
	}

	want := float64(sum) / float64(len(ratings))
	if math.Abs(current-want) > 1e-9 {
		t.Errorf("incremental mean %v diverged from true mean %v", current, want)
	}
	if count != len(ratings) {
		t.Errorf("count mismatch: got %d, want %d", count, len(ratings))
	}
}
