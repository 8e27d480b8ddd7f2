package services

import (
	"context"
	"testing"

	"marketBack/internal/models"
)

type stubReviews struct {
	created []models.Review
}

func (s *stubReviews) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	for _, r := range s.created {
		if r.ReviewerID == review.ReviewerID && r.ReviewedUserID == review.ReviewedUserID {
			return models.Review{}, models.ErrAlreadyReviewed
		}
	}
	s.created = append(s.created, review)
	return review, nil
}

func (s *stubReviews) GetReviewsForUser(ctx context.Context, reviewedUserID string) ([]models.Review, error) {
	var out []models.Review
	for _, r := range s.created {
		if r.ReviewedUserID == reviewedUserID {
			out = append(out, r)
		}
	}
	return out, nil
}

func TestSubmitReviewRejectsSelfReview(t *testing.T) {
	svc := &ReviewService{Reviews: &stubReviews{}, Users: &stubUsers{}}
	_, err := svc.SubmitReview(context.Background(), "u1", models.ReviewCreate{ReviewedUserID: "u1", Rating: 5})
	if err != models.ErrSelfReview {
		t.Fatalf("expected ErrSelfReview, got %v", err)
	}
}

func TestSubmitReviewValidatesRating(t *testing.T) {
	svc := &ReviewService{Reviews: &stubReviews{}, Users: &stubUsers{}}
	for _, rating := range []int{0, 6, -1} {
		_, err := svc.SubmitReview(context.Background(), "u1", models.ReviewCreate{ReviewedUserID: "u2", Rating: rating})
		if err != models.ErrInvalidRating {
			t.Errorf("rating %d: expected ErrInvalidRating, got %v", rating, err)
		}
	}
}

func TestSubmitReviewOncePerPair(t *testing.T) {
	svc := &ReviewService{
		Reviews: &stubReviews{},
		Users:   &stubUsers{users: []models.User{{ID: "u1", Name: "Bela"}}},
	}
	review, err := svc.SubmitReview(context.Background(), "u1", models.ReviewCreate{ReviewedUserID: "u2", Rating: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if review.ReviewerName != "Bela" {
		t.Errorf("reviewer name mismatch: %q", review.ReviewerName)
	}
	_, err = svc.SubmitReview(context.Background(), "u1", models.ReviewCreate{ReviewedUserID: "u2", Rating: 2})
	if err != models.ErrAlreadyReviewed {
		t.Fatalf("expected ErrAlreadyReviewed, got %v", err)
	}
}
