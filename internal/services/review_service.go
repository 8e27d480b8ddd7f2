package services

import (
	"context"
	"time"

	"marketBack/internal/models"

	"github.com/google/uuid"
)

// ReviewStore is the slice of the review repository the service depends on.
type ReviewStore interface {
	CreateReview(ctx context.Context, review models.Review) (models.Review, error)
	GetReviewsForUser(ctx context.Context, reviewedUserID string) ([]models.Review, error)
}

type ReviewService struct {
	Reviews ReviewStore
	Users   UserDirectory
}

// SubmitReview records a review and folds its rating into the reviewed
// user's aggregate. One review per reviewer/reviewed pair.
func (s *ReviewService) SubmitReview(ctx context.Context, reviewerID string, req models.ReviewCreate) (models.Review, error) {
	if reviewerID == req.ReviewedUserID {
		return models.Review{}, models.ErrSelfReview
	}
	if req.Rating < 1 || req.Rating > 5 {
		return models.Review{}, models.ErrInvalidRating
	}

	review := models.Review{
		ID:             uuid.New().String(),
		ReviewerID:     reviewerID,
		ReviewedUserID: req.ReviewedUserID,
		Rating:         req.Rating,
		Comment:        req.Comment,
		CreatedAt:      time.Now().UTC(),
	}
	created, err := s.Reviews.CreateReview(ctx, review)
	if err != nil {
		return models.Review{}, err
	}

	created.ReviewerName = models.DeletedUserName
	if users, err := s.Users.ListByIDs(ctx, []string{reviewerID}); err == nil && len(users) > 0 {
		created.ReviewerName = users[0].Name
	}
	return created, nil
}

func (s *ReviewService) ListForUser(ctx context.Context, reviewedUserID string) ([]models.Review, error) {
	return s.Reviews.GetReviewsForUser(ctx, reviewedUserID)
}
