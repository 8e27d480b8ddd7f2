package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"marketBack/internal/models"
)

type ReviewRepository struct {
	DB *sql.DB
}

// CreateReview inserts the review and folds its rating into the reviewed
// user's running average inside one transaction. The unique key on
// (reviewer_id, reviewed_user_id) rejects duplicates atomically.
func (r *ReviewRepository) CreateReview(ctx context.Context, rev models.Review) (models.Review, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Review{}, err
	}
	defer tx.Rollback()

	var rating float64
	var count int
	err = tx.QueryRowContext(ctx,
		`SELECT rating, review_count FROM users WHERE id = ? FOR UPDATE`,
		rev.ReviewedUserID,
	).Scan(&rating, &count)
	if err == sql.ErrNoRows {
		return models.Review{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.Review{}, err
	}

	rev.CreatedAt = time.Now().UTC()
	_, err = tx.ExecContext(ctx, `
        INSERT INTO reviews (id, reviewer_id, reviewed_user_id, rating, comment, created_at)
        VALUES (?, ?, ?, ?, ?, ?)`,
		rev.ID, rev.ReviewerID, rev.ReviewedUserID, rev.Rating, rev.Comment, rev.CreatedAt,
	)
	if isDuplicateKey(err) {
		return models.Review{}, models.ErrAlreadyReviewed
	}
	if err != nil {
		return models.Review{}, err
	}

	newRating, newCount := models.NextRating(rating, count, rev.Rating)
	_, err = tx.ExecContext(ctx,
		`UPDATE users SET rating = ?, review_count = ? WHERE id = ?`,
		newRating, newCount, rev.ReviewedUserID,
	)
	if err != nil {
		return models.Review{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Review{}, err
	}
	return rev, nil
}

func (r *ReviewRepository) GetReviewsForUser(ctx context.Context, reviewedUserID string) ([]models.Review, error) {
	query := `
        SELECT r.id, r.reviewer_id, u.name, r.reviewed_user_id, r.rating, r.comment, r.created_at
        FROM reviews r
        LEFT JOIN users u ON r.reviewer_id = u.id
        WHERE r.reviewed_user_id = ?
        ORDER BY r.created_at DESC
    `
	rows, err := r.DB.QueryContext(ctx, query, reviewedUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var rev models.Review
		var reviewerName, comment sql.NullString
		if err := rows.Scan(&rev.ID, &rev.ReviewerID, &reviewerName, &rev.ReviewedUserID,
			&rev.Rating, &comment, &rev.CreatedAt); err != nil {
			return nil, err
		}
		if reviewerName.Valid {
			rev.ReviewerName = reviewerName.String
		} else {
			rev.ReviewerName = models.DeletedUserName
		}
		if comment.Valid {
			rev.Comment = &comment.String
		}
		reviews = append(reviews, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("review rows error: %w", err)
	}
	return reviews, nil
}

// ListReviewedBy returns the ids of users the given reviewer has rated.
// Admin cascades use it to know whose ratings need reconciling.
func (r *ReviewRepository) ListReviewedBy(ctx context.Context, reviewerID string) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT reviewed_user_id FROM reviews WHERE reviewer_id = ?`, reviewerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *ReviewRepository) DeleteForUser(ctx context.Context, userID string) error {
	_, err := r.DB.ExecContext(ctx,
		`DELETE FROM reviews WHERE reviewer_id = ? OR reviewed_user_id = ?`, userID, userID)
	return err
}

// RecalculateRating recomputes a user's rating and review count from all
// stored reviews. Reconciliation path for cascade deletes; the normal write
// path maintains the running average incrementally.
func (r *ReviewRepository) RecalculateRating(ctx context.Context, userID string) error {
	query := `
        UPDATE users
        SET rating = (SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE reviewed_user_id = ?),
            review_count = (SELECT COUNT(*) FROM reviews WHERE reviewed_user_id = ?)
        WHERE id = ?
    `
	_, err := r.DB.ExecContext(ctx, query, userID, userID, userID)
	return err
}
