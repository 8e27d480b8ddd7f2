package models

import "time"

type Review struct {
	ID             string    `json:"id"`
	ReviewerID     string    `json:"reviewer_id"`
	ReviewerName   string    `json:"reviewer_name"`
	ReviewedUserID string    `json:"reviewed_user_id"`
	Rating         int       `json:"rating"`
	Comment        *string   `json:"comment,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type ReviewCreate struct {
	ReviewedUserID string  `json:"reviewed_user_id"`
	Rating         int     `json:"rating"`
	Comment        *string `json:"comment"`
}

// NextRating folds one new rating into a running average. It keeps the
// invariant rating == mean(all ratings) without rereading the review table.
func NextRating(current float64, count int, added int) (float64, int) {
	next := count + 1
	return (current*float64(count) + float64(added)) / float64(next), next
}
