package repositories

import (
	"context"
	"database/sql"
	"time"

	"marketBack/internal/models"
)

type FavoriteRepository struct {
	DB *sql.DB
}

func (r *FavoriteRepository) AddFavorite(ctx context.Context, fav models.Favorite) error {
	query := `INSERT INTO favorites (id, user_id, listing_id, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.DB.ExecContext(ctx, query, fav.ID, fav.UserID, fav.ListingID, time.Now().UTC())
	if isDuplicateKey(err) {
		return models.ErrAlreadyFavorited
	}
	return err
}

func (r *FavoriteRepository) RemoveFavorite(ctx context.Context, userID, listingID string) error {
	result, err := r.DB.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = ? AND listing_id = ?`, userID, listingID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrFavoriteNotFound
	}
	return nil
}

func (r *FavoriteRepository) IsFavorite(ctx context.Context, userID, listingID string) (bool, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM favorites WHERE user_id = ? AND listing_id = ?`,
		userID, listingID,
	).Scan(&count)
	return count > 0, err
}

// ListingIDs returns the ids of the user's favorited listings, newest first.
func (r *FavoriteRepository) ListingIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT listing_id FROM favorites WHERE user_id = ? ORDER BY created_at DESC`, userID)
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

// Categories returns the distinct categories of the user's favorited
// listings. The for-you feed derives its preference set from this.
func (r *FavoriteRepository) Categories(ctx context.Context, userID string) ([]string, error) {
	query := `
        SELECT DISTINCT l.category
        FROM favorites f
        JOIN listings l ON f.listing_id = l.id
        WHERE f.user_id = ?`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *FavoriteRepository) DeleteForUser(ctx context.Context, userID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM favorites WHERE user_id = ?`, userID)
	return err
}
