package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"marketBack/internal/models"
)

type ListingRepository struct {
	DB *sql.DB
}

const listingColumns = `l.id, l.seller_id, u.name, l.title, l.description, l.price, l.category,
       l.images, l.videos, l.category_fields, l.negotiable, l.location, l.views, l.is_pinned, l.created_at`

const listingFrom = ` FROM listings l LEFT JOIN users u ON l.seller_id = u.id `

func scanListings(rows *sql.Rows) ([]models.Listing, error) {
	listings := []models.Listing{}
	for rows.Next() {
		var l models.Listing
		var sellerName, images, videos, fields, location sql.NullString
		err := rows.Scan(
			&l.ID, &l.SellerID, &sellerName, &l.Title, &l.Description, &l.Price, &l.Category,
			&images, &videos, &fields, &l.Negotiable, &location, &l.Views, &l.IsPinned, &l.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if sellerName.Valid {
			l.SellerName = sellerName.String
		} else {
			l.SellerName = models.DeletedUserName
		}
		l.Images = decodeStringArray(images)
		l.Videos = decodeStringArray(videos)
		l.CategoryFields = decodeFieldBag(fields)
		if location.Valid {
			l.Location = &location.String
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing rows error: %w", err)
	}
	return listings, nil
}

func (r *ListingRepository) CreateListing(ctx context.Context, l models.Listing) (models.Listing, error) {
	query := `
        INSERT INTO listings (id, seller_id, title, description, price, category, images, videos, category_fields, negotiable, location, views, is_pinned, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, FALSE, ?)
    `
	l.CreatedAt = time.Now().UTC()
	_, err := r.DB.ExecContext(ctx, query,
		l.ID, l.SellerID, l.Title, l.Description, l.Price, l.Category,
		encodeJSON(l.Images), encodeJSON(l.Videos), encodeJSON(l.CategoryFields),
		l.Negotiable, l.Location, l.CreatedAt,
	)
	if err != nil {
		return models.Listing{}, err
	}
	return l, nil
}

func (r *ListingRepository) GetListingByID(ctx context.Context, id string) (models.Listing, error) {
	query := `SELECT ` + listingColumns + listingFrom + `WHERE l.id = ?`
	rows, err := r.DB.QueryContext(ctx, query, id)
	if err != nil {
		return models.Listing{}, err
	}
	defer rows.Close()

	listings, err := scanListings(rows)
	if err != nil {
		return models.Listing{}, err
	}
	if len(listings) == 0 {
		return models.Listing{}, models.ErrListingNotFound
	}
	return listings[0], nil
}

func (r *ListingRepository) UpdateListing(ctx context.Context, l models.Listing) error {
	query := `
        UPDATE listings
        SET title = ?, description = ?, price = ?, category = ?, images = ?, videos = ?,
            category_fields = ?, negotiable = ?, location = ?
        WHERE id = ?
    `
	result, err := r.DB.ExecContext(ctx, query,
		l.Title, l.Description, l.Price, l.Category,
		encodeJSON(l.Images), encodeJSON(l.Videos), encodeJSON(l.CategoryFields),
		l.Negotiable, l.Location, l.ID,
	)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrListingNotFound
	}
	return nil
}

// DeleteListingCascade removes a listing together with the messages, offers
// and favorites that reference it, in one transaction.
func (r *ListingRepository) DeleteListingCascade(ctx context.Context, id string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `DELETE FROM listings WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrListingNotFound
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM messages WHERE listing_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM offers WHERE listing_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM favorites WHERE listing_id = ?`, id); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *ListingRepository) GetListings(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error) {
	var (
		params     []interface{}
		conditions []string
	)

	query := `SELECT ` + listingColumns + listingFrom

	if filter.Category != "" {
		conditions = append(conditions, "l.category = ?")
		params = append(params, filter.Category)
	}
	if filter.Search != "" {
		conditions = append(conditions, "(l.title LIKE ? OR l.description LIKE ?)")
		pattern := "%" + filter.Search + "%"
		params = append(params, pattern, pattern)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += ` ORDER BY l.is_pinned DESC, l.created_at DESC LIMIT ? OFFSET ?`
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	params = append(params, limit, filter.Skip)

	rows, err := r.DB.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanListings(rows)
}

func (r *ListingRepository) GetListingsBySeller(ctx context.Context, sellerID string) ([]models.Listing, error) {
	query := `SELECT ` + listingColumns + listingFrom + `WHERE l.seller_id = ? ORDER BY l.created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, sellerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanListings(rows)
}

func (r *ListingRepository) ListByIDs(ctx context.Context, ids []string) ([]models.Listing, error) {
	if len(ids) == 0 {
		return []models.Listing{}, nil
	}
	params := make([]interface{}, len(ids))
	for i, id := range ids {
		params[i] = id
	}
	query := `SELECT ` + listingColumns + listingFrom + `WHERE l.id IN (` + placeholders(len(ids)) + `)`
	rows, err := r.DB.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanListings(rows)
}

// IncrementViews bumps the view counter. Eventual consistency is fine here,
// callers treat failures as non-fatal.
func (r *ListingRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE listings SET views = views + 1 WHERE id = ?`, id)
	return err
}

// ListTopByViews returns the globally most viewed listings, excluding the
// given ids and everything sold by excludeSeller.
func (r *ListingRepository) ListTopByViews(ctx context.Context, excludeIDs []string, excludeSeller string, limit int) ([]models.Listing, error) {
	var params []interface{}
	query := `SELECT ` + listingColumns + listingFrom + `WHERE 1=1`
	if len(excludeIDs) > 0 {
		query += ` AND l.id NOT IN (` + placeholders(len(excludeIDs)) + `)`
		for _, id := range excludeIDs {
			params = append(params, id)
		}
	}
	if excludeSeller != "" {
		query += ` AND l.seller_id <> ?`
		params = append(params, excludeSeller)
	}
	query += ` ORDER BY l.views DESC LIMIT ?`
	params = append(params, limit)

	rows, err := r.DB.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanListings(rows)
}

// ListByCategoriesNewest returns the newest listings in any of the given
// categories, with the usual exclusions.
func (r *ListingRepository) ListByCategoriesNewest(ctx context.Context, categories, excludeIDs []string, excludeSeller string, limit int) ([]models.Listing, error) {
	if len(categories) == 0 {
		return []models.Listing{}, nil
	}
	var params []interface{}
	query := `SELECT ` + listingColumns + listingFrom + `WHERE l.category IN (` + placeholders(len(categories)) + `)`
	for _, c := range categories {
		params = append(params, c)
	}
	if len(excludeIDs) > 0 {
		query += ` AND l.id NOT IN (` + placeholders(len(excludeIDs)) + `)`
		for _, id := range excludeIDs {
			params = append(params, id)
		}
	}
	if excludeSeller != "" {
		query += ` AND l.seller_id <> ?`
		params = append(params, excludeSeller)
	}
	query += ` ORDER BY l.created_at DESC LIMIT ?`
	params = append(params, limit)

	rows, err := r.DB.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanListings(rows)
}

// ListSimilarInBand returns same-category listings priced within
// [minPrice, maxPrice], excluding the source listing and its seller.
func (r *ListingRepository) ListSimilarInBand(ctx context.Context, category string, minPrice, maxPrice float64, excludeID, excludeSeller string, limit int) ([]models.Listing, error) {
	query := `SELECT ` + listingColumns + listingFrom + `
        WHERE l.category = ? AND l.price >= ? AND l.price <= ? AND l.id <> ? AND l.seller_id <> ?
        ORDER BY l.created_at DESC LIMIT ?`
	rows, err := r.DB.QueryContext(ctx, query, category, minPrice, maxPrice, excludeID, excludeSeller, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanListings(rows)
}

// ListSimilarBackfill returns same-category listings regardless of price,
// excluding everything already selected.
func (r *ListingRepository) ListSimilarBackfill(ctx context.Context, category string, excludeIDs []string, excludeSeller string, limit int) ([]models.Listing, error) {
	var params []interface{}
	query := `SELECT ` + listingColumns + listingFrom + `WHERE l.category = ?`
	params = append(params, category)
	if len(excludeIDs) > 0 {
		query += ` AND l.id NOT IN (` + placeholders(len(excludeIDs)) + `)`
		for _, id := range excludeIDs {
			params = append(params, id)
		}
	}
	query += ` AND l.seller_id <> ? ORDER BY l.created_at DESC LIMIT ?`
	params = append(params, excludeSeller, limit)

	rows, err := r.DB.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanListings(rows)
}

func (r *ListingRepository) SetPinned(ctx context.Context, id string, pinned bool) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE listings SET is_pinned = ? WHERE id = ?`, pinned, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrListingNotFound
	}
	return nil
}

func (r *ListingRepository) DeleteBySeller(ctx context.Context, sellerID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM listings WHERE seller_id = ?`, sellerID)
	return err
}

func (r *ListingRepository) GetAllListings(ctx context.Context) ([]models.Listing, error) {
	query := `SELECT ` + listingColumns + listingFrom + `ORDER BY l.created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanListings(rows)
}

func (r *ListingRepository) CountListings(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM listings`).Scan(&count)
	return count, err
}

func (r *ListingRepository) CountPinned(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM listings WHERE is_pinned = TRUE`).Scan(&count)
	return count, err
}
