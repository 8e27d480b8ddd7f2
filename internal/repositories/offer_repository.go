package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"marketBack/internal/models"
)

type OfferRepository struct {
	DB *sql.DB
}

const offerColumns = `id, listing_id, buyer_id, seller_id, offered_price, message, status, created_at`

func scanOffers(rows *sql.Rows) ([]models.Offer, error) {
	offers := []models.Offer{}
	for rows.Next() {
		var o models.Offer
		var message sql.NullString
		if err := rows.Scan(
			&o.ID, &o.ListingID, &o.BuyerID, &o.SellerID,
			&o.OfferedPrice, &message, &o.Status, &o.CreatedAt,
		); err != nil {
			return nil, err
		}
		if message.Valid {
			o.Message = &message.String
		}
		offers = append(offers, o)
	}
	return offers, rows.Err()
}

func (r *OfferRepository) CreateOffer(ctx context.Context, o models.Offer) (models.Offer, error) {
	query := `
        INSERT INTO offers (id, listing_id, buyer_id, seller_id, offered_price, message, status, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `
	o.CreatedAt = time.Now().UTC()
	_, err := r.DB.ExecContext(ctx, query,
		o.ID, o.ListingID, o.BuyerID, o.SellerID, o.OfferedPrice, o.Message, o.Status, o.CreatedAt,
	)
	if err != nil {
		return models.Offer{}, err
	}
	return o, nil
}

func (r *OfferRepository) GetOfferByID(ctx context.Context, id string) (models.Offer, error) {
	var o models.Offer
	var message sql.NullString
	query := `SELECT ` + offerColumns + ` FROM offers WHERE id = ?`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&o.ID, &o.ListingID, &o.BuyerID, &o.SellerID,
		&o.OfferedPrice, &message, &o.Status, &o.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Offer{}, models.ErrOfferNotFound
	}
	if err != nil {
		return models.Offer{}, err
	}
	if message.Valid {
		o.Message = &message.String
	}
	return o, nil
}

func (r *OfferRepository) ListBySeller(ctx context.Context, sellerID string) ([]models.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE seller_id = ? ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, sellerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOffers(rows)
}

func (r *OfferRepository) ListByBuyer(ctx context.Context, buyerID string) ([]models.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE buyer_id = ? ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, buyerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOffers(rows)
}

// Resolve transitions a pending offer to the given terminal status. The
// predicate on the current status makes concurrent resolutions race-free:
// exactly one caller sees an affected row.
func (r *OfferRepository) Resolve(ctx context.Context, id, status string) (bool, error) {
	query := `UPDATE offers SET status = ? WHERE id = ? AND status = ?`
	result, err := r.DB.ExecContext(ctx, query, status, id, models.OfferStatusPending)
	if err != nil {
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

func (r *OfferRepository) DeleteForUser(ctx context.Context, userID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM offers WHERE buyer_id = ? OR seller_id = ?`, userID, userID)
	return err
}

func (r *OfferRepository) CountOffers(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM offers`).Scan(&count)
	return count, err
}
