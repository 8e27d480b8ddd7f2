package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"marketBack/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

const userColumns = `id, name, email, password, role, rating, review_count, profile_image, phone_enabled, is_verified, created_at`

func (r *UserRepository) scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	var profileImage sql.NullString
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.Role,
		&user.Rating, &user.ReviewCount, &profileImage,
		&user.PhoneEnabled, &user.IsVerified, &user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	if profileImage.Valid {
		user.ProfileImage = &profileImage.String
	}
	return user, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	query := `
        INSERT INTO users (id, name, email, password, role, rating, review_count, profile_image, phone_enabled, is_verified, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	user.CreatedAt = time.Now().UTC()
	_, err := r.DB.ExecContext(ctx, query,
		user.ID, user.Name, user.Email, user.Password, user.Role,
		user.Rating, user.ReviewCount, user.ProfileImage,
		user.PhoneEnabled, user.IsVerified, user.CreatedAt,
	)
	if isDuplicateKey(err) {
		return models.User{}, models.ErrDuplicateEmail
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id string) (models.User, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return r.scanUser(row)
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return r.scanUser(row)
}

// ListByIDs batch-fetches users for conversation and offer views. Missing
// ids are simply absent from the result; callers substitute tombstones.
func (r *UserRepository) ListByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	if len(ids) == 0 {
		return []models.User{}, nil
	}
	params := make([]interface{}, len(ids))
	for i, id := range ids {
		params[i] = id
	}
	query := `SELECT ` + userColumns + ` FROM users WHERE id IN (` + placeholders(len(ids)) + `)`
	rows, err := r.DB.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		var profileImage sql.NullString
		if err := rows.Scan(
			&user.ID, &user.Name, &user.Email, &user.Password, &user.Role,
			&user.Rating, &user.ReviewCount, &profileImage,
			&user.PhoneEnabled, &user.IsVerified, &user.CreatedAt,
		); err != nil {
			return nil, err
		}
		if profileImage.Valid {
			user.ProfileImage = &profileImage.String
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *UserRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		var profileImage sql.NullString
		if err := rows.Scan(
			&user.ID, &user.Name, &user.Email, &user.Password, &user.Role,
			&user.Rating, &user.ReviewCount, &profileImage,
			&user.PhoneEnabled, &user.IsVerified, &user.CreatedAt,
		); err != nil {
			return nil, err
		}
		if profileImage.Valid {
			user.ProfileImage = &profileImage.String
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate) error {
	query := `
        UPDATE users
        SET name = COALESCE(?, name),
            profile_image = COALESCE(?, profile_image),
            phone_enabled = COALESCE(?, phone_enabled)
        WHERE id = ?
    `
	result, err := r.DB.ExecContext(ctx, query, update.Name, update.ProfileImage, update.PhoneEnabled, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, email, hashedPassword string) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE users SET password = ? WHERE email = ?`, hashedPassword, email)
	return err
}

func (r *UserRepository) SetRole(ctx context.Context, id, role string) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE users SET role = ? WHERE id = ?`, role, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) SetVerified(ctx context.Context, id string, verified bool) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE users SET is_verified = ? WHERE id = ?`, verified, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) CountUsers(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}

func (r *UserRepository) CountUsersByRole(ctx context.Context, role string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE role = ?`, role).Scan(&count)
	return count, err
}

func (r *UserRepository) CountVerified(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE is_verified = TRUE`).Scan(&count)
	return count, err
}

// Sessions

func (r *UserRepository) CreateSession(ctx context.Context, session models.Session) error {
	query := `INSERT INTO sessions (user_id, role, refresh_token, expires_at) VALUES (?, ?, ?, ?)`
	_, err := r.DB.ExecContext(ctx, query, session.UserID, session.Role, session.RefreshToken, session.ExpiresAt)
	return err
}

func (r *UserRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	var session models.Session
	query := `SELECT user_id, role, refresh_token, expires_at FROM sessions WHERE refresh_token = ?`
	err := r.DB.QueryRowContext(ctx, query, refreshToken).Scan(
		&session.UserID, &session.Role, &session.RefreshToken, &session.ExpiresAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, nil
	}
	if err != nil {
		return models.Session{}, err
	}
	return session, nil
}

func (r *UserRepository) DeleteSessionsForUser(ctx context.Context, userID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = ?`, userID)
	return err
}

// Password resets

func (r *UserRepository) SaveResetCode(ctx context.Context, email, code string, expiresAt time.Time) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM password_resets WHERE email = ?`, email); err != nil {
		return err
	}
	query := `INSERT INTO password_resets (email, reset_code, expires_at, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.DB.ExecContext(ctx, query, email, code, expiresAt, time.Now().UTC())
	return err
}

func (r *UserRepository) GetResetCodeExpiry(ctx context.Context, email, code string) (time.Time, error) {
	var expiresAt time.Time
	query := `SELECT expires_at FROM password_resets WHERE email = ? AND reset_code = ?`
	err := r.DB.QueryRowContext(ctx, query, email, code).Scan(&expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, models.ErrInvalidResetCode
	}
	return expiresAt, err
}

func (r *UserRepository) DeleteResetCodes(ctx context.Context, email string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM password_resets WHERE email = ?`, email)
	return err
}
