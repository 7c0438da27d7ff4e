package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/safar/go-shop-api/internal/database"
	"github.com/safar/go-shop-api/internal/models"
)

func CreateUser(ctx context.Context, db *sql.DB, email, passwordHash string, isStaff, termsAccepted bool) (*models.User, error) {
	user := &models.User{}

	query := `
		INSERT INTO users (email, password_hash, is_staff, is_terms_accepted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, email, password_hash, is_staff, is_terms_accepted, created_at, updated_at`

	err := db.QueryRowContext(ctx, query, email, passwordHash, isStaff, termsAccepted).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.IsStaff,
		&user.IsTermsAccepted,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err, "") {
			return nil, database.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func GetUser(ctx context.Context, db *sql.DB, id int64) (*models.User, error) {
	return scanUser(db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, is_staff, is_terms_accepted, created_at, updated_at
		FROM users
		WHERE id = $1`, id))
}

func GetUserByEmail(ctx context.Context, db *sql.DB, email string) (*models.User, error) {
	return scanUser(db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, is_staff, is_terms_accepted, created_at, updated_at
		FROM users
		WHERE email = $1`, email))
}

func scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.IsStaff,
		&user.IsTermsAccepted,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, database.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
