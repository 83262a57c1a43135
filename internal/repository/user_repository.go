package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/kpa-form-data/internal/model"
)

// UserRepo encapsulates all database queries against the users table. It
// depends on a sql.DB connection pool injected at startup; there is no
// package-level database state.
type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

const userColumns = "id, user_id, phone_number, password_hash, full_name, email, is_active, created_at, updated_at"

// GetByPhone fetches a user by phone number. Returns ErrUserNotFound when no
// row matches so the login handler can fail closed with a 401.
func (r *UserRepo) GetByPhone(ctx context.Context, phoneNumber string) (model.User, error) {
	phoneNumber = strings.TrimSpace(phoneNumber)
	var u model.User
	err := r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE phone_number = ? LIMIT 1",
		phoneNumber).Scan(
		&u.ID, &u.UserID, &u.PhoneNumber, &u.PasswordHash,
		&u.FullName, &u.Email, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, err
	}
	return u, nil
}

// Create inserts a user and returns its ID. Used only by the seed command;
// the HTTP API exposes no user provisioning endpoint. The plain password is
// hashed by the caller so this layer never sees raw credentials.
func (r *UserRepo) Create(ctx context.Context, u *model.User) (uint64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO users (user_id, phone_number, password_hash, full_name, email, is_active) VALUES (?,?,?,?,?,?)",
		u.UserID, u.PhoneNumber, u.PasswordHash, u.FullName, u.Email, u.IsActive)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	u.ID = uint64(id)
	return u.ID, nil
}

// ExistsByUserID reports whether a user with the external user_id exists.
// The seed command uses this to stay idempotent.
func (r *UserRepo) ExistsByUserID(ctx context.Context, userID string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		"SELECT 1 FROM users WHERE user_id = ? LIMIT 1", userID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
