package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/mshulgin/go-account-service/internal/logger"
	"github.com/mshulgin/go-account-service/internal/models"
)

const userColumns = `id, user_uid, username, email, password, is_superuser, is_active,
	avatar, mobile_number, wechat, qq, blog_address, introduction, time_joined, last_login`

// squash collapses a multi-line query for single-line logging.
func squash(query string) string {
	return strings.Join(strings.Fields(query), " ")
}

// UserReadRepository provides read access to user records.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// getOne runs a single-row user query and maps a miss to (nil, nil).
func (r *UserReadRepository) getOne(ctx context.Context, query string, args ...any) (*models.UserDB, error) {
	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, args...)

	logger.Log.Infow("user query", "sql", squash(query), "args", args, "error", err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.getOne(ctx, query, username)
}

func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.getOne(ctx, query, email)
}

// List returns one page of users ordered by registration time, newest first.
func (r *UserReadRepository) List(ctx context.Context, limit, offset int) ([]models.UserDB, error) {
	const query = `SELECT ` + userColumns + `
		FROM users
		ORDER BY time_joined DESC
		LIMIT $1 OFFSET $2`

	users := make([]models.UserDB, 0, limit)
	err := r.db.SelectContext(ctx, &users, query, limit, offset)

	logger.Log.Infow("user query", "sql", squash(query), "args", []any{limit, offset}, "error", err)

	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserReadRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM users`

	var total int64
	err := r.db.GetContext(ctx, &total, query)

	logger.Log.Infow("user query", "sql", squash(query), "error", err)

	if err != nil {
		return 0, err
	}
	return total, nil
}

// UserWriteRepository provides write access to user records. All writes are
// single-row and auto-committed.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Create inserts a new user and returns the stored row.
func (r *UserWriteRepository) Create(ctx context.Context, uid, username, password, email string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (user_uid, username, email, password)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns

	args := []any{uid, username, email, password}

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, args...)

	logger.Log.Infow("user exec", "sql", squash(query), "args", []any{uid, username, email}, "error", err)

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// TouchLastLogin updates the last-login timestamp after a successful login.
func (r *UserWriteRepository) TouchLastLogin(ctx context.Context, username string) error {
	const query = `UPDATE users SET last_login = NOW() WHERE username = $1`

	_, err := r.db.ExecContext(ctx, query, username)

	logger.Log.Infow("user exec", "sql", squash(query), "args", []any{username}, "error", err)

	return err
}

// UpdateProfile overwrites profile fields for the given user. Nil optional
// fields keep their stored values.
func (r *UserWriteRepository) UpdateProfile(ctx context.Context, id int64, p models.ProfileUpdate, avatar *string) (*models.UserDB, error) {
	const query = `
		UPDATE users SET
			username      = $2,
			email         = $3,
			mobile_number = COALESCE($4, mobile_number),
			wechat        = COALESCE($5, wechat),
			qq            = COALESCE($6, qq),
			blog_address  = COALESCE($7, blog_address),
			introduction  = COALESCE($8, introduction),
			avatar        = COALESCE($9, avatar)
		WHERE id = $1
		RETURNING ` + userColumns

	args := []any{id, p.Username, p.Email, p.MobileNumber, p.Wechat, p.QQ, p.BlogAddress, p.Introduction, avatar}

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, args...)

	logger.Log.Infow("user exec", "sql", squash(query), "args", args, "error", err)

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ResetPassword overwrites the stored password hash for the given username.
func (r *UserWriteRepository) ResetPassword(ctx context.Context, username, password string) error {
	const query = `UPDATE users SET password = $2 WHERE username = $1`

	res, err := r.db.ExecContext(ctx, query, username, password)

	logger.Log.Infow("user exec", "sql", squash(query), "args", []any{username}, "error", err)

	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ToggleSuperuser flips the superuser flag and returns the new value.
func (r *UserWriteRepository) ToggleSuperuser(ctx context.Context, id int64) (bool, error) {
	const query = `UPDATE users SET is_superuser = NOT is_superuser WHERE id = $1 RETURNING is_superuser`

	var status bool
	err := r.db.GetContext(ctx, &status, query, id)

	logger.Log.Infow("user exec", "sql", squash(query), "args", []any{id}, "result", status, "error", err)

	if err != nil {
		return false, err
	}
	return status, nil
}

// ToggleActive flips the active flag and returns the new value.
func (r *UserWriteRepository) ToggleActive(ctx context.Context, id int64) (bool, error) {
	const query = `UPDATE users SET is_active = NOT is_active WHERE id = $1 RETURNING is_active`

	var status bool
	err := r.db.GetContext(ctx, &status, query, id)

	logger.Log.Infow("user exec", "sql", squash(query), "args", []any{id}, "result", status, "error", err)

	if err != nil {
		return false, err
	}
	return status, nil
}

// ClearAvatar removes the avatar filename from the user row.
func (r *UserWriteRepository) ClearAvatar(ctx context.Context, id int64) error {
	const query = `UPDATE users SET avatar = NULL WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, id)

	logger.Log.Infow("user exec", "sql", squash(query), "args", []any{id}, "error", err)

	return err
}

// Delete hard-deletes the user row.
func (r *UserWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM users WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, id)

	logger.Log.Infow("user exec", "sql", squash(query), "args", []any{id}, "error", err)

	return err
}
