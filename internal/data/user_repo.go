package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/WebbPulse/carmodpicker/internal/core"
	"github.com/WebbPulse/carmodpicker/internal/data/pgxutil"
	"github.com/WebbPulse/carmodpicker/internal/domain/model"
)

// UserRepo provides database operations for user accounts.
type UserRepo struct {
	DB *sql.DB
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{DB: db}
}

var _ core.UserRepository = (*UserRepo)(nil)

const userColumns = `id, username, email, disabled, email_verified, image_url, password_hash`

// Create inserts a new user account.
func (r *UserRepo) Create(ctx context.Context, params core.CreateUserParams) (*model.User, error) {
	var out model.User
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO users (username, email, password_hash)
			VALUES ($1, $2, $3)
			RETURNING `+userColumns,
			strings.TrimSpace(params.Username),
			normalizeEmail(params.Email),
			params.PasswordHash,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err, false)
	}
	return &out, nil
}

// GetByID retrieves a user by ID.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return r.getByQuery(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, "failed to get user by ID", id)
}

// GetByUsername retrieves a user by username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.getByQuery(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`,
		"failed to get user by username", strings.TrimSpace(username))
}

// GetByEmail retrieves a user by email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getByQuery(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		"failed to get user by email", normalizeEmail(email))
}

// Update updates profile fields of a user.
func (r *UserRepo) Update(ctx context.Context, id int64, params core.UpdateUserParams) (*model.User, error) {
	setClause, args := r.buildUpdateClause(params)
	if setClause == "" {
		return r.GetByID(ctx, id)
	}

	var out model.User
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		args = append(args, id)
		query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d RETURNING %s", setClause, len(args), userColumns)
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return e
	})
	if err != nil {
		return nil, r.mapWriteErr(err, true)
	}
	return &out, nil
}

// SetEmailVerified marks a user's email address as verified.
func (r *UserRepo) SetEmailVerified(ctx context.Context, id int64) (*model.User, error) {
	var out model.User
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`UPDATE users SET email_verified = TRUE WHERE id = $1 RETURNING `+userColumns, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return e
	})
	if err != nil {
		return nil, r.mapWriteErr(err, true)
	}
	return &out, nil
}

// SetPasswordHash replaces a user's password hash.
func (r *UserRepo) SetPasswordHash(ctx context.Context, id int64, hash string) error {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `UPDATE users SET password_hash = $1 WHERE id = $2`, hash, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to set password hash: %w", err)
	}
	if rows == 0 {
		return ErrUserNotFound
	}
	return nil
}

// --- helpers ---

func (r *UserRepo) getByQuery(ctx context.Context, query, errMsg string, arg any) (*model.User, error) {
	var user model.User
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, arg)
		if err != nil {
			return err
		}
		defer rows.Close()
		user, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	return &user, nil
}

// buildUpdateClause builds the SQL SET clause and args for updating a user.
func (r *UserRepo) buildUpdateClause(params core.UpdateUserParams) (string, []any) {
	setParts := make([]string, 0, 5)
	args := make([]any, 0, 6)
	nextIdx := func() int { return len(args) + 1 }

	if params.Username != nil {
		setParts = append(setParts, fmt.Sprintf("username = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*params.Username))
	}
	if params.Email != nil {
		// A changed address has not been verified yet.
		setParts = append(setParts, fmt.Sprintf("email = $%d", nextIdx()))
		args = append(args, normalizeEmail(*params.Email))
		setParts = append(setParts, "email_verified = FALSE")
	}
	if params.Disabled != nil {
		setParts = append(setParts, fmt.Sprintf("disabled = $%d", nextIdx()))
		args = append(args, *params.Disabled)
	}
	if params.PasswordHash != nil {
		setParts = append(setParts, fmt.Sprintf("password_hash = $%d", nextIdx()))
		args = append(args, *params.PasswordHash)
	}
	if params.ImageURL != nil {
		if strings.TrimSpace(*params.ImageURL) == "" {
			setParts = append(setParts, "image_url = NULL")
		} else {
			setParts = append(setParts, fmt.Sprintf("image_url = $%d", nextIdx()))
			args = append(args, *params.ImageURL)
		}
	}

	if len(setParts) == 0 {
		return "", nil
	}
	return strings.Join(setParts, ", "), args
}

func (r *UserRepo) mapWriteErr(err error, includeNotFound bool) error {
	if err == nil {
		return nil
	}
	if includeNotFound && errors.Is(err, pgx.ErrNoRows) {
		return ErrUserNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		if strings.Contains(pgErr.ConstraintName, "email") {
			return ErrEmailExists
		}
		return ErrUsernameExists
	}
	return err
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
