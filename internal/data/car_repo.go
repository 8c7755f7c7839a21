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

// CarRepo provides database operations for cars.
type CarRepo struct {
	DB *sql.DB
}

// NewCarRepo creates a new CarRepo.
func NewCarRepo(db *sql.DB) *CarRepo {
	return &CarRepo{DB: db}
}

var _ core.CarRepository = (*CarRepo)(nil)

const carColumns = `id, make, model, year, trim, vin, image_url, user_id`

// Create inserts a new car for the given user.
func (r *CarRepo) Create(ctx context.Context, userID int64, req *model.CreateCarRequest) (*model.Car, error) {
	if req == nil {
		return nil, errors.New("create car request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Car
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO cars (make, model, year, trim, vin, image_url, user_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING `+carColumns,
			req.Make, req.Model, req.Year, req.Trim, req.VIN, req.ImageURL, userID,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Car])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err, false)
	}
	return &out, nil
}

// GetByID retrieves a car by ID.
func (r *CarRepo) GetByID(ctx context.Context, id int64) (*model.Car, error) {
	var car model.Car
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+carColumns+` FROM cars WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		car, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Car])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCarNotFound
		}
		return nil, fmt.Errorf("failed to get car by ID: %w", err)
	}
	return &car, nil
}

// ListByUser retrieves a user's cars with pagination.
func (r *CarRepo) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Car, error) {
	limit, offset = clampPage(limit, offset)

	var rowsOut []model.Car
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+carColumns+` FROM cars WHERE user_id = $1 ORDER BY id LIMIT $2 OFFSET $3`,
			userID, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Car])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	return toPtrSlice(rowsOut), nil
}

// Update updates fields of a car.
func (r *CarRepo) Update(ctx context.Context, id int64, req model.UpdateCarRequest) (*model.Car, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Car
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		setClause, args := r.buildUpdateClause(req)
		args = append(args, id)
		query := fmt.Sprintf("UPDATE cars SET %s WHERE id = $%d RETURNING %s", setClause, len(args), carColumns)
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Car])
		return e
	})
	if err != nil {
		return nil, r.mapWriteErr(err, true)
	}
	return &out, nil
}

// Delete deletes a car by ID. Build lists and parts cascade in the schema.
func (r *CarRepo) Delete(ctx context.Context, id int64) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM cars WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete car: %w", err)
	}
	return rows > 0, nil
}

// buildUpdateClause builds the SQL SET clause and args for updating a car.
func (r *CarRepo) buildUpdateClause(req model.UpdateCarRequest) (string, []any) {
	setParts := make([]string, 0, 6)
	args := make([]any, 0, 7)
	nextIdx := func() int { return len(args) + 1 }

	if req.Make != nil {
		setParts = append(setParts, fmt.Sprintf("make = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Make))
	}
	if req.Model != nil {
		setParts = append(setParts, fmt.Sprintf("model = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Model))
	}
	if req.Year != nil {
		setParts = append(setParts, fmt.Sprintf("year = $%d", nextIdx()))
		args = append(args, *req.Year)
	}
	if req.Trim != nil {
		setParts = appendNullable(setParts, &args, "trim", *req.Trim, nextIdx)
	}
	if req.VIN != nil {
		setParts = appendNullable(setParts, &args, "vin", *req.VIN, nextIdx)
	}
	if req.ImageURL != nil {
		setParts = appendNullable(setParts, &args, "image_url", *req.ImageURL, nextIdx)
	}
	return strings.Join(setParts, ", "), args
}

func (r *CarRepo) mapWriteErr(err error, includeNotFound bool) error {
	if err == nil {
		return nil
	}
	if includeNotFound && errors.Is(err, pgx.ErrNoRows) {
		return ErrCarNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrVINExists
	}
	return err
}

// --- shared repo helpers ---

// appendNullable emits "col = NULL" for empty strings, otherwise a placeholder.
func appendNullable(setParts []string, args *[]any, col, val string, nextIdx func() int) []string {
	if strings.TrimSpace(val) == "" {
		return append(setParts, col+" = NULL")
	}
	setParts = append(setParts, fmt.Sprintf("%s = $%d", col, nextIdx()))
	*args = append(*args, val)
	return setParts
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func toPtrSlice[T any](in []T) []*T {
	out := make([]*T, len(in))
	for i := range in {
		out[i] = &in[i]
	}
	return out
}
