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

// BuildListRepo provides database operations for build lists.
type BuildListRepo struct {
	DB *sql.DB
}

// NewBuildListRepo creates a new BuildListRepo.
func NewBuildListRepo(db *sql.DB) *BuildListRepo {
	return &BuildListRepo{DB: db}
}

var _ core.BuildListRepository = (*BuildListRepo)(nil)

const buildListColumns = `id, name, description, car_id, image_url`

// Create inserts a new build list.
func (r *BuildListRepo) Create(ctx context.Context, req *model.CreateBuildListRequest) (*model.BuildList, error) {
	if req == nil {
		return nil, errors.New("create build list request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.BuildList
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO build_lists (name, description, car_id, image_url)
			VALUES ($1, $2, $3, $4)
			RETURNING `+buildListColumns,
			req.Name, req.Description, req.CarID, req.ImageURL,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.BuildList])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err, false)
	}
	return &out, nil
}

// GetByID retrieves a build list by ID.
func (r *BuildListRepo) GetByID(ctx context.Context, id int64) (*model.BuildList, error) {
	var bl model.BuildList
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+buildListColumns+` FROM build_lists WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		bl, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.BuildList])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBuildListNotFound
		}
		return nil, fmt.Errorf("failed to get build list by ID: %w", err)
	}
	return &bl, nil
}

// ListByCar retrieves a car's build lists with pagination.
func (r *BuildListRepo) ListByCar(ctx context.Context, carID int64, limit, offset int) ([]*model.BuildList, error) {
	limit, offset = clampPage(limit, offset)

	var rowsOut []model.BuildList
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+buildListColumns+` FROM build_lists WHERE car_id = $1 ORDER BY id LIMIT $2 OFFSET $3`,
			carID, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.BuildList])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list build lists: %w", err)
	}
	return toPtrSlice(rowsOut), nil
}

// Update updates fields of a build list.
func (r *BuildListRepo) Update(ctx context.Context, id int64, req model.UpdateBuildListRequest) (*model.BuildList, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.BuildList
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		setClause, args := r.buildUpdateClause(req)
		args = append(args, id)
		query := fmt.Sprintf("UPDATE build_lists SET %s WHERE id = $%d RETURNING %s", setClause, len(args), buildListColumns)
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.BuildList])
		return e
	})
	if err != nil {
		return nil, r.mapWriteErr(err, true)
	}
	return &out, nil
}

// Delete deletes a build list by ID. Parts cascade in the schema.
func (r *BuildListRepo) Delete(ctx context.Context, id int64) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM build_lists WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete build list: %w", err)
	}
	return rows > 0, nil
}

// buildUpdateClause builds the SQL SET clause and args for updating a build list.
func (r *BuildListRepo) buildUpdateClause(req model.UpdateBuildListRequest) (string, []any) {
	setParts := make([]string, 0, 4)
	args := make([]any, 0, 5)
	nextIdx := func() int { return len(args) + 1 }

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Name))
	}
	if req.Description != nil {
		setParts = appendNullable(setParts, &args, "description", *req.Description, nextIdx)
	}
	if req.CarID != nil {
		setParts = append(setParts, fmt.Sprintf("car_id = $%d", nextIdx()))
		args = append(args, *req.CarID)
	}
	if req.ImageURL != nil {
		setParts = appendNullable(setParts, &args, "image_url", *req.ImageURL, nextIdx)
	}
	return strings.Join(setParts, ", "), args
}

func (r *BuildListRepo) mapWriteErr(err error, includeNotFound bool) error {
	if err == nil {
		return nil
	}
	if includeNotFound && errors.Is(err, pgx.ErrNoRows) {
		return ErrBuildListNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return ErrCarNotFound
	}
	return err
}
