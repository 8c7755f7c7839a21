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

// PartRepo provides database operations for parts.
type PartRepo struct {
	DB *sql.DB
}

// NewPartRepo creates a new PartRepo.
func NewPartRepo(db *sql.DB) *PartRepo {
	return &PartRepo{DB: db}
}

var _ core.PartRepository = (*PartRepo)(nil)

const partColumns = `id, name, part_type, part_number, manufacturer, description, price, image_url, build_list_id`

// Create inserts a new part.
func (r *PartRepo) Create(ctx context.Context, req *model.CreatePartRequest) (*model.Part, error) {
	if req == nil {
		return nil, errors.New("create part request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Part
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO parts (name, part_type, part_number, manufacturer, description, price, image_url, build_list_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING `+partColumns,
			req.Name, req.PartType, req.PartNumber, req.Manufacturer,
			req.Description, req.Price, req.ImageURL, req.BuildListID,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Part])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err, false)
	}
	return &out, nil
}

// GetByID retrieves a part by ID.
func (r *PartRepo) GetByID(ctx context.Context, id int64) (*model.Part, error) {
	var part model.Part
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+partColumns+` FROM parts WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		part, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Part])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPartNotFound
		}
		return nil, fmt.Errorf("failed to get part by ID: %w", err)
	}
	return &part, nil
}

// ListByBuildList retrieves a build list's parts with pagination.
func (r *PartRepo) ListByBuildList(ctx context.Context, buildListID int64, limit, offset int) ([]*model.Part, error) {
	limit, offset = clampPage(limit, offset)

	var rowsOut []model.Part
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+partColumns+` FROM parts WHERE build_list_id = $1 ORDER BY id LIMIT $2 OFFSET $3`,
			buildListID, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Part])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list parts: %w", err)
	}
	return toPtrSlice(rowsOut), nil
}

// Update updates fields of a part.
func (r *PartRepo) Update(ctx context.Context, id int64, req model.UpdatePartRequest) (*model.Part, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Part
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		setClause, args := r.buildUpdateClause(req)
		args = append(args, id)
		query := fmt.Sprintf("UPDATE parts SET %s WHERE id = $%d RETURNING %s", setClause, len(args), partColumns)
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Part])
		return e
	})
	if err != nil {
		return nil, r.mapWriteErr(err, true)
	}
	return &out, nil
}

// Delete deletes a part by ID.
func (r *PartRepo) Delete(ctx context.Context, id int64) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM parts WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete part: %w", err)
	}
	return rows > 0, nil
}

// buildUpdateClause builds the SQL SET clause and args for updating a part.
func (r *PartRepo) buildUpdateClause(req model.UpdatePartRequest) (string, []any) {
	setParts := make([]string, 0, 8)
	args := make([]any, 0, 9)
	nextIdx := func() int { return len(args) + 1 }

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Name))
	}
	if req.PartType != nil {
		setParts = appendNullable(setParts, &args, "part_type", *req.PartType, nextIdx)
	}
	if req.PartNumber != nil {
		setParts = appendNullable(setParts, &args, "part_number", *req.PartNumber, nextIdx)
	}
	if req.Manufacturer != nil {
		setParts = appendNullable(setParts, &args, "manufacturer", *req.Manufacturer, nextIdx)
	}
	if req.Description != nil {
		setParts = appendNullable(setParts, &args, "description", *req.Description, nextIdx)
	}
	if req.Price != nil {
		setParts = append(setParts, fmt.Sprintf("price = $%d", nextIdx()))
		args = append(args, *req.Price)
	}
	if req.ImageURL != nil {
		setParts = appendNullable(setParts, &args, "image_url", *req.ImageURL, nextIdx)
	}
	if req.BuildListID != nil {
		setParts = append(setParts, fmt.Sprintf("build_list_id = $%d", nextIdx()))
		args = append(args, *req.BuildListID)
	}
	return strings.Join(setParts, ", "), args
}

func (r *PartRepo) mapWriteErr(err error, includeNotFound bool) error {
	if err == nil {
		return nil
	}
	if includeNotFound && errors.Is(err, pgx.ErrNoRows) {
		return ErrPartNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return ErrBuildListNotFound
	}
	return err
}
