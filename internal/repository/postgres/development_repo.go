package postgres

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/models"
	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/repository"
)

type DevelopmentRepo struct{ db *pgxpool.Pool }

func NewDevelopmentRepo(db *pgxpool.Pool) repository.DevelopmentRepository {
	return &DevelopmentRepo{db: db}
}

const developmentCols = `
	id, development_name, description, start_date, completion_date,
	status, COALESCE(image_url, '')`

func (r *DevelopmentRepo) Create(ctx context.Context, d *models.Development) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO developments (development_name, description, start_date, completion_date, status, image_url)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id`,
		d.DevelopmentName, d.Description, d.StartDate, d.CompletionDate,
		d.Status, nullIfEmpty(d.ImageURL),
	).Scan(&d.ID)
}

func (r *DevelopmentRepo) List(ctx context.Context) ([]models.Development, error) {
	rows, err := r.db.Query(ctx, `SELECT`+developmentCols+` FROM developments`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Development{}
	for rows.Next() {
		var d models.Development
		if err := rows.Scan(
			&d.ID, &d.DevelopmentName, &d.Description, &d.StartDate,
			&d.CompletionDate, &d.Status, &d.ImageURL,
		); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Update applies only the fields set in the patch; returns nil, nil when the
// id does not resolve.
func (r *DevelopmentRepo) Update(ctx context.Context, id string, patch repository.DevelopmentPatch) (*models.Development, error) {
	sets := []string{}
	args := []any{}

	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, col+" = $"+itoa(len(args)))
	}
	if patch.DevelopmentName != nil {
		set("development_name", *patch.DevelopmentName)
	}
	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.StartDate != nil {
		set("start_date", *patch.StartDate)
	}
	if patch.CompletionDate != nil {
		set("completion_date", *patch.CompletionDate)
	}
	if patch.Status != nil {
		set("status", *patch.Status)
	}
	if patch.ImageURL != nil {
		set("image_url", nullIfEmpty(*patch.ImageURL))
	}

	sql := `SELECT` + developmentCols + ` FROM developments WHERE id = $1`
	if len(sets) > 0 {
		args = append(args, id)
		sql = `UPDATE developments SET ` + strings.Join(sets, ", ") +
			` WHERE id = $` + itoa(len(args)) + ` RETURNING` + developmentCols
	} else {
		args = []any{id}
	}

	var d models.Development
	err := r.db.QueryRow(ctx, sql, args...).Scan(
		&d.ID, &d.DevelopmentName, &d.Description, &d.StartDate,
		&d.CompletionDate, &d.Status, &d.ImageURL,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}
