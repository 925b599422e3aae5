package postgres

import (
	"context"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/models"
	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/repository"
)

type ProblemRepo struct{ db *pgxpool.Pool }

func NewProblemRepo(db *pgxpool.Pool) repository.ProblemRepository { return &ProblemRepo{db: db} }

const problemCols = `
	p.id, p.problem_name, p.department, p.location, p.urgency, p.description,
	COALESCE(p.image, ''), p.submitted_by, p.status, p.submitted_at`

const ownerCols = `COALESCE(a.name, ''), COALESCE(a.email, ''), COALESCE(a.reg_no, '')`

func (r *ProblemRepo) Create(ctx context.Context, p *models.Problem) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO problems (problem_name, department, location, urgency, description, image, submitted_by, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id, submitted_at`,
		p.ProblemName, p.Department, p.Location, p.Urgency, p.Description,
		nullIfEmpty(p.Image), p.SubmittedBy, p.Status,
	).Scan(&p.ID, &p.SubmittedAt)
}

func (r *ProblemRepo) Get(ctx context.Context, id string) (*models.Problem, error) {
	var p models.Problem
	err := r.db.QueryRow(ctx, `
		SELECT`+problemCols+`
		FROM problems p WHERE p.id = $1`, id).Scan(
		&p.ID, &p.ProblemName, &p.Department, &p.Location, &p.Urgency,
		&p.Description, &p.Image, &p.SubmittedBy, &p.Status, &p.SubmittedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// List returns filtered problems joined with the owner's display fields,
// most recent first.
func (r *ProblemRepo) List(ctx context.Context, f repository.ProblemFilter) ([]models.Problem, error) {
	whereSQL, args := buildProblemWhere(f)

	rows, err := r.db.Query(ctx, `
		SELECT`+problemCols+`, `+ownerCols+`
		FROM problems p
		LEFT JOIN accounts a ON a.id = p.submitted_by
		`+whereSQL+`
		ORDER BY p.submitted_at DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Problem{}
	for rows.Next() {
		var p models.Problem
		if err := rows.Scan(
			&p.ID, &p.ProblemName, &p.Department, &p.Location, &p.Urgency,
			&p.Description, &p.Image, &p.SubmittedBy, &p.Status, &p.SubmittedAt,
			&p.OwnerName, &p.OwnerEmail, &p.OwnerRegNo,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProblemRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Problem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT`+problemCols+`
		FROM problems p WHERE p.submitted_by = $1`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Problem{}
	for rows.Next() {
		var p models.Problem
		if err := rows.Scan(
			&p.ID, &p.ProblemName, &p.Department, &p.Location, &p.Urgency,
			&p.Description, &p.Image, &p.SubmittedBy, &p.Status, &p.SubmittedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// FilterOptions lists the distinct non-empty locations and departments
// present in the collection, sorted ascending.
func (r *ProblemRepo) FilterOptions(ctx context.Context) (*repository.FilterOptions, error) {
	opts := repository.FilterOptions{Locations: []string{}, Departments: []string{}}

	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT location FROM problems WHERE location <> '' ORDER BY location`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		opts.Locations = append(opts.Locations, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.db.Query(ctx, `
		SELECT DISTINCT department FROM problems WHERE department <> '' ORDER BY department`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		opts.Departments = append(opts.Departments, s)
	}
	return &opts, rows.Err()
}

// UpdateStatus returns nil, nil when the id does not resolve.
func (r *ProblemRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Problem, error) {
	var p models.Problem
	err := r.db.QueryRow(ctx, `
		UPDATE problems p SET status=$1
		WHERE p.id=$2
		RETURNING`+problemCols, status, id).Scan(
		&p.ID, &p.ProblemName, &p.Department, &p.Location, &p.Urgency,
		&p.Description, &p.Image, &p.SubmittedBy, &p.Status, &p.SubmittedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProblemRepo) Delete(ctx context.Context, id string) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM problems WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ProblemRepo) StatusCounts(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM problems GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var s string
		var n int
		if err := rows.Scan(&s, &n); err != nil {
			return nil, err
		}
		counts[s] = n
	}
	return counts, rows.Err()
}

func (r *ProblemRepo) CountOpenByUrgency(ctx context.Context, urgency string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM problems WHERE status <> 'Resolved' AND urgency = $1`,
		urgency).Scan(&n)
	return n, err
}

// buildProblemWhere composes the WHERE clause for the optional filters.
// Location matches as ILIKE substring; department, status and urgency are
// exact.
func buildProblemWhere(f repository.ProblemFilter) (string, []any) {
	clauses := []string{"1=1"}
	args := []any{}

	if s := strings.TrimSpace(f.Department); s != "" {
		args = append(args, s)
		clauses = append(clauses, "p.department = $"+itoa(len(args)))
	}
	if s := strings.TrimSpace(f.Location); s != "" {
		args = append(args, "%"+s+"%")
		clauses = append(clauses, "p.location ILIKE $"+itoa(len(args)))
	}
	if s := strings.TrimSpace(f.Status); s != "" {
		args = append(args, s)
		clauses = append(clauses, "p.status = $"+itoa(len(args)))
	}
	if s := strings.TrimSpace(f.Urgency); s != "" {
		args = append(args, s)
		clauses = append(clauses, "p.urgency = $"+itoa(len(args)))
	}

	return "WHERE " + strings.Join(clauses, " AND "), args
}

func nullIfEmpty(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}

func itoa(i int) string { return strconv.Itoa(i) }
