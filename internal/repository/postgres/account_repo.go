package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/models"
	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/repository"
)

type AccountRepo struct{ db *pgxpool.Pool }

func NewAccountRepo(db *pgxpool.Pool) repository.AccountRepository { return &AccountRepo{db: db} }

// Create stores a student account (bcrypt hash in password_h).
func (r *AccountRepo) Create(ctx context.Context, name, regNo, branch, email, passwordHash string) (*models.Account, error) {
	var a models.Account
	err := r.db.QueryRow(ctx, `
		INSERT INTO accounts (name, reg_no, branch, email, password_h)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, name, reg_no, branch, email, role, created_at`,
		name, regNo, branch, email, passwordHash).
		Scan(&a.ID, &a.Name, &a.RegNo, &a.Branch, &a.Email, &a.Role, &a.CreatedAt)
	return &a, err
}

func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (*models.Account, string, error) {
	var a models.Account
	var ph string
	err := r.db.QueryRow(ctx, `
		SELECT id, name, reg_no, branch, email, role, password_h, created_at
		FROM accounts WHERE email=$1`, email).
		Scan(&a.ID, &a.Name, &a.RegNo, &a.Branch, &a.Email, &a.Role, &ph, &a.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", nil
		}
		return nil, "", err
	}
	return &a, ph, nil
}

// ExistsByEmailOrRegNo backs the single pre-registration conflict check.
func (r *AccountRepo) ExistsByEmailOrRegNo(ctx context.Context, email, regNo string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM accounts WHERE email=$1 OR reg_no=$2)`,
		email, regNo).Scan(&exists)
	return exists, err
}
