package repository

import (
	"context"

	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/models"
)

type AccountRepository interface {
	Create(ctx context.Context, name, regNo, branch, email, passwordHash string) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, string /*passwordHash*/, error)
	ExistsByEmailOrRegNo(ctx context.Context, email, regNo string) (bool, error)
}

type ProblemRepository interface {
	Create(ctx context.Context, p *models.Problem) error
	Get(ctx context.Context, id string) (*models.Problem, error)
	List(ctx context.Context, f ProblemFilter) ([]models.Problem, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Problem, error)
	FilterOptions(ctx context.Context) (*FilterOptions, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Problem, error)
	Delete(ctx context.Context, id string) error
	StatusCounts(ctx context.Context) (map[string]int, error)
	CountOpenByUrgency(ctx context.Context, urgency string) (int, error)
}

type DevelopmentRepository interface {
	Create(ctx context.Context, d *models.Development) error
	List(ctx context.Context) ([]models.Development, error)
	Update(ctx context.Context, id string, patch DevelopmentPatch) (*models.Development, error)
}
