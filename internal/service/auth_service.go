package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/config"
	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/models"
	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/repository"
	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/utils"
)

const tokenTTL = 24 * time.Hour

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountExists      = errors.New("user with email or regNo already exists")
	ErrMissingFields      = errors.New("all fields are required")
	ErrBadEmail           = errors.New("email must be an institutional address")
	ErrShortPassword      = errors.New("password must be at least 6 characters")
)

// AdminSubject is the synthetic token subject for the configured admin
// identity, which has no account record.
const AdminSubject = "admin"

type LoginResult struct {
	Token string      `json:"token"`
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Role  models.Role `json:"role"`
}

type AuthService struct {
	accounts repository.AccountRepository
	cfg      config.Config
	emailRe  *regexp.Regexp
}

func NewAuthService(accounts repository.AccountRepository, cfg config.Config) *AuthService {
	return &AuthService{
		accounts: accounts,
		cfg:      cfg,
		emailRe:  regexp.MustCompile(`^[^@\s]+@` + regexp.QuoteMeta(cfg.EmailDomain) + `$`),
	}
}

func (a *AuthService) Register(ctx context.Context, name, regNo, branch, email, password string) error {
	name = strings.TrimSpace(name)
	regNo = strings.TrimSpace(regNo)
	branch = strings.TrimSpace(branch)
	email = strings.TrimSpace(email)
	if name == "" || regNo == "" || branch == "" || email == "" || password == "" {
		return ErrMissingFields
	}
	if !a.emailRe.MatchString(email) {
		return ErrBadEmail
	}
	if len(password) < 6 {
		return ErrShortPassword
	}

	exists, err := a.accounts.ExistsByEmailOrRegNo(ctx, email, regNo)
	if err != nil {
		return err
	}
	if exists {
		return ErrAccountExists
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = a.accounts.Create(ctx, name, regNo, branch, email, hash)
	return err
}

// Login validates credentials and issues a signed session token. The admin
// identity is checked against configured credentials, not the account store.
// All credential failures collapse to ErrInvalidCredentials.
func (a *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(email)

	if email == a.cfg.AdminEmail {
		if password != a.cfg.AdminPassword {
			return nil, ErrInvalidCredentials
		}
		tok, err := utils.SignJWT(a.cfg.SessionSecret, AdminSubject, string(models.RoleAdmin), tokenTTL)
		if err != nil {
			return nil, err
		}
		return &LoginResult{Token: tok, Email: a.cfg.AdminEmail, Name: "Admin", Role: models.RoleAdmin}, nil
	}

	acc, hash, err := a.accounts.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPassword(hash, password) {
		return nil, ErrInvalidCredentials
	}

	tok, err := utils.SignJWT(a.cfg.SessionSecret, acc.ID, string(models.RoleStudent), tokenTTL)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: tok, Email: acc.Email, Name: acc.Name, Role: models.RoleStudent}, nil
}
