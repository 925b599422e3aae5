package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/config"
	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/models"
	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/utils"
)

type fakeAccounts struct {
	byEmail map[string]*models.Account
	byRegNo map[string]*models.Account
	hashes  map[string]string
	nextID  int
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{
		byEmail: map[string]*models.Account{},
		byRegNo: map[string]*models.Account{},
		hashes:  map[string]string{},
	}
}

func (f *fakeAccounts) Create(_ context.Context, name, regNo, branch, email, passwordHash string) (*models.Account, error) {
	f.nextID++
	a := &models.Account{
		ID: "acc-" + strconv.Itoa(f.nextID), Name: name, RegNo: regNo,
		Branch: branch, Email: email, Role: models.RoleStudent,
	}
	f.byEmail[email] = a
	f.byRegNo[regNo] = a
	f.hashes[email] = passwordHash
	return a, nil
}

func (f *fakeAccounts) GetByEmail(_ context.Context, email string) (*models.Account, string, error) {
	a, ok := f.byEmail[email]
	if !ok {
		return nil, "", nil
	}
	return a, f.hashes[email], nil
}

func (f *fakeAccounts) ExistsByEmailOrRegNo(_ context.Context, email, regNo string) (bool, error) {
	_, e := f.byEmail[email]
	_, r := f.byRegNo[regNo]
	return e || r, nil
}

func testConfig() config.Config {
	return config.Config{
		SessionSecret: "test-secret",
		AdminEmail:    "admin@sliet.ac.in",
		AdminPassword: "admin-pass",
		EmailDomain:   "sliet.ac.in",
	}
}

func TestRegisterThenLogin(t *testing.T) {
	svc := NewAuthService(newFakeAccounts(), testConfig())

	err := svc.Register(context.Background(), "Asha", "2020CS01", "CSE", "asha@sliet.ac.in", "secret1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	res, err := svc.Login(context.Background(), "asha@sliet.ac.in", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.Role != models.RoleStudent {
		t.Fatalf("expected student role, got %q", res.Role)
	}
	c, err := utils.ParseJWT("test-secret", res.Token)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if c.Role != string(models.RoleStudent) || c.UserID == "" {
		t.Fatalf("unexpected claims: %+v", c)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := NewAuthService(newFakeAccounts(), testConfig())
	ctx := context.Background()

	if err := svc.Register(ctx, "", "2020CS01", "CSE", "a@sliet.ac.in", "secret1"); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if err := svc.Register(ctx, "Asha", "2020CS01", "CSE", "asha@gmail.com", "secret1"); !errors.Is(err, ErrBadEmail) {
		t.Fatalf("expected ErrBadEmail, got %v", err)
	}
	if err := svc.Register(ctx, "Asha", "2020CS01", "CSE", "asha@sliet.ac.in", "short"); !errors.Is(err, ErrShortPassword) {
		t.Fatalf("expected ErrShortPassword, got %v", err)
	}
}

func TestRegisterConflicts(t *testing.T) {
	svc := NewAuthService(newFakeAccounts(), testConfig())
	ctx := context.Background()

	if err := svc.Register(ctx, "Asha", "2020CS01", "CSE", "asha@sliet.ac.in", "secret1"); err != nil {
		t.Fatalf("register: %v", err)
	}
	// Same email, different regNo.
	if err := svc.Register(ctx, "Asha", "2020CS99", "CSE", "asha@sliet.ac.in", "secret1"); !errors.Is(err, ErrAccountExists) {
		t.Fatalf("expected ErrAccountExists for duplicate email, got %v", err)
	}
	// Same regNo, different email.
	if err := svc.Register(ctx, "Asha", "2020CS01", "CSE", "asha2@sliet.ac.in", "secret1"); !errors.Is(err, ErrAccountExists) {
		t.Fatalf("expected ErrAccountExists for duplicate regNo, got %v", err)
	}
}

func TestAdminLogin(t *testing.T) {
	svc := NewAuthService(newFakeAccounts(), testConfig())

	res, err := svc.Login(context.Background(), "admin@sliet.ac.in", "admin-pass")
	if err != nil {
		t.Fatalf("admin login: %v", err)
	}
	if res.Role != models.RoleAdmin || res.Name != "Admin" {
		t.Fatalf("unexpected admin result: %+v", res)
	}
	c, err := utils.ParseJWT("test-secret", res.Token)
	if err != nil {
		t.Fatalf("parse admin token: %v", err)
	}
	if c.UserID != AdminSubject || c.Role != string(models.RoleAdmin) {
		t.Fatalf("unexpected admin claims: %+v", c)
	}
}

// A wrong admin password, an unknown student and a wrong student password
// must all produce the same error.
func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	accounts := newFakeAccounts()
	svc := NewAuthService(accounts, testConfig())
	ctx := context.Background()

	if err := svc.Register(ctx, "Asha", "2020CS01", "CSE", "asha@sliet.ac.in", "secret1"); err != nil {
		t.Fatalf("register: %v", err)
	}

	for _, tc := range []struct{ email, password string }{
		{"admin@sliet.ac.in", "wrong"},
		{"nobody@sliet.ac.in", "secret1"},
		{"asha@sliet.ac.in", "wrong"},
	} {
		_, err := svc.Login(ctx, tc.email, tc.password)
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("login(%s): expected ErrInvalidCredentials, got %v", tc.email, err)
		}
	}
}
