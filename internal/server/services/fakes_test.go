package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/solarplan/internal/common"
	"github.com/dmitrijs2005/solarplan/internal/cryptox"
	"github.com/dmitrijs2005/solarplan/internal/dbx"
	"github.com/dmitrijs2005/solarplan/internal/server/models"
	"github.com/dmitrijs2005/solarplan/internal/server/repositories/estimates"
	"github.com/dmitrijs2005/solarplan/internal/server/repositories/projects"
	"github.com/dmitrijs2005/solarplan/internal/server/repositories/users"
	"golang.org/x/crypto/bcrypt"
)

var errBoom = errors.New("boom")

const (
	ownerID = "7b0c6f0e-4a53-4c43-9a49-1f7c2d1e9a01"
	otherID = "c1d4a3a8-2f0b-4bd1-a0a4-5c9a8e2b7f10"
	projID  = "3f6e2b1a-9c8d-4e7f-8a6b-5c4d3e2f1a0b"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func fixedIDs(t *testing.T, ids ...string) {
	t.Helper()
	orig := newID
	i := 0
	newID = func() string {
		id := ids[i%len(ids)]
		i++
		return id
	}
	t.Cleanup(func() { newID = orig })
}

func lowBcryptCost(t *testing.T) {
	t.Helper()
	orig := cryptox.Cost
	cryptox.Cost = bcrypt.MinCost
	t.Cleanup(func() { cryptox.Cost = orig })
}

// fakeUsersRepo keeps users in memory keyed by email.
type fakeUsersRepo struct {
	byEmail   map[string]*models.User
	createErr error
	getErr    error
	existsErr error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byEmail: map[string]*models.User{}}
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return nil, common.ErrorConflict
	}
	cp := *u
	cp.CreatedAt = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	f.byEmail[u.Email] = &cp
	return &cp, nil
}

func (f *fakeUsersRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsersRepo) Exists(_ context.Context, id string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	for _, u := range f.byEmail {
		if u.ID == id {
			return true, nil
		}
	}
	return false, nil
}

// fakeProjectsRepo mimics the ownership-scoped SQL of the real repository.
type fakeProjectsRepo struct {
	items     []*models.Project
	createErr error
	listErr   error
	updated   int
}

func (f *fakeProjectsRepo) Create(_ context.Context, p *models.Project) (*models.Project, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	cp := *p
	cp.CreatedAt = time.Date(2025, 1, 2, 3, 4, 5, len(f.items), time.UTC)
	f.items = append(f.items, &cp)
	out := cp
	return &out, nil
}

func (f *fakeProjectsRepo) ListByUser(_ context.Context, userID string) ([]*models.Project, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*models.Project, 0)
	for _, p := range f.items {
		if p.UserID == userID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeProjectsRepo) Update(_ context.Context, id string, in models.ProjectInput) (*models.Project, error) {
	for _, p := range f.items {
		if p.ID == id && p.UserID == in.UserID {
			p.Name, p.Cost, p.Status = in.Name, in.Cost, in.Status
			f.updated++
			cp := *p
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeProjectsRepo) Delete(_ context.Context, id, userID string) error {
	for i, p := range f.items {
		if p.ID == id && p.UserID == userID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

type fakeEstimatesRepo struct {
	items     []*models.SavedEstimate
	createErr error
}

func (f *fakeEstimatesRepo) Create(_ context.Context, e *models.SavedEstimate) (*models.SavedEstimate, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	cp := *e
	f.items = append([]*models.SavedEstimate{&cp}, f.items...)
	out := cp
	return &out, nil
}

func (f *fakeEstimatesRepo) ListByUser(_ context.Context, userID string) ([]*models.SavedEstimate, error) {
	out := make([]*models.SavedEstimate, 0)
	for _, e := range f.items {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	p *fakeProjectsRepo
	e *fakeEstimatesRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{u: newFakeUsersRepo(), p: &fakeProjectsRepo{}, e: &fakeEstimatesRepo{}}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository             { return m.u }
func (m *fakeRepoManager) Projects(dbx.DBTX) projects.Repository       { return m.p }
func (m *fakeRepoManager) Estimates(dbx.DBTX) estimates.Repository     { return m.e }

// withOwner registers ownerID directly in the fake store.
func (m *fakeRepoManager) withOwner() *fakeRepoManager {
	m.u.byEmail["owner@example.com"] = &models.User{ID: ownerID, Email: "owner@example.com"}
	return m
}
