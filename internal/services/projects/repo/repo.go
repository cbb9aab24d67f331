// Package repo provides postgres access for projects
package repo

import (
	"context"
	"errors"
	"time"

	"repoqa/internal/modkit/repokit"
	perr "repoqa/internal/platform/errors"
	"repoqa/internal/services/projects/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Repo is the minimal persistence surface for projects
type Repo interface {
	// GetByURL returns the project registered under canonicalURL
	// absence maps to a not found error
	GetByURL(ctx context.Context, canonicalURL string) (domain.Project, error)

	// Insert writes a new project row
	// a lost insert race surfaces as a duplicate key error
	Insert(ctx context.Context, p domain.Project) error
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) GetByURL(ctx context.Context, canonicalURL string) (domain.Project, error) {
	const sql = `
select id, canonical_github_url, created_at
from projects
where canonical_github_url = $1
`
	var p domain.Project
	err := r.q.QueryRow(ctx, sql, canonicalURL).Scan(&p.ID, &p.CanonicalGithubURL, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Project{}, perr.NotFoundf("project not registered")
	}
	if err != nil {
		return domain.Project{}, perr.FromPg(err, "query project")
	}
	return p, nil
}

func (r *queries) Insert(ctx context.Context, p domain.Project) error {
	const sql = `
insert into projects (id, canonical_github_url, created_at)
values ($1, $2, $3)
`
	if _, err := r.q.Exec(ctx, sql, p.ID, p.CanonicalGithubURL, p.CreatedAt); err != nil {
		return perr.FromPg(err, "insert project")
	}
	return nil
}

// NewProject builds a Project row for a canonical URL
func NewProject(canonical domain.CanonicalURL) domain.Project {
	return domain.Project{
		ID:                 uuid.New(),
		CanonicalGithubURL: canonical.String(),
		CreatedAt:          time.Now().UTC(),
	}
}

// EnsureSchema creates the projects table and its uniqueness guarantee.
// The unique index is what turns a concurrent double-insert into a
// duplicate key error instead of two rows
func EnsureSchema(ctx context.Context, q repokit.Queryer) error {
	const sql = `
create table if not exists projects (
	id uuid primary key,
	canonical_github_url text not null unique,
	created_at timestamptz not null default now()
)
`
	if _, err := q.Exec(ctx, sql); err != nil {
		return perr.FromPg(err, "ensure projects schema")
	}
	return nil
}
