// Package service contains the project ingestion workflow
package service

import (
	"context"

	"repoqa/internal/modkit/repokit"
	perr "repoqa/internal/platform/errors"
	"repoqa/internal/platform/logger"
	"repoqa/internal/services/projects/domain"
	"repoqa/internal/services/projects/repo"
)

// Service defines the projects service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the projects service
type Svc struct {
	Repo    repo.Repo
	binder  repokit.Binder[repo.Repo]
	db      repokit.TxRunner
	gateway domain.IngestGateway
}

// New constructs a projects service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], gw domain.IngestGateway) *Svc {
	if db == nil {
		panic("projects.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("projects.Service requires a non nil Repo binder")
	}
	if gw == nil {
		panic("projects.Service requires a non nil IngestGateway")
	}
	return &Svc{Repo: repokit.MustBind(binder, db), binder: binder, db: db, gateway: gw}
}

// Ingest canonicalizes rawURL and registers the project.
// The analysis service must accept the repository before anything is
// persisted, so a gateway failure leaves no record behind. A persist
// failure after gateway success is an infrastructure error; nothing is
// rolled back upstream
func (s *Svc) Ingest(ctx context.Context, rawURL string) (domain.IngestResult, error) {
	canonical, err := domain.Canonicalize(rawURL)
	if err != nil {
		return domain.IngestResult{}, err
	}

	existing, err := s.Repo.GetByURL(ctx, canonical.String())
	if err == nil {
		return domain.IngestResult{Project: existing, AlreadyExists: true}, nil
	}
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		return domain.IngestResult{}, err
	}

	if err := s.gateway.Ingest(ctx, canonical.String()); err != nil {
		return domain.IngestResult{}, err
	}

	p := repo.NewProject(canonical)
	if err := s.Repo.Insert(ctx, p); err != nil {
		if perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
			// lost the check-then-create race; the winner's row is the record
			logger.C(ctx).Info().
				Str("canonical_github_url", canonical.String()).
				Msg("concurrent ingest, returning existing project")
			if winner, gerr := s.Repo.GetByURL(ctx, canonical.String()); gerr == nil {
				return domain.IngestResult{Project: winner, AlreadyExists: true}, nil
			}
		}
		return domain.IngestResult{}, err
	}

	return domain.IngestResult{Project: p}, nil
}

// Lookup returns the project registered under a canonical URL
func (s *Svc) Lookup(ctx context.Context, canonical domain.CanonicalURL) (domain.Project, error) {
	return s.Repo.GetByURL(ctx, canonical.String())
}
