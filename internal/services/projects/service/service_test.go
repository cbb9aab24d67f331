package service

import (
	"context"
	"testing"

	"repoqa/internal/modkit/repokit"
	perr "repoqa/internal/platform/errors"
	"repoqa/internal/services/projects/domain"
	"repoqa/internal/services/projects/repo"
)

// fakeRepo is an in-memory Repo keyed by canonical URL
type fakeRepo struct {
	rows      map[string]domain.Project
	insertErr error
	getErr    error
}

func newFakeRepo() *fakeRepo { return &fakeRepo{rows: map[string]domain.Project{}} }

func (f *fakeRepo) GetByURL(_ context.Context, url string) (domain.Project, error) {
	if f.getErr != nil {
		return domain.Project{}, f.getErr
	}
	p, ok := f.rows[url]
	if !ok {
		return domain.Project{}, perr.NotFoundf("project not registered")
	}
	return p, nil
}

func (f *fakeRepo) Insert(_ context.Context, p domain.Project) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if _, exists := f.rows[p.CanonicalGithubURL]; exists {
		return perr.DuplicateKeyf("duplicate canonical url")
	}
	f.rows[p.CanonicalGithubURL] = p
	return nil
}

func (f *fakeRepo) binder() repokit.Binder[repo.Repo] {
	return repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return f })
}

// fakeGateway records ingest calls
type fakeGateway struct {
	calls []string
	err   error
}

func (g *fakeGateway) Ingest(_ context.Context, canonicalURL string) error {
	g.calls = append(g.calls, canonicalURL)
	return g.err
}

// noopDB satisfies TxRunner for tests that never touch SQL
type noopDB struct{ repokit.TxRunner }

func newSvc(f *fakeRepo, g *fakeGateway) *Svc {
	return New(noopDB{}, f.binder(), g)
}

func TestIngest_CreatesProject(t *testing.T) {
	t.Parallel()

	fr := newFakeRepo()
	gw := &fakeGateway{}
	svc := newSvc(fr, gw)

	res, err := svc.Ingest(context.Background(), "https://github.com/TestOwner/TestRepo")
	if err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}
	if res.AlreadyExists {
		t.Fatal("fresh ingest reported already exists")
	}
	const want = "https://github.com/testowner/testrepo.git"
	if res.Project.CanonicalGithubURL != want {
		t.Fatalf("canonical url = %q, want %q", res.Project.CanonicalGithubURL, want)
	}
	if len(gw.calls) != 1 || gw.calls[0] != want {
		t.Fatalf("gateway calls = %v, want exactly one with %q", gw.calls, want)
	}
	if _, err := fr.GetByURL(context.Background(), want); err != nil {
		t.Fatalf("project not persisted: %v", err)
	}
	if res.Project.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Fatal("project id not assigned")
	}
}

func TestIngest_SecondCallIsIdempotent(t *testing.T) {
	t.Parallel()

	fr := newFakeRepo()
	gw := &fakeGateway{}
	svc := newSvc(fr, gw)

	first, err := svc.Ingest(context.Background(), "https://github.com/owner/repo")
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Ingest(context.Background(), "https://github.com/OWNER/REPO/")
	if err != nil {
		t.Fatalf("second ingest failed: %v", err)
	}
	if !second.AlreadyExists {
		t.Fatal("second ingest did not report already exists")
	}
	if second.Project.ID != first.Project.ID {
		t.Fatal("second ingest returned a different record")
	}
	if len(gw.calls) != 1 {
		t.Fatalf("gateway invoked %d times, want 1", len(gw.calls))
	}
	if len(fr.rows) != 1 {
		t.Fatalf("row count = %d, want 1", len(fr.rows))
	}
}

func TestIngest_ValidationFailureTouchesNothing(t *testing.T) {
	t.Parallel()

	fr := newFakeRepo()
	gw := &fakeGateway{}
	svc := newSvc(fr, gw)

	_, err := svc.Ingest(context.Background(), "http://github.com/owner/repo")
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(gw.calls) != 0 {
		t.Fatal("gateway invoked for invalid input")
	}
	if len(fr.rows) != 0 {
		t.Fatal("row persisted for invalid input")
	}
}

func TestIngest_GatewayFailureLeavesNoRecord(t *testing.T) {
	t.Parallel()

	fr := newFakeRepo()
	gw := &fakeGateway{err: perr.UpstreamRejectedf("analysis ingest responded 503")}
	svc := newSvc(fr, gw)

	_, err := svc.Ingest(context.Background(), "https://github.com/owner/repo")
	if !perr.IsCode(err, perr.ErrorCodeUpstreamRejected) {
		t.Fatalf("expected UpstreamRejected, got %v", err)
	}
	if len(fr.rows) != 0 {
		t.Fatal("record persisted despite gateway failure")
	}
}

func TestIngest_LostInsertRaceReportsAlreadyExists(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{}

	// existence check misses, then the insert collides with a row a
	// concurrent request just created
	winner := repo.NewProject(mustCanonical(t, "https://github.com/owner/repo"))
	calls := 0
	frSeq := &sequencedRepo{
		first:  perr.NotFoundf("project not registered"),
		second: winner,
		calls:  &calls,
	}
	svc := New(noopDB{}, repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return frSeq }), gw)

	res, err := svc.Ingest(context.Background(), "https://github.com/owner/repo")
	if err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}
	if !res.AlreadyExists {
		t.Fatal("lost race should report already exists")
	}
	if res.Project.CanonicalGithubURL != winner.CanonicalGithubURL {
		t.Fatalf("returned %q, want the winner's record", res.Project.CanonicalGithubURL)
	}
}

func TestIngest_StoreFaultPropagates(t *testing.T) {
	t.Parallel()

	fr := newFakeRepo()
	fr.getErr = perr.DBf("connection reset")
	svc := newSvc(fr, &fakeGateway{})

	_, err := svc.Ingest(context.Background(), "https://github.com/owner/repo")
	if !perr.IsCode(err, perr.ErrorCodeDB) {
		t.Fatalf("expected DB error, got %v", err)
	}
}

func TestLookup_MissIsNotFound(t *testing.T) {
	t.Parallel()

	svc := newSvc(newFakeRepo(), &fakeGateway{})
	_, err := svc.Lookup(context.Background(), mustCanonical(t, "https://github.com/owner/repo"))
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

// sequencedRepo misses the first GetByURL and hits the second with a fixed row
type sequencedRepo struct {
	first  error
	second domain.Project
	calls  *int
}

func (s *sequencedRepo) GetByURL(context.Context, string) (domain.Project, error) {
	*s.calls++
	if *s.calls == 1 {
		return domain.Project{}, s.first
	}
	return s.second, nil
}

func (s *sequencedRepo) Insert(context.Context, domain.Project) error {
	return perr.DuplicateKeyf("duplicate canonical url")
}

func mustCanonical(t *testing.T, raw string) domain.CanonicalURL {
	t.Helper()
	c, err := domain.Canonicalize(raw)
	if err != nil {
		t.Fatal(err)
	}
	return c
}
