package store

import (
	"context"
	"testing"
)

func TestOpen_NothingEnabled_LeavesSeamsNil(t *testing.T) {
	t.Parallel()

	s, err := Open(context.Background(), Config{})
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if s.PG != nil {
		t.Fatalf("unexpected seam set PG=%T", s.PG)
	}
	if err := s.Close(context.Background()); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
}

func TestOpen_PGEnabled_BadURL_BubblesError(t *testing.T) {
	t.Parallel()

	cfg := Config{
		PG: PGConfig{
			Enabled: true,
			URL:     "://bad", // parse error inside pg.Open
		},
	}

	s, err := Open(context.Background(), cfg)
	if err == nil {
		t.Fatalf("expected error for bad URL, got store %+v", s)
	}
}

func TestGuard_NilStore(t *testing.T) {
	t.Parallel()

	var s *Store
	if err := s.Guard(context.Background()); err == nil {
		t.Fatalf("expected error for nil store")
	}
}

func TestGuard_NoSeams_NoError(t *testing.T) {
	t.Parallel()

	s := &Store{}
	if err := s.Guard(context.Background()); err != nil {
		t.Fatalf("Guard returned error: %v", err)
	}
}
