package modkit

import (
	"net/http"
	"testing"

	"repoqa/internal/modkit/httpkit"
)

func TestBuild_Defaults(t *testing.T) {
	t.Parallel()

	b := Build()
	if b.Subrouter == nil || b.Register == nil {
		t.Fatal("hooks should default to no-ops, not nil")
	}
	// defaults must not panic when invoked
	b.Register(nil)
	if got := b.Subrouter(nil); got != nil {
		t.Fatalf("default subrouter should be identity, got %v", got)
	}
}

func TestBuild_AppliesOptions(t *testing.T) {
	t.Parallel()

	mw := func(next http.Handler) http.Handler { return next }
	called := false

	b := Build(
		WithName("projects"),
		WithPrefix("/ingest"),
		WithMiddlewares(mw),
		WithPorts(struct{ V int }{V: 7}),
		WithRegister(func(httpkit.Router) { called = true }),
	)

	if b.Name != "projects" || b.Prefix != "/ingest" {
		t.Fatalf("name/prefix = %q/%q", b.Name, b.Prefix)
	}
	if len(b.Mw) != 1 {
		t.Fatalf("mw count = %d", len(b.Mw))
	}
	if b.Ports == nil {
		t.Fatal("ports not set")
	}
	b.Register(nil)
	if !called {
		t.Fatal("register hook not wired")
	}
}
