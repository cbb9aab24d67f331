// Package module wires project ingestion into the API using modkit
package module

import (
	"net/http"

	modkit "repoqa/internal/modkit"
	"repoqa/internal/modkit/httpkit"
	str "repoqa/internal/platform/strings"
	"repoqa/internal/services/projects/domain"
	projectshttp "repoqa/internal/services/projects/http"
	projectsrepo "repoqa/internal/services/projects/repo"
	projectssvc "repoqa/internal/services/projects/service"
)

// Ports exposes the project service to other modules
type Ports struct {
	Projects domain.ServicePort
}

// Module implements the projects module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc projectssvc.Service
}

// New constructs the projects module
// the gateway is injected by the composition root via Options
func New(deps modkit.Deps, gw domain.IngestGateway, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("projects"),
		modkit.WithPrefix("/ingest"),
	}, opts...)...)

	repo := projectsrepo.NewPG()
	svc := projectssvc.New(deps.PG, repo, gw)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Projects: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		projectshttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, func(rr httpkit.Router) {
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
