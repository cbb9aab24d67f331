// Package api provides the HTTP API for the application
package api

import (
	"context"

	"repoqa/internal/platform/config"
	"repoqa/internal/platform/logger"
	phttp "repoqa/internal/platform/net/http"
	"repoqa/internal/platform/net/middleware"
	"repoqa/internal/platform/store"

	"repoqa/internal/modkit"
	"repoqa/internal/modkit/httpkit"
	"repoqa/internal/modkit/module"

	"repoqa/internal/adapters/analysis"
	answersmod "repoqa/internal/services/answers/module"
	metamod "repoqa/internal/services/api/meta/module"
	projectsmod "repoqa/internal/services/projects/module"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Store  *store.Store
	Logger *logger.Logger
}

// answerGateway narrows the analysis client to the string answer the service wants
type answerGateway struct {
	c *analysis.Client
}

func (g answerGateway) Answer(ctx context.Context, canonicalURL, question string) (string, error) {
	res, err := g.c.Answer(ctx, canonicalURL, question)
	if err != nil {
		return "", err
	}
	return res.Answer, nil
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	// single analysis client behind both gateway ports
	ana := opt.Config.Prefix("SERVICE_ANALYSIS_")
	client := analysis.NewClient(analysis.Options{
		BaseURL: ana.MustString("BASE_URL"),
		Timeout: ana.MayDuration("TIMEOUT", 0),
	})

	jsonOnly := modkit.WithMiddlewares(middleware.AllowContentType("application/json"))

	// Construct the projects module first and extract its service port
	projects := projectsmod.New(deps, client, jsonOnly)
	proj := module.MustPortsOf[projectsmod.Ports](projects).Projects

	// The answers module scopes questions through the projects port
	answers := answersmod.New(deps, proj, answerGateway{c: client}, jsonOnly)

	mods := []module.Module{
		metamod.New(deps),
		projects,
		answers,
	}

	// load balancer probe at the root, no dependencies touched
	r.Use(middleware.Heartbeat("/health"))

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
