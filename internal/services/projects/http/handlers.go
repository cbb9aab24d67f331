// Package http provides http transport for project ingestion
package http

import (
	stdhttp "net/http"

	"repoqa/internal/modkit/httpkit"
	"repoqa/internal/platform/logger"
	svc "repoqa/internal/services/projects/service"
)

// IngestRequest is the ingest payload
type IngestRequest struct {
	GithubURL string `json:"github_url" validate:"required"`
}

// IngestResponse carries the canonical identifier back to the caller
type IngestResponse struct {
	CanonicalGithubURL string `json:"canonical_github_url"`
}

type handlers struct {
	svc svc.Service
}

// Register mounts project endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSONResponse[IngestRequest](r, "/", h.ingest)
}

func (h *handlers) ingest(r *stdhttp.Request, in IngestRequest) httpkit.Response {
	res, err := h.svc.Ingest(r.Context(), in.GithubURL)
	if err != nil {
		return httpkit.Error(err)
	}

	out := IngestResponse{CanonicalGithubURL: res.Project.CanonicalGithubURL}
	if res.AlreadyExists {
		logger.C(r.Context()).Info().
			Str("canonical_github_url", out.CanonicalGithubURL).
			Msg("project already exists")
		return httpkit.Status(stdhttp.StatusConflict, "project already exists and is ready to use", out)
	}

	logger.C(r.Context()).Info().
		Str("canonical_github_url", out.CanonicalGithubURL).
		Msg("project ingested")
	return httpkit.Status(stdhttp.StatusCreated, "project ingested successfully", out)
}
