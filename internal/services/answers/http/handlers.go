// Package http provides http transport for the answer workflow
package http

import (
	stdhttp "net/http"

	"repoqa/internal/modkit/httpkit"
	svc "repoqa/internal/services/answers/service"
)

// AnswerRequest is the answer payload.
// CanonicalGithubURL is optional; without it the question is repository-agnostic
type AnswerRequest struct {
	CanonicalGithubURL string `json:"canonical_github_url"`
	Question           string `json:"question" validate:"required"`
}

type handlers struct {
	svc svc.Service
}

// Register mounts answer endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSONResponse[AnswerRequest](r, "/", h.answer)
}

func (h *handlers) answer(r *stdhttp.Request, in AnswerRequest) httpkit.Response {
	out, err := h.svc.Answer(r.Context(), in.CanonicalGithubURL, in.Question)
	if err != nil {
		return httpkit.Error(err)
	}
	return httpkit.Status(stdhttp.StatusOK, "question answered successfully", out)
}
