// Package service contains the answer workflow
package service

import (
	"context"

	"repoqa/internal/platform/logger"
	"repoqa/internal/services/answers/domain"
	projects "repoqa/internal/services/projects/domain"
)

// Service defines the answers service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the answers service
type Svc struct {
	projects projects.ServicePort
	gateway  domain.AnswerGateway
}

// New constructs an answers service
func New(proj projects.ServicePort, gw domain.AnswerGateway) *Svc {
	if proj == nil {
		panic("answers.Service requires a non nil projects port")
	}
	if gw == nil {
		panic("answers.Service requires a non nil AnswerGateway")
	}
	return &Svc{projects: proj, gateway: gw}
}

// Answer validates the question first, then resolves the optional
// canonical URL against registered projects before consulting the
// analysis service. An unregistered project never reaches the gateway
func (s *Svc) Answer(ctx context.Context, canonicalURL, question string) (domain.Answer, error) {
	q, err := domain.NewQuestion(question)
	if err != nil {
		return domain.Answer{}, err
	}

	scope := ""
	if canonicalURL != "" {
		canonical, err := projects.Canonicalize(canonicalURL)
		if err != nil {
			return domain.Answer{}, err
		}
		if _, err := s.projects.Lookup(ctx, canonical); err != nil {
			return domain.Answer{}, err
		}
		scope = canonical.String()
	}

	text, err := s.gateway.Answer(ctx, scope, q.String())
	if err != nil {
		return domain.Answer{}, err
	}

	logger.C(ctx).Info().
		Str("canonical_github_url", scope).
		Msg("question answered")
	return domain.Answer{Answer: text}, nil
}
