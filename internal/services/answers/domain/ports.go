package domain

import "context"

// Answer is the result of the answer workflow
type Answer struct {
	Answer string `json:"answer"`
}

// ServicePort is consumed by handlers
type ServicePort interface {
	// Answer validates the question, resolves the optional canonical URL
	// against registered projects, and consults the analysis service
	Answer(ctx context.Context, canonicalURL, question string) (Answer, error)
}

// AnswerGateway is the outbound seam to the analysis service
type AnswerGateway interface {
	Answer(ctx context.Context, canonicalURL, question string) (string, error)
}
