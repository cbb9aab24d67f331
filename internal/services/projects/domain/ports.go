package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	// Ingest canonicalizes rawURL and registers the project, asking the
	// analysis service to ingest it first
	Ingest(ctx context.Context, rawURL string) (IngestResult, error)

	// Lookup returns the project registered under a canonical URL
	Lookup(ctx context.Context, canonical CanonicalURL) (Project, error)
}

// IngestGateway is the outbound seam to the analysis service
type IngestGateway interface {
	Ingest(ctx context.Context, canonicalURL string) error
}
