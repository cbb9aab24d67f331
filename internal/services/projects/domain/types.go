package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project is a registered repository record
type Project struct {
	ID                 uuid.UUID `json:"id"`
	CanonicalGithubURL string    `json:"canonical_github_url"`
	CreatedAt          time.Time `json:"created_at"`
}

// IngestResult is the terminal outcome of an ingestion
type IngestResult struct {
	Project       Project
	AlreadyExists bool
}
