// Package domain holds project types and the GitHub URL canonicalizer
package domain

import (
	"net/url"
	"strings"
	"unicode"

	perr "repoqa/internal/platform/errors"
)

const (
	maxOwnerLen = 39
	maxRepoLen  = 100
)

// CanonicalURL is a validated, normalized GitHub repository URL of the
// form https://github.com/{owner}/{repo}.git
// The zero value is invalid; construct one through Canonicalize
type CanonicalURL struct {
	value string
}

// String returns the canonical form
func (c CanonicalURL) String() string { return c.value }

// IsZero reports whether c was never constructed through Canonicalize
func (c CanonicalURL) IsZero() bool { return c.value == "" }

// MarshalJSON encodes the canonical form as a JSON string
func (c CanonicalURL) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.value + `"`), nil
}

// Canonicalize validates rawURL against GitHub naming rules and returns
// the normalized https://github.com/{owner}/{repo}.git form.
// Owner and repo are lowercased; a trailing .git on the input is absorbed.
// Canonicalize(Canonicalize(x)) == Canonicalize(x) for any accepted x
func Canonicalize(rawURL string) (CanonicalURL, error) {
	if strings.TrimSpace(rawURL) == "" {
		return CanonicalURL{}, perr.Validationf("URL cannot be empty")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return CanonicalURL{}, perr.Validationf("invalid URL format: %v", err)
	}

	if strings.ToLower(u.Scheme) != "https" {
		return CanonicalURL{}, perr.Validationf("URL scheme must be https")
	}
	if strings.ToLower(u.Hostname()) != "github.com" {
		return CanonicalURL{}, perr.Validationf("URL must be from github.com")
	}
	if u.Fragment != "" {
		return CanonicalURL{}, perr.Validationf("URL cannot contain fragments (#)")
	}
	if u.RawQuery != "" || u.ForceQuery {
		return CanonicalURL{}, perr.Validationf("URL cannot contain query parameters (?)")
	}

	path := strings.Trim(u.Path, "/")
	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return CanonicalURL{}, perr.Validationf("GitHub URL must be in format: https://github.com/owner/repo")
	}

	owner := parts[0]
	repo := parts[1]
	for strings.HasSuffix(repo, ".git") {
		repo = strings.TrimSuffix(repo, ".git")
	}

	if err := validateOwner(owner); err != nil {
		return CanonicalURL{}, err
	}
	if err := validateRepo(repo); err != nil {
		return CanonicalURL{}, err
	}

	return CanonicalURL{
		value: "https://github.com/" + strings.ToLower(owner) + "/" + strings.ToLower(repo) + ".git",
	}, nil
}

func validateOwner(owner string) error {
	if owner == "" {
		return perr.Validationf("owner name cannot be empty")
	}
	if len(owner) > maxOwnerLen {
		return perr.Validationf("owner name cannot exceed %d characters", maxOwnerLen)
	}
	if strings.HasPrefix(owner, "-") ||
		strings.HasPrefix(owner, ".") ||
		strings.HasPrefix(owner, "_") ||
		strings.HasSuffix(owner, "-") {
		return perr.Validationf("owner name cannot begin with dot, underscore, or hyphen, or end with a hyphen")
	}

	var prev rune
	for _, c := range owner {
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '-' {
			return perr.Validationf("owner name can only contain alphanumeric characters and hyphens")
		}
		if c == '-' && prev == '-' {
			return perr.Validationf("owner name cannot have consecutive hyphens")
		}
		prev = c
	}
	return nil
}

func validateRepo(repo string) error {
	if repo == "" {
		return perr.Validationf("repository name cannot be empty")
	}
	if len(repo) > maxRepoLen {
		return perr.Validationf("repository name cannot exceed %d characters", maxRepoLen)
	}
	if strings.HasPrefix(repo, ".") || strings.HasPrefix(repo, "-") || strings.HasPrefix(repo, "_") {
		return perr.Validationf("repository name cannot start with a dot, hyphen, or underscore")
	}
	if strings.HasSuffix(repo, ".") || strings.HasSuffix(repo, "-") || strings.HasSuffix(repo, "_") {
		return perr.Validationf("repository name cannot end with a dot, hyphen, or underscore")
	}
	for _, c := range repo {
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '-' && c != '_' && c != '.' {
			return perr.Validationf("repository name can only contain alphanumeric characters, hyphens, underscores, and dots")
		}
	}
	return nil
}
