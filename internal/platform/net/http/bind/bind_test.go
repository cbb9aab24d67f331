package bind_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	perr "repoqa/internal/platform/errors"
	"repoqa/internal/platform/net/http/bind"
)

type ingestBody struct {
	GithubURL string `json:"github_url" validate:"required"`
}

func TestParseJSON_BindsAndValidates(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("POST", "/ingest",
		strings.NewReader(`{"github_url":"https://github.com/foo/bar"}`))

	got, err := bind.ParseJSON[ingestBody](req)
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}
	if got.GithubURL != "https://github.com/foo/bar" {
		t.Fatalf("bound URL = %q", got.GithubURL)
	}
}

func TestParseJSON_EmptyBodyIsJSONError(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("POST", "/ingest", strings.NewReader(""))
	_, err := bind.ParseJSON[ingestBody](req)
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("expected JSON error, got %v", err)
	}
}

func TestParseJSON_UnknownFieldRejected(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("POST", "/ingest",
		strings.NewReader(`{"github_url":"x","extra":1}`))
	_, err := bind.ParseJSON[ingestBody](req)
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("expected JSON error for unknown field, got %v", err)
	}
}

func TestParseJSON_MissingRequiredFieldIsValidation(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("POST", "/ingest", strings.NewReader(`{}`))
	_, err := bind.ParseJSON[ingestBody](req)
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	e, _ := perr.As(err)
	if e.Field() != "github_url" {
		t.Fatalf("field = %q, want github_url (json tag name)", e.Field())
	}
}

func TestParseJSON_TrailingDataRejected(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("POST", "/ingest",
		strings.NewReader(`{"github_url":"x"}{"github_url":"y"}`))
	_, err := bind.ParseJSON[ingestBody](req)
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("expected JSON error for trailing data, got %v", err)
	}
}
