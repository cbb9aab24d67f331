// Package analysis provides the HTTP client for the downstream analysis service
package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	perr "repoqa/internal/platform/errors"
	"repoqa/internal/platform/logger"
)

const (
	defaultTimeout = 60 * time.Second
	defaultUA      = "repoqa-api"

	// cap on how much of an upstream error body we keep for logs
	maxBodyExcerpt = 2048
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// Client talks to the analysis service over plain JSON HTTP.
// Calls are never retried; callers decide what a failure means.
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("analysis"),
	}
}

type ingestRequest struct {
	CanonicalGithubURL string `json:"canonical_github_url"`
}

type answerRequest struct {
	CanonicalGithubURL *string `json:"canonical_github_url,omitempty"`
	UserQuestion       string  `json:"user_question"`
}

// AnswerResponse is the analysis service answer payload
type AnswerResponse struct {
	Answer string `json:"answer"`
}

// Ingest asks the analysis service to ingest the repository behind canonicalURL.
// Anything but 201 is a rejection
func (c *Client) Ingest(ctx context.Context, canonicalURL string) error {
	resp, err := c.post(ctx, "/ingest", ingestRequest{CanonicalGithubURL: canonicalURL})
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated {
		return c.rejected(resp, "ingest")
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// Answer asks the analysis service a question, optionally scoped to a repository.
// canonicalURL may be empty for repository-agnostic questions
func (c *Client) Answer(ctx context.Context, canonicalURL, question string) (AnswerResponse, error) {
	req := answerRequest{UserQuestion: question}
	if canonicalURL != "" {
		req.CanonicalGithubURL = &canonicalURL
	}

	resp, err := c.post(ctx, "/answer", req)
	if err != nil {
		return AnswerResponse{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return AnswerResponse{}, c.rejected(resp, "answer")
	}

	// decode through a pointer so a body without the answer key is
	// distinguishable from an empty answer
	var body struct {
		Answer *string `json:"answer"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&body); err != nil {
		return AnswerResponse{}, perr.Wrapf(err, perr.ErrorCodeUpstreamRejected, "analysis answer body decode failed")
	}
	if body.Answer == nil {
		return AnswerResponse{}, perr.UpstreamRejectedf("analysis answer body missing answer field")
	}
	return AnswerResponse{Answer: *body.Answer}, nil
}

func (c *Client) post(ctx context.Context, path string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "analysis request marshal failed")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "analysis new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUpstreamUnreachable, "analysis %s unreachable", path)
	}

	c.log.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("analysis http response")

	return resp, nil
}

// rejected logs a bounded excerpt of the upstream body and returns an error;
// the body text never reaches callers of this package
func (c *Client) rejected(resp *http.Response, op string) error {
	excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyExcerpt))
	c.log.Error().
		Str("op", op).
		Int("status", resp.StatusCode).
		Str("body", string(excerpt)).
		Msg("analysis service rejected request")
	return perr.UpstreamRejectedf("analysis %s responded %d", op, resp.StatusCode)
}
