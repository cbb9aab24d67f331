package http_test

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	perr "repoqa/internal/platform/errors"
	phttp "repoqa/internal/platform/net/http"
)

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) phttp.Envelope {
	t.Helper()
	var env phttp.Envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("body is not an envelope: %v", err)
	}
	return env
}

func TestRespondCreated_EnvelopeShape(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/ingest", nil)

	phttp.RespondCreated(rr, req, map[string]string{"canonical_github_url": "https://github.com/a/b.git"})

	if rr.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201", rr.Code)
	}
	env := decodeEnvelope(t, rr)
	if env.Code != stdhttp.StatusCreated || env.Message != "created" {
		t.Fatalf("envelope = %+v", env)
	}
	if env.Data == nil {
		t.Fatal("data missing from envelope")
	}
}

func TestRespondError_ValidationEchoed(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/ingest", nil)

	phttp.RespondError(rr, req, perr.Validationf("URL host must be github.com"))

	if rr.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	env := decodeEnvelope(t, rr)
	if env.Message != "URL host must be github.com" {
		t.Fatalf("validation message not echoed: %q", env.Message)
	}
}

func TestRespondError_InternalCollapsed(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/ingest", nil)

	phttp.RespondError(rr, req, perr.DBf("pg: connection reset by peer"))

	if rr.Code != stdhttp.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	env := decodeEnvelope(t, rr)
	if env.Message != "internal error" {
		t.Fatalf("internal detail leaked: %q", env.Message)
	}
}

func TestRespondError_UnreachableIs502(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/answer", nil)

	phttp.RespondError(rr, req, perr.Unreachablef("dial tcp: i/o timeout"))

	if rr.Code != stdhttp.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rr.Code)
	}
	if env := decodeEnvelope(t, rr); env.Message != "upstream service error" {
		t.Fatalf("message = %q", env.Message)
	}
}

func TestHandle_ErrorBodyMapsStatus(t *testing.T) {
	t.Parallel()

	h := phttp.Handle(func(r *stdhttp.Request) phttp.Response {
		return phttp.Error(perr.NotFoundf("project not registered"))
	})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("POST", "/answer", nil))

	if rr.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	if env := decodeEnvelope(t, rr); env.Message != "project not registered" {
		t.Fatalf("message = %q", env.Message)
	}
}

func TestHandle_StatusResponse(t *testing.T) {
	t.Parallel()

	h := phttp.Handle(func(r *stdhttp.Request) phttp.Response {
		return phttp.Status(stdhttp.StatusConflict, "project already exists", map[string]string{
			"canonical_github_url": "https://github.com/a/b.git",
		})
	})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("POST", "/ingest", nil))

	if rr.Code != stdhttp.StatusConflict {
		t.Fatalf("status = %d, want 409", rr.Code)
	}
	env := decodeEnvelope(t, rr)
	if env.Code != stdhttp.StatusConflict || env.Message != "project already exists" {
		t.Fatalf("envelope = %+v", env)
	}
}
