// Package http provides helpers for writing JSON responses with a consistent envelope
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "repoqa/internal/platform/errors"
	"repoqa/internal/platform/logger"
	pnet "repoqa/internal/platform/net"
)

// Envelope is the standard response body for all endpoints
// Code mirrors the HTTP status so clients can switch on the body alone
type Envelope struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

//
// Effectful helpers (Respond*) for classic handlers
//

// RespondOK writes a 200 envelope with data
func RespondOK(w stdhttp.ResponseWriter, r *stdhttp.Request, data any) {
	respond(w, r, stdhttp.StatusOK, "success", data)
}

// RespondCreated writes a 201 envelope with data
func RespondCreated(w stdhttp.ResponseWriter, r *stdhttp.Request, data any) {
	respond(w, r, stdhttp.StatusCreated, "created", data)
}

// RespondStatus writes an arbitrary status envelope with data
func RespondStatus(w stdhttp.ResponseWriter, r *stdhttp.Request, status int, msg string, data any) {
	respond(w, r, status, msg, data)
}

func respond(w stdhttp.ResponseWriter, r *stdhttp.Request, status int, msg string, data any) {
	JSON(w, status, Envelope{
		Code:      status,
		Message:   msg,
		Data:      data,
		RequestID: pnet.RequestID(r.Context()),
	})
}

// RespondError maps a project error into an envelope and writes it.
// The full error is logged server-side; the body only carries the
// sanitized public message
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status := perr.HTTPStatus(err)
	wr := perr.PublicWire(err)

	log := logger.C(r.Context())
	evt := log.Warn()
	if status >= stdhttp.StatusInternalServerError {
		evt = log.Error()
	}
	evt.Err(err).
		Int("status", status).
		Str("path", r.URL.Path).
		Msg("request failed")

	JSON(w, status, Envelope{
		Code:      status,
		Message:   wr.Message,
		RequestID: pnet.RequestID(r.Context()),
	})
}

//
// Return-style helpers for early returns in handlers
//

// Response is a functional response object for return-style handlers
type Response struct {
	Status int
	Body   any
	// Message overrides the default envelope message when set
	Message string
	// optional headers if a handler wants to add any
	Header stdhttp.Header
}

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	// allow header overrides
	if resp.Header != nil {
		for k, vv := range resp.Header {
			for _, v := range vv {
				w.Header().Add(k, v)
			}
		}
	}
	if status == stdhttp.StatusNoContent {
		w.WriteHeader(stdhttp.StatusNoContent)
		return
	}

	// If Body is an error, derive status from error *before* building the envelope
	if err, ok := resp.Body.(error); ok && err != nil {
		RespondError(w, r, err)
		return
	}

	msg := resp.Message
	if msg == "" {
		if status == stdhttp.StatusCreated {
			msg = "created"
		} else {
			msg = "success"
		}
	}
	respond(w, r, status, msg, resp.Body)
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Created returns a 201 response
func Created(data any) Response { return Response{Status: stdhttp.StatusCreated, Body: data} }

// Status returns a response with an explicit status and message
func Status(status int, msg string, data any) Response {
	return Response{Status: status, Message: msg, Body: data}
}

// NoContent returns a 204 response
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error returns a response that maps the error to status and envelope
func Error(err error) Response { return Response{Body: err} }
