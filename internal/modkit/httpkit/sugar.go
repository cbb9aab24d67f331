package httpkit

import (
	"net/http"

	phttp "repoqa/internal/platform/net/http"
)

// PostJSONResponse mounts a JSON handler under POST that picks its own status
func PostJSONResponse[T any](r Router, path string, h func(*http.Request, T) Response) {
	phttp.PostJSONResponse(r, path, h)
}

// Body-less JSON endpoints

// Get registers a no-body handler and uses the envelope adapter
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}

// Post registers a no-body handler and uses the envelope adapter
func Post(r Router, path string, h func(*http.Request) (any, error)) {
	r.Post(path, Call(h))
}
