package http

import "net/http"

// PostJSONResponse mounts a JSON handler for POST that picks its own status
func PostJSONResponse[T any](r Router, path string, h func(*http.Request, T) Response) {
	r.Post(path, JSONHandlerResponse(h))
}
