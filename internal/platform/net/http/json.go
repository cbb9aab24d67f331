package http

import (
	"net/http"

	"repoqa/internal/platform/net/http/bind"
)

// JSONHandlerResponse adapts a JSON handler that picks its own status
func JSONHandlerResponse[T any](fn func(*http.Request, T) Response) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return Error(err)
		}
		return fn(r, in)
	})
}
