// Package hello serves the static greeting endpoints.
package hello

import (
	"context"
	"net/http"

	"github.com/irsalhamdi/video-catalog/api/web"
	"github.com/irsalhamdi/video-catalog/api/weberr"
)

type Greeting struct {
	Data string `json:"data"`
}

type Echo struct {
	Name string `json:"name"`
	Test int64  `json:"test number"`
}

// HandleGreet answers the same greeting whatever name is in the path.
func HandleGreet() web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		return web.Respond(ctx, w, Greeting{Data: "Hello World"}, http.StatusOK)
	}
}

func HandleGreetTest() web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		test, err := web.ParamInt(r, "test")
		if err != nil {
			return weberr.NotFound(err)
		}

		echo := Echo{
			Name: web.Param(r, "name"),
			Test: test,
		}
		return web.Respond(ctx, w, echo, http.StatusOK)
	}
}
