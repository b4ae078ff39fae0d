package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/irsalhamdi/video-catalog/api/middleware"
	"github.com/irsalhamdi/video-catalog/api/web"
	"github.com/irsalhamdi/video-catalog/api/weberr"
	"github.com/irsalhamdi/video-catalog/core/hello"
	"github.com/irsalhamdi/video-catalog/core/video"
	"github.com/irsalhamdi/video-catalog/rate"
	"github.com/sirupsen/logrus"
)

type APIConfig struct {
	CorsOrigin string
	Log        logrus.FieldLogger
	Store      video.Storer
	// Limiter is optional, requests are not limited when nil.
	Limiter *rate.Limiter
}

type api struct {
	*mux.Router
	mw  []web.Middleware
	log logrus.FieldLogger
}

func APIMux(cfg APIConfig) http.Handler {
	a := &api{
		Router: mux.NewRouter(),
		log:    cfg.Log,
	}

	a.mw = append(a.mw, middleware.RequestID())
	a.mw = append(a.mw, middleware.Logger(cfg.Log))
	a.mw = append(a.mw, middleware.Errors(cfg.Log))
	a.mw = append(a.mw, middleware.Panics())

	if cfg.Limiter != nil {
		a.mw = append(a.mw, middleware.RateLimit(cfg.Limiter))
	}

	if cfg.CorsOrigin != "" {
		a.mw = append(a.mw, middleware.Cors(cfg.CorsOrigin))

		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusNoContent)
			return nil
		}

		a.Handle(http.MethodOptions, "/{path:.*}", h)
	}

	a.Router.NotFoundHandler = a.wrap(func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		return weberr.NotFound(fmt.Errorf("no route for %s %s", r.Method, r.URL.Path))
	})
	a.Router.MethodNotAllowedHandler = a.wrap(func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		return weberr.MethodNotAllowed(fmt.Errorf("method %s not allowed on %s", r.Method, r.URL.Path))
	})

	a.Handle(http.MethodGet, "/readiness", handleReadiness(cfg.Store))

	a.Handle(http.MethodGet, "/helloworld/{name}", hello.HandleGreet())
	a.Handle(http.MethodGet, "/helloworld/{name}/{test:[0-9]+}", hello.HandleGreetTest())

	a.Handle(http.MethodGet, "/video/{id:[0-9]+}", video.HandleShow(cfg.Store))
	a.Handle(http.MethodPut, "/video/{id:[0-9]+}", video.HandleCreate(cfg.Store))
	a.Handle(http.MethodDelete, "/video/{id:[0-9]+}", video.HandleDelete(cfg.Store))

	return a.Router
}

func (a *api) Handle(method string, path string, handler web.Handler, mw ...web.Middleware) {
	a.Router.Handle(path, a.wrap(handler, mw...)).Methods(method)
}

func (a *api) wrap(handler web.Handler, mw ...web.Middleware) http.Handler {

	handler = web.WrapMiddleware(mw, handler)

	handler = web.WrapMiddleware(a.mw, handler)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		ctx := r.Context()

		if err := handler(ctx, w, r); err != nil {

			a.log.WithFields(logrus.Fields{
				"req_id":  middleware.ContextRequestID(ctx),
				"message": err,
			}).Error("ERROR")
		}
	})
}
