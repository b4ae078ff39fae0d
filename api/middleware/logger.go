package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/irsalhamdi/video-catalog/api/web"
	"github.com/sirupsen/logrus"
	"github.com/zenazn/goji/web/mutil"
)

// Logger records one line per request once the response is written. Server
// errors are logged at error level, client errors at warn level.
func Logger(log logrus.FieldLogger) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			entry := log.WithFields(logrus.Fields{
				"method":     r.Method,
				"path":       r.URL.Path,
				"route":      routeTemplate(r),
				"remoteaddr": r.RemoteAddr,
				"useragent":  r.UserAgent(),
			})
			if rid := ContextRequestID(ctx); rid != "" {
				entry = entry.WithField("req_id", rid)
			}

			entry.Debug("started")
			start := time.Now()

			lw := mutil.WrapWriter(w)
			err := handler(ctx, lw, r)

			entry = entry.WithFields(logrus.Fields{
				"statuscode": lw.Status(),
				"bytes":      lw.BytesWritten(),
				"since":      time.Since(start).String(),
			})

			switch status := lw.Status(); {
			case status >= http.StatusInternalServerError:
				entry.Error("completed")
			case status >= http.StatusBadRequest:
				entry.Warn("completed")
			default:
				entry.Info("completed")
			}
			return err
		}
		return h
	}
	return m
}

func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return ""
	}
	tpl, err := route.GetPathTemplate()
	if err != nil {
		return ""
	}
	return tpl
}
