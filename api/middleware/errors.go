package middleware

import (
	"context"
	"net/http"

	"github.com/irsalhamdi/video-catalog/api/web"
	"github.com/irsalhamdi/video-catalog/api/weberr"
	"github.com/sirupsen/logrus"
)

// Errors turns a handler error into a JSON response. Errors carrying a
// response are sent as is; anything else becomes a 500.
func Errors(log logrus.FieldLogger) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

			err := handler(ctx, w, r)
			if err == nil {
				return nil
			}

			fields := map[string]interface{}{
				"req_id":  ContextRequestID(ctx),
				"message": err,
			}
			if f, ok := weberr.Fields(err); ok {
				for k, v := range f {
					fields[k] = v
				}
			}

			code := weberr.Status(err)
			body, _, ok := weberr.Response(err)
			if !ok {
				body = weberr.ErrorResponse{Error: http.StatusText(code)}
			}

			if code >= http.StatusInternalServerError {
				log.WithFields(logrus.Fields(fields)).Error("ERROR")
			} else {
				log.WithFields(logrus.Fields(fields)).Warn("request rejected")
			}

			return web.Respond(ctx, w, body, code)
		}
		return h
	}
	return m
}
