package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/irsalhamdi/video-catalog/api/web"
	"github.com/irsalhamdi/video-catalog/api/weberr"
	"github.com/irsalhamdi/video-catalog/rate"
)

// RateLimit rejects requests from a remote host that ran out of tokens.
func RateLimit(lim *rate.Limiter) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			client := clientHost(r)
			if !lim.Check(client) {
				return weberr.TooManyRequests(
					fmt.Errorf("client[%s] exceeded the rate limit", client),
				)
			}

			return handler(ctx, w, r)
		}
		return h
	}
	return m
}

func clientHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
