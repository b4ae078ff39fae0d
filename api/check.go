package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/irsalhamdi/video-catalog/api/web"
	"github.com/irsalhamdi/video-catalog/api/weberr"
	"github.com/irsalhamdi/video-catalog/core/video"
)

func handleReadiness(store video.Storer) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		ctx, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()

		if err := store.Check(ctx); err != nil {
			return weberr.InternalError(fmt.Errorf("store not ready: %w", err))
		}

		status := struct {
			Status string `json:"status"`
		}{
			Status: "ok",
		}
		return web.Respond(ctx, w, status, http.StatusOK)
	}
}
