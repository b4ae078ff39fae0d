package video

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/irsalhamdi/video-catalog/api/web"
	"github.com/irsalhamdi/video-catalog/api/weberr"
	"github.com/irsalhamdi/video-catalog/database"
	"github.com/irsalhamdi/video-catalog/validate"
)

const (
	msgNotFound = "Video id is not valid."
	msgTaken    = "Video id taken."
)

func HandleShow(store Storer) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id, err := validate.ParseID(web.Param(r, "id"))
		if err != nil {
			return weberr.NotFound(err, weberr.WithMessage(msgNotFound))
		}

		video, err := store.Fetch(ctx, id)
		if err != nil {
			if errors.Is(err, database.ErrDBNotFound) {
				return weberr.NotFound(err, weberr.WithMessage(msgNotFound))
			}
			return fmt.Errorf("fetching video[%d]: %w", id, err)
		}

		return web.Respond(ctx, w, video, http.StatusOK)
	}
}

func HandleCreate(store Storer) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id, err := validate.ParseID(web.Param(r, "id"))
		if err != nil {
			return weberr.NotFound(err, weberr.WithMessage(msgNotFound))
		}

		var vp VideoPut
		if err := web.Decode(w, r, &vp); err != nil {
			return badRequest(validate.Decoding(err), id)
		}

		if err := validate.Check(vp); err != nil {
			return badRequest(err, id)
		}

		video := vp.Video(id)
		if err := store.Create(ctx, video); err != nil {
			if errors.Is(err, database.ErrDBDuplicatedEntry) {
				return weberr.Conflict(err, weberr.WithMessage(msgTaken))
			}
			return fmt.Errorf("creating video[%d]: %w", id, err)
		}

		return web.Respond(ctx, w, video, http.StatusCreated)
	}
}

func HandleDelete(store Storer) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id, err := validate.ParseID(web.Param(r, "id"))
		if err != nil {
			return weberr.NotFound(err, weberr.WithMessage(msgNotFound))
		}

		if err := store.Delete(ctx, id); err != nil {
			if errors.Is(err, database.ErrDBNotFound) {
				return weberr.NotFound(err, weberr.WithMessage(msgNotFound))
			}
			return fmt.Errorf("deleting video[%d]: %w", id, err)
		}

		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}

func badRequest(err error, id int64) error {
	fields := weberr.WithFields(map[string]interface{}{"video_id": id})

	var fe *validate.FieldError
	if errors.As(err, &fe) {
		return weberr.InvalidField(err, fe.Field, fe.Message, fields)
	}
	return weberr.BadRequest(err, fields)
}
