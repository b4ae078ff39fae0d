package video

import (
	"context"
	"fmt"

	"github.com/irsalhamdi/video-catalog/database"
	"github.com/jmoiron/sqlx"
)

// Storer persists videos. Implementations return database.ErrDBNotFound for
// unknown ids and database.ErrDBDuplicatedEntry when an id is already taken.
type Storer interface {
	Create(ctx context.Context, video Video) error
	Fetch(ctx context.Context, id int64) (Video, error)
	Delete(ctx context.Context, id int64) error
	Check(ctx context.Context) error
}

// SQLStore keeps videos in the video_model table.
type SQLStore struct {
	db *sqlx.DB
}

var _ Storer = (*SQLStore)(nil)

func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Create(ctx context.Context, video Video) error {
	return Create(ctx, s.db, video)
}

func (s *SQLStore) Fetch(ctx context.Context, id int64) (Video, error) {
	return Fetch(ctx, s.db, id)
}

func (s *SQLStore) Delete(ctx context.Context, id int64) error {
	return Delete(ctx, s.db, id)
}

func (s *SQLStore) Check(ctx context.Context) error {
	return database.StatusCheck(ctx, s.db)
}

func Create(ctx context.Context, db sqlx.ExtContext, video Video) error {
	const q = `
	INSERT INTO video_model
		(id, name, views, likes)
	VALUES
		(:id, :name, :views, :likes)`

	if _, err := database.NamedExecContext(ctx, db, q, video); err != nil {
		return fmt.Errorf("inserting video[%d]: %w", video.ID, err)
	}

	return nil
}

func Fetch(ctx context.Context, db sqlx.ExtContext, id int64) (Video, error) {
	in := struct {
		ID int64 `db:"id"`
	}{
		ID: id,
	}

	const q = `
	SELECT
		id, name, views, likes
	FROM
		video_model
	WHERE
		id = :id`

	var video Video
	if err := database.NamedQueryStruct(ctx, db, q, in, &video); err != nil {
		return Video{}, fmt.Errorf("selecting video[%d]: %w", id, err)
	}

	return video, nil
}

func Delete(ctx context.Context, db sqlx.ExtContext, id int64) error {
	in := struct {
		ID int64 `db:"id"`
	}{
		ID: id,
	}

	const q = `
	DELETE FROM
		video_model
	WHERE
		id = :id`

	n, err := database.NamedExecContext(ctx, db, q, in)
	if err != nil {
		return fmt.Errorf("deleting video[%d]: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("deleting video[%d]: %w", id, database.ErrDBNotFound)
	}

	return nil
}
