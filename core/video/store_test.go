package video

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/irsalhamdi/video-catalog/config"
	"github.com/irsalhamdi/video-catalog/database"
)

func newSQLStore(t *testing.T) *SQLStore {
	t.Helper()

	db, err := database.Open(config.DB{
		Driver:       database.DriverSQLite,
		DSN:          filepath.Join(t.TempDir(), "videos.db"),
		MaxIdleConns: 1,
	})
	if err != nil {
		t.Fatalf("opening db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrating db: %v", err)
	}

	return NewSQLStore(db)
}

func TestStores(t *testing.T) {
	stores := map[string]func(t *testing.T) Storer{
		"memory": func(t *testing.T) Storer { return NewMemoryStore() },
		"sqlite": func(t *testing.T) Storer { return newSQLStore(t) },
	}

	for name, mk := range stores {
		t.Run(name, func(t *testing.T) {
			s := mk(t)
			ctx := context.Background()

			if err := s.Check(ctx); err != nil {
				t.Fatalf("store not ready: %v", err)
			}

			v := Video{ID: 1, Name: "clip", Views: 10, Likes: 2}
			if err := s.Create(ctx, v); err != nil {
				t.Fatalf("creating: %v", err)
			}

			err := s.Create(ctx, Video{ID: 1, Name: "other", Views: 1, Likes: 1})
			if !errors.Is(err, database.ErrDBDuplicatedEntry) {
				t.Fatalf("expected duplicated entry, got %v", err)
			}

			got, err := s.Fetch(ctx, 1)
			if err != nil {
				t.Fatalf("fetching: %v", err)
			}
			if diff := cmp.Diff(v, got); diff != "" {
				t.Fatalf("record changed (-want +got):\n%s", diff)
			}

			if _, err := s.Fetch(ctx, 2); !errors.Is(err, database.ErrDBNotFound) {
				t.Fatalf("expected not found, got %v", err)
			}

			if err := s.Delete(ctx, 1); err != nil {
				t.Fatalf("deleting: %v", err)
			}
			if err := s.Delete(ctx, 1); !errors.Is(err, database.ErrDBNotFound) {
				t.Fatalf("expected not found on second delete, got %v", err)
			}
			if _, err := s.Fetch(ctx, 1); !errors.Is(err, database.ErrDBNotFound) {
				t.Fatalf("expected not found after delete, got %v", err)
			}
		})
	}
}
