package video

import (
	"context"
	"fmt"
	"sync"

	"github.com/irsalhamdi/video-catalog/database"
)

// MemoryStore keeps videos in a map. Its content is lost on restart.
type MemoryStore struct {
	mu     sync.RWMutex
	videos map[int64]Video
}

var _ Storer = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{videos: make(map[int64]Video)}
}

func (s *MemoryStore) Create(ctx context.Context, video Video) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.videos[video.ID]; ok {
		return fmt.Errorf("inserting video[%d]: %w", video.ID, database.ErrDBDuplicatedEntry)
	}
	s.videos[video.ID] = video
	return nil
}

func (s *MemoryStore) Fetch(ctx context.Context, id int64) (Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.videos[id]
	if !ok {
		return Video{}, fmt.Errorf("selecting video[%d]: %w", id, database.ErrDBNotFound)
	}
	return v, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.videos[id]; !ok {
		return fmt.Errorf("deleting video[%d]: %w", id, database.ErrDBNotFound)
	}
	delete(s.videos, id)
	return nil
}

func (s *MemoryStore) Check(ctx context.Context) error {
	return nil
}
