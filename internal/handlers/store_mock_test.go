package handlers

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	apperrors "myflix/internal/errors"
	"myflix/internal/models"
)

// mockVideoStore is a testify mock of VideoStore
type mockVideoStore struct {
	mock.Mock
}

func (m *mockVideoStore) List(ctx context.Context) ([]models.Video, error) {
	args := m.Called(ctx)
	videos, _ := args.Get(0).([]models.Video)
	return videos, args.Error(1)
}

func (m *mockVideoStore) Get(ctx context.Context, id uint) (*models.Video, error) {
	args := m.Called(ctx, id)
	video, _ := args.Get(0).(*models.Video)
	return video, args.Error(1)
}

func (m *mockVideoStore) Create(ctx context.Context, fields models.VideoFields) (*models.Video, error) {
	args := m.Called(ctx, fields)
	video, _ := args.Get(0).(*models.Video)
	return video, args.Error(1)
}

func (m *mockVideoStore) Update(ctx context.Context, id uint, fields models.VideoFields) (*models.Video, error) {
	args := m.Called(ctx, id, fields)
	video, _ := args.Get(0).(*models.Video)
	return video, args.Error(1)
}

func (m *mockVideoStore) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// memoryVideoStore is a map-backed VideoStore for round-trip tests
type memoryVideoStore struct {
	mu     sync.Mutex
	nextID uint
	videos map[uint]models.Video
}

func newMemoryVideoStore() *memoryVideoStore {
	return &memoryVideoStore{videos: map[uint]models.Video{}}
}

func (s *memoryVideoStore) List(_ context.Context) ([]models.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Video, 0, len(s.videos))
	for _, v := range s.videos {
		out = append(out, v)
	}
	return out, nil
}

func (s *memoryVideoStore) Get(_ context.Context, id uint) (*models.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.videos[id]
	if !ok {
		return nil, apperrors.New(apperrors.CodeNotFound, "video not found")
	}
	return &v, nil
}

func (s *memoryVideoStore) Create(_ context.Context, fields models.VideoFields) (*models.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	v := models.Video{ID: s.nextID}
	v.Apply(fields)
	s.videos[v.ID] = v
	return &v, nil
}

func (s *memoryVideoStore) Update(_ context.Context, id uint, fields models.VideoFields) (*models.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.videos[id]
	if !ok {
		return nil, apperrors.New(apperrors.CodeNotFound, "video not found")
	}
	v.Apply(fields)
	s.videos[id] = v
	return &v, nil
}

func (s *memoryVideoStore) Delete(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.videos[id]; !ok {
		return apperrors.New(apperrors.CodeNotFound, "video not found")
	}
	delete(s.videos, id)
	return nil
}
