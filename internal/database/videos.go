package database

import (
	"context"
	"errors"

	apperrors "myflix/internal/errors"
	"myflix/internal/models"

	"gorm.io/gorm"
)

// VideoStore persists videos through gorm.
type VideoStore struct {
	db *gorm.DB
}

// NewVideoStore creates a VideoStore on an open connection.
func NewVideoStore(db *gorm.DB) *VideoStore {
	return &VideoStore{db: db}
}

// List returns every video. Order is not part of the contract.
func (s *VideoStore) List(ctx context.Context) ([]models.Video, error) {
	videos := []models.Video{}
	if err := s.db.WithContext(ctx).Find(&videos).Error; err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to list videos")
	}
	return videos, nil
}

// Get retrieves a video by its ID.
func (s *VideoStore) Get(ctx context.Context, id uint) (*models.Video, error) {
	var video models.Video
	if err := s.db.WithContext(ctx).First(&video, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Wrap(err, apperrors.CodeNotFound, "video not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to get video")
	}
	return &video, nil
}

// Create inserts a new video; the ID is assigned by the database.
func (s *VideoStore) Create(ctx context.Context, fields models.VideoFields) (*models.Video, error) {
	var video models.Video
	video.Apply(fields)
	if err := s.db.WithContext(ctx).Create(&video).Error; err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to create video")
	}
	return &video, nil
}

// editableColumns are written on every update, zero values included.
var editableColumns = []string{"title", "category", "image", "video_url", "description"}

// Update replaces every editable field of the video with the given ID.
// It is a single UPDATE statement; a missing row is reported as not found.
func (s *VideoStore) Update(ctx context.Context, id uint, fields models.VideoFields) (*models.Video, error) {
	if id == 0 {
		// gorm refuses an update without a primary key condition
		return nil, apperrors.New(apperrors.CodeNotFound, "video not found")
	}

	video := models.Video{ID: id}
	video.Apply(fields)

	result := s.db.WithContext(ctx).
		Model(&models.Video{ID: id}).
		Select(editableColumns).
		Updates(&video)
	if result.Error != nil {
		return nil, apperrors.Wrap(result.Error, apperrors.CodeInternal, "failed to update video")
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.New(apperrors.CodeNotFound, "video not found")
	}
	return &video, nil
}

// Delete removes the video with the given ID.
func (s *VideoStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Video{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, apperrors.CodeInternal, "failed to delete video")
	}
	if result.RowsAffected == 0 {
		return apperrors.New(apperrors.CodeNotFound, "video not found")
	}
	return nil
}
