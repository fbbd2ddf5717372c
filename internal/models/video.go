package models

import (
	"errors"
	"strings"
)

// Video defines the structure for catalog entries.
type Video struct {
	ID          uint     `json:"id" gorm:"primaryKey"`
	Title       string   `json:"title" gorm:"not null"`
	Category    Category `json:"category" gorm:"type:text;not null;index"`
	Image       string   `json:"image" gorm:"not null"`
	VideoURL    string   `json:"videoUrl" gorm:"column:video_url;not null"`
	Description string   `json:"description" gorm:"not null"`
}

func (Video) TableName() string {
	return "videos"
}

// Fields returns the editable part of v.
func (v Video) Fields() VideoFields {
	return VideoFields{
		Title:       v.Title,
		Category:    v.Category,
		Image:       v.Image,
		VideoURL:    v.VideoURL,
		Description: v.Description,
	}
}

// Apply overwrites every editable field of v with f. ID is left unchanged.
func (v *Video) Apply(f VideoFields) {
	v.Title = f.Title
	v.Category = f.Category
	v.Image = f.Image
	v.VideoURL = f.VideoURL
	v.Description = f.Description
}

// VideoFields is the request body for create and update.
type VideoFields struct {
	Title       string   `json:"title"`
	Category    Category `json:"category"`
	Image       string   `json:"image"`
	VideoURL    string   `json:"videoUrl"`
	Description string   `json:"description"`
}

var (
	ErrTitleRequired       = errors.New("title is required")
	ErrCategoryInvalid     = errors.New("category must be one of " + strings.Join(categoryNames(), ", "))
	ErrVideoURLRequired    = errors.New("video URL is required")
	ErrDescriptionRequired = errors.New("description is required")
)

// Validate applies the new-video form rules. The API itself accepts any
// payload; these checks run on the client before a request is sent.
func (f VideoFields) Validate() error {
	var errs []error
	if strings.TrimSpace(f.Title) == "" {
		errs = append(errs, ErrTitleRequired)
	}
	if !f.Category.Valid() {
		errs = append(errs, ErrCategoryInvalid)
	}
	if strings.TrimSpace(f.VideoURL) == "" {
		errs = append(errs, ErrVideoURLRequired)
	}
	if strings.TrimSpace(f.Description) == "" {
		errs = append(errs, ErrDescriptionRequired)
	}
	return errors.Join(errs...)
}
