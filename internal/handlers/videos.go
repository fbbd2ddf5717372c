package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	apperrors "myflix/internal/errors"
	"myflix/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	collectionPath = "/videos"
	videoIDKey     = "videoID"
)

// Allowed verbs per resource, as advertised in the Allow header.
var (
	collectionMethods = []string{http.MethodGet, http.MethodPost}
	itemMethods       = []string{http.MethodGet, http.MethodPut, http.MethodDelete}
)

// VideoStore is the persistence the API needs.
type VideoStore interface {
	List(ctx context.Context) ([]models.Video, error)
	Get(ctx context.Context, id uint) (*models.Video, error)
	Create(ctx context.Context, fields models.VideoFields) (*models.Video, error)
	Update(ctx context.Context, id uint, fields models.VideoFields) (*models.Video, error)
	Delete(ctx context.Context, id uint) error
}

// VideoHandler serves the collection and item resources.
type VideoHandler struct {
	store  VideoStore
	logger *slog.Logger
}

func NewVideoHandler(store VideoStore, logger *slog.Logger) *VideoHandler {
	return &VideoHandler{store: store, logger: logger}
}

// --- Collection resource ---

func (h *VideoHandler) ListVideos(c *gin.Context) {
	videos, err := h.store.List(c.Request.Context())
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, videos)
}

func (h *VideoHandler) CreateVideo(c *gin.Context) {
	var req models.VideoFields
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	video, err := h.store.Create(c.Request.Context(), req)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, video)
}

// --- Item resource ---

// RequireVideoID parses the :id segment before any item handler runs.
func (h *VideoHandler) RequireVideoID(c *gin.Context) {
	id, err := parseVideoID(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid video ID"})
		return
	}
	c.Set(videoIDKey, id)
	c.Next()
}

func (h *VideoHandler) GetVideo(c *gin.Context) {
	video, err := h.store.Get(c.Request.Context(), c.MustGet(videoIDKey).(uint))
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, video)
}

func (h *VideoHandler) UpdateVideo(c *gin.Context) {
	var req models.VideoFields
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	video, err := h.store.Update(c.Request.Context(), c.MustGet(videoIDKey).(uint), req)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, video)
}

func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), c.MustGet(videoIDKey).(uint)); err != nil {
		h.storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// MethodNotAllowed answers verbs the matched resource does not support. On
// the item resource the id is still validated first.
func (h *VideoHandler) MethodNotAllowed(c *gin.Context) {
	allowed := collectionMethods
	if segment, isItem := itemSegment(c.Request.URL.Path); isItem {
		if _, err := parseVideoID(segment); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid video ID"})
			return
		}
		allowed = itemMethods
	}

	c.Header("Allow", strings.Join(allowed, ", "))
	c.AbortWithStatusJSON(http.StatusMethodNotAllowed, gin.H{"error": fmt.Sprintf("Method %s Not Allowed", c.Request.Method)})
}

// storeError maps a store failure to its HTTP outcome.
func (h *VideoHandler) storeError(c *gin.Context, err error) {
	switch apperrors.CodeOf(err) {
	case apperrors.CodeNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
	default:
		h.logger.Error("store operation failed",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("err", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// parseVideoID accepts non-negative decimal integers only.
func parseVideoID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 63)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// itemSegment reports whether path addresses a single video and returns
// the raw id segment.
func itemSegment(path string) (string, bool) {
	rest, ok := strings.CutPrefix(path, collectionPath+"/")
	if !ok {
		return "", false
	}
	rest = strings.TrimSuffix(rest, "/")
	if rest == "" || strings.Contains(rest, "/") {
		return "", false
	}
	return rest, true
}
