package registry

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"myflix/internal/models"
	"myflix/internal/utils"
)

// API is the subset of the video API the registry drives.
type API interface {
	List(ctx context.Context) ([]models.Video, error)
	Create(ctx context.Context, fields models.VideoFields) (*models.Video, error)
	Update(ctx context.Context, id uint, fields models.VideoFields) (*models.Video, error)
	Delete(ctx context.Context, id uint) error
}

// Notice is a user-facing message.
type Notice struct {
	Title       string
	Description string
}

// Notifier receives a notice for every create, update and delete outcome.
type Notifier interface {
	Notify(Notice)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notice)

func (f NotifierFunc) Notify(n Notice) { f(n) }

var (
	noticeCreated      = Notice{Title: "Vídeo Salvo", Description: "O vídeo foi salvo com sucesso."}
	noticeCreateFailed = Notice{Title: "Erro", Description: "Houve um problema ao salvar o vídeo."}
	noticeUpdated      = Notice{Title: "Video Updated", Description: "The video has been successfully updated."}
	noticeUpdateFailed = Notice{Title: "Error", Description: "There was a problem updating the video."}
	noticeDeleted      = Notice{Title: "Video Deleted", Description: "The video has been successfully deleted."}
	noticeDeleteFailed = Notice{Title: "Error", Description: "There was a problem deleting the video."}
)

// ErrNotEditing is returned by SubmitEdit when no edit is in progress.
var ErrNotEditing = errors.New("no video is being edited")

// Mode is the state of the video dialog.
type Mode int

const (
	ModeClosed Mode = iota
	ModeViewing
	ModeEditing
)

func (m Mode) String() string {
	switch m {
	case ModeViewing:
		return "viewing"
	case ModeEditing:
		return "editing"
	default:
		return "closed"
	}
}

// View is the current dialog state. Video is the zero value when Mode is ModeClosed.
type View struct {
	Mode  Mode
	Video models.Video
}

// Registry is the client-side copy of the catalog.
type Registry struct {
	api      API
	notifier Notifier
	logger   *slog.Logger

	mu      sync.Mutex
	videos  []models.Video
	loading bool
	view    View
}

// New creates a registry that has not loaded anything yet.
func New(api API, notifier Notifier, logger *slog.Logger) *Registry {
	if notifier == nil {
		notifier = NotifierFunc(func(Notice) {})
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		api:      api,
		notifier: notifier,
		logger:   logger,
		videos:   []models.Video{},
		loading:  true,
	}
}

// Load fetches the catalog. On failure the sequence is left empty and the
// error is only logged; it is returned for callers that want it.
func (r *Registry) Load(ctx context.Context) error {
	r.mu.Lock()
	r.loading = true
	r.mu.Unlock()

	videos, err := r.api.List(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.loading = false
	if err != nil {
		r.logger.Error("failed to load videos", slog.Any("error", err))
		r.videos = []models.Video{}
		return err
	}
	if videos == nil {
		videos = []models.Video{}
	}
	r.videos = videos
	return nil
}

// Videos returns a copy of the current sequence.
func (r *Registry) Videos() []models.Video {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.videos)
}

// Loading reports whether a list request is pending or has not been issued.
func (r *Registry) Loading() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loading
}

// View returns the current dialog state.
func (r *Registry) View() View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.view
}

// Create validates and submits a new-video draft. On success the draft is
// reset; on failure it is left untouched for retry. The sequence is not
// updated, a later Load picks the new entry up.
func (r *Registry) Create(ctx context.Context, draft *models.VideoFields) error {
	if err := draft.Validate(); err != nil {
		return err
	}

	if _, err := r.api.Create(ctx, *draft); err != nil {
		r.logger.Error("failed to create video", slog.Any("error", err))
		r.notifier.Notify(noticeCreateFailed)
		return err
	}

	*draft = models.VideoFields{}
	r.notifier.Notify(noticeCreated)
	return nil
}

// OpenView shows the playback dialog for v.
func (r *Registry) OpenView(v models.Video) {
	r.transition(View{Mode: ModeViewing, Video: v})
}

// OpenEdit shows the edit dialog for v.
func (r *Registry) OpenEdit(v models.Video) {
	r.transition(View{Mode: ModeEditing, Video: v})
}

// Close dismisses whichever dialog is open.
func (r *Registry) Close() {
	r.transition(View{})
}

func (r *Registry) transition(v View) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.view = v
}

// SubmitEdit sends the edited fields for the video being edited. The image
// is backfilled from the YouTube thumbnail when left blank. On success the
// entry is replaced in place and the dialog closes; on failure the dialog
// stays in editing mode holding the submitted content.
func (r *Registry) SubmitEdit(ctx context.Context, edited models.VideoFields) (*models.Video, error) {
	r.mu.Lock()
	view := r.view
	r.mu.Unlock()

	if view.Mode != ModeEditing {
		return nil, ErrNotEditing
	}

	id := view.Video.ID
	fields := PrepareEdit(edited)

	updated, err := r.api.Update(ctx, id, fields)

	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		r.logger.Error("failed to update video", slog.Uint64("id", uint64(id)), slog.Any("error", err))
		submitted := models.Video{ID: id}
		submitted.Apply(fields)
		r.view = View{Mode: ModeEditing, Video: submitted}
		r.notifier.Notify(noticeUpdateFailed)
		return nil, err
	}

	for i := range r.videos {
		if r.videos[i].ID == updated.ID {
			r.videos[i] = *updated
		}
	}
	r.view = View{}
	r.notifier.Notify(noticeUpdated)
	return updated, nil
}

// Delete removes a video. The sequence is only changed on success.
func (r *Registry) Delete(ctx context.Context, id uint) error {
	if err := r.api.Delete(ctx, id); err != nil {
		r.logger.Error("failed to delete video", slog.Uint64("id", uint64(id)), slog.Any("error", err))
		r.notifier.Notify(noticeDeleteFailed)
		return err
	}

	r.mu.Lock()
	r.videos = slices.DeleteFunc(r.videos, func(v models.Video) bool { return v.ID == id })
	r.mu.Unlock()

	r.notifier.Notify(noticeDeleted)
	return nil
}

// PrepareEdit returns f with a blank image replaced by the thumbnail of its
// YouTube video URL. Other links are returned unchanged.
func PrepareEdit(f models.VideoFields) models.VideoFields {
	if f.Image != "" {
		return f
	}
	if thumb, ok := utils.ThumbnailFor(f.VideoURL); ok {
		f.Image = thumb
	}
	return f
}
