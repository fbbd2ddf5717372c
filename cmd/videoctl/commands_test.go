package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "myflix/internal/errors"
	"myflix/internal/models"
)

// fakeAPI is an in-memory server
type fakeAPI struct {
	videos []models.Video
	nextID uint
	fail   bool
	calls  []string
}

func newFakeAPI(videos ...models.Video) *fakeAPI {
	api := &fakeAPI{videos: videos}
	for _, v := range videos {
		if v.ID > api.nextID {
			api.nextID = v.ID
		}
	}
	return api
}

var errUnavailable = apperrors.New(apperrors.CodeExternal, "server returned 500: Internal server error")

func (f *fakeAPI) List(_ context.Context) ([]models.Video, error) {
	f.calls = append(f.calls, "List")
	if f.fail {
		return nil, errUnavailable
	}
	return append([]models.Video{}, f.videos...), nil
}

func (f *fakeAPI) Get(_ context.Context, id uint) (*models.Video, error) {
	f.calls = append(f.calls, "Get")
	if f.fail {
		return nil, errUnavailable
	}
	for _, v := range f.videos {
		if v.ID == id {
			return &v, nil
		}
	}
	return nil, apperrors.New(apperrors.CodeNotFound, "server returned 404: Video not found")
}

func (f *fakeAPI) Create(_ context.Context, fields models.VideoFields) (*models.Video, error) {
	f.calls = append(f.calls, "Create")
	if f.fail {
		return nil, errUnavailable
	}
	f.nextID++
	v := models.Video{ID: f.nextID}
	v.Apply(fields)
	f.videos = append(f.videos, v)
	return &v, nil
}

func (f *fakeAPI) Update(_ context.Context, id uint, fields models.VideoFields) (*models.Video, error) {
	f.calls = append(f.calls, "Update")
	if f.fail {
		return nil, errUnavailable
	}
	for i := range f.videos {
		if f.videos[i].ID == id {
			f.videos[i].Apply(fields)
			v := f.videos[i]
			return &v, nil
		}
	}
	return nil, apperrors.New(apperrors.CodeNotFound, "server returned 404: Video not found")
}

func (f *fakeAPI) Delete(_ context.Context, id uint) error {
	f.calls = append(f.calls, "Delete")
	if f.fail {
		return errUnavailable
	}
	for i := range f.videos {
		if f.videos[i].ID == id {
			f.videos = append(f.videos[:i], f.videos[i+1:]...)
			return nil
		}
	}
	return apperrors.New(apperrors.CodeNotFound, "server returned 404: Video not found")
}

func execute(t *testing.T, api API, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand(func(string) (API, error) { return api, nil })

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

var (
	music1 = models.Video{ID: 1, Title: "Clipe", Category: models.CategoryMusic, VideoURL: "https://www.youtube.com/watch?v=abc123", Description: "d1"}
	music2 = models.Video{ID: 2, Title: "Show", Category: models.CategoryMusic, Image: "https://img.example.com/show.png", VideoURL: "https://cdn.example.com/show.mp4", Description: "d2"}
	other3 = models.Video{ID: 3, Title: "Vlog", Category: models.CategoryOther, VideoURL: "https://cdn.example.com/vlog.mp4", Description: "d3"}
)

func TestListCommand(t *testing.T) {
	t.Run("grouped by category", func(t *testing.T) {
		stdout, stderr, err := execute(t, newFakeAPI(music1, music2, other3), "list")

		require.NoError(t, err)
		assert.Contains(t, stderr, "Carregando vídeos...")
		assert.Equal(t, "Música\n"+
			"  [1] Clipe\n"+
			"      image: https://img.youtube.com/vi/abc123/0.jpg\n"+
			"  [2] Show\n"+
			"      image: https://img.example.com/show.png\n"+
			"\n"+
			"Outros\n"+
			"  [3] Vlog\n"+
			"      image: https://placehold.co/600x400\n", stdout)
	})

	t.Run("empty catalog", func(t *testing.T) {
		stdout, _, err := execute(t, newFakeAPI(), "list")

		require.NoError(t, err)
		assert.Equal(t, "Ainda não temos vídeos.\n", stdout)
	})

	t.Run("load failure renders as empty and is only logged", func(t *testing.T) {
		api := newFakeAPI(music1)
		api.fail = true

		stdout, stderr, err := execute(t, api, "list")

		require.NoError(t, err)
		assert.Equal(t, "Ainda não temos vídeos.\n", stdout)
		assert.Contains(t, stderr, "failed to load videos")
	})
}

func TestShowCommand(t *testing.T) {
	t.Run("youtube video uses the embed player", func(t *testing.T) {
		stdout, _, err := execute(t, newFakeAPI(music1), "show", "1")

		require.NoError(t, err)
		assert.Equal(t, "Clipe\nPlayer (embed): https://www.youtube.com/embed/abc123\nd1\nCategoria: Música\n", stdout)
	})

	t.Run("other links play natively", func(t *testing.T) {
		stdout, _, err := execute(t, newFakeAPI(other3), "show", "3")

		require.NoError(t, err)
		assert.Contains(t, stdout, "Player (native): https://cdn.example.com/vlog.mp4")
	})

	t.Run("invalid id never reaches the API", func(t *testing.T) {
		api := newFakeAPI(music1)

		_, _, err := execute(t, api, "show", "abc")

		require.Error(t, err)
		assert.Contains(t, err.Error(), `invalid video ID "abc"`)
		assert.Empty(t, api.calls)
	})

	t.Run("missing video", func(t *testing.T) {
		_, _, err := execute(t, newFakeAPI(), "show", "9")

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.CodeNotFound))
	})
}

func TestAddCommand(t *testing.T) {
	args := []string{"add",
		"--title", "Aula de Go",
		"--category", "Educação",
		"--url", "https://youtu.be/go1",
		"--description", "Goroutines",
	}

	t.Run("saves and notifies", func(t *testing.T) {
		api := newFakeAPI()

		_, stderr, err := execute(t, api, args...)

		require.NoError(t, err)
		assert.Contains(t, stderr, "Vídeo Salvo: O vídeo foi salvo com sucesso.")
		require.Len(t, api.videos, 1)
		assert.Equal(t, models.VideoFields{
			Title:       "Aula de Go",
			Category:    models.CategoryEducation,
			VideoURL:    "https://youtu.be/go1",
			Description: "Goroutines",
		}, api.videos[0].Fields())
	})

	t.Run("server failure notifies", func(t *testing.T) {
		api := newFakeAPI()
		api.fail = true

		_, stderr, err := execute(t, api, args...)

		require.Error(t, err)
		assert.Contains(t, stderr, "Erro: Houve um problema ao salvar o vídeo.")
	})

	t.Run("invalid form is rejected locally", func(t *testing.T) {
		api := newFakeAPI()

		_, _, err := execute(t, api, "add", "--title", "x", "--category", "Games")

		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrCategoryInvalid)
		assert.ErrorIs(t, err, models.ErrVideoURLRequired)
		assert.Empty(t, api.calls)
	})
}

func TestEditCommand(t *testing.T) {
	t.Run("unchanged fields are re-sent and the image is backfilled", func(t *testing.T) {
		api := newFakeAPI(music1, other3)

		stdout, stderr, err := execute(t, api, "edit", "1", "--title", "Clipe novo")

		require.NoError(t, err)
		assert.Contains(t, stderr, "Video Updated: The video has been successfully updated.")
		assert.Contains(t, stdout, "Clipe novo")

		want := music1
		want.Title = "Clipe novo"
		want.Image = "https://img.youtube.com/vi/abc123/0.jpg"
		assert.Equal(t, []models.Video{want, other3}, api.videos)
	})

	t.Run("explicit blank image on a non-youtube link", func(t *testing.T) {
		api := newFakeAPI(music2)

		_, _, err := execute(t, api, "edit", "2", "--image", "")

		require.NoError(t, err)
		assert.Empty(t, api.videos[0].Image)
	})

	t.Run("unknown id", func(t *testing.T) {
		api := newFakeAPI(music1)

		_, _, err := execute(t, api, "edit", "7", "--title", "x")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "video 7 not found")
		assert.NotContains(t, api.calls, "Update")
	})
}

func TestDeleteCommand(t *testing.T) {
	t.Run("deletes and notifies", func(t *testing.T) {
		api := newFakeAPI(music1, music2)

		_, stderr, err := execute(t, api, "delete", "1")

		require.NoError(t, err)
		assert.Contains(t, stderr, "Video Deleted: The video has been successfully deleted.")
		assert.Equal(t, []models.Video{music2}, api.videos)
	})

	t.Run("failure notifies", func(t *testing.T) {
		api := newFakeAPI(music1)

		_, stderr, err := execute(t, api, "delete", "5")

		require.Error(t, err)
		assert.Contains(t, stderr, "Error: There was a problem deleting the video.")
		assert.Len(t, api.videos, 1)
	})
}

func TestConfigCommands(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("VIDEOCTL_SERVER_URL", "")

	stdout, _, err := execute(t, newFakeAPI(), "config", "init", "http://media.local:9000")
	require.NoError(t, err)
	configPath := filepath.Join(home, ".videoctl", "config.yaml")
	assert.Contains(t, stdout, configPath)
	assert.FileExists(t, configPath)

	_, _, err = execute(t, newFakeAPI(), "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	stdout, _, err = execute(t, newFakeAPI(), "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "SERVER_URL: http://media.local:9000")
	assert.Contains(t, stdout, "TIMEOUT: 15s")
}

func TestHTTPAPI(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("VIDEOCTL_SERVER_URL", "")

	api, err := httpAPI("")
	require.NoError(t, err)
	assert.NotNil(t, api)

	_, err = httpAPI("ftp://media.local")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported scheme")
}

func TestHTTPAPI_BrokenConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".videoctl"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".videoctl", "config.yaml"), []byte("server_url: [\n"), 0o644))

	_, err := httpAPI("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}
