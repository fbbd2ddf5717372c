// Package utilstest loads the shared YouTube resolver fixtures.
package utilstest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// YouTubeCase is one resolver fixture. An empty ID means no match.
type YouTubeCase struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
	ID   string `yaml:"id"`
}

// IsYouTube reports whether the fixture URL is expected to resolve.
func (c YouTubeCase) IsYouTube() bool {
	return c.ID != ""
}

// YouTubeCases reads testdata/youtube_urls.yaml from the module root.
func YouTubeCases(t *testing.T) []YouTubeCase {
	t.Helper()

	_, currentFile, _, _ := runtime.Caller(0)
	path := filepath.Join(filepath.Dir(currentFile), "..", "..", "..", "testdata", "youtube_urls.yaml")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var cases []YouTubeCase
	require.NoError(t, yaml.Unmarshal(data, &cases))
	require.NotEmpty(t, cases)

	return cases
}
