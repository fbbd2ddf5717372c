package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "myflix/internal/errors"
	"myflix/internal/models"
)

const defaultTimeout = 15 * time.Second

// Client talks to the MyFlix video API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout of the underlying HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// New creates a client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List fetches every video.
func (c *Client) List(ctx context.Context) ([]models.Video, error) {
	var videos []models.Video
	if err := c.do(ctx, http.MethodGet, "/videos", nil, &videos); err != nil {
		return nil, err
	}
	if videos == nil {
		videos = []models.Video{}
	}
	return videos, nil
}

// Get fetches one video.
func (c *Client) Get(ctx context.Context, id uint) (*models.Video, error) {
	var video models.Video
	if err := c.do(ctx, http.MethodGet, videoPath(id), nil, &video); err != nil {
		return nil, err
	}
	return &video, nil
}

// Create stores a new video and returns it with its assigned id.
func (c *Client) Create(ctx context.Context, fields models.VideoFields) (*models.Video, error) {
	var video models.Video
	if err := c.do(ctx, http.MethodPost, "/videos", fields, &video); err != nil {
		return nil, err
	}
	return &video, nil
}

// Update replaces every editable field of the video.
func (c *Client) Update(ctx context.Context, id uint, fields models.VideoFields) (*models.Video, error) {
	var video models.Video
	if err := c.do(ctx, http.MethodPut, videoPath(id), fields, &video); err != nil {
		return nil, err
	}
	return &video, nil
}

// Delete removes a video.
func (c *Client) Delete(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, videoPath(id), nil, nil)
}

func videoPath(id uint) string {
	return fmt.Sprintf("/videos/%d", id)
}

type errorBody struct {
	Error string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return apperrors.Wrap(err, apperrors.CodeInternal, "failed to serialize request")
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternal, "failed to create request")
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeExternal, fmt.Sprintf("%s %s failed", method, path))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeExternal, "failed to read response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp.StatusCode, data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return apperrors.Wrap(err, apperrors.CodeExternal, "failed to decode response")
	}
	return nil
}

func statusError(status int, data []byte) error {
	message := http.StatusText(status)
	var eb errorBody
	if err := json.Unmarshal(data, &eb); err == nil && eb.Error != "" {
		message = eb.Error
	}

	code := apperrors.CodeExternal
	switch status {
	case http.StatusNotFound:
		code = apperrors.CodeNotFound
	case http.StatusBadRequest:
		code = apperrors.CodeInvalidArg
	}
	return apperrors.New(code, fmt.Sprintf("server returned %d: %s", status, message))
}
