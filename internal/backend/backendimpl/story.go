package backendimpl

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/orgball2608/story-studio/internal/domain"
	"github.com/orgball2608/story-studio/pkg/errors"
)

// CreateStoryWithImage publishes a rendered story image. Uploads are not
// retried so a slow server never receives the same story twice.
func (c *HTTPClient) CreateStoryWithImage(ctx context.Context, content string, imagePath string) (domain.StoryUpload, error) {
	file, err := os.Open(imagePath)
	if err != nil {
		return domain.StoryUpload{}, errors.Wrap(err, "open story image")
	}
	defer file.Close()

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	if err := form.WriteField("content", content); err != nil {
		return domain.StoryUpload{}, errors.Wrap(err, "write content field")
	}
	part, err := form.CreateFormFile("file", filepath.Base(imagePath))
	if err != nil {
		return domain.StoryUpload{}, errors.Wrap(err, "create file field")
	}
	if _, err := io.Copy(part, file); err != nil {
		return domain.StoryUpload{}, errors.Wrap(err, "copy story image")
	}
	if err := form.Close(); err != nil {
		return domain.StoryUpload{}, errors.Wrap(err, "close multipart body")
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/stories/upload", &body)
	if err != nil {
		return domain.StoryUpload{}, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	var upload domain.StoryUpload
	if err := c.do(req, &upload); err != nil {
		c.logger.Error("Failed to upload story", "error", err)
		return domain.StoryUpload{}, err
	}

	c.logger.Info("Story uploaded", "story_id", upload.ID)
	return upload, nil
}

func (c *HTTPClient) GetHighlights(ctx context.Context) ([]domain.Highlight, error) {
	var highlights []domain.Highlight
	if err := c.getJSON(ctx, "get highlights", "/highlights", &highlights); err != nil {
		return nil, err
	}
	return highlights, nil
}
