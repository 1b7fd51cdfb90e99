package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/BruksfildServices01/appointme-client/internal/models"
)

func imagePath(kind models.ImageKind) string {
	return "/upload/business/" + string(kind) + "-image"
}

// UploadBusinessImage sends data as the multipart "file" field.
func (c *Client) UploadBusinessImage(
	ctx context.Context,
	kind models.ImageKind,
	filename string,
	contentType string,
	data []byte,
) (*models.UploadResult, error) {

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	h.Set("Content-Type", contentType)

	part, err := mw.CreatePart(h)
	if err != nil {
		return nil, fmt.Errorf("apiclient: build multipart: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("apiclient: build multipart: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("apiclient: build multipart: %w", err)
	}

	path := imagePath(kind)
	var out models.UploadResult
	err = c.send(ctx, request{
		method:      http.MethodPost,
		route:       path,
		path:        path,
		raw:         &buf,
		contentType: mw.FormDataContentType(),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteBusinessImage(ctx context.Context, kind models.ImageKind) error {
	path := imagePath(kind)
	return c.delete(ctx, path, path)
}
