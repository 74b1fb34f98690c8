package pixhaven

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// multipartBody builds a multipart form payload. The returned content type
// carries the writer's boundary; callers must pass it through verbatim
// instead of the usual JSON content type.
func multipartBody(fieldName string, uploads []Upload, fields map[string]string) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		if value == "" {
			continue
		}
		if err := writer.WriteField(key, value); err != nil {
			return nil, "", fmt.Errorf("failed to write form field %s: %w", key, err)
		}
	}

	for _, upload := range uploads {
		part, err := writer.CreateFormFile(fieldName, upload.Filename)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create form file %s: %w", upload.Filename, err)
		}
		if _, err := io.Copy(part, upload.Reader); err != nil {
			return nil, "", fmt.Errorf("failed to read upload %s: %w", upload.Filename, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return &buf, writer.FormDataContentType(), nil
}
