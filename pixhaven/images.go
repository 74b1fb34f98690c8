package pixhaven

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// GetAllImages retrieves the images matching the filter, in server order.
func (c *Client) GetAllImages(ctx context.Context, filter ImageFilter) ([]Image, error) {
	var images []Image
	if err := c.executeJSON(ctx, http.MethodGet, "/images", filter.Values(), nil, "", &images); err != nil {
		return nil, err
	}

	c.logger.Debug().Int("count", len(images)).Msg("Retrieved images from PixHaven")
	return images, nil
}

// GetImage retrieves a single image by ID.
func (c *Client) GetImage(ctx context.Context, id string) (*Image, error) {
	var image Image
	endpoint := "/images/" + url.PathEscape(id)
	if err := c.executeJSON(ctx, http.MethodGet, endpoint, nil, nil, "", &image); err != nil {
		return nil, err
	}
	return &image, nil
}

// ImageDataURL constructs the address of an image's binary payload. The URL
// is built locally and never fetched by this client; it is meant to be handed
// to whatever renders the image.
func (c *Client) ImageDataURL(id, accessToken string) string {
	return fmt.Sprintf("%s/images/%s/data?access_token=%s",
		c.baseURL, url.PathEscape(id), url.QueryEscape(accessToken))
}

// UploadImages uploads one or more files in a single multipart request.
// The metadata fields apply to every uploaded file.
func (c *Client) UploadImages(ctx context.Context, uploads []Upload, meta ImageUpdate) ([]Image, error) {
	if len(uploads) == 0 {
		return nil, fmt.Errorf("at least one file is required")
	}

	body, contentType, err := multipartBody("images", uploads, map[string]string{
		"title":       meta.Title,
		"description": meta.Description,
		"category":    meta.Category,
		"project_id":  meta.ProjectID,
	})
	if err != nil {
		return nil, err
	}

	var created []Image
	if err := c.executeJSON(ctx, http.MethodPost, "/images", nil, body, contentType, &created); err != nil {
		return nil, err
	}

	c.logger.Info().Int("count", len(created)).Msg("Uploaded images")
	return created, nil
}

// UpdateImage updates an image's metadata.
func (c *Client) UpdateImage(ctx context.Context, id string, update ImageUpdate) (*Image, error) {
	body, err := jsonBody(update)
	if err != nil {
		return nil, err
	}

	var updated Image
	endpoint := "/images/" + url.PathEscape(id)
	if err := c.executeJSON(ctx, http.MethodPut, endpoint, nil, body, contentTypeJSON, &updated); err != nil {
		return nil, err
	}

	c.logger.Info().Str("image_id", id).Msg("Updated image metadata")
	return &updated, nil
}

// ReplaceImageFile replaces an image's binary payload, keeping its metadata.
func (c *Client) ReplaceImageFile(ctx context.Context, id string, upload Upload) (*Image, error) {
	body, contentType, err := multipartBody("file", []Upload{upload}, nil)
	if err != nil {
		return nil, err
	}

	var updated Image
	endpoint := "/images/" + url.PathEscape(id) + "/file"
	if err := c.executeJSON(ctx, http.MethodPut, endpoint, nil, body, contentType, &updated); err != nil {
		return nil, err
	}

	c.logger.Info().Str("image_id", id).Str("filename", upload.Filename).Msg("Replaced image file")
	return &updated, nil
}

// DeleteImage deletes an image.
func (c *Client) DeleteImage(ctx context.Context, id string) (*Confirmation, error) {
	var confirmation Confirmation
	endpoint := "/images/" + url.PathEscape(id)
	if err := c.executeJSON(ctx, http.MethodDelete, endpoint, nil, nil, "", &confirmation); err != nil {
		return nil, err
	}

	c.logger.Info().Str("image_id", id).Msg("Deleted image")
	return &confirmation, nil
}

// RegenerateAccessToken invalidates an image's access token and issues a new one.
func (c *Client) RegenerateAccessToken(ctx context.Context, id string) (*AccessToken, error) {
	var token AccessToken
	endpoint := "/images/" + url.PathEscape(id) + "/regenerate-token"
	if err := c.executeJSON(ctx, http.MethodPost, endpoint, nil, nil, "", &token); err != nil {
		return nil, err
	}

	c.logger.Info().Str("image_id", id).Msg("Regenerated access token")
	return &token, nil
}

// RevokeAccess invalidates an image's access token without issuing a new one.
func (c *Client) RevokeAccess(ctx context.Context, id string) (*Confirmation, error) {
	var confirmation Confirmation
	endpoint := "/images/" + url.PathEscape(id) + "/revoke-access"
	if err := c.executeJSON(ctx, http.MethodPost, endpoint, nil, nil, "", &confirmation); err != nil {
		return nil, err
	}

	c.logger.Info().Str("image_id", id).Msg("Revoked access token")
	return &confirmation, nil
}
