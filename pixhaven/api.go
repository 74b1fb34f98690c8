package pixhaven

import (
	"context"
)

// API defines the interface for PixHaven image operations.
type API interface {
	// GetAllImages retrieves the images matching the filter
	GetAllImages(ctx context.Context, filter ImageFilter) ([]Image, error)

	// GetImage retrieves a single image by ID
	GetImage(ctx context.Context, id string) (*Image, error)

	// ImageDataURL constructs the address of an image's binary payload
	ImageDataURL(id, accessToken string) string

	// UploadImages uploads one or more files in a single multipart request
	UploadImages(ctx context.Context, uploads []Upload, meta ImageUpdate) ([]Image, error)

	// UpdateImage updates an image's metadata
	UpdateImage(ctx context.Context, id string, update ImageUpdate) (*Image, error)

	// ReplaceImageFile replaces an image's binary payload
	ReplaceImageFile(ctx context.Context, id string, upload Upload) (*Image, error)

	// DeleteImage deletes an image
	DeleteImage(ctx context.Context, id string) (*Confirmation, error)

	// RegenerateAccessToken invalidates an image's access token and issues a new one
	RegenerateAccessToken(ctx context.Context, id string) (*AccessToken, error)

	// RevokeAccess invalidates an image's access token
	RevokeAccess(ctx context.Context, id string) (*Confirmation, error)

	// Login exchanges a username and password for a session token
	Login(ctx context.Context, username, password string) (*Session, error)
}

var _ API = (*Client)(nil)
