package pixhaven

import (
	"io"
	"net/url"
	"time"
)

// Image represents a single image record in PixHaven.
type Image struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	ProjectID   string    `json:"project_id,omitempty"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	AccessToken string    `json:"access_token,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ImageFilter narrows which images GetAllImages returns. Empty fields are
// omitted from the query string entirely.
type ImageFilter struct {
	Category  string
	ProjectID string
	Title     string
}

// Equal compares two filters field by field.
func (f ImageFilter) Equal(other ImageFilter) bool {
	return f.Category == other.Category &&
		f.ProjectID == other.ProjectID &&
		f.Title == other.Title
}

// IsZero reports whether no filter fields are set.
func (f ImageFilter) IsZero() bool {
	return f == ImageFilter{}
}

// Values encodes the filter as URL query parameters.
func (f ImageFilter) Values() url.Values {
	params := url.Values{}
	if f.Category != "" {
		params.Set("category", f.Category)
	}
	if f.ProjectID != "" {
		params.Set("project_id", f.ProjectID)
	}
	if f.Title != "" {
		params.Set("title", f.Title)
	}
	return params
}

// ImageUpdate contains the mutable metadata fields of an image. Zero-valued
// fields are left out of the request body and remain unchanged server-side.
type ImageUpdate struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	ProjectID   string `json:"project_id,omitempty"`
}

// IsZero reports whether the update changes nothing.
func (u ImageUpdate) IsZero() bool {
	return u == ImageUpdate{}
}

// Upload describes one file in a multipart upload.
type Upload struct {
	Filename string
	Reader   io.Reader
}

// LoginCredentials is the POST /auth/login request body.
type LoginCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Session is the result of a successful login.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// AccessToken is the result of regenerating an image's access token.
type AccessToken struct {
	AccessToken string `json:"access_token"`
}

// Confirmation is the server's acknowledgement of a delete or revoke.
type Confirmation struct {
	Message string `json:"message"`
}
