package pixhaven

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllImagesQueryConstruction(t *testing.T) {
	tests := []struct {
		name      string
		filter    ImageFilter
		wantQuery string
	}{
		{
			name:      "no filters",
			filter:    ImageFilter{},
			wantQuery: "",
		},
		{
			name:      "category only",
			filter:    ImageFilter{Category: "x"},
			wantQuery: "category=x",
		},
		{
			name:      "all fields",
			filter:    ImageFilter{Category: "art", ProjectID: "p1", Title: "cat"},
			wantQuery: "category=art&project_id=p1&title=cat",
		},
		{
			name:      "values are escaped",
			filter:    ImageFilter{Title: "summer trip"},
			wantQuery: "title=summer+trip",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath, gotQuery string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotQuery = r.URL.RawQuery
				json.NewEncoder(w).Encode([]Image{})
			}))
			defer server.Close()

			client := newTestClient(t, server.URL, nil)
			_, err := client.GetAllImages(t.Context(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, "/images", gotPath)
			assert.Equal(t, tt.wantQuery, gotQuery)
		})
	}
}

func TestGetAllImagesPreservesOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]Image{{ID: "1"}, {ID: "2"}, {ID: "3"}})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)
	images, err := client.GetAllImages(t.Context(), ImageFilter{})
	require.NoError(t, err)
	require.Len(t, images, 3)
	assert.Equal(t, "1", images[0].ID)
	assert.Equal(t, "2", images[1].ID)
	assert.Equal(t, "3", images[2].ID)
}

func TestGetImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/images/img-42", r.URL.Path)
		json.NewEncoder(w).Encode(Image{ID: "img-42", Title: "Sunset"})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)
	image, err := client.GetImage(t.Context(), "img-42")
	require.NoError(t, err)
	assert.Equal(t, "img-42", image.ID)
	assert.Equal(t, "Sunset", image.Title)
}

func TestImageDataURL(t *testing.T) {
	client := newTestClient(t, "http://localhost:4000", nil)

	url := client.ImageDataURL("img-42", "tok en")
	assert.Equal(t, "http://localhost:4000/images/img-42/data?access_token=tok+en", url)
}

func TestUploadImages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/images", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data; boundary=")

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Holiday", r.FormValue("title"))
		assert.Equal(t, "travel", r.FormValue("category"))
		assert.Empty(t, r.FormValue("description")) // empty fields are omitted

		files := r.MultipartForm.File["images"]
		require.Len(t, files, 2)
		assert.Equal(t, "a.jpg", files[0].Filename)
		assert.Equal(t, "b.png", files[1].Filename)

		part, err := files[0].Open()
		require.NoError(t, err)
		defer part.Close()
		content, err := io.ReadAll(part)
		require.NoError(t, err)
		assert.Equal(t, "jpeg-bytes", string(content))

		json.NewEncoder(w).Encode([]Image{{ID: "1", Title: "Holiday"}, {ID: "2", Title: "Holiday"}})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)
	created, err := client.UploadImages(t.Context(), []Upload{
		{Filename: "a.jpg", Reader: strings.NewReader("jpeg-bytes")},
		{Filename: "b.png", Reader: strings.NewReader("png-bytes")},
	}, ImageUpdate{Title: "Holiday", Category: "travel"})
	require.NoError(t, err)
	assert.Len(t, created, 2)
}

func TestUploadImagesRequiresFiles(t *testing.T) {
	client := newTestClient(t, "http://localhost:4000", nil)
	_, err := client.UploadImages(t.Context(), nil, ImageUpdate{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one file is required")
}

func TestUpdateImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/images/img-1", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var update ImageUpdate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&update))
		assert.Equal(t, "New title", update.Title)

		json.NewEncoder(w).Encode(Image{ID: "img-1", Title: update.Title})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)
	updated, err := client.UpdateImage(t.Context(), "img-1", ImageUpdate{Title: "New title"})
	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
}

func TestReplaceImageFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/images/img-1/file", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		files := r.MultipartForm.File["file"]
		require.Len(t, files, 1)
		assert.Equal(t, "new.webp", files[0].Filename)

		json.NewEncoder(w).Encode(Image{ID: "img-1", Filename: "new.webp"})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)
	updated, err := client.ReplaceImageFile(t.Context(), "img-1", Upload{
		Filename: "new.webp",
		Reader:   strings.NewReader("webp-bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "new.webp", updated.Filename)
}

func TestDeleteImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/images/img-1", r.URL.Path)
		json.NewEncoder(w).Encode(Confirmation{Message: "Image deleted"})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)
	confirmation, err := client.DeleteImage(t.Context(), "img-1")
	require.NoError(t, err)
	assert.Equal(t, "Image deleted", confirmation.Message)
}

func TestRegenerateAccessToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/images/img-1/regenerate-token", r.URL.Path)
		json.NewEncoder(w).Encode(AccessToken{AccessToken: "fresh-token"})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)
	token, err := client.RegenerateAccessToken(t.Context(), "img-1")
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", token.AccessToken)
}

func TestRevokeAccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/images/img-1/revoke-access", r.URL.Path)
		json.NewEncoder(w).Encode(Confirmation{Message: "Access revoked"})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)
	confirmation, err := client.RevokeAccess(t.Context(), "img-1")
	require.NoError(t, err)
	assert.Equal(t, "Access revoked", confirmation.Message)
}

func TestLogin(t *testing.T) {
	t.Run("successful login", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/auth/login", r.URL.Path)

			var creds LoginCredentials
			require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
			assert.Equal(t, "alice", creds.Username)
			assert.Equal(t, "hunter2", creds.Password)

			json.NewEncoder(w).Encode(Session{Token: "session-token"})
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, nil)
		session, err := client.Login(t.Context(), "alice", "hunter2")
		require.NoError(t, err)
		assert.Equal(t, "session-token", session.Token)
	})

	t.Run("missing credentials", func(t *testing.T) {
		client := newTestClient(t, "http://localhost:4000", nil)
		_, err := client.Login(t.Context(), "", "")
		require.Error(t, err)
	})

	t.Run("rejected credentials surface server message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Invalid username or password"})
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, nil)
		_, err := client.Login(t.Context(), "alice", "wrong")
		require.EqualError(t, err, "Invalid username or password")
	})
}
