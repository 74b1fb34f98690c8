package pixhaven

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind Kind
		wantMsg  string
	}{
		{
			name:     "deadline exceeded",
			err:      context.DeadlineExceeded,
			wantKind: KindTimeout,
			wantMsg:  "Request timed out. Please try again.",
		},
		{
			name:     "wrapped deadline exceeded",
			err:      &url.Error{Op: "Get", URL: "http://x", Err: context.DeadlineExceeded},
			wantKind: KindTimeout,
			wantMsg:  "Request timed out. Please try again.",
		},
		{
			name:     "connection refused",
			err:      &url.Error{Op: "Get", URL: "http://x", Err: &net.OpError{Op: "dial", Err: errors.New("connection refused")}},
			wantKind: KindNetwork,
			wantMsg:  "Network error. Please check your connection and try again.",
		},
		{
			name:     "dns failure",
			err:      &url.Error{Op: "Get", URL: "http://x", Err: &net.DNSError{Err: "no such host", Name: "x"}},
			wantKind: KindNetwork,
			wantMsg:  "Network error. Please check your connection and try again.",
		},
		{
			name:     "anything else passes through",
			err:      fmt.Errorf("tls handshake borked"),
			wantKind: KindTransport,
			wantMsg:  "tls handshake borked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := classify(tt.err)
			assert.Equal(t, tt.wantKind, apiErr.Kind)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
			assert.ErrorIs(t, apiErr, tt.err)
		})
	}
}

func TestHTTPStatusError(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantMsg    string
	}{
		{
			name:       "decodable message",
			statusCode: 400,
			body:       `{"message": "Title is required"}`,
			wantMsg:    "Title is required",
		},
		{
			name:       "non-json body",
			statusCode: 502,
			body:       "<html>bad gateway</html>",
			wantMsg:    "HTTP error! Status: 502 - Bad Gateway",
		},
		{
			name:       "json without message field",
			statusCode: 404,
			body:       `{"error": "nope"}`,
			wantMsg:    "HTTP error! Status: 404 - Not Found",
		},
		{
			name:       "empty body",
			statusCode: 503,
			body:       "",
			wantMsg:    "HTTP error! Status: 503 - Service Unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := httpStatusError(tt.statusCode, []byte(tt.body))
			assert.Equal(t, KindHTTPStatus, apiErr.Kind)
			assert.Equal(t, tt.statusCode, apiErr.StatusCode)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
			assert.Equal(t, tt.wantMsg, apiErr.Error())
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "timeout", KindTimeout.String())
	assert.Equal(t, "network", KindNetwork.String())
	assert.Equal(t, "http_status", KindHTTPStatus.String())
	assert.Equal(t, "decode", KindDecode.String())
	assert.Equal(t, "transport", KindTransport.String())
}
