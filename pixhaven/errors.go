package pixhaven

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Common errors returned by the PixHaven client.
var (
	// ErrInvalidConfig indicates invalid client configuration.
	ErrInvalidConfig = errors.New("invalid pixhaven configuration")
	// ErrNotFound indicates the requested image does not exist.
	ErrNotFound = errors.New("image not found")
)

// User-facing failure messages. The wording is part of the client's contract
// with its callers; don't reword without updating the UI layers.
const (
	timeoutMessage = "Request timed out. Please try again."
	networkMessage = "Network error. Please check your connection and try again."
)

// Kind classifies a request failure.
type Kind int

const (
	// KindTransport is the catch-all for transport failures that are neither
	// timeouts nor unreachable-network conditions.
	KindTransport Kind = iota
	// KindTimeout means the 30-second request timer fired before a response.
	KindTimeout
	// KindNetwork means the transport could not reach the network at all.
	KindNetwork
	// KindHTTPStatus means the server responded with a non-2xx status.
	KindHTTPStatus
	// KindDecode means a 2xx response body could not be decoded.
	KindDecode
)

// String returns a short name for the failure kind.
func (k Kind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindNetwork:
		return "network"
	case KindHTTPStatus:
		return "http_status"
	case KindDecode:
		return "decode"
	default:
		return "transport"
	}
}

// APIError is the classified failure of a single request cycle.
type APIError struct {
	Kind       Kind
	StatusCode int // set only for KindHTTPStatus
	Message    string
	Err        error
}

// Error implements the error interface. The message alone is what UI layers
// are expected to show, so no prefix is added here.
func (e *APIError) Error() string {
	return e.Message
}

// Unwrap returns the underlying transport error, if any.
func (e *APIError) Unwrap() error {
	return e.Err
}

// IsTimeout reports whether the failure was the request timer firing.
func (e *APIError) IsTimeout() bool {
	return e.Kind == KindTimeout
}

// IsNetwork reports whether the failure was an unreachable network.
func (e *APIError) IsNetwork() bool {
	return e.Kind == KindNetwork
}

// IsNotFound reports whether the server answered 404.
func (e *APIError) IsNotFound() bool {
	return e.Kind == KindHTTPStatus && e.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether the server rejected the credential.
func (e *APIError) IsUnauthorized() bool {
	return e.Kind == KindHTTPStatus && (e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden)
}

// classify translates a transport-level failure (no response received) into
// an APIError. Timeout wins over everything else; unreachable-network
// conditions are normalized to a single message regardless of the underlying
// wording; anything else passes through unchanged.
func classify(err error) *APIError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &APIError{Kind: KindTimeout, Message: timeoutMessage, Err: err}
	}

	var opErr *net.OpError
	var dnsErr *net.DNSError
	if errors.As(err, &opErr) || errors.As(err, &dnsErr) {
		return &APIError{Kind: KindNetwork, Message: networkMessage, Err: err}
	}

	return &APIError{Kind: KindTransport, Message: err.Error(), Err: err}
}

// httpStatusError builds the failure for a non-2xx response. The server's
// own {"message": ...} body is preferred; if the body doesn't decode, a
// message is synthesized from the status code.
func httpStatusError(statusCode int, body []byte) *APIError {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return &APIError{Kind: KindHTTPStatus, StatusCode: statusCode, Message: payload.Message}
	}

	message := fmt.Sprintf("HTTP error! Status: %d - %s", statusCode, http.StatusText(statusCode))
	return &APIError{Kind: KindHTTPStatus, StatusCode: statusCode, Message: message}
}

// decodeError builds the failure for a 2xx response whose body could not be
// decoded. This indicates a defect (client and server disagree on the shape).
func decodeError(err error) *APIError {
	return &APIError{Kind: KindDecode, Message: fmt.Sprintf("failed to decode response: %v", err), Err: err}
}
