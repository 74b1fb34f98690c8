package pixhaven

import (
	"context"
	"fmt"
	"net/http"
)

// Login exchanges a username and password for a session token. The returned
// token is not persisted here; storing it is the caller's responsibility.
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required")
	}

	body, err := jsonBody(LoginCredentials{Username: username, Password: password})
	if err != nil {
		return nil, err
	}

	var session Session
	if err := c.executeJSON(ctx, http.MethodPost, "/auth/login", nil, body, contentTypeJSON, &session); err != nil {
		return nil, err
	}

	c.logger.Info().Str("username", username).Msg("Logged in to PixHaven")
	return &session, nil
}
