package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// User identifies the authenticated account.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}

// Session is the result of a successful sign-in or sign-up.
type Session struct {
	Token string
	User  User
}

// SignUpOptions holds the fields for account creation.
type SignUpOptions struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// SignUp creates an account and returns its session token.
func (c *Client) SignUp(ctx context.Context, opts SignUpOptions) (*Session, error) {
	return c.authRequest(ctx, "/auth/signup", opts)
}

// SignIn authenticates with username and password.
func (c *Client) SignIn(ctx context.Context, username, password string) (*Session, error) {
	payload := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{Username: username, Password: password}
	return c.authRequest(ctx, "/auth/signin", payload)
}

// Verify checks the client's bearer token and returns the account it
// belongs to. Returns ErrUnauthorized for a missing or stale token.
func (c *Client) Verify(ctx context.Context) (*User, error) {
	var result struct {
		Success bool   `json:"success"`
		User    User   `json:"user"`
		Message string `json:"message"`
	}
	if err := c.doRaw(ctx, http.MethodPost, "/auth/verify", nil, &result); err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, fmt.Errorf("%w: %s", ErrUnauthorized, result.Message)
	}
	return &result.User, nil
}

// authRequest handles the sign-in/sign-up exchange, which uses a flat
// {success, token, user, message} shape rather than the data envelope.
func (c *Client) authRequest(ctx context.Context, path string, payload any) (*Session, error) {
	var result struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
		User    User   `json:"user"`
		Message string `json:"message"`
	}
	if err := c.doRaw(ctx, http.MethodPost, path, payload, &result); err != nil {
		return nil, err
	}
	if !result.Success || result.Token == "" {
		message := result.Message
		if message == "" {
			message = "authentication failed"
		}
		return nil, &ServerError{Status: http.StatusUnauthorized, Message: message}
	}
	return &Session{Token: result.Token, User: result.User}, nil
}

// doRaw issues a request and decodes the whole response body into dest,
// without envelope handling.
func (c *Client) doRaw(ctx context.Context, method, path string, payload any, dest any) error {
	var data []byte
	if payload != nil {
		var err error
		data, err = json.Marshal(payload)
		if err != nil {
			return err
		}
	}

	url := c.baseURL + "/api" + path
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &RequestError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s", ErrUnauthorized, readMessage(resp))
	}
	if resp.StatusCode >= 400 {
		return &ServerError{Status: resp.StatusCode, Message: readMessage(resp)}
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response from %s: %w", url, err)
	}
	return nil
}
