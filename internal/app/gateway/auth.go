// internal/app/gateway/auth.go
package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/internhub/internal/domain/models"
)

// LoginResult is the successful outcome of a credential check: the bearer
// token plus the identity the session will cache.
type LoginResult struct {
	Token string
	User  models.UserSummary
}

// loginEnvelope is the login response shape; unlike every other endpoint,
// token and user ride at the top level next to success.
type loginEnvelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Token   string              `json:"token"`
	User    *models.UserSummary `json:"user"`
}

// Login exchanges credentials for a token and identity. The service answers
// bad credentials with `success:false` rather than a 4xx; that surfaces as
// KindValidation with the service's message so the login form can show it
// inline.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	body := map[string]string{"email": email, "password": password}

	raw, status, err := c.roundTrip(ctx, http.MethodPost, "/login", "", body)
	if err != nil {
		return LoginResult{}, err
	}

	var env loginEnvelope
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &env)
	}

	if status < 200 || status > 299 {
		return LoginResult{}, classify(status, env.Message)
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "Login failed. Please check your credentials."
		}
		return LoginResult{}, &Error{Kind: KindValidation, Message: msg, Status: status}
	}
	if env.Token == "" || env.User == nil {
		return LoginResult{}, &Error{Kind: KindServer, Message: "login response was missing token or user", Status: status}
	}
	return LoginResult{Token: env.Token, User: *env.User}, nil
}

// Signup registers a new account. The service assigns the default "User"
// role; a coordinator promotes it later.
func (c *Client) Signup(ctx context.Context, fullName, email, password string) error {
	body := map[string]string{"fullName": fullName, "email": email, "password": password}
	return c.post(ctx, "/register", "", body, nil)
}
