// internal/app/gateway/users.go
package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/internhub/internal/domain/models"
)

// ListUsers returns every account the service knows about. The endpoint is
// public on the service side; the coordinator screens filter the result by
// role to build mentor and intern selection lists.
func (c *Client) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	// /getuser answers with a bare JSON array, not the usual envelope.
	raw, status, err := c.roundTrip(ctx, http.MethodGet, "/getuser", "", nil)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, classify(status, "")
	}

	var users []models.UserSummary
	if err := json.Unmarshal(raw, &users); err != nil {
		// Some deployments wrap the list in the standard envelope.
		var env envelope
		if json.Unmarshal(raw, &env) == nil && env.Success {
			if json.Unmarshal(env.Data, &users) == nil {
				return users, nil
			}
		}
		return nil, &Error{Kind: KindServer, Message: "unexpected response from the internship service", Err: err}
	}
	return users, nil
}

// ListRoleAssignments returns the role-assignment register. Like the
// user list, the endpoint answers with a bare array on most deployments
// and the standard envelope on some.
func (c *Client) ListRoleAssignments(ctx context.Context, token string) ([]models.RoleAssignment, error) {
	raw, status, err := c.roundTrip(ctx, http.MethodGet, "/addRoles", token, nil)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, classify(status, "")
	}

	var assignments []models.RoleAssignment
	if err := json.Unmarshal(raw, &assignments); err != nil {
		var env envelope
		if json.Unmarshal(raw, &env) == nil && env.Success {
			if json.Unmarshal(env.Data, &assignments) == nil {
				return assignments, nil
			}
		}
		return nil, &Error{Kind: KindServer, Message: "unexpected response from the internship service", Err: err}
	}
	return assignments, nil
}

// UpdateUserRole changes one account's role through the role-assignment
// endpoint.
func (c *Client) UpdateUserRole(ctx context.Context, token, email string, role models.Role) error {
	body := map[string]string{"email": email, "userRole": string(role)}
	return c.put(ctx, "/addRoles", token, body, nil)
}

// UpdateUser replaces an account's editable fields (name, email, role).
func (c *Client) UpdateUser(ctx context.Context, token string, user models.UserSummary) error {
	return c.put(ctx, "/manageUsers/"+pathEscape(user.ID), token, user, nil)
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, token, id string) error {
	return c.delete(ctx, "/deleteUser/"+pathEscape(id), token)
}

// DeleteRoleAssignment clears a role assignment, dropping the account back
// to the default "User" role.
func (c *Client) DeleteRoleAssignment(ctx context.Context, token, id string) error {
	return c.delete(ctx, "/addRoles/"+pathEscape(id), token)
}
