// internal/app/gateway/groups.go
package gateway

import (
	"context"

	"github.com/dalemusser/internhub/internal/domain/models"
)

// CreateGroup submits a new group. The caller is responsible for the form
// invariants (distinct members, mentor chosen, UserIDs composite list);
// the service enforces groupId uniqueness and answers duplicates with a
// message this error carries back.
func (c *Client) CreateGroup(ctx context.Context, token string, group models.Group) error {
	return c.post(ctx, "/addGroup", token, group, nil)
}

// ListGroups returns every group for the coordinator management table.
func (c *Client) ListGroups(ctx context.Context, token string) ([]models.Group, error) {
	var groups []models.Group
	if err := c.get(ctx, "/getGroups", token, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// UpdateGroup submits a full replacement of an existing group record:
// membership, mentor, and metadata all travel together.
func (c *Client) UpdateGroup(ctx context.Context, token string, group models.Group) error {
	return c.put(ctx, "/updateGroup", token, group, nil)
}

// DeleteGroup removes a group by its record ID.
func (c *Client) DeleteGroup(ctx context.Context, token, id string) error {
	return c.delete(ctx, "/deleteGroup/"+pathEscape(id), token)
}

// MentorGroups returns the groups assigned to the calling mentor, with
// members expanded for the task and progress screens.
func (c *Client) MentorGroups(ctx context.Context, token string) ([]models.MentorGroup, error) {
	var groups []models.MentorGroup
	if err := c.get(ctx, "/getMentorGroups", token, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// MentorGroupDetails returns the mentor's groups with full member detail
// for the group-detail screen.
func (c *Client) MentorGroupDetails(ctx context.Context, token string) ([]models.MentorGroup, error) {
	var groups []models.MentorGroup
	if err := c.get(ctx, "/getMentorGroupDetails", token, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}
