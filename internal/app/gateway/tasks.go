// internal/app/gateway/tasks.go
package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/internhub/internal/domain/models"
)

// AssignTasks submits one batch of tasks for a group. Every task in the
// batch must start incomplete; the mentor screen guarantees that before
// calling here.
func (c *Client) AssignTasks(ctx context.Context, token, groupID string, memberIDs []string, tasks []models.Task) error {
	body := struct {
		GroupID      string        `json:"groupId"`
		GroupMembers []string      `json:"groupMembers"`
		Tasks        []models.Task `json:"tasks"`
	}{
		GroupID:      groupID,
		GroupMembers: memberIDs,
		Tasks:        tasks,
	}
	return c.post(ctx, "/assignTask", token, body, nil)
}

// MyTasks returns the calling intern's assigned batches.
func (c *Client) MyTasks(ctx context.Context, token string) ([]models.TaskBatch, error) {
	var batches []models.TaskBatch
	if err := c.get(ctx, "/getTask", token, &batches); err != nil {
		return nil, err
	}
	return batches, nil
}

// CompleteTasks marks tasks inside one batch as done. The intern screen
// sends exactly one task ID per call; the slice form matches the wire
// contract, which accepts several.
//
// The upstream route is misspelled ("complteTask"); the typo is part of
// the service's contract and is preserved here.
func (c *Client) CompleteTasks(ctx context.Context, token, batchID string, taskIDs []string) error {
	body := struct {
		TaskArrID string   `json:"taskArrid"`
		TaskIDs   []string `json:"tasksids"`
	}{
		TaskArrID: batchID,
		TaskIDs:   taskIDs,
	}
	return c.post(ctx, "/complteTask", token, body, nil)
}

// CheckProgress fetches the per-member completion snapshot for one group.
// The service answers either a snapshot object or a bare member array;
// both decode into the same ProgressSnapshot.
func (c *Client) CheckProgress(ctx context.Context, token, groupID string) (models.ProgressSnapshot, error) {
	body := map[string]string{"groupId": groupID}
	data, err := c.do(ctx, http.MethodPost, "/checkProgress", token, body)
	if err != nil {
		return models.ProgressSnapshot{}, err
	}

	var snap models.ProgressSnapshot
	if err := json.Unmarshal(data, &snap); err != nil || len(snap.Members) == 0 {
		var members []models.MemberProgress
		if jsonErr := json.Unmarshal(data, &members); jsonErr == nil {
			snap.Members = members
		} else if err != nil {
			return models.ProgressSnapshot{}, &Error{Kind: KindServer, Message: "unexpected response from the internship service", Err: err}
		}
	}
	if snap.GroupID == "" {
		snap.GroupID = groupID
	}
	return snap, nil
}
