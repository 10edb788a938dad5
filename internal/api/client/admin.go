package client

import (
	"context"
	"fmt"

	domain "github.com/mpoirier/dealflow/pkg/types"
)

// TriggerSweep runs an expiry sweep and returns the number of deals released.
func (c *Client) TriggerSweep(ctx context.Context) (int, error) {
	var resp struct {
		Released int `json:"released"`
	}
	if err := c.post(ctx, "/api/v1/sweep", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Released, nil
}

// TriggerMatchRefresh recomputes matches for every buyer and returns the
// number of alerts recorded.
func (c *Client) TriggerMatchRefresh(ctx context.Context) (int, error) {
	var resp struct {
		Recorded int `json:"recorded"`
	}
	if err := c.post(ctx, "/api/v1/matches/refresh", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Recorded, nil
}

// ListPendingAlerts returns match alerts waiting for delivery.
func (c *Client) ListPendingAlerts(ctx context.Context) ([]domain.MatchAlert, error) {
	var alerts []domain.MatchAlert
	if err := c.get(ctx, "/api/v1/alerts/pending", &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

// ListJobs returns the most recent run for each distinct scheduled job.
func (c *Client) ListJobs(ctx context.Context) ([]domain.JobRun, error) {
	var runs []domain.JobRun
	if err := c.get(ctx, "/api/v1/jobs", &runs); err != nil {
		return nil, err
	}
	return runs, nil
}

// GetJobHistory returns the run history for a specific scheduled job.
func (c *Client) GetJobHistory(ctx context.Context, jobName string) ([]domain.JobRun, error) {
	var runs []domain.JobRun
	if err := c.get(ctx, fmt.Sprintf("/api/v1/jobs/%s", jobName), &runs); err != nil {
		return nil, err
	}
	return runs, nil
}

// GetSystemState returns aggregate pipeline and marketplace counts.
func (c *Client) GetSystemState(ctx context.Context) (*domain.SystemState, error) {
	var s domain.SystemState
	if err := c.get(ctx, "/api/v1/system/state", &s); err != nil {
		return nil, err
	}
	return &s, nil
}
