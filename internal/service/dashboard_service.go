package service

import (
	"context"
	"net/url"

	"followup_tracker/internal/api"
	"followup_tracker/internal/model"
	"followup_tracker/internal/normalize"
)

// DashboardService provides the read-only aggregate views. Every call
// accepts scope filters (zonalId/areaId/parishId) so the admin screens can
// narrow the numbers to their level.
type DashboardService interface {
	Stats(ctx context.Context, filters map[string]string) (*model.DashboardStats, error)
	Trends(ctx context.Context, filters map[string]string) ([]model.TrendPoint, error)
	PendingFollowUps(ctx context.Context, filters map[string]string) ([]model.PendingFollowUp, error)
}

type dashboardService struct {
	gw *api.Gateway
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(gw *api.Gateway) DashboardService {
	return &dashboardService{gw: gw}
}

func (s *dashboardService) Stats(ctx context.Context, filters map[string]string) (*model.DashboardStats, error) {
	var payload any
	if err := s.gw.Get(ctx, "/dashboard/stats", filterParams(filters), &payload); err != nil {
		return nil, err
	}

	// Stats may arrive bare or under "data"; a shape with neither yields
	// zero counts rather than an error.
	candidate := payload
	if root, ok := payload.(map[string]any); ok {
		if inner, ok := root["data"].(map[string]any); ok {
			candidate = inner
		}
	}
	var stats model.DashboardStats
	if err := normalize.Rebind(candidate, &stats); err != nil {
		return &model.DashboardStats{}, nil
	}
	return &stats, nil
}

func (s *dashboardService) Trends(ctx context.Context, filters map[string]string) ([]model.TrendPoint, error) {
	var payload any
	if err := s.gw.Get(ctx, "/dashboard/trends", filterParams(filters), &payload); err != nil {
		return nil, err
	}
	return normalize.ExtractListAs[model.TrendPoint](payload), nil
}

func (s *dashboardService) PendingFollowUps(ctx context.Context, filters map[string]string) ([]model.PendingFollowUp, error) {
	var payload any
	if err := s.gw.Get(ctx, "/dashboard/pending-followups", filterParams(filters), &payload); err != nil {
		return nil, err
	}

	pending := normalize.ExtractListAs[model.PendingFollowUp](payload)
	for i := range pending {
		if pending[i].ConvertID == "" {
			pending[i].ConvertID = pending[i].MongoID
		}
	}
	return pending, nil
}

func filterParams(filters map[string]string) url.Values {
	if len(filters) == 0 {
		return nil
	}
	params := url.Values{}
	for key, value := range filters {
		if value != "" {
			params.Set(key, value)
		}
	}
	return params
}
