package connect

import (
	"context"

	"go.uber.org/zap"

	"goflare.io/storefront/apiclient"
	"goflare.io/storefront/models"
)

// Service mediates Stripe Connect onboarding for creators: fetching the
// OAuth URL, polling onboarding status, and opening the express dashboard.
type Service interface {
	OAuthURL(ctx context.Context) (string, error)
	Status(ctx context.Context) (*models.ConnectStatus, error)
	DashboardURL(ctx context.Context) (string, error)
}

type service struct {
	client *apiclient.Client
	logger *zap.Logger
}

func NewService(client *apiclient.Client, logger *zap.Logger) Service {
	return &service{
		client: client,
		logger: logger,
	}
}

func (s *service) OAuthURL(ctx context.Context) (string, error) {
	var resp struct {
		URL string `json:"url"`
	}
	if err := s.client.Get(ctx, "/stripe/connect/oauth", &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}

func (s *service) Status(ctx context.Context) (*models.ConnectStatus, error) {
	var status models.ConnectStatus
	if err := s.client.Get(ctx, "/stripe/connect/status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (s *service) DashboardURL(ctx context.Context) (string, error) {
	var resp struct {
		URL string `json:"url"`
	}
	if err := s.client.Post(ctx, "/stripe/connect/dashboard", nil, &resp); err != nil {
		s.logger.Warn("failed to get connect dashboard link", zap.Error(err))
		return "", err
	}
	return resp.URL, nil
}
