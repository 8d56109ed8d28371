package affiliate

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"goflare.io/storefront/apiclient"
	"goflare.io/storefront/models"
)

var (
	ErrInvalidRate  = errors.New("commission rate must be between 0 and 100")
	ErrCodeRequired = errors.New("link code is required")
)

type Service interface {
	CreateProgram(ctx context.Context, rate float64) (*models.AffiliateProgram, error)
	CreateLink(ctx context.Context, programID, code string) (*models.AffiliateLink, error)
	Stats(ctx context.Context) (*models.AffiliateStats, error)
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

func (s *service) CreateProgram(ctx context.Context, rate float64) (*models.AffiliateProgram, error) {
	if rate <= 0 || rate > 100 {
		return nil, ErrInvalidRate
	}

	var program models.AffiliateProgram
	payload := map[string]float64{"rate": rate}
	if err := s.client.Post(ctx, "/affiliate/programs", payload, &program); err != nil {
		s.logger.Error("failed to create affiliate program", zap.Error(err))
		return nil, err
	}
	return &program, nil
}

func (s *service) CreateLink(ctx context.Context, programID, code string) (*models.AffiliateLink, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrCodeRequired
	}

	var link models.AffiliateLink
	payload := map[string]string{"program_id": programID, "code": code}
	if err := s.client.Post(ctx, "/affiliate/links", payload, &link); err != nil {
		s.logger.Error("failed to create affiliate link", zap.Error(err), zap.String("code", code))
		return nil, err
	}
	return &link, nil
}

func (s *service) Stats(ctx context.Context) (*models.AffiliateStats, error) {
	var stats models.AffiliateStats
	if err := s.client.Get(ctx, "/affiliate/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// CommissionPreview estimates the earning on a sale at a program's rate.
func CommissionPreview(amount, rate float64) float64 {
	if amount <= 0 || rate <= 0 {
		return 0
	}
	return amount * rate / 100
}
