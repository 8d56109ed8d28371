package coupon

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"goflare.io/storefront/apiclient"
	"goflare.io/storefront/catalog"
	"goflare.io/storefront/models"
	"goflare.io/storefront/models/enum"
)

var (
	ErrCodeRequired   = errors.New("coupon code is required")
	ErrInvalidAmount  = errors.New("discount amount must be greater than 0")
	ErrPercentTooHigh = errors.New("percentage discount cannot exceed 100%")
)

type Service interface {
	Create(ctx context.Context, coupon *models.Coupon) (*models.Coupon, error)
	List(ctx context.Context) ([]*models.Coupon, error)
	Validate(ctx context.Context, code, planID string) (*models.Coupon, error)
}

type service struct {
	client  *apiclient.Client
	catalog *catalog.Catalog
	logger  *zap.Logger
}

func NewService(client *apiclient.Client, cat *catalog.Catalog, logger *zap.Logger) Service {
	return &service{
		client:  client,
		catalog: cat,
		logger:  logger,
	}
}

// Create normalizes the code to upper case, validates locally and submits.
// The cached coupon list is invalidated on success.
func (s *service) Create(ctx context.Context, coupon *models.Coupon) (*models.Coupon, error) {
	coupon.Code = strings.ToUpper(strings.TrimSpace(coupon.Code))
	if coupon.Code == "" {
		return nil, ErrCodeRequired
	}
	if coupon.DiscountAmount <= 0 {
		return nil, ErrInvalidAmount
	}
	if coupon.DiscountType == enum.DiscountTypePercent && coupon.DiscountAmount > 100 {
		return nil, ErrPercentTooHigh
	}

	var created models.Coupon
	if err := s.client.Post(ctx, "/coupons", coupon, &created); err != nil {
		s.logger.Error("failed to create coupon", zap.Error(err), zap.String("code", coupon.Code))
		return nil, err
	}

	s.catalog.InvalidateCoupons(ctx)
	return &created, nil
}

func (s *service) List(ctx context.Context) ([]*models.Coupon, error) {
	if coupons, found := s.catalog.GetCoupons(ctx); found {
		return coupons, nil
	}

	var coupons []*models.Coupon
	if err := s.client.Get(ctx, "/coupons", &coupons); err != nil {
		return nil, err
	}

	s.catalog.SetCoupons(ctx, coupons)
	return coupons, nil
}

// Validate asks the platform whether a code applies to a plan. The server is
// authoritative on existence, active flag, expiry, usage caps and the plan's
// allow_coupons rule; its error message comes back verbatim.
func (s *service) Validate(ctx context.Context, code, planID string) (*models.Coupon, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, ErrCodeRequired
	}

	var resp struct {
		Coupon *models.Coupon `json:"coupon"`
	}
	payload := map[string]string{"code": code, "plan_id": planID}
	if err := s.client.Post(ctx, "/coupons/validate", payload, &resp); err != nil {
		return nil, err
	}
	return resp.Coupon, nil
}
