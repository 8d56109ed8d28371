package pricing

import (
	"context"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"goflare.io/storefront/apiclient"
	"goflare.io/storefront/catalog"
	"goflare.io/storefront/models"
)

type Service interface {
	Create(ctx context.Context, plan *models.PricingPlan) (*models.PricingPlan, error)
	GetByID(ctx context.Context, id string) (*models.PricingPlan, error)
	List(ctx context.Context, productID string) ([]*models.PricingPlan, error)
	Update(ctx context.Context, plan *models.PricingPlan) (*models.PricingPlan, error)
	Delete(ctx context.Context, id string) error
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

// Create validates the plan locally, submits it, and invalidates the cached
// plan lists so subsequent reads are fresh.
func (s *service) Create(ctx context.Context, plan *models.PricingPlan) (*models.PricingPlan, error) {
	if err := Validate(plan); err != nil {
		return nil, err
	}

	var created models.PricingPlan
	if err := s.client.Post(ctx, "/admin/plans", plan, &created); err != nil {
		s.logger.Error("failed to create plan", zap.Error(err), zap.String("name", plan.Name))
		return nil, err
	}

	s.catalog.InvalidatePlans(ctx, created.ID, created.ProductID)
	return &created, nil
}

// GetByID fetches one plan, preferring the cache. Fetched plans are
// re-validated because the platform is not a fully trusted collaborator.
func (s *service) GetByID(ctx context.Context, id string) (*models.PricingPlan, error) {
	if plan := s.catalog.GetPlan(ctx, id); plan != nil {
		return plan, nil
	}

	var plan models.PricingPlan
	if err := s.client.Get(ctx, "/pricing/plans/"+url.PathEscape(id), &plan); err != nil {
		return nil, err
	}
	if err := Validate(&plan); err != nil {
		return nil, fmt.Errorf("plan %s failed validation: %w", id, err)
	}

	s.catalog.SetPlan(ctx, &plan)
	return &plan, nil
}

// List returns the plans for a product ("" = all), dropping any entry that
// fails defensive validation.
func (s *service) List(ctx context.Context, productID string) ([]*models.PricingPlan, error) {
	if plans, found := s.catalog.GetPlans(ctx, productID); found {
		return plans, nil
	}

	path := "/pricing/plans"
	if productID != "" {
		path += "?productId=" + url.QueryEscape(productID)
	}

	var plans []*models.PricingPlan
	if err := s.client.Get(ctx, path, &plans); err != nil {
		return nil, err
	}

	valid := make([]*models.PricingPlan, 0, len(plans))
	for _, plan := range plans {
		if err := Validate(plan); err != nil {
			s.logger.Warn("dropping invalid plan from listing",
				zap.String("id", plan.ID),
				zap.Error(err))
			continue
		}
		valid = append(valid, plan)
	}

	s.catalog.SetPlans(ctx, productID, valid)
	return valid, nil
}

func (s *service) Update(ctx context.Context, plan *models.PricingPlan) (*models.PricingPlan, error) {
	if plan.ID == "" {
		return nil, fmt.Errorf("plan id is required for update")
	}
	if err := Validate(plan); err != nil {
		return nil, err
	}

	var updated models.PricingPlan
	if err := s.client.Put(ctx, "/admin/plans/"+url.PathEscape(plan.ID), plan, &updated); err != nil {
		s.logger.Error("failed to update plan", zap.Error(err), zap.String("id", plan.ID))
		return nil, err
	}

	s.catalog.InvalidatePlans(ctx, plan.ID, plan.ProductID)
	return &updated, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, "/admin/plans/"+url.PathEscape(id)); err != nil {
		s.logger.Error("failed to delete plan", zap.Error(err), zap.String("id", id))
		return err
	}

	s.catalog.InvalidatePlans(ctx, id, "")
	return nil
}
