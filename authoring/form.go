package authoring

import (
	"context"

	"go.uber.org/zap"

	"goflare.io/storefront/models"
	"goflare.io/storefront/pricing"
)

// Form drives a draft through submission. On success the pricing service
// invalidates the cached plan list; on failure the draft is left untouched
// so the user keeps their work, and LastError carries the server's message.
type Form struct {
	Draft     *Draft
	pricing   pricing.Service
	logger    *zap.Logger
	lastError string
}

func NewForm(draft *Draft, pricingSvc pricing.Service, logger *zap.Logger) *Form {
	return &Form{
		Draft:   draft,
		pricing: pricingSvc,
		logger:  logger,
	}
}

// Submit validates the assembled payload and creates or updates the plan,
// depending on whether the draft carries an id.
func (f *Form) Submit(ctx context.Context) (*models.PricingPlan, error) {
	if err := f.Draft.Validate(); err != nil {
		f.lastError = err.Error()
		return nil, err
	}

	plan := f.Draft.Assemble()

	var (
		saved *models.PricingPlan
		err   error
	)
	if plan.ID == "" {
		saved, err = f.pricing.Create(ctx, plan)
	} else {
		saved, err = f.pricing.Update(ctx, plan)
	}
	if err != nil {
		f.logger.Warn("plan submission failed", zap.Error(err), zap.String("name", plan.Name))
		f.lastError = err.Error()
		return nil, err
	}

	f.lastError = ""
	return saved, nil
}

// LastError is the message from the most recent failed submission, empty
// after a success.
func (f *Form) LastError() string {
	return f.lastError
}
