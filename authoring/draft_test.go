package authoring

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"goflare.io/storefront/models"
	"goflare.io/storefront/models/enum"
)

type mockPricingService struct {
	mock.Mock
}

func (m *mockPricingService) Create(ctx context.Context, plan *models.PricingPlan) (*models.PricingPlan, error) {
	args := m.Called(ctx, plan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PricingPlan), args.Error(1)
}

func (m *mockPricingService) GetByID(ctx context.Context, id string) (*models.PricingPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PricingPlan), args.Error(1)
}

func (m *mockPricingService) List(ctx context.Context, productID string) ([]*models.PricingPlan, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.PricingPlan), args.Error(1)
}

func (m *mockPricingService) Update(ctx context.Context, plan *models.PricingPlan) (*models.PricingPlan, error) {
	args := m.Called(ctx, plan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PricingPlan), args.Error(1)
}

func (m *mockPricingService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestDraftRetainsConfigsAcrossTypeSwitch(t *testing.T) {
	draft := NewDraft(enum.PricingTypeOneTime)
	draft.Name = "Launch"
	draft.ProductID = "prod-1"
	draft.SetOneTime(models.OneTimeConfig{Price: 49, Currency: "usd"})

	draft.SetType(enum.PricingTypeDonation)
	draft.SetDonation(models.DonationConfig{MinAmount: 5, Currency: "usd"})

	// Switching back restores the earlier one-time editing state.
	draft.SetType(enum.PricingTypeOneTime)

	plan := draft.Assemble()
	require.NotNil(t, plan.OneTimeConfig)
	assert.Equal(t, 49.0, plan.OneTimeConfig.Price)
	assert.Nil(t, plan.DonationConfig, "only the active config may be submitted")
}

func TestDraftAssembleCarriesOnlyActiveConfig(t *testing.T) {
	draft := NewDraft(enum.PricingTypeOneTime)
	draft.Name = "Launch"
	draft.ProductID = "prod-1"
	draft.SetOneTime(models.OneTimeConfig{Price: 49, Currency: "usd"})
	draft.SetDonation(models.DonationConfig{MinAmount: 5, Currency: "usd"})
	draft.SetType(enum.PricingTypeDonation)

	plan := draft.Assemble()
	assert.Equal(t, enum.PricingTypeDonation, plan.Type)
	assert.Nil(t, plan.OneTimeConfig)
	require.NotNil(t, plan.DonationConfig)
	assert.Equal(t, plan.Type, plan.ActiveConfigType())
}

func TestDraftPreviewMatchesCheckoutFormatting(t *testing.T) {
	draft := NewDraft(enum.PricingTypeDonation)
	draft.Name = "Tip Jar"
	draft.SetDonation(models.DonationConfig{MinAmount: 5, Currency: "usd"})

	assert.Equal(t, "Min $5", draft.Preview().Text)
}

func TestFormSubmitCreatesAndClearsError(t *testing.T) {
	draft := NewDraft(enum.PricingTypeOneTime)
	draft.Name = "Launch"
	draft.ProductID = "prod-1"
	draft.SetOneTime(models.OneTimeConfig{Price: 49, Currency: "usd"})

	svc := new(mockPricingService)
	created := draft.Assemble()
	created.ID = "plan-1"
	svc.On("Create", mock.Anything, mock.Anything).Return(created, nil)

	form := NewForm(draft, svc, zap.NewNop())
	saved, err := form.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "plan-1", saved.ID)
	assert.Empty(t, form.LastError())
	svc.AssertExpectations(t)
}

func TestFormSubmitSurfacesServerErrorAndKeepsDraft(t *testing.T) {
	draft := NewDraft(enum.PricingTypeOneTime)
	draft.Name = "Launch"
	draft.ProductID = "prod-1"
	draft.SetOneTime(models.OneTimeConfig{Price: 49, Currency: "usd"})

	svc := new(mockPricingService)
	svc.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("plan limit reached"))

	form := NewForm(draft, svc, zap.NewNop())
	_, err := form.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, "plan limit reached", form.LastError())
	assert.Equal(t, "Launch", form.Draft.Name, "draft survives a failed submit")
}

func TestFormSubmitRejectsInvalidDraftLocally(t *testing.T) {
	draft := NewDraft(enum.PricingTypeOneTime)
	// No config set: invalid before any network call.
	draft.Name = "Broken"

	svc := new(mockPricingService)
	form := NewForm(draft, svc, zap.NewNop())

	_, err := form.Submit(context.Background())
	require.Error(t, err)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFormSubmitUpdatesWhenDraftHasID(t *testing.T) {
	plan := &models.PricingPlan{
		ID:            "plan-1",
		ProductID:     "prod-1",
		Name:          "Launch",
		Type:          enum.PricingTypeOneTime,
		OneTimeConfig: &models.OneTimeConfig{Price: 49, Currency: "usd"},
	}
	draft := FromPlan(plan)
	draft.Name = "Launch v2"

	svc := new(mockPricingService)
	svc.On("Update", mock.Anything, mock.MatchedBy(func(p *models.PricingPlan) bool {
		return p.ID == "plan-1" && p.Name == "Launch v2"
	})).Return(plan, nil)

	form := NewForm(draft, svc, zap.NewNop())
	_, err := form.Submit(context.Background())
	require.NoError(t, err)
	svc.AssertExpectations(t)
}
