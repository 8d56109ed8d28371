package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"goflare.io/storefront"
	"goflare.io/storefront/models"
	"goflare.io/storefront/pricing"
)

type PlanHandler interface {
	CreatePlan(c echo.Context) error
	GetPlan(c echo.Context) error
	ListPlans(c echo.Context) error
	UpdatePlan(c echo.Context) error
	DeletePlan(c echo.Context) error
}

type planHandler struct {
	Storefront storefront.Storefront
	Logger     *zap.Logger
}

func NewPlanHandler(sf storefront.Storefront, logger *zap.Logger) PlanHandler {
	return &planHandler{
		Storefront: sf,
		Logger:     logger,
	}
}

func (ph *planHandler) CreatePlan(c echo.Context) error {
	ctx := c.Request().Context()

	var req models.PricingPlan
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	created, err := ph.Storefront.CreatePlan(ctx, &req)
	if err != nil {
		ph.Logger.Error("Failed to create plan", zap.Error(err))
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, created)
}

func (ph *planHandler) GetPlan(c echo.Context) error {
	ctx := c.Request().Context()

	plan, err := ph.Storefront.GetPlan(ctx, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, planView(plan))
}

func (ph *planHandler) ListPlans(c echo.Context) error {
	ctx := c.Request().Context()

	plans, err := ph.Storefront.ListPlans(ctx, c.QueryParam("productId"))
	if err != nil {
		return writeError(c, err)
	}

	views := make([]map[string]any, 0, len(plans))
	for _, plan := range plans {
		views = append(views, planView(plan))
	}
	return c.JSON(http.StatusOK, views)
}

func (ph *planHandler) UpdatePlan(c echo.Context) error {
	ctx := c.Request().Context()

	var req models.PricingPlan
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}
	req.ID = c.Param("id")

	updated, err := ph.Storefront.UpdatePlan(ctx, &req)
	if err != nil {
		ph.Logger.Error("Failed to update plan", zap.Error(err), zap.String("id", req.ID))
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, updated)
}

func (ph *planHandler) DeletePlan(c echo.Context) error {
	ctx := c.Request().Context()

	if err := ph.Storefront.DeletePlan(ctx, c.Param("id")); err != nil {
		ph.Logger.Error("Failed to delete plan", zap.Error(err), zap.String("id", c.Param("id")))
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// planView decorates a plan with its formatted headline so list and detail
// cards render the same price text the checkout summary shows.
func planView(plan *models.PricingPlan) map[string]any {
	headline := pricing.HeadlineFor(plan)
	view := map[string]any{
		"plan":     plan,
		"headline": headline.Text,
	}
	if headline.Original > 0 {
		view["original_price"] = pricing.FormatAmount(headline.Original)
	}
	return view
}
