package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"goflare.io/storefront"
)

type CheckoutHandler interface {
	InitiateCheckout(c echo.Context) error
}

type checkoutHandler struct {
	Storefront storefront.Storefront
	Logger     *zap.Logger
}

func NewCheckoutHandler(sf storefront.Storefront, logger *zap.Logger) CheckoutHandler {
	return &checkoutHandler{
		Storefront: sf,
		Logger:     logger,
	}
}

func (ch *checkoutHandler) InitiateCheckout(c echo.Context) error {
	ctx := c.Request().Context()

	var req storefront.CheckoutParams
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}
	if req.PlanID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "plan_id is required"})
	}

	result, err := ch.Storefront.InitiateCheckout(ctx, req)
	if err != nil {
		ch.Logger.Warn("Checkout initialization failed",
			zap.Error(err),
			zap.String("plan_id", req.PlanID))
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
