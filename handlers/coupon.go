package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"goflare.io/storefront"
	"goflare.io/storefront/models"
)

type CouponHandler interface {
	CreateCoupon(c echo.Context) error
	ListCoupons(c echo.Context) error
	ValidateCoupon(c echo.Context) error
}

type couponHandler struct {
	Storefront storefront.Storefront
	Logger     *zap.Logger
}

func NewCouponHandler(sf storefront.Storefront, logger *zap.Logger) CouponHandler {
	return &couponHandler{
		Storefront: sf,
		Logger:     logger,
	}
}

func (ch *couponHandler) CreateCoupon(c echo.Context) error {
	ctx := c.Request().Context()

	var req models.Coupon
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	created, err := ch.Storefront.CreateCoupon(ctx, &req)
	if err != nil {
		ch.Logger.Error("Failed to create coupon", zap.Error(err), zap.String("code", req.Code))
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, created)
}

func (ch *couponHandler) ListCoupons(c echo.Context) error {
	ctx := c.Request().Context()

	coupons, err := ch.Storefront.ListCoupons(ctx)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, coupons)
}

func (ch *couponHandler) ValidateCoupon(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Code   string `json:"code"`
		PlanID string `json:"plan_id"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	coupon, err := ch.Storefront.ValidateCoupon(ctx, req.Code, req.PlanID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{"coupon": coupon})
}
