package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"goflare.io/storefront"
)

type AffiliateHandler interface {
	CreateProgram(c echo.Context) error
	CreateLink(c echo.Context) error
	GetStats(c echo.Context) error
}

type affiliateHandler struct {
	Storefront storefront.Storefront
	Logger     *zap.Logger
}

func NewAffiliateHandler(sf storefront.Storefront, logger *zap.Logger) AffiliateHandler {
	return &affiliateHandler{
		Storefront: sf,
		Logger:     logger,
	}
}

func (ah *affiliateHandler) CreateProgram(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Rate float64 `json:"rate"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	program, err := ah.Storefront.CreateAffiliateProgram(ctx, req.Rate)
	if err != nil {
		ah.Logger.Error("Failed to create affiliate program", zap.Error(err))
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, program)
}

func (ah *affiliateHandler) CreateLink(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		ProgramID string `json:"program_id"`
		Code      string `json:"code"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	link, err := ah.Storefront.CreateAffiliateLink(ctx, req.ProgramID, req.Code)
	if err != nil {
		ah.Logger.Error("Failed to create affiliate link", zap.Error(err), zap.String("code", req.Code))
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, link)
}

func (ah *affiliateHandler) GetStats(c echo.Context) error {
	ctx := c.Request().Context()

	stats, err := ah.Storefront.AffiliateStats(ctx)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, stats)
}
