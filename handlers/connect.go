package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"goflare.io/storefront"
)

type ConnectHandler interface {
	GetOAuthURL(c echo.Context) error
	GetStatus(c echo.Context) error
	GetDashboardURL(c echo.Context) error
}

type connectHandler struct {
	Storefront storefront.Storefront
	Logger     *zap.Logger
}

func NewConnectHandler(sf storefront.Storefront, logger *zap.Logger) ConnectHandler {
	return &connectHandler{
		Storefront: sf,
		Logger:     logger,
	}
}

func (ch *connectHandler) GetOAuthURL(c echo.Context) error {
	ctx := c.Request().Context()

	url, err := ch.Storefront.ConnectOAuthURL(ctx)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"url": url})
}

func (ch *connectHandler) GetStatus(c echo.Context) error {
	ctx := c.Request().Context()

	status, err := ch.Storefront.ConnectStatus(ctx)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, status)
}

func (ch *connectHandler) GetDashboardURL(c echo.Context) error {
	ctx := c.Request().Context()

	url, err := ch.Storefront.ConnectDashboardURL(ctx)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"url": url})
}
