package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"goflare.io/storefront"
)

type AuthHandler interface {
	Login(c echo.Context) error
	Register(c echo.Context) error
	Logout(c echo.Context) error
	Me(c echo.Context) error
}

type authHandler struct {
	Storefront storefront.Storefront
	Logger     *zap.Logger
}

func NewAuthHandler(sf storefront.Storefront, logger *zap.Logger) AuthHandler {
	return &authHandler{
		Storefront: sf,
		Logger:     logger,
	}
}

func (ah *authHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	pair, err := ah.Storefront.Login(ctx, req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, pair)
}

func (ah *authHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		FullName string `json:"full_name"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	pair, err := ah.Storefront.Register(ctx, req.Email, req.Password, req.FullName)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, pair)
}

func (ah *authHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	if err := ah.Storefront.Logout(ctx); err != nil {
		ah.Logger.Warn("Logout did not complete cleanly", zap.Error(err))
	}
	return c.NoContent(http.StatusNoContent)
}

func (ah *authHandler) Me(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := ah.Storefront.CurrentUser(ctx)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, user)
}
