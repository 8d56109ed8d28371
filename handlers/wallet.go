package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"goflare.io/storefront"
	"goflare.io/storefront/models/enum"
)

type WalletHandler interface {
	GetBalance(c echo.Context) error
	ListTransactions(c echo.Context) error
	RequestPayout(c echo.Context) error
}

type walletHandler struct {
	Storefront storefront.Storefront
	Logger     *zap.Logger
}

func NewWalletHandler(sf storefront.Storefront, logger *zap.Logger) WalletHandler {
	return &walletHandler{
		Storefront: sf,
		Logger:     logger,
	}
}

func (wh *walletHandler) GetBalance(c echo.Context) error {
	ctx := c.Request().Context()

	wallet, err := wh.Storefront.WalletBalance(ctx)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, wallet)
}

func (wh *walletHandler) ListTransactions(c echo.Context) error {
	ctx := c.Request().Context()

	txs, err := wh.Storefront.WalletTransactions(ctx)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, txs)
}

func (wh *walletHandler) RequestPayout(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Amount float64 `json:"amount"`
		Method string  `json:"method"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	payout, err := wh.Storefront.RequestPayout(ctx, req.Amount, enum.PayoutMethod(req.Method))
	if err != nil {
		wh.Logger.Error("Failed to request payout", zap.Error(err), zap.Float64("amount", req.Amount))
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, payout)
}
