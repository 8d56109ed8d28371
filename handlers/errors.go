package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"goflare.io/storefront/affiliate"
	"goflare.io/storefront/apiclient"
	"goflare.io/storefront/auth"
	"goflare.io/storefront/checkout"
	"goflare.io/storefront/coupon"
	"goflare.io/storefront/pricing"
	"goflare.io/storefront/wallet"
)

// writeError maps the error taxonomy onto HTTP responses: local validation
// errors are 400 with the message inline, auth failures are 401 with a
// login redirect hint, platform business errors keep their status and
// message verbatim, and anything else becomes a generic retryable failure.
func writeError(c echo.Context, err error) error {
	if errors.Is(err, checkout.ErrLoginRequired) {
		return c.JSON(http.StatusUnauthorized, map[string]any{
			"error":          err.Error(),
			"login_required": true,
		})
	}

	var violations pricing.Violations
	if errors.As(err, &violations) {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"error":      "plan validation failed",
			"violations": []string(violations),
		})
	}

	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		if apiclient.IsAuthError(err) {
			return c.JSON(http.StatusUnauthorized, map[string]any{
				"error":          apiErr.Message,
				"login_required": true,
			})
		}
		status := apiErr.Status
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		return c.JSON(status, map[string]string{"error": apiclient.ServerMessage(err)})
	}

	if isLocalValidation(err) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusBadGateway, map[string]string{"error": "request failed, please try again"})
}

func isLocalValidation(err error) bool {
	for _, sentinel := range []error{
		pricing.ErrDonationBelowMinimum,
		pricing.ErrUnpricedQuantity,
		pricing.ErrSoldOut,
		pricing.ErrUnsupportedType,
		checkout.ErrCouponsNotAllowed,
		checkout.ErrNotLoaded,
		coupon.ErrCodeRequired,
		coupon.ErrInvalidAmount,
		coupon.ErrPercentTooHigh,
		wallet.ErrInvalidAmount,
		wallet.ErrInsufficientFunds,
		wallet.ErrInvalidMethod,
		affiliate.ErrInvalidRate,
		affiliate.ErrCodeRequired,
		auth.ErrCredentialsRequired,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
