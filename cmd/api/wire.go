//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"goflare.io/storefront/handlers"
	"goflare.io/storefront/server"

	"goflare.io/storefront"
	"goflare.io/storefront/affiliate"
	"goflare.io/storefront/auth"
	"goflare.io/storefront/catalog"
	"goflare.io/storefront/checkout"
	"goflare.io/storefront/config"
	"goflare.io/storefront/connect"
	"goflare.io/storefront/coupon"
	"goflare.io/storefront/pricing"
	"goflare.io/storefront/wallet"
)

func InitializeStorefront() (*server.Server, error) {

	wire.Build(
		config.ProvideApplicationConfig,
		config.NewLogger,
		config.ProvideTokenStore,
		config.ProvideAPIClient,
		config.ProvideEmber,
		config.ProvideCatalogCache,
		config.ProvideIgnite,
		catalog.New,
		auth.NewService,
		pricing.NewService,
		coupon.NewService,
		wallet.NewService,
		affiliate.NewService,
		connect.NewService,
		checkout.NewSessionRequester,
		storefront.NewGateway,
		handlers.NewAuthHandler,
		handlers.NewPlanHandler,
		handlers.NewCheckoutHandler,
		handlers.NewCouponHandler,
		handlers.NewWalletHandler,
		handlers.NewAffiliateHandler,
		handlers.NewConnectHandler,
		server.NewServer,
	)

	return &server.Server{}, nil
}
