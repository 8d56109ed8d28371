package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"goflare.io/storefront/handlers"
)

type Server struct {
	echo      *echo.Echo
	Auth      handlers.AuthHandler
	Plan      handlers.PlanHandler
	Checkout  handlers.CheckoutHandler
	Coupon    handlers.CouponHandler
	Wallet    handlers.WalletHandler
	Affiliate handlers.AffiliateHandler
	Connect   handlers.ConnectHandler
}

func NewServer(
	Auth handlers.AuthHandler,
	Plan handlers.PlanHandler,
	Checkout handlers.CheckoutHandler,
	Coupon handlers.CouponHandler,
	Wallet handlers.WalletHandler,
	Affiliate handlers.AffiliateHandler,
	Connect handlers.ConnectHandler,
) *Server {
	return &Server{
		echo:      echo.New(),
		Auth:      Auth,
		Plan:      Plan,
		Checkout:  Checkout,
		Coupon:    Coupon,
		Wallet:    Wallet,
		Affiliate: Affiliate,
		Connect:   Connect,
	}
}

// Start initializes the server by registering middlewares and routes, and starts listening for connections on the provided address.
// It returns an error if there is an issue starting the server.
func (s *Server) Start(address string) error {
	s.registerMiddlewares()
	s.registerRoutes()
	return s.echo.Start(address)
}

// Run starts the server in a goroutine and blocks until an interrupt or
// SIGTERM arrives, then shuts the server down with a 5 second grace period.
func (s *Server) Run(address string) error {

	go func() {
		if err := s.Start(address); err != nil {
			s.echo.Logger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.echo.Shutdown(ctx)
}

func (s *Server) registerMiddlewares() {
	s.echo.Use(middleware.Recover())
}

func (s *Server) registerRoutes() {

	s.echo.POST("/auth/login", s.Auth.Login)
	s.echo.POST("/auth/register", s.Auth.Register)
	s.echo.POST("/auth/logout", s.Auth.Logout)
	s.echo.GET("/users/me", s.Auth.Me)

	s.echo.POST("/admin/plans", s.Plan.CreatePlan)
	s.echo.GET("/pricing/plans", s.Plan.ListPlans)
	s.echo.GET("/pricing/plans/:id", s.Plan.GetPlan)
	s.echo.PUT("/admin/plans/:id", s.Plan.UpdatePlan)
	s.echo.DELETE("/admin/plans/:id", s.Plan.DeletePlan)

	s.echo.POST("/payment/checkout", s.Checkout.InitiateCheckout)

	s.echo.POST("/coupons", s.Coupon.CreateCoupon)
	s.echo.GET("/coupons", s.Coupon.ListCoupons)
	s.echo.POST("/coupons/validate", s.Coupon.ValidateCoupon)

	s.echo.GET("/wallet/balance", s.Wallet.GetBalance)
	s.echo.GET("/wallet/transactions", s.Wallet.ListTransactions)
	s.echo.POST("/wallet/payouts", s.Wallet.RequestPayout)

	s.echo.POST("/affiliate/programs", s.Affiliate.CreateProgram)
	s.echo.POST("/affiliate/links", s.Affiliate.CreateLink)
	s.echo.GET("/affiliate/stats", s.Affiliate.GetStats)

	s.echo.GET("/stripe/connect/oauth", s.Connect.GetOAuthURL)
	s.echo.GET("/stripe/connect/status", s.Connect.GetStatus)
	s.echo.POST("/stripe/connect/dashboard", s.Connect.GetDashboardURL)
}
