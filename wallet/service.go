package wallet

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"goflare.io/storefront/apiclient"
	"goflare.io/storefront/catalog"
	"goflare.io/storefront/models"
	"goflare.io/storefront/models/enum"
)

var (
	ErrInvalidAmount     = errors.New("payout amount must be positive")
	ErrInsufficientFunds = errors.New("payout amount exceeds wallet balance")
	ErrInvalidMethod     = errors.New("unsupported payout method")
)

type Service interface {
	Balance(ctx context.Context) (*models.Wallet, error)
	Transactions(ctx context.Context) ([]*models.WalletTransaction, error)
	RequestPayout(ctx context.Context, amount float64, method enum.PayoutMethod) (*models.PayoutRequest, error)
}

type service struct {
	client  *apiclient.Client
	catalog *catalog.Catalog
	logger  *zap.Logger
}

func NewService(client *apiclient.Client, cat *catalog.Catalog, logger *zap.Logger) Service {
	return &service{
		client:  client,
		catalog: cat,
		logger:  logger,
	}
}

func (s *service) Balance(ctx context.Context) (*models.Wallet, error) {
	if wallet, found := s.catalog.GetWallet(ctx); found {
		return wallet, nil
	}

	var wallet models.Wallet
	if err := s.client.Get(ctx, "/wallet/balance", &wallet); err != nil {
		return nil, err
	}

	s.catalog.SetWallet(ctx, &wallet)
	return &wallet, nil
}

// Transactions returns the append-only ledger; it is never cached because
// the dashboard always wants the freshest view of money movements.
func (s *service) Transactions(ctx context.Context) ([]*models.WalletTransaction, error) {
	var txs []*models.WalletTransaction
	if err := s.client.Get(ctx, "/wallet/transactions", &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// RequestPayout validates locally against the known balance, submits the
// withdrawal and invalidates the cached wallet snapshot.
func (s *service) RequestPayout(ctx context.Context, amount float64, method enum.PayoutMethod) (*models.PayoutRequest, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if !method.Valid() {
		return nil, ErrInvalidMethod
	}
	if wallet, found := s.catalog.GetWallet(ctx); found && amount > wallet.Balance {
		return nil, ErrInsufficientFunds
	}

	var payout models.PayoutRequest
	payload := models.PayoutRequest{Amount: amount, Method: method}
	if err := s.client.Post(ctx, "/wallet/payouts", payload, &payout); err != nil {
		s.logger.Error("failed to request payout", zap.Error(err), zap.Float64("amount", amount))
		return nil, err
	}

	s.catalog.InvalidateWallet(ctx)
	return &payout, nil
}
