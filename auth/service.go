package auth

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"goflare.io/storefront/apiclient"
	"goflare.io/storefront/models"
)

var ErrCredentialsRequired = errors.New("email and password are required")

type Service interface {
	Login(ctx context.Context, email, password string) (*models.TokenPair, error)
	Register(ctx context.Context, email, password, fullName string) (*models.TokenPair, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*models.User, error)
}

type service struct {
	client *apiclient.Client
	logger *zap.Logger
}

func NewService(client *apiclient.Client, logger *zap.Logger) Service {
	return &service{
		client: client,
		logger: logger,
	}
}

// Login exchanges credentials for an access token and stores it. The
// refresh credential arrives as an HTTP-only cookie kept by the transport.
func (s *service) Login(ctx context.Context, email, password string) (*models.TokenPair, error) {
	if email == "" || password == "" {
		return nil, ErrCredentialsRequired
	}

	var pair models.TokenPair
	payload := map[string]string{"email": email, "password": password}
	if err := s.client.Post(ctx, "/auth/login", payload, &pair); err != nil {
		return nil, err
	}

	if pair.AccessToken != "" {
		if err := s.client.TokenStore().SetToken(pair.AccessToken); err != nil {
			return nil, err
		}
	}
	return &pair, nil
}

func (s *service) Register(ctx context.Context, email, password, fullName string) (*models.TokenPair, error) {
	if email == "" || password == "" {
		return nil, ErrCredentialsRequired
	}

	var pair models.TokenPair
	payload := map[string]string{"email": email, "password": password, "full_name": fullName}
	if err := s.client.Post(ctx, "/auth/register", payload, &pair); err != nil {
		return nil, err
	}

	if pair.AccessToken != "" {
		if err := s.client.TokenStore().SetToken(pair.AccessToken); err != nil {
			return nil, err
		}
	}
	return &pair, nil
}

// Logout tells the platform to revoke the session and clears the stored
// token either way.
func (s *service) Logout(ctx context.Context) error {
	err := s.client.Post(ctx, "/auth/logout", nil, nil)
	if err != nil {
		s.logger.Warn("logout request failed", zap.Error(err))
	}
	if clearErr := s.client.TokenStore().Clear(); clearErr != nil {
		return clearErr
	}
	return err
}

func (s *service) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := s.client.Get(ctx, "/users/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}
