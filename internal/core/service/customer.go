package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tradeconnect/marketplace-api/internal/core/domain"
	"github.com/tradeconnect/marketplace-api/internal/core/ports"
)

// CustomerService implements buyer account use cases.
type CustomerService struct {
	repo     ports.CustomerRepository
	accounts *Accounts
	hasher   *PasswordHasher
	tokens   ports.SessionTokens
	log      zerolog.Logger
}

func NewCustomerService(
	repo ports.CustomerRepository,
	accounts *Accounts,
	hasher *PasswordHasher,
	tokens ports.SessionTokens,
	log zerolog.Logger,
) *CustomerService {
	return &CustomerService{repo: repo, accounts: accounts, hasher: hasher, tokens: tokens, log: log}
}

// Signup registers a customer and returns a session token. Hashing happens
// here, explicitly, exactly once per raw-password write.
func (s *CustomerService) Signup(ctx context.Context, input ports.CustomerSignupInput) (string, error) {
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return "", err
	}

	customer := &domain.Customer{
		Name:         input.Name,
		MobileNumber: input.MobileNumber,
		Email:        input.Email,
		Pincode:      input.Pincode,
		District:     input.District,
		Country:      input.Country,
		AreaOrStreet: input.AreaOrStreet,
		Landmark:     input.Landmark,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, customer)
	if err != nil {
		return "", err
	}

	s.log.Info().Str("customer_id", created.ID).Msg("customer registered")
	return s.tokens.Issue(created.ID, created.Email)
}

func (s *CustomerService) Login(ctx context.Context, email, password string) (string, error) {
	return s.accounts.Login(ctx, email, password)
}

func (s *CustomerService) Profile(ctx context.Context, id string) (*domain.Customer, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateProfile applies a partial update; absent fields keep their values.
func (s *CustomerService) UpdateProfile(ctx context.Context, id string, patch ports.CustomerProfilePatch) (*domain.Customer, error) {
	return s.repo.UpdateProfile(ctx, id, patch)
}

// DeleteProfile removes the customer document only; sent inquiries remain
// (accepted orphan-reference policy).
func (s *CustomerService) DeleteProfile(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *CustomerService) ForgotPassword(ctx context.Context, email string) error {
	return s.accounts.ForgotPassword(ctx, email)
}

func (s *CustomerService) ResetPassword(ctx context.Context, token, password, confirmPassword string) error {
	return s.accounts.ResetPassword(ctx, token, password, confirmPassword)
}

func (s *CustomerService) UpdatePassword(ctx context.Context, id, oldPassword, newPassword string) error {
	return s.accounts.UpdatePassword(ctx, id, oldPassword, newPassword)
}
