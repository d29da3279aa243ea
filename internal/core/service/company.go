package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tradeconnect/marketplace-api/internal/core/domain"
	"github.com/tradeconnect/marketplace-api/internal/core/ports"
)

// CompanyService implements seller account use cases. Credential flows are
// delegated to the shared Accounts helper.
type CompanyService struct {
	repo     ports.CompanyRepository
	accounts *Accounts
	hasher   *PasswordHasher
	tokens   ports.SessionTokens
	log      zerolog.Logger
}

func NewCompanyService(
	repo ports.CompanyRepository,
	accounts *Accounts,
	hasher *PasswordHasher,
	tokens ports.SessionTokens,
	log zerolog.Logger,
) *CompanyService {
	return &CompanyService{repo: repo, accounts: accounts, hasher: hasher, tokens: tokens, log: log}
}

// Signup registers a company and returns a session token, so no separate
// login is needed afterwards. The password is hashed here, before persistence.
func (s *CompanyService) Signup(ctx context.Context, input ports.CompanySignupInput) (string, error) {
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return "", err
	}

	company := &domain.Company{
		CompanyName:           input.CompanyName,
		ContactPersonName:     input.ContactPersonName,
		PrimaryMobileNumber:   input.PrimaryMobileNumber,
		Email:                 input.Email,
		Pincode:               input.Pincode,
		District:              input.District,
		Country:               input.Country,
		City:                  input.City,
		State:                 input.State,
		BuildingNumberOrFloor: input.BuildingNumberOrFloor,
		GSTIN:                 input.GSTIN,
		PrimaryBusinessType:   input.PrimaryBusinessType,
		CEOName:               input.CEOName,
		GSTRegistrationDate:   input.GSTRegistrationDate,
		OwnershipType:         input.OwnershipType,
		AreaOrStreet:          input.AreaOrStreet,
		Landmark:              input.Landmark,
		Locality:              input.Locality,
		Designation:           input.Designation,
		AlternateMobileNumber: input.AlternateMobileNumber,
		AlternateEmail:        input.AlternateEmail,
		WebsiteURL:            input.WebsiteURL,
		GoogleBusinessURL:     input.GoogleBusinessURL,
		InstagramBusinessURL:  input.InstagramBusinessURL,
		FacebookBusinessURL:   input.FacebookBusinessURL,
		SecondaryBusiness:     input.SecondaryBusiness,
		NumberOfEmployees:     input.NumberOfEmployees,
		AnnualTurnover:        input.AnnualTurnover,
		PasswordHash:          hash,
		CreatedAt:             time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, company)
	if err != nil {
		return "", err
	}

	s.log.Info().Str("company_id", created.ID).Msg("company registered")
	return s.tokens.Issue(created.ID, created.Email)
}

func (s *CompanyService) Login(ctx context.Context, email, password string) (string, error) {
	return s.accounts.Login(ctx, email, password)
}

func (s *CompanyService) Profile(ctx context.Context, id string) (*domain.Company, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateProfile replaces the full profile field set. Password and reset
// fields cannot be written through this path.
func (s *CompanyService) UpdateProfile(ctx context.Context, id string, input ports.CompanyProfileInput) (*domain.Company, error) {
	company := &domain.Company{
		CompanyName:           input.CompanyName,
		ContactPersonName:     input.ContactPersonName,
		PrimaryMobileNumber:   input.PrimaryMobileNumber,
		Email:                 input.Email,
		Pincode:               input.Pincode,
		District:              input.District,
		Country:               input.Country,
		City:                  input.City,
		State:                 input.State,
		BuildingNumberOrFloor: input.BuildingNumberOrFloor,
		GSTIN:                 input.GSTIN,
		PrimaryBusinessType:   input.PrimaryBusinessType,
		CEOName:               input.CEOName,
		GSTRegistrationDate:   input.GSTRegistrationDate,
		OwnershipType:         input.OwnershipType,
		AreaOrStreet:          input.AreaOrStreet,
		Landmark:              input.Landmark,
		Locality:              input.Locality,
		Designation:           input.Designation,
		AlternateMobileNumber: input.AlternateMobileNumber,
		AlternateEmail:        input.AlternateEmail,
		WebsiteURL:            input.WebsiteURL,
		GoogleBusinessURL:     input.GoogleBusinessURL,
		InstagramBusinessURL:  input.InstagramBusinessURL,
		FacebookBusinessURL:   input.FacebookBusinessURL,
		SecondaryBusiness:     input.SecondaryBusiness,
		NumberOfEmployees:     input.NumberOfEmployees,
		AnnualTurnover:        input.AnnualTurnover,
	}
	return s.repo.UpdateProfile(ctx, id, company)
}

// DeleteProfile removes the company document only. Owned products and
// inquiries are left in place (accepted orphan-reference policy).
func (s *CompanyService) DeleteProfile(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *CompanyService) ForgotPassword(ctx context.Context, email string) error {
	return s.accounts.ForgotPassword(ctx, email)
}

func (s *CompanyService) ResetPassword(ctx context.Context, token, password, confirmPassword string) error {
	return s.accounts.ResetPassword(ctx, token, password, confirmPassword)
}

func (s *CompanyService) UpdatePassword(ctx context.Context, id, oldPassword, newPassword string) error {
	return s.accounts.UpdatePassword(ctx, id, oldPassword, newPassword)
}

func (s *CompanyService) ListAll(ctx context.Context) ([]domain.Company, error) {
	return s.repo.FindAll(ctx)
}
