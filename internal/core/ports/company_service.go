package ports

import (
	"context"

	"github.com/tradeconnect/marketplace-api/internal/core/domain"
)

// CompanySignupInput carries all registration data for a seller account.
// Field-presence validation happens at the request boundary; the service
// receives a structurally complete input.
type CompanySignupInput struct {
	CompanyName           string
	ContactPersonName     string
	PrimaryMobileNumber   string
	Email                 string
	Pincode               string
	District              string
	Country               string
	City                  string
	State                 string
	BuildingNumberOrFloor string
	GSTIN                 string
	PrimaryBusinessType   string
	CEOName               string
	GSTRegistrationDate   string
	OwnershipType         string
	Password              string

	AreaOrStreet          string
	Landmark              string
	Locality              string
	Designation           string
	AlternateMobileNumber string
	AlternateEmail        string
	WebsiteURL            string
	GoogleBusinessURL     string
	InstagramBusinessURL  string
	FacebookBusinessURL   string
	SecondaryBusiness     string
	NumberOfEmployees     string
	AnnualTurnover        string
}

// CompanyProfileInput is the full required-field set revalidated on every
// profile update; the password is excluded from this path.
type CompanyProfileInput struct {
	CompanyName           string
	ContactPersonName     string
	PrimaryMobileNumber   string
	Email                 string
	Pincode               string
	District              string
	Country               string
	City                  string
	State                 string
	BuildingNumberOrFloor string
	GSTIN                 string
	PrimaryBusinessType   string
	CEOName               string
	GSTRegistrationDate   string
	OwnershipType         string

	AreaOrStreet          string
	Landmark              string
	Locality              string
	Designation           string
	AlternateMobileNumber string
	AlternateEmail        string
	WebsiteURL            string
	GoogleBusinessURL     string
	InstagramBusinessURL  string
	FacebookBusinessURL   string
	SecondaryBusiness     string
	NumberOfEmployees     string
	AnnualTurnover        string
}

// CompanyService defines use-case operations for seller accounts. Signup and
// Login return a session token; no separate login step is required after
// signup.
type CompanyService interface {
	Signup(ctx context.Context, input CompanySignupInput) (token string, err error)
	Login(ctx context.Context, email, password string) (token string, err error)
	Profile(ctx context.Context, id string) (*domain.Company, error)
	UpdateProfile(ctx context.Context, id string, input CompanyProfileInput) (*domain.Company, error)
	DeleteProfile(ctx context.Context, id string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password, confirmPassword string) error
	UpdatePassword(ctx context.Context, id, oldPassword, newPassword string) error
	ListAll(ctx context.Context) ([]domain.Company, error)
}
