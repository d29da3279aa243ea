package ports

import (
	"context"

	"github.com/tradeconnect/marketplace-api/internal/core/domain"
)

// CustomerSignupInput carries all registration data for a buyer account.
type CustomerSignupInput struct {
	Name         string
	MobileNumber string
	Email        string
	Pincode      string
	District     string
	Country      string
	Password     string

	AreaOrStreet string
	Landmark     string
}

// CustomerService defines use-case operations for buyer accounts. Unlike the
// company variant, profile updates are partial.
type CustomerService interface {
	Signup(ctx context.Context, input CustomerSignupInput) (token string, err error)
	Login(ctx context.Context, email, password string) (token string, err error)
	Profile(ctx context.Context, id string) (*domain.Customer, error)
	UpdateProfile(ctx context.Context, id string, patch CustomerProfilePatch) (*domain.Customer, error)
	DeleteProfile(ctx context.Context, id string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password, confirmPassword string) error
	UpdatePassword(ctx context.Context, id, oldPassword, newPassword string) error
}
