package ports

import (
	"context"

	"github.com/tradeconnect/marketplace-api/internal/core/domain"
)

// CustomerProfilePatch carries a partial profile update; nil fields are left
// unchanged. Password and reset fields are deliberately absent.
type CustomerProfilePatch struct {
	Name         *string
	MobileNumber *string
	Email        *string
	Pincode      *string
	District     *string
	Country      *string
	AreaOrStreet *string
	Landmark     *string
}

// CustomerRepository defines persistence operations for customer accounts.
type CustomerRepository interface {
	CredentialStore

	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
	FindByEmail(ctx context.Context, email string) (*domain.Customer, error)
	UpdateProfile(ctx context.Context, id string, patch CustomerProfilePatch) (*domain.Customer, error)
	Delete(ctx context.Context, id string) error
}
