package ports

import (
	"context"

	"github.com/tradeconnect/marketplace-api/internal/core/domain"
)

// CompanyRepository defines persistence operations for company accounts.
// Email is unique within the collection; Create returns
// domain.ErrDuplicateEmail on a uniqueness violation.
type CompanyRepository interface {
	CredentialStore

	Create(ctx context.Context, c *domain.Company) (*domain.Company, error)
	FindByID(ctx context.Context, id string) (*domain.Company, error)
	FindByEmail(ctx context.Context, email string) (*domain.Company, error)
	FindAll(ctx context.Context) ([]domain.Company, error)
	// UpdateProfile replaces the profile fields of the company. Password and
	// reset fields are never touched through this path.
	UpdateProfile(ctx context.Context, id string, c *domain.Company) (*domain.Company, error)
	Delete(ctx context.Context, id string) error
}
