package ports

import (
	"context"

	"github.com/tradeconnect/marketplace-api/internal/core/domain"
)

// ProductRepository defines persistence operations for the product catalog.
type ProductRepository interface {
	// CreateOrIncrement inserts the product, or — when the company already
	// lists a product with the same name — atomically increments the existing
	// quantity instead. merged reports which branch was taken.
	CreateOrIncrement(ctx context.Context, p *domain.Product) (created *domain.Product, merged bool, err error)

	// SearchByName returns products whose name contains the substring,
	// case-insensitively.
	SearchByName(ctx context.Context, substring string) ([]domain.Product, error)

	// FindByName returns the product with the exact name, across companies.
	FindByName(ctx context.Context, name string) (*domain.Product, error)

	ListByCompany(ctx context.Context, companyID string) ([]domain.Product, error)
}
