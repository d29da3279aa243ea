package ports

import (
	"context"

	"github.com/tradeconnect/marketplace-api/internal/core/domain"
)

// CreateProductInput carries the data for listing (or restocking) a product.
type CreateProductInput struct {
	ProductName string
	Description string
	Category    string
	Price       float64
	Features    []string
	Quantity    int64
	CompanyID   string
}

// ProductListing is a product joined with its owning company, as returned by
// the public search and detail operations.
type ProductListing struct {
	Product domain.Product  `json:"product"`
	Company *domain.Company `json:"company,omitempty"`
}

// SearchCache caches search results keyed by the (lowercased) search term.
// A miss is not an error; Get reports it through ok.
type SearchCache interface {
	Get(ctx context.Context, term string) (listings []ProductListing, ok bool, err error)
	Set(ctx context.Context, term string, listings []ProductListing) error
}

// ProductService defines use-case operations for the catalog.
type ProductService interface {
	// Create inserts a product for the company, or merges quantity into an
	// existing product with the same name. merged reports which happened.
	Create(ctx context.Context, input CreateProductInput) (p *domain.Product, merged bool, err error)
	Search(ctx context.Context, substring string) ([]ProductListing, error)
	Detail(ctx context.Context, productName string) (*ProductListing, error)
	ListByCompany(ctx context.Context, companyID string) ([]domain.Product, error)
}
