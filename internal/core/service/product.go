package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tradeconnect/marketplace-api/internal/core/domain"
	"github.com/tradeconnect/marketplace-api/internal/core/ports"
)

// ProductService implements catalog use cases. Search results are served from
// the cache when available; cache failures degrade to a direct query.
type ProductService struct {
	repo      ports.ProductRepository
	companies ports.CompanyRepository
	cache     ports.SearchCache
	log       zerolog.Logger
}

// NewProductService returns a ProductService. cache may be nil to disable
// search caching.
func NewProductService(
	repo ports.ProductRepository,
	companies ports.CompanyRepository,
	cache ports.SearchCache,
	log zerolog.Logger,
) *ProductService {
	return &ProductService{repo: repo, companies: companies, cache: cache, log: log}
}

// Create lists a new product for the company, or merges the quantity into an
// existing product with the same name. The merge is a single atomic increment
// in the store, so concurrent restocks cannot lose updates.
func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, bool, error) {
	product := &domain.Product{
		ProductName: input.ProductName,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		Features:    input.Features,
		Quantity:    input.Quantity,
		CompanyID:   input.CompanyID,
	}

	created, merged, err := s.repo.CreateOrIncrement(ctx, product)
	if err != nil {
		return nil, false, err
	}

	if merged {
		s.log.Info().Str("product", created.ProductName).Str("company_id", input.CompanyID).
			Int64("quantity", created.Quantity).Msg("product quantity merged")
	} else {
		s.log.Info().Str("product", created.ProductName).Str("company_id", input.CompanyID).
			Msg("product created")
	}
	return created, merged, nil
}

// Search returns all products whose name contains the substring, each joined
// with its owning company.
func (s *ProductService) Search(ctx context.Context, substring string) ([]ports.ProductListing, error) {
	term := strings.ToLower(substring)
	if s.cache != nil {
		listings, ok, err := s.cache.Get(ctx, term)
		if err != nil {
			s.log.Warn().Err(err).Str("term", term).Msg("search cache read failed")
		} else if ok {
			return listings, nil
		}
	}

	products, err := s.repo.SearchByName(ctx, substring)
	if err != nil {
		return nil, err
	}

	listings, err := s.joinCompanies(ctx, products)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, term, listings); err != nil {
			s.log.Warn().Err(err).Str("term", term).Msg("search cache write failed")
		}
	}
	return listings, nil
}

// Detail returns the product with the exact name, joined with its company.
func (s *ProductService) Detail(ctx context.Context, productName string) (*ports.ProductListing, error) {
	product, err := s.repo.FindByName(ctx, productName)
	if err != nil {
		return nil, err
	}

	listing := ports.ProductListing{Product: *product}
	company, err := s.companies.FindByID(ctx, product.CompanyID)
	switch {
	case err == nil:
		listing.Company = company
	case errors.Is(err, domain.ErrNotFound):
		// orphaned product: owner was deleted, serve without company data
	default:
		return nil, err
	}
	return &listing, nil
}

func (s *ProductService) ListByCompany(ctx context.Context, companyID string) ([]domain.Product, error) {
	return s.repo.ListByCompany(ctx, companyID)
}

// joinCompanies resolves each product's owner, fetching every company once.
func (s *ProductService) joinCompanies(ctx context.Context, products []domain.Product) ([]ports.ProductListing, error) {
	companies := make(map[string]*domain.Company, len(products))
	listings := make([]ports.ProductListing, 0, len(products))

	for _, p := range products {
		company, seen := companies[p.CompanyID]
		if !seen {
			found, err := s.companies.FindByID(ctx, p.CompanyID)
			switch {
			case err == nil:
				company = found
			case errors.Is(err, domain.ErrNotFound):
				company = nil
			default:
				return nil, err
			}
			companies[p.CompanyID] = company
		}
		listings = append(listings, ports.ProductListing{Product: p, Company: company})
	}
	return listings, nil
}
