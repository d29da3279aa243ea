package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tradeconnect/marketplace-api/internal/core/domain"
	"github.com/tradeconnect/marketplace-api/internal/core/ports"
)

type stubProductRepo struct {
	products []*domain.Product
	nextID   int
}

func (r *stubProductRepo) CreateOrIncrement(_ context.Context, p *domain.Product) (*domain.Product, bool, error) {
	for _, existing := range r.products {
		if existing.ProductName == p.ProductName && existing.CompanyID == p.CompanyID {
			existing.Quantity += p.Quantity
			clone := *existing
			return &clone, true, nil
		}
	}
	r.nextID++
	clone := *p
	clone.ID = "product-" + strconv.Itoa(r.nextID)
	r.products = append(r.products, &clone)
	result := clone
	return &result, false, nil
}

func (r *stubProductRepo) SearchByName(_ context.Context, substring string) ([]domain.Product, error) {
	var matches []domain.Product
	needle := strings.ToLower(substring)
	for _, p := range r.products {
		if strings.Contains(strings.ToLower(p.ProductName), needle) {
			matches = append(matches, *p)
		}
	}
	return matches, nil
}

func (r *stubProductRepo) FindByName(_ context.Context, name string) (*domain.Product, error) {
	for _, p := range r.products {
		if p.ProductName == name {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepo) ListByCompany(_ context.Context, companyID string) ([]domain.Product, error) {
	var matches []domain.Product
	for _, p := range r.products {
		if p.CompanyID == companyID {
			matches = append(matches, *p)
		}
	}
	return matches, nil
}

type stubSearchCache struct {
	entries map[string][]ports.ProductListing
	getErr  error
	hits    int
	sets    int
}

func newStubSearchCache() *stubSearchCache {
	return &stubSearchCache{entries: make(map[string][]ports.ProductListing)}
}

func (c *stubSearchCache) Get(_ context.Context, term string) ([]ports.ProductListing, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	listings, ok := c.entries[term]
	if ok {
		c.hits++
	}
	return listings, ok, nil
}

func (c *stubSearchCache) Set(_ context.Context, term string, listings []ports.ProductListing) error {
	c.sets++
	c.entries[term] = listings
	return nil
}

func seedCompany(t *testing.T, repo *stubCompanyRepo, email string) *domain.Company {
	t.Helper()
	company, err := repo.Create(context.Background(), &domain.Company{
		CompanyName: "Acme Traders",
		Email:       email,
	})
	if err != nil {
		t.Fatalf("seed company: %v", err)
	}
	return company
}

func TestProductService_Create_New(t *testing.T) {
	companies := newStubCompanyRepo()
	company := seedCompany(t, companies, "acme@example.com")
	svc := NewProductService(&stubProductRepo{}, companies, nil, zerolog.Nop())

	product, merged, err := svc.Create(context.Background(), ports.CreateProductInput{
		ProductName: "Steel Rod",
		Category:    "Raw Materials",
		Price:       120.50,
		Quantity:    10,
		CompanyID:   company.ID,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if merged {
		t.Fatalf("expected new product, got merged")
	}
	if product.Quantity != 10 {
		t.Fatalf("unexpected quantity: %d", product.Quantity)
	}
}

func TestProductService_Create_MergesQuantity(t *testing.T) {
	companies := newStubCompanyRepo()
	company := seedCompany(t, companies, "acme@example.com")
	svc := NewProductService(&stubProductRepo{}, companies, nil, zerolog.Nop())

	input := ports.CreateProductInput{
		ProductName: "Steel Rod",
		Category:    "Raw Materials",
		Price:       120.50,
		Quantity:    10,
		CompanyID:   company.ID,
	}
	if _, _, err := svc.Create(context.Background(), input); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	input.Quantity = 5
	product, merged, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("second create failed: %v", err)
	}
	if !merged {
		t.Fatalf("expected merge, got new product")
	}
	if product.Quantity != 15 {
		t.Fatalf("expected merged quantity 15, got %d", product.Quantity)
	}
}

func TestProductService_Create_SameNameDifferentCompany(t *testing.T) {
	companies := newStubCompanyRepo()
	first := seedCompany(t, companies, "acme@example.com")
	second := seedCompany(t, companies, "globex@example.com")
	svc := NewProductService(&stubProductRepo{}, companies, nil, zerolog.Nop())

	input := ports.CreateProductInput{ProductName: "Steel Rod", Category: "Raw Materials", Price: 1, Quantity: 10, CompanyID: first.ID}
	if _, merged, err := svc.Create(context.Background(), input); err != nil || merged {
		t.Fatalf("first create: merged=%v err=%v", merged, err)
	}

	input.CompanyID = second.ID
	if _, merged, err := svc.Create(context.Background(), input); err != nil || merged {
		t.Fatalf("same name for another company must not merge: merged=%v err=%v", merged, err)
	}
}

func TestProductService_Search_JoinsCompanies(t *testing.T) {
	companies := newStubCompanyRepo()
	company := seedCompany(t, companies, "acme@example.com")
	repo := &stubProductRepo{}
	svc := NewProductService(repo, companies, nil, zerolog.Nop())

	for _, name := range []string{"Steel Rod", "Steel Sheet", "Copper Wire"} {
		if _, _, err := svc.Create(context.Background(), ports.CreateProductInput{
			ProductName: name, Category: "Raw Materials", Price: 1, Quantity: 1, CompanyID: company.ID,
		}); err != nil {
			t.Fatalf("seed product %s: %v", name, err)
		}
	}

	listings, err := svc.Search(context.Background(), "steel")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(listings) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(listings))
	}
	for _, l := range listings {
		if l.Company == nil || l.Company.ID != company.ID {
			t.Fatalf("listing not joined with company: %+v", l)
		}
	}
}

func TestProductService_Search_UsesCache(t *testing.T) {
	companies := newStubCompanyRepo()
	company := seedCompany(t, companies, "acme@example.com")
	cache := newStubSearchCache()
	svc := NewProductService(&stubProductRepo{}, companies, cache, zerolog.Nop())

	if _, _, err := svc.Create(context.Background(), ports.CreateProductInput{
		ProductName: "Steel Rod", Category: "Raw Materials", Price: 1, Quantity: 1, CompanyID: company.ID,
	}); err != nil {
		t.Fatalf("seed product: %v", err)
	}

	if _, err := svc.Search(context.Background(), "Steel"); err != nil {
		t.Fatalf("first search failed: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected cache write after miss, got %d", cache.sets)
	}

	if _, err := svc.Search(context.Background(), "STEEL"); err != nil {
		t.Fatalf("second search failed: %v", err)
	}
	// the term is lowercased before keying, so a differently-cased search hits
	if cache.hits != 1 {
		t.Fatalf("expected cache hit, got %d", cache.hits)
	}
}

func TestProductService_Search_CacheFailureDegrades(t *testing.T) {
	companies := newStubCompanyRepo()
	company := seedCompany(t, companies, "acme@example.com")
	cache := newStubSearchCache()
	cache.getErr = errors.New("redis down")
	svc := NewProductService(&stubProductRepo{}, companies, cache, zerolog.Nop())

	if _, _, err := svc.Create(context.Background(), ports.CreateProductInput{
		ProductName: "Steel Rod", Category: "Raw Materials", Price: 1, Quantity: 1, CompanyID: company.ID,
	}); err != nil {
		t.Fatalf("seed product: %v", err)
	}

	listings, err := svc.Search(context.Background(), "steel")
	if err != nil {
		t.Fatalf("search must survive cache failure: %v", err)
	}
	if len(listings) != 1 {
		t.Fatalf("expected 1 listing, got %d", len(listings))
	}
}

func TestProductService_Detail(t *testing.T) {
	companies := newStubCompanyRepo()
	company := seedCompany(t, companies, "acme@example.com")
	svc := NewProductService(&stubProductRepo{}, companies, nil, zerolog.Nop())

	if _, _, err := svc.Create(context.Background(), ports.CreateProductInput{
		ProductName: "Steel Rod", Category: "Raw Materials", Price: 1, Quantity: 1, CompanyID: company.ID,
	}); err != nil {
		t.Fatalf("seed product: %v", err)
	}

	listing, err := svc.Detail(context.Background(), "Steel Rod")
	if err != nil {
		t.Fatalf("detail failed: %v", err)
	}
	if listing.Company == nil || listing.Company.ID != company.ID {
		t.Fatalf("detail not joined with company: %+v", listing)
	}

	if _, err := svc.Detail(context.Background(), "Nonexistent"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// A product whose owner was deleted is still served, without company data.
func TestProductService_Detail_OrphanedProduct(t *testing.T) {
	companies := newStubCompanyRepo()
	company := seedCompany(t, companies, "acme@example.com")
	svc := NewProductService(&stubProductRepo{}, companies, nil, zerolog.Nop())

	if _, _, err := svc.Create(context.Background(), ports.CreateProductInput{
		ProductName: "Steel Rod", Category: "Raw Materials", Price: 1, Quantity: 1, CompanyID: company.ID,
	}); err != nil {
		t.Fatalf("seed product: %v", err)
	}
	if err := companies.Delete(context.Background(), company.ID); err != nil {
		t.Fatalf("delete company: %v", err)
	}

	listing, err := svc.Detail(context.Background(), "Steel Rod")
	if err != nil {
		t.Fatalf("detail failed for orphaned product: %v", err)
	}
	if listing.Company != nil {
		t.Fatalf("expected nil company for orphaned product")
	}
}
