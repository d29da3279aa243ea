package ports

import (
	"context"

	"github.com/tradeconnect/marketplace-api/internal/core/domain"
)

// InquiryRepository defines persistence operations for inquiries.
type InquiryRepository interface {
	Create(ctx context.Context, i *domain.Inquiry) (*domain.Inquiry, error)
	ListByCompany(ctx context.Context, companyID string) ([]domain.Inquiry, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Inquiry, error)
}
