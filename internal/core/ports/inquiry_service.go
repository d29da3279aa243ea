package ports

import (
	"context"

	"github.com/tradeconnect/marketplace-api/internal/core/domain"
)

// SendInquiryInput carries a buyer-to-seller message. CustomerID comes from
// the authenticated principal, never from the request body.
type SendInquiryInput struct {
	CompanyID  string
	CustomerID string
	Name       string
	Email      string
	Message    string
}

// InquiryService defines use-case operations for inquiries.
type InquiryService interface {
	Send(ctx context.Context, input SendInquiryInput) (*domain.Inquiry, error)
	ListForCompany(ctx context.Context, companyID string) ([]domain.Inquiry, error)
	ListForCustomer(ctx context.Context, customerID string) ([]domain.Inquiry, error)
}
