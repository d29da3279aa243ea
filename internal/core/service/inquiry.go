package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tradeconnect/marketplace-api/internal/core/domain"
	"github.com/tradeconnect/marketplace-api/internal/core/ports"
)

// InquiryService implements buyer-to-seller inquiries. Sending an inquiry
// also queues a notification email to the company; delivery is best-effort
// and never fails the request.
type InquiryService struct {
	repo      ports.InquiryRepository
	companies ports.CompanyRepository
	notifier  ports.Notifier
	log       zerolog.Logger
}

// NewInquiryService returns an InquiryService. notifier may be nil to disable
// company notifications.
func NewInquiryService(
	repo ports.InquiryRepository,
	companies ports.CompanyRepository,
	notifier ports.Notifier,
	log zerolog.Logger,
) *InquiryService {
	return &InquiryService{repo: repo, companies: companies, notifier: notifier, log: log}
}

// Send persists an inquiry addressed to an existing company.
func (s *InquiryService) Send(ctx context.Context, input ports.SendInquiryInput) (*domain.Inquiry, error) {
	company, err := s.companies.FindByID(ctx, input.CompanyID)
	if err != nil {
		return nil, err
	}

	inquiry := &domain.Inquiry{
		CompanyID:  input.CompanyID,
		CustomerID: input.CustomerID,
		Name:       input.Name,
		Email:      input.Email,
		Message:    input.Message,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, inquiry)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.Notify(ports.Message{
			To:      company.Email,
			Subject: "New product inquiry",
			Body: fmt.Sprintf("You have received a new inquiry from %s (%s):\n\n%s",
				created.Name, created.Email, created.Message),
		})
	}

	s.log.Info().Str("inquiry_id", created.ID).Str("company_id", created.CompanyID).
		Str("customer_id", created.CustomerID).Msg("inquiry sent")
	return created, nil
}

func (s *InquiryService) ListForCompany(ctx context.Context, companyID string) ([]domain.Inquiry, error) {
	return s.repo.ListByCompany(ctx, companyID)
}

func (s *InquiryService) ListForCustomer(ctx context.Context, customerID string) ([]domain.Inquiry, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}
