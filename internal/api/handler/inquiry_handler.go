package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tradeconnect/marketplace-api/internal/api/metrics"
	"github.com/tradeconnect/marketplace-api/internal/core/domain"
	"github.com/tradeconnect/marketplace-api/internal/core/ports"
)

// InquiryHandler handles HTTP requests for buyer-to-seller inquiries.
type InquiryHandler struct {
	service ports.InquiryService
}

func NewInquiryHandler(service ports.InquiryService) *InquiryHandler {
	return &InquiryHandler{service: service}
}

type sendInquiryRequest struct {
	CompanyID string `json:"companyId" validate:"required"`
	Name      string `json:"name"      validate:"required"`
	Email     string `json:"Email"     validate:"required,email"`
	Message   string `json:"message"   validate:"required"`
}

// Send records an inquiry from the authenticated customer to a company and
// queues a notification email to the company.
//
// @Summary      Send an inquiry to a company
// @Tags         inquiry
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sendInquiryRequest  true  "Inquiry details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /api/customer/send [post]
func (h *InquiryHandler) Send(c echo.Context) error {
	customerID, _, err := ctxPrincipal(c, domain.PrincipalCustomer)
	if err != nil {
		return err
	}

	var req sendInquiryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("invalid payload"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail(err.Error()))
	}

	inquiry, err := h.service.Send(c.Request().Context(), ports.SendInquiryInput{
		CompanyID:  req.CompanyID,
		CustomerID: customerID,
		Name:       req.Name,
		Email:      req.Email,
		Message:    req.Message,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, fail("Company not found."))
		}
		return err
	}

	metrics.InquiriesCreatedTotal.Inc()
	resp := ok("Inquiry sent successfully")
	resp.Data = inquiry
	return c.JSON(http.StatusCreated, resp)
}

// ListForCompany returns the inquiries addressed to the authenticated company.
//
// @Summary      List inquiries received by the company
// @Tags         inquiry
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Router       /api/company/inquiries [get]
func (h *InquiryHandler) ListForCompany(c echo.Context) error {
	companyID, _, err := ctxPrincipal(c, domain.PrincipalCompany)
	if err != nil {
		return err
	}

	inquiries, err := h.service.ListForCompany(c.Request().Context(), companyID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope{Success: true, Data: inquiries})
}

// ListForCustomer returns the inquiries sent by the authenticated customer.
//
// @Summary      List inquiries sent by the customer
// @Tags         inquiry
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Router       /api/customer/view [get]
func (h *InquiryHandler) ListForCustomer(c echo.Context) error {
	customerID, _, err := ctxPrincipal(c, domain.PrincipalCustomer)
	if err != nil {
		return err
	}

	inquiries, err := h.service.ListForCustomer(c.Request().Context(), customerID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope{Success: true, Data: inquiries})
}
