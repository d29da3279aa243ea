package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tradeconnect/marketplace-api/internal/api/metrics"
	"github.com/tradeconnect/marketplace-api/internal/core/domain"
	"github.com/tradeconnect/marketplace-api/internal/core/ports"
)

// CompanyHandler handles HTTP requests for seller accounts.
type CompanyHandler struct {
	service ports.CompanyService
}

func NewCompanyHandler(service ports.CompanyService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// Signup registers a new company and returns a session token.
//
// @Summary      Register a company
// @Tags         company
// @Accept       json
// @Produce      json
// @Param        body  body      companySignupRequest  true  "Company registration details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Router       /api/company/signup [post]
func (h *CompanyHandler) Signup(c echo.Context) error {
	var req companySignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("invalid payload"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail(err.Error()))
	}

	token, err := h.service.Signup(c.Request().Context(), ports.CompanySignupInput{
		CompanyName:           req.CompanyName,
		ContactPersonName:     req.ContactPersonName,
		PrimaryMobileNumber:   req.PrimaryMobileNumber,
		Email:                 req.Email,
		Pincode:               req.Pincode,
		District:              req.District,
		Country:               req.Country,
		City:                  req.City,
		State:                 req.State,
		BuildingNumberOrFloor: req.BuildingNumberOrFloor,
		GSTIN:                 req.GSTIN,
		PrimaryBusinessType:   req.PrimaryBusinessType,
		CEOName:               req.CEOName,
		GSTRegistrationDate:   req.GSTRegistrationDate,
		OwnershipType:         req.OwnershipType,
		Password:              req.Password,
		AreaOrStreet:          req.AreaOrStreet,
		Landmark:              req.Landmark,
		Locality:              req.Locality,
		Designation:           req.Designation,
		AlternateMobileNumber: req.AlternateMobileNumber,
		AlternateEmail:        req.AlternateEmail,
		WebsiteURL:            req.WebsiteURL,
		GoogleBusinessURL:     req.GoogleBusinessURL,
		InstagramBusinessURL:  req.InstagramBusinessURL,
		FacebookBusinessURL:   req.FacebookBusinessURL,
		SecondaryBusiness:     req.SecondaryBusiness,
		NumberOfEmployees:     req.NumberOfEmployees,
		AnnualTurnover:        req.AnnualTurnover,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return c.JSON(http.StatusBadRequest, fail(err.Error()))
		}
		return err
	}

	metrics.SignupsTotal.WithLabelValues(string(domain.PrincipalCompany)).Inc()
	resp := ok("Company registered successfully.")
	resp.Token = token
	return c.JSON(http.StatusCreated, resp)
}

// Login authenticates a company and returns a session token.
//
// @Summary      Company login
// @Tags         company
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Router       /api/company/login [post]
func (h *CompanyHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("invalid payload"))
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, fail("Email and password are required."))
	}

	token, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues(string(domain.PrincipalCompany), "failure").Inc()
			return c.JSON(http.StatusUnauthorized, fail("Invalid email or password."))
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues(string(domain.PrincipalCompany), "success").Inc()
	resp := ok("Login successful.")
	resp.Token = token
	return c.JSON(http.StatusOK, resp)
}

// Profile returns the authenticated company's profile.
//
// @Summary      Show company profile
// @Tags         company
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/company/profile [get]
func (h *CompanyHandler) Profile(c echo.Context) error {
	id, _, err := ctxPrincipal(c, domain.PrincipalCompany)
	if err != nil {
		return err
	}

	company, err := h.service.Profile(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, fail("Company not found."))
		}
		return err
	}

	return c.JSON(http.StatusOK, envelope{Success: true, Data: company})
}

// UpdateProfile replaces the company's profile; the full required-field set
// is revalidated. Password and reset fields cannot be changed here.
//
// @Summary      Update company profile
// @Tags         company
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      companyProfileRequest  true  "Full profile"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /api/company/profile [put]
func (h *CompanyHandler) UpdateProfile(c echo.Context) error {
	id, _, err := ctxPrincipal(c, domain.PrincipalCompany)
	if err != nil {
		return err
	}

	var req companyProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("invalid payload"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail(err.Error()))
	}

	company, err := h.service.UpdateProfile(c.Request().Context(), id, ports.CompanyProfileInput{
		CompanyName:           req.CompanyName,
		ContactPersonName:     req.ContactPersonName,
		PrimaryMobileNumber:   req.PrimaryMobileNumber,
		Email:                 req.Email,
		Pincode:               req.Pincode,
		District:              req.District,
		Country:               req.Country,
		City:                  req.City,
		State:                 req.State,
		BuildingNumberOrFloor: req.BuildingNumberOrFloor,
		GSTIN:                 req.GSTIN,
		PrimaryBusinessType:   req.PrimaryBusinessType,
		CEOName:               req.CEOName,
		GSTRegistrationDate:   req.GSTRegistrationDate,
		OwnershipType:         req.OwnershipType,
		AreaOrStreet:          req.AreaOrStreet,
		Landmark:              req.Landmark,
		Locality:              req.Locality,
		Designation:           req.Designation,
		AlternateMobileNumber: req.AlternateMobileNumber,
		AlternateEmail:        req.AlternateEmail,
		WebsiteURL:            req.WebsiteURL,
		GoogleBusinessURL:     req.GoogleBusinessURL,
		InstagramBusinessURL:  req.InstagramBusinessURL,
		FacebookBusinessURL:   req.FacebookBusinessURL,
		SecondaryBusiness:     req.SecondaryBusiness,
		NumberOfEmployees:     req.NumberOfEmployees,
		AnnualTurnover:        req.AnnualTurnover,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, fail("Company not found."))
		}
		return err
	}

	return c.JSON(http.StatusOK, envelope{Success: true, Data: company})
}

// DeleteProfile removes the company account. Owned products and inquiries are
// not cascaded.
//
// @Summary      Delete company profile
// @Tags         company
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/company/profile [delete]
func (h *CompanyHandler) DeleteProfile(c echo.Context) error {
	id, _, err := ctxPrincipal(c, domain.PrincipalCompany)
	if err != nil {
		return err
	}

	if err := h.service.DeleteProfile(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, fail("Company not found."))
		}
		return err
	}

	return c.JSON(http.StatusOK, ok("Profile deleted successfully."))
}

// ForgotPassword issues a password-reset ticket and emails the reset link.
//
// @Summary      Request company password reset
// @Tags         company
// @Accept       json
// @Produce      json
// @Param        body  body      forgotPasswordRequest  true  "Account email"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /api/company/forgot-password [post]
func (h *CompanyHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("invalid payload"))
	}
	if req.Email == "" {
		return c.JSON(http.StatusBadRequest, fail("Email is required."))
	}

	if err := h.service.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, fail("Company not found."))
		}
		return err
	}

	metrics.PasswordResetsTotal.WithLabelValues(string(domain.PrincipalCompany), "requested").Inc()
	return c.JSON(http.StatusOK, ok("Email sent for password reset."))
}

// ResetPassword redeems a reset ticket from the URL path and sets the new
// password. No session token is issued; the caller logs in afterwards.
//
// @Summary      Redeem company password reset
// @Tags         company
// @Accept       json
// @Produce      json
// @Param        token  path      string                true  "Plaintext reset token"
// @Param        body   body      resetPasswordRequest  true  "New password and confirmation"
// @Success      200    {object}  envelope
// @Failure      400    {object}  envelope
// @Router       /api/company/reset-password/{token} [put]
func (h *CompanyHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("invalid payload"))
	}

	err := h.service.ResetPassword(c.Request().Context(), c.Param("token"), req.Password, req.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPasswordMismatch):
			return c.JSON(http.StatusBadRequest, fail("Passwords do not match."))
		case errors.Is(err, domain.ErrInvalidResetToken):
			return c.JSON(http.StatusBadRequest, fail("Invalid or expired reset token."))
		}
		return err
	}

	metrics.PasswordResetsTotal.WithLabelValues(string(domain.PrincipalCompany), "redeemed").Inc()
	return c.JSON(http.StatusOK, ok("Password reset successfully."))
}

// UpdatePassword changes the password after verifying the old one.
//
// @Summary      Update company password
// @Tags         company
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updatePasswordRequest  true  "Old and new password"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /api/company/update-password [put]
func (h *CompanyHandler) UpdatePassword(c echo.Context) error {
	id, _, err := ctxPrincipal(c, domain.PrincipalCompany)
	if err != nil {
		return err
	}

	var req updatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("invalid payload"))
	}
	if req.OldPassword == "" || req.NewPassword == "" {
		return c.JSON(http.StatusBadRequest, fail("Old password and new password are required."))
	}

	err = h.service.UpdatePassword(c.Request().Context(), id, req.OldPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, fail("Old password is incorrect."))
		case errors.Is(err, domain.ErrNotFound):
			return c.JSON(http.StatusNotFound, fail("Company not found."))
		}
		return err
	}

	return c.JSON(http.StatusOK, ok("Password updated successfully."))
}

// ListAll returns the public company directory.
//
// @Summary      List all companies
// @Tags         company
// @Produce      json
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/company/all [get]
func (h *CompanyHandler) ListAll(c echo.Context) error {
	companies, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	if len(companies) == 0 {
		return c.JSON(http.StatusNotFound, fail("No companies found."))
	}

	resp := ok("Companies fetched successfully.")
	resp.Data = companies
	return c.JSON(http.StatusOK, resp)
}
