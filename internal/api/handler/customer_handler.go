package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tradeconnect/marketplace-api/internal/api/metrics"
	"github.com/tradeconnect/marketplace-api/internal/core/domain"
	"github.com/tradeconnect/marketplace-api/internal/core/ports"
)

// CustomerHandler handles HTTP requests for buyer accounts.
type CustomerHandler struct {
	service ports.CustomerService
}

func NewCustomerHandler(service ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

type customerSignupRequest struct {
	Name         string `json:"Name"         validate:"required"`
	MobileNumber string `json:"MobileNumber" validate:"required"`
	Email        string `json:"Email"        validate:"required,email"`
	Pincode      string `json:"Pincode"      validate:"required"`
	District     string `json:"District"     validate:"required"`
	Country      string `json:"Country"      validate:"required"`
	Password     string `json:"password"     validate:"required"`

	AreaOrStreet string `json:"AreaOrStreet"`
	Landmark     string `json:"Landmark"`
}

// customerProfileRequest carries a partial update; only fields present in the
// body are applied.
type customerProfileRequest struct {
	Name         *string `json:"Name"`
	MobileNumber *string `json:"MobileNumber"`
	Email        *string `json:"Email"`
	Pincode      *string `json:"Pincode"`
	District     *string `json:"District"`
	Country      *string `json:"Country"`
	AreaOrStreet *string `json:"AreaOrStreet"`
	Landmark     *string `json:"Landmark"`
}

// Signup registers a new customer and returns a session token.
//
// @Summary      Register a customer
// @Tags         customer
// @Accept       json
// @Produce      json
// @Param        body  body      customerSignupRequest  true  "Customer registration details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Router       /api/customer/signup [post]
func (h *CustomerHandler) Signup(c echo.Context) error {
	var req customerSignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("invalid payload"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail(err.Error()))
	}

	token, err := h.service.Signup(c.Request().Context(), ports.CustomerSignupInput{
		Name:         req.Name,
		MobileNumber: req.MobileNumber,
		Email:        req.Email,
		Pincode:      req.Pincode,
		District:     req.District,
		Country:      req.Country,
		Password:     req.Password,
		AreaOrStreet: req.AreaOrStreet,
		Landmark:     req.Landmark,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return c.JSON(http.StatusBadRequest, fail(err.Error()))
		}
		return err
	}

	metrics.SignupsTotal.WithLabelValues(string(domain.PrincipalCustomer)).Inc()
	resp := ok("Customer registered successfully.")
	resp.Token = token
	return c.JSON(http.StatusCreated, resp)
}

// Login authenticates a customer and returns a session token.
//
// @Summary      Customer login
// @Tags         customer
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Router       /api/customer/login [post]
func (h *CustomerHandler) Login(c echo.Context) error {
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
			metrics.LoginsTotal.WithLabelValues(string(domain.PrincipalCustomer), "failure").Inc()
			return c.JSON(http.StatusUnauthorized, fail("Invalid email or password."))
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues(string(domain.PrincipalCustomer), "success").Inc()
	resp := ok("Login successful.")
	resp.Token = token
	return c.JSON(http.StatusOK, resp)
}

// Profile returns the authenticated customer's profile.
//
// @Summary      Show customer profile
// @Tags         customer
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/customer/profile [get]
func (h *CustomerHandler) Profile(c echo.Context) error {
	id, _, err := ctxPrincipal(c, domain.PrincipalCustomer)
	if err != nil {
		return err
	}

	customer, err := h.service.Profile(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, fail("Customer not found."))
		}
		return err
	}

	return c.JSON(http.StatusOK, envelope{Success: true, Data: customer})
}

// UpdateProfile applies a partial profile update. Password and reset fields
// cannot be changed here.
//
// @Summary      Update customer profile
// @Tags         customer
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      customerProfileRequest  true  "Fields to update"
// @Success      200   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /api/customer/profile [put]
func (h *CustomerHandler) UpdateProfile(c echo.Context) error {
	id, _, err := ctxPrincipal(c, domain.PrincipalCustomer)
	if err != nil {
		return err
	}

	var req customerProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("invalid payload"))
	}

	customer, err := h.service.UpdateProfile(c.Request().Context(), id, ports.CustomerProfilePatch{
		Name:         req.Name,
		MobileNumber: req.MobileNumber,
		Email:        req.Email,
		Pincode:      req.Pincode,
		District:     req.District,
		Country:      req.Country,
		AreaOrStreet: req.AreaOrStreet,
		Landmark:     req.Landmark,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, fail("Customer not found."))
		}
		return err
	}

	return c.JSON(http.StatusOK, envelope{Success: true, Data: customer})
}

// DeleteProfile removes the customer account. Sent inquiries are not cascaded.
//
// @Summary      Delete customer profile
// @Tags         customer
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/customer/profile [delete]
func (h *CustomerHandler) DeleteProfile(c echo.Context) error {
	id, _, err := ctxPrincipal(c, domain.PrincipalCustomer)
	if err != nil {
		return err
	}

	if err := h.service.DeleteProfile(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, fail("Customer not found."))
		}
		return err
	}

	return c.JSON(http.StatusOK, ok("Profile deleted successfully."))
}

// ForgotPassword issues a password-reset ticket and emails the reset link.
//
// @Summary      Request customer password reset
// @Tags         customer
// @Accept       json
// @Produce      json
// @Param        body  body      forgotPasswordRequest  true  "Account email"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /api/customer/forgot-password [post]
func (h *CustomerHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("invalid payload"))
	}
	if req.Email == "" {
		return c.JSON(http.StatusBadRequest, fail("Email is required."))
	}

	if err := h.service.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, fail("Customer not found."))
		}
		return err
	}

	metrics.PasswordResetsTotal.WithLabelValues(string(domain.PrincipalCustomer), "requested").Inc()
	return c.JSON(http.StatusOK, ok("Email sent for password reset."))
}

// ResetPassword redeems a reset ticket from the URL path.
//
// @Summary      Redeem customer password reset
// @Tags         customer
// @Accept       json
// @Produce      json
// @Param        token  path      string                true  "Plaintext reset token"
// @Param        body   body      resetPasswordRequest  true  "New password and confirmation"
// @Success      200    {object}  envelope
// @Failure      400    {object}  envelope
// @Router       /api/customer/reset-password/{token} [put]
func (h *CustomerHandler) ResetPassword(c echo.Context) error {
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

	metrics.PasswordResetsTotal.WithLabelValues(string(domain.PrincipalCustomer), "redeemed").Inc()
	return c.JSON(http.StatusOK, ok("Password reset successfully."))
}

// UpdatePassword changes the password after verifying the old one.
//
// @Summary      Update customer password
// @Tags         customer
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updatePasswordRequest  true  "Old and new password"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /api/customer/update-password [put]
func (h *CustomerHandler) UpdatePassword(c echo.Context) error {
	id, _, err := ctxPrincipal(c, domain.PrincipalCustomer)
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
			return c.JSON(http.StatusNotFound, fail("Customer not found."))
		}
		return err
	}

	return c.JSON(http.StatusOK, ok("Password updated successfully."))
}
