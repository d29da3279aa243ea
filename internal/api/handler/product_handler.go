package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tradeconnect/marketplace-api/internal/api/metrics"
	"github.com/tradeconnect/marketplace-api/internal/core/domain"
	"github.com/tradeconnect/marketplace-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

type createProductRequest struct {
	ProductName string   `json:"productName" validate:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category"    validate:"required"`
	Price       float64  `json:"price"       validate:"required,gt=0"`
	Features    []string `json:"features"`
	Quantity    int64    `json:"quantity"    validate:"required,gt=0"`
}

type searchProductsRequest struct {
	NameSubstring string `json:"nameSubstring" validate:"required"`
}

// Create lists a new product for the authenticated company, or merges the
// quantity into an existing product with the same name.
//
// @Summary      Create a product or restock an existing one
// @Tags         product
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      200   {object}  envelope  "quantity merged into existing product"
// @Success      201   {object}  envelope  "new product created"
// @Failure      400   {object}  envelope
// @Router       /api/product/create [post]
func (h *ProductHandler) Create(c echo.Context) error {
	companyID, _, err := ctxPrincipal(c, domain.PrincipalCompany)
	if err != nil {
		return err
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("invalid payload"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail(err.Error()))
	}

	product, merged, err := h.service.Create(c.Request().Context(), ports.CreateProductInput{
		ProductName: req.ProductName,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Features:    req.Features,
		Quantity:    req.Quantity,
		CompanyID:   companyID,
	})
	if err != nil {
		return err
	}

	if merged {
		metrics.ProductsCreatedTotal.WithLabelValues("merged").Inc()
		resp := ok("Product quantity updated successfully.")
		resp.Data = product
		return c.JSON(http.StatusOK, resp)
	}

	metrics.ProductsCreatedTotal.WithLabelValues("created").Inc()
	resp := ok("Product created successfully.")
	resp.Data = product
	return c.JSON(http.StatusCreated, resp)
}

// Search returns all products whose name contains the given substring.
//
// @Summary      Search products by name substring
// @Tags         product
// @Accept       json
// @Produce      json
// @Param        body  body      searchProductsRequest  true  "Substring to search for"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Router       /api/product/search [post]
func (h *ProductHandler) Search(c echo.Context) error {
	var req searchProductsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("invalid payload"))
	}
	if req.NameSubstring == "" {
		return c.JSON(http.StatusBadRequest, fail("Please provide a substring to search for."))
	}

	listings, err := h.service.Search(c.Request().Context(), req.NameSubstring)
	if err != nil {
		return err
	}

	resp := ok("Products retrieved successfully.")
	resp.Data = listings
	return c.JSON(http.StatusOK, resp)
}

// Detail returns a product by its exact name, with the owning company.
//
// @Summary      Get product details by name
// @Tags         product
// @Produce      json
// @Param        productName  path      string  true  "Exact product name"
// @Success      200          {object}  envelope
// @Failure      404          {object}  envelope
// @Router       /api/product/{productName}/details [get]
func (h *ProductHandler) Detail(c echo.Context) error {
	productName := c.Param("productName")
	if productName == "" {
		return c.JSON(http.StatusBadRequest, fail("Please provide a product name."))
	}

	listing, err := h.service.Detail(c.Request().Context(), productName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, fail("Product not found."))
		}
		return err
	}

	resp := ok("Product retrieved successfully.")
	resp.Data = listing
	return c.JSON(http.StatusOK, resp)
}

// ListByCompany returns every product owned by the authenticated company.
//
// @Summary      List the authenticated company's products
// @Tags         product
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/product/company/products [get]
func (h *ProductHandler) ListByCompany(c echo.Context) error {
	companyID, _, err := ctxPrincipal(c, domain.PrincipalCompany)
	if err != nil {
		return err
	}

	products, err := h.service.ListByCompany(c.Request().Context(), companyID)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		return c.JSON(http.StatusNotFound, fail("No products found for this company."))
	}

	resp := ok("Products retrieved successfully.")
	resp.Data = products
	return c.JSON(http.StatusOK, resp)
}
