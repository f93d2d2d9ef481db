package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinema-commerce-api/internal/store"
	"github.com/iliyamo/cinema-commerce-api/internal/utils"
)

// ProductStore is the persistence slice used by the product endpoints.
// *repository.ProductRepo satisfies it.
type ProductStore interface {
	Create(ctx context.Context, item store.Item) error
	ListByTenant(ctx context.Context, tenantID string) ([]store.Item, error)
	Delete(ctx context.Context, tenantID, productID string) error
}

// ProductHandler serves the product catalog endpoints.
type ProductHandler struct {
	Products ProductStore
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(products ProductStore) *ProductHandler {
	if products == nil {
		panic("nil store passed to NewProductHandler")
	}
	return &ProductHandler{Products: products}
}

// addProductRequest is the validated input of POST /v1/products.
type addProductRequest struct {
	TenantID    string
	Name        string
	Description string
	Price       any // validated separately; zero is a legal price
}

// parseAddProductRequest validates the raw payload.  The price check is
// a defined-check, not a truthiness check: price 0 must pass.
func parseAddProductRequest(raw map[string]any) (addProductRequest, string) {
	req := addProductRequest{
		TenantID:    stringField(raw, "tenant_id"),
		Name:        stringField(raw, "name"),
		Description: stringField(raw, "description"),
	}
	price, defined := raw["price"]
	if req.TenantID == "" || req.Name == "" || req.Description == "" || !defined {
		return req, "tenant_id, name, description and price are required"
	}
	req.Price = price
	return req, ""
}

// ListProducts handles GET /v1/products?tenant_id.  The whole tenant
// catalog is returned with store numerics normalized.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	tenantID := c.QueryParam("tenant_id")
	if tenantID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant_id is required"})
	}
	items, err := h.Products.ListByTenant(c.Request().Context(), tenantID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to list products", "details": err.Error()})
	}
	return c.JSON(http.StatusOK, store.NormalizeItems(items))
}

// AddProduct handles POST /v1/products.
func (h *ProductHandler) AddProduct(c echo.Context) error {
	raw, err := bindJSON(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON body"})
	}
	req, msg := parseAddProductRequest(raw)
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	price, err := utils.ParsePrice(req.Price)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "price must be a valid number"})
	}

	productID := utils.NewID()
	item := store.Item{
		"tenant_id":   req.TenantID,
		"product_id":  productID,
		"name":        req.Name,
		"description": req.Description,
		"price":       price.InexactFloat64(),
	}
	if err := h.Products.Create(c.Request().Context(), item); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to add product", "details": err.Error()})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "product added successfully", "product_id": productID})
}

// DeleteProduct handles DELETE /v1/products/:product_id?tenant_id.  The
// delete is idempotent: removing a product that never existed still
// responds 200.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	productID := c.Param("product_id")
	tenantID := c.QueryParam("tenant_id")
	if productID == "" || tenantID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "product_id and tenant_id are required"})
	}
	if err := h.Products.Delete(c.Request().Context(), tenantID, productID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete product", "details": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "product deleted successfully"})
}
