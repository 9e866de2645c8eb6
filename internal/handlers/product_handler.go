// File: internal/handlers/product_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dcastano/go-shopchat/internal/dtos"
	"github.com/dcastano/go-shopchat/internal/services"
)

type ProductHandler struct {
	ProductService *services.ProductService
}

func NewProductHandler(ps *services.ProductService) *ProductHandler {
	return &ProductHandler{ProductService: ps}
}

// GetAllProducts handles GET /products.
func (h *ProductHandler) GetAllProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.ProductService.GetAllProducts(r.Context())
	if err != nil {
		writeError(w, "Could not retrieve products", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// GetAvailableProducts handles GET /products/available.
func (h *ProductHandler) GetAvailableProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.ProductService.GetAvailableProducts(r.Context())
	if err != nil {
		writeError(w, "Could not retrieve products", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// SearchProducts handles GET /products/search?brand=&category=.
func (h *ProductHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	brand := r.URL.Query().Get("brand")
	category := r.URL.Query().Get("category")

	products, err := h.ProductService.SearchProducts(r.Context(), brand, category)
	if err != nil {
		writeError(w, "Could not search products", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// GetProductByID handles GET /products/{id}.
func (h *ProductHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	productID, ok := parseProductID(w, r)
	if !ok {
		return
	}

	productDTO, err := h.ProductService.GetProductByID(r.Context(), productID)
	if err != nil {
		writeProductError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, productDTO)
}

// CreateProduct handles POST /products.
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var dto dtos.ProductDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.ProductService.CreateProduct(r.Context(), dto)
	if err != nil {
		writeProductError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateProduct handles PUT /products/{id}.
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := parseProductID(w, r)
	if !ok {
		return
	}

	var dto dtos.ProductDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.ProductService.UpdateProduct(r.Context(), productID, dto)
	if err != nil {
		writeProductError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteProduct handles DELETE /products/{id}.
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := parseProductID(w, r)
	if !ok {
		return
	}

	if err := h.ProductService.DeleteProduct(r.Context(), productID); err != nil {
		writeProductError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AdjustStock handles PATCH /products/{id}/stock.
func (h *ProductHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	productID, ok := parseProductID(w, r)
	if !ok {
		return
	}

	var req dtos.StockAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.ProductService.AdjustStock(r.Context(), productID, req.Adjustment)
	if err != nil {
		writeProductError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func parseProductID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		writeError(w, "Invalid product ID", http.StatusBadRequest)
		return 0, false
	}
	return uint(id), true
}

func writeProductError(w http.ResponseWriter, err error) {
	var invalidData *services.InvalidProductDataError
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		writeError(w, "Product not found", http.StatusNotFound)
	case errors.As(err, &invalidData):
		writeError(w, invalidData.Error(), http.StatusBadRequest)
	default:
		writeError(w, "An unexpected error occurred", http.StatusInternalServerError)
	}
}
