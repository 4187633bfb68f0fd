package dto

import (
	"github.com/shopspring/decimal"
	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
)

// CreateProductRequest carries the fields of a new catalog product.
type CreateProductRequest struct {
	Name     string          `json:"name" binding:"required"`
	Category string          `json:"category"`
	Unit     string          `json:"unit"`
	Price    decimal.Decimal `json:"price" binding:"required"`
}

// UpdateProductRequest updates a catalog product.
type UpdateProductRequest struct {
	Name     *string          `json:"name"`
	Category *string          `json:"category"`
	Unit     *string          `json:"unit"`
	Price    *decimal.Decimal `json:"price"`
	IsActive *bool            `json:"isActive"`
}

// ProductResponse is the public shape of a catalog product.
type ProductResponse struct {
	ProductID      string `json:"productID"`
	RestaurantName string `json:"restaurantName"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	Unit           string `json:"unit"`
	Price          string `json:"price"`
	IsActive       bool   `json:"isActive"`
}

// ToProductResponse converts a domain product to its response DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:      p.ProductID,
		RestaurantName: p.RestaurantName,
		Name:           p.Name,
		Category:       p.Category,
		Unit:           p.Unit,
		Price:          p.Price.String(),
		IsActive:       p.IsActive,
	}
}

// ToListProductsResponse converts a slice of products to response DTOs.
func ToListProductsResponse(products []domain.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i := range products {
		out[i] = ToProductResponse(&products[i])
	}
	return out
}
