package services

import (
	"context"

	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
	"github.com/tableauchef/tableauchef_backend/internal/dto"
)

// ProductSvcFacade manages the sellable catalog.
type ProductSvcFacade interface {
	CreateProduct(ctx context.Context, actorUserID string, req dto.CreateProductRequest) (*domain.Product, error)
	GetProductByID(ctx context.Context, actorUserID string, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context, actorUserID string, limit int, offset int) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, actorUserID string, productID string, req dto.UpdateProductRequest) (*domain.Product, error)
	DeleteProduct(ctx context.Context, actorUserID string, productID string) error
}
