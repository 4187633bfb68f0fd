package repositories

import (
	"context"

	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
)

// ProductReader defines read operations for catalog products.
type ProductReader interface {
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)
	ListProductsByRestaurant(ctx context.Context, restaurantName string, limit int, offset int) ([]domain.Product, error)
}

// ProductWriter defines write operations for catalog products.
type ProductWriter interface {
	SaveProduct(ctx context.Context, product domain.Product) error
	UpdateProduct(ctx context.Context, product domain.Product) error
	DeleteProduct(ctx context.Context, productID string) error
}

// ProductRepositoryFacade combines all product repository interfaces.
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
