package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tableauchef/tableauchef_backend/internal/apperrors"
	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
	portsrepo "github.com/tableauchef/tableauchef_backend/internal/core/ports/repositories"
	portssvc "github.com/tableauchef/tableauchef_backend/internal/core/ports/services"
	"github.com/tableauchef/tableauchef_backend/internal/dto"
)

type productService struct {
	productRepo portsrepo.ProductRepositoryFacade
	authorizer  portssvc.AuthorizerSvc
}

// NewProductService creates the catalog service.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade, authorizer portssvc.AuthorizerSvc) portssvc.ProductSvcFacade {
	return &productService{productRepo: productRepo, authorizer: authorizer}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

func (s *productService) CreateProduct(ctx context.Context, actorUserID string, req dto.CreateProductRequest) (*domain.Product, error) {
	actor, err := s.authorizer.AuthorizeAction(ctx, actorUserID, domain.CapManageProducts)
	if err != nil {
		return nil, err
	}
	if req.Price.IsNegative() {
		return nil, apperrors.ErrValidation
	}

	now := time.Now().UTC()
	product := domain.Product{
		ProductID:      uuid.NewString(),
		RestaurantName: actor.RestaurantName,
		Name:           req.Name,
		Category:       req.Category,
		Unit:           req.Unit,
		Price:          req.Price,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}
	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		return nil, err
	}
	return &product, nil
}

// GetProductByID is readable by anyone who takes orders, not only catalog
// managers, so waiters can browse the menu.
func (s *productService) GetProductByID(ctx context.Context, actorUserID string, productID string) (*domain.Product, error) {
	actor, err := s.authorizer.AuthorizeAction(ctx, actorUserID, domain.CapTakeOrders)
	if err != nil {
		return nil, err
	}
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.RestaurantName != actor.RestaurantName {
		return nil, apperrors.ErrNotFound
	}
	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, actorUserID string, limit int, offset int) ([]domain.Product, error) {
	actor, err := s.authorizer.AuthorizeAction(ctx, actorUserID, domain.CapTakeOrders)
	if err != nil {
		return nil, err
	}
	return s.productRepo.ListProductsByRestaurant(ctx, actor.RestaurantName, limit, offset)
}

func (s *productService) UpdateProduct(ctx context.Context, actorUserID string, productID string, req dto.UpdateProductRequest) (*domain.Product, error) {
	actor, err := s.authorizer.AuthorizeAction(ctx, actorUserID, domain.CapManageProducts)
	if err != nil {
		return nil, err
	}
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.RestaurantName != actor.RestaurantName {
		return nil, apperrors.ErrNotFound
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Unit != nil {
		product.Unit = *req.Unit
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, apperrors.ErrValidation
		}
		product.Price = *req.Price
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	product.LastUpdatedAt = time.Now().UTC()
	product.LastUpdatedBy = actorUserID

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, actorUserID string, productID string) error {
	actor, err := s.authorizer.AuthorizeAction(ctx, actorUserID, domain.CapManageProducts)
	if err != nil {
		return err
	}
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return err
	}
	if product.RestaurantName != actor.RestaurantName {
		return apperrors.ErrNotFound
	}
	return s.productRepo.DeleteProduct(ctx, productID)
}
