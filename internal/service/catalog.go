package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avoronkov/catalog-api/internal/logging"
	"github.com/avoronkov/catalog-api/internal/models"
	"github.com/avoronkov/catalog-api/internal/mykafka"
	"github.com/avoronkov/catalog-api/internal/search"
	"github.com/avoronkov/catalog-api/internal/transport"
)

var ErrNegativePrice = errors.New("price cannot be negative")

// ProductRepo is the persistence gateway the catalog needs from the store.
type ProductRepo interface {
	CreateProduct(ctx context.Context, prod *models.Product) error
	ProductByID(ctx context.Context, id uint) (*models.Product, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	SaveProduct(ctx context.Context, prod *models.Product) error
	DeleteProduct(ctx context.Context, id uint) error
}

type CatalogService struct {
	Repo ProductRepo

	// Events and Index are optional side channels; both are best-effort
	// and never fail a request.
	Events *mykafka.Producer
	Index  *search.Index
}

func (s *CatalogService) CreateProduct(ctx context.Context, name string, price float64) (*models.Product, error) {
	if price < 0 {
		return nil, ErrNegativePrice
	}

	prod := &models.Product{Name: name, Price: price}
	if err := s.Repo.CreateProduct(ctx, prod); err != nil {
		return nil, err
	}

	s.publish(ctx, "product_created", prod.ID, map[string]any{
		"type":      "product_created",
		"productID": prod.ID,
		"name":      prod.Name,
	})
	s.indexProduct(ctx, prod)

	return prod, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	return s.Repo.ProductByID(ctx, id)
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx)
}

func (s *CatalogService) PatchProduct(ctx context.Context, id uint, req transport.PatchProductRequest) (*models.Product, error) {
	prod, err := s.Repo.ProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		prod.Name = *req.Name
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, ErrNegativePrice
		}
		prod.Price = *req.Price
	}

	if err := s.Repo.SaveProduct(ctx, prod); err != nil {
		return nil, err
	}

	s.publish(ctx, "product_updated", prod.ID, map[string]any{
		"type":      "product_updated",
		"productID": prod.ID,
		"name":      prod.Name,
	})
	s.indexProduct(ctx, prod)

	return prod, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		return err
	}

	s.publish(ctx, "product_deleted", id, map[string]any{
		"type":      "product_deleted",
		"productID": id,
	})
	if s.Index != nil {
		sideCtx, cancel := sideEffectContext(ctx)
		defer cancel()
		if err := s.Index.DeleteProduct(sideCtx, id); err != nil {
			logging.FromContext(ctx).Error("search delete failed", "productID", id, "error", err)
		}
	}

	return nil
}

func sideEffectContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, 5*time.Second)
}

func (s *CatalogService) publish(ctx context.Context, kind string, id uint, event map[string]any) {
	if s.Events == nil {
		return
	}
	sideCtx, cancel := sideEffectContext(ctx)
	defer cancel()
	if err := s.Events.PublishEvent(sideCtx, fmt.Sprint(id), event); err != nil {
		logging.FromContext(ctx).Error("kafka publish failed", "event", kind, "productID", id, "error", err)
	}
}

func (s *CatalogService) indexProduct(ctx context.Context, prod *models.Product) {
	if s.Index == nil {
		return
	}
	sideCtx, cancel := sideEffectContext(ctx)
	defer cancel()
	if err := s.Index.IndexProduct(sideCtx, prod); err != nil {
		logging.FromContext(ctx).Error("search index failed", "productID", prod.ID, "error", err)
	}
}
