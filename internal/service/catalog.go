package service

import (
	"context"
	"strings"
	"time"

	"github.com/sizzilia/storefront/internal/models"
	"github.com/sizzilia/storefront/internal/repo"
	"github.com/sizzilia/storefront/internal/transport"
)

type CatalogService struct {
	Repo repo.ProductRepository
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.List(ctx)
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.Repo.Get(ctx, id)
}

func (s *CatalogService) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	name := strings.TrimSpace(req.Name)
	category := strings.TrimSpace(req.Category)

	if name == "" || category == "" || req.Price <= 0 {
		return nil, invalid("Nombre, precio y categoría son requeridos")
	}
	if len(req.Description) > models.MaxDescriptionLen {
		return nil, invalid("La descripción no puede superar los 500 caracteres")
	}

	hoverImage := req.HoverImage
	if hoverImage == "" {
		hoverImage = req.Image
	}

	now := time.Now().UTC()
	p := &models.Product{
		Name:        name,
		Price:       req.Price,
		Category:    category,
		Image:       req.Image,
		HoverImage:  hoverImage,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return s.Repo.Create(ctx, p)
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id string, req transport.UpdateProductRequest) (*models.Product, error) {
	p, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Category != nil {
		p.Category = strings.TrimSpace(*req.Category)
	}
	if req.Image != nil {
		p.Image = *req.Image
	}
	if req.HoverImage != nil {
		p.HoverImage = *req.HoverImage
	}
	if req.Description != nil {
		p.Description = *req.Description
	}

	if p.Name == "" || p.Category == "" || p.Price <= 0 {
		return nil, invalid("Nombre, precio y categoría son requeridos")
	}
	if len(p.Description) > models.MaxDescriptionLen {
		return nil, invalid("La descripción no puede superar los 500 caracteres")
	}

	// hoverImage keeps falling back to the main image
	if p.HoverImage == "" {
		p.HoverImage = p.Image
	}

	p.UpdatedAt = time.Now().UTC()

	return s.Repo.Replace(ctx, p)
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
