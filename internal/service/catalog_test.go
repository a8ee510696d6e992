package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sizzilia/storefront/internal/models"
	"github.com/sizzilia/storefront/internal/repo"
	"github.com/sizzilia/storefront/internal/transport"
)

// memProductRepo mimics the mongo repository's id semantics in memory.
type memProductRepo struct {
	byID  map[string]models.Product
	order []string
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{byID: map[string]models.Product{}}
}

func (r *memProductRepo) List(_ context.Context) ([]models.Product, error) {
	out := make([]models.Product, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *memProductRepo) Get(_ context.Context, id string) (*models.Product, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repo.ErrInvalidID
	}
	p, ok := r.byID[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &p, nil
}

func (r *memProductRepo) Create(_ context.Context, p *models.Product) (*models.Product, error) {
	p.ID = primitive.NewObjectID()
	r.byID[p.ID.Hex()] = *p
	r.order = append(r.order, p.ID.Hex())
	return p, nil
}

func (r *memProductRepo) Replace(_ context.Context, p *models.Product) (*models.Product, error) {
	if _, ok := r.byID[p.ID.Hex()]; !ok {
		return nil, repo.ErrNotFound
	}
	r.byID[p.ID.Hex()] = *p
	return p, nil
}

func (r *memProductRepo) Delete(_ context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repo.ErrInvalidID
	}
	if _, ok := r.byID[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func TestCreateProductRequiredFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  transport.CreateProductRequest
	}{
		{name: "empty name", req: transport.CreateProductRequest{Name: "", Price: 10, Category: "x"}},
		{name: "blank name", req: transport.CreateProductRequest{Name: "   ", Price: 10, Category: "x"}},
		{name: "zero price", req: transport.CreateProductRequest{Name: "Shirt", Price: 0, Category: "Tops"}},
		{name: "negative price", req: transport.CreateProductRequest{Name: "Shirt", Price: -1, Category: "Tops"}},
		{name: "empty category", req: transport.CreateProductRequest{Name: "Shirt", Price: 10, Category: ""}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &CatalogService{Repo: newMemProductRepo()}
			p, err := svc.CreateProduct(context.Background(), tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, "Nombre, precio y categoría son requeridos", err.Error())
			assert.Nil(t, p)
		})
	}
}

func TestCreateProductDefaultsHoverImage(t *testing.T) {
	t.Parallel()

	svc := &CatalogService{Repo: newMemProductRepo()}

	p, err := svc.CreateProduct(context.Background(), transport.CreateProductRequest{
		Name:     "Shirt",
		Price:    10,
		Category: "Tops",
		Image:    "/img/shirt.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "/img/shirt.jpg", p.HoverImage)
	assert.False(t, p.ID.IsZero())
	assert.False(t, p.CreatedAt.IsZero())
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)

	// no image at all leaves both empty
	p2, err := svc.CreateProduct(context.Background(), transport.CreateProductRequest{
		Name:     "Cap",
		Price:    5,
		Category: "Hats",
	})
	require.NoError(t, err)
	assert.Empty(t, p2.Image)
	assert.Empty(t, p2.HoverImage)
}

func TestCreateProductDescriptionTooLong(t *testing.T) {
	t.Parallel()

	svc := &CatalogService{Repo: newMemProductRepo()}

	_, err := svc.CreateProduct(context.Background(), transport.CreateProductRequest{
		Name:        "Shirt",
		Price:       10,
		Category:    "Tops",
		Description: strings.Repeat("a", models.MaxDescriptionLen+1),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateProductPartialReplacement(t *testing.T) {
	t.Parallel()

	memRepo := newMemProductRepo()
	svc := &CatalogService{Repo: memRepo}

	created, err := svc.CreateProduct(context.Background(), transport.CreateProductRequest{
		Name:       "Shirt",
		Price:      10,
		Category:   "Tops",
		Image:      "/img/shirt.jpg",
		HoverImage: "/img/shirt-hover.jpg",
	})
	require.NoError(t, err)

	newPrice := 12.50
	updated, err := svc.UpdateProduct(context.Background(), created.ID.Hex(), transport.UpdateProductRequest{
		Price: &newPrice,
	})
	require.NoError(t, err)
	assert.Equal(t, "Shirt", updated.Name)
	assert.InDelta(t, 12.50, updated.Price, 1e-9)
	assert.Equal(t, "/img/shirt-hover.jpg", updated.HoverImage)

	// clearing hoverImage falls back to the main image
	empty := ""
	updated, err = svc.UpdateProduct(context.Background(), created.ID.Hex(), transport.UpdateProductRequest{
		HoverImage: &empty,
	})
	require.NoError(t, err)
	assert.Equal(t, "/img/shirt.jpg", updated.HoverImage)
}

func TestUpdateProductErrors(t *testing.T) {
	t.Parallel()

	svc := &CatalogService{Repo: newMemProductRepo()}

	_, err := svc.UpdateProduct(context.Background(), "not-a-hex-id", transport.UpdateProductRequest{})
	assert.ErrorIs(t, err, repo.ErrInvalidID)

	_, err = svc.UpdateProduct(context.Background(), primitive.NewObjectID().Hex(), transport.UpdateProductRequest{})
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestDeleteProductMissing(t *testing.T) {
	t.Parallel()

	svc := &CatalogService{Repo: newMemProductRepo()}

	err := svc.DeleteProduct(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, repo.ErrNotFound)
}
