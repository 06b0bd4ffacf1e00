package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/eduardomuchak/mercado-api/internal/application/dto"
	"github.com/eduardomuchak/mercado-api/internal/domain/entity"
	"github.com/eduardomuchak/mercado-api/internal/domain/repository"
)

// ProductUseCase casos de uso para productos y sus vínculos con
// categorías. Las operaciones que tocan la tabla de asociación corren
// dentro de una transacción vía TxRunner.
type ProductUseCase struct {
	repo  repository.ProductRepository
	links repository.CategoryProductRepository
	tx    TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, links repository.CategoryProductRepository, tx TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, links: links, tx: tx}
}

// List devuelve los productos no borrados con los IDs de sus categorías.
func (uc *ProductUseCase) List() (*dto.ProductListResponse, error) {
	products, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	links, err := uc.links.ListByProductIDs(ids)
	if err != nil {
		return nil, err
	}
	byProduct := make(map[string][]string, len(products))
	for _, l := range links {
		byProduct[l.ProductID] = append(byProduct[l.ProductID], l.CategoryID)
	}
	total, err := uc.repo.CountActive()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductListItem, 0, len(products))
	for _, p := range products {
		categoriesIDs := byProduct[p.ID]
		if categoriesIDs == nil {
			categoriesIDs = []string{}
		}
		items = append(items, dto.ProductListItem{
			ID:            p.ID,
			Name:          p.Name,
			Checked:       p.Checked,
			CategoriesIDs: categoriesIDs,
		})
	}
	return &dto.ProductListResponse{Total: total, Products: items}, nil
}

// ListByCategory devuelve los productos vinculados a una categoría,
// proyectados a {id, name}. No filtra IsDeleted: un producto borrado
// que sigue vinculado también aparece (comportamiento heredado).
func (uc *ProductUseCase) ListByCategory(categoryID string) (*dto.ProductsByCategoryResponse, error) {
	products, err := uc.repo.ListByCategory(categoryID)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.CountByCategory(categoryID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductSummary, 0, len(products))
	for _, p := range products {
		items = append(items, dto.ProductSummary{ID: p.ID, Name: p.Name})
	}
	return &dto.ProductsByCategoryResponse{Total: total, Products: items}, nil
}

// Create crea el producto y un vínculo por cada categoría, todo en una
// transacción: si alguna categoría no existe (violación de FK) no queda
// ninguna fila parcial y el error llega como domain.ErrConflict.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductDetail, error) {
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Checked:   false,
		CreatedAt: time.Now(),
		IsDeleted: false,
	}
	err := uc.tx.Run(ctx, func(productRepo repository.ProductRepository, linkRepo repository.CategoryProductRepository) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		for _, categoryID := range in.CategoriesIDs {
			link := &entity.CategoryProduct{ProductID: product.ID, CategoryID: categoryID}
			if err := linkRepo.Create(link); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductDetail(product), nil
}

// Update renombra el producto y, si CategoriesIDs viene en el request,
// reemplaza el conjunto completo de vínculos (delete-all + insert, nunca
// un diff) dentro de una transacción. Devuelve nil si el producto no existe.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductSummary, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	name := product.Name
	if in.Name != nil && *in.Name != "" {
		name = *in.Name
	}
	err = uc.tx.Run(ctx, func(productRepo repository.ProductRepository, linkRepo repository.CategoryProductRepository) error {
		if err := productRepo.UpdateName(id, name); err != nil {
			return err
		}
		if in.CategoriesIDs == nil {
			return nil
		}
		if err := linkRepo.DeleteByProduct(id); err != nil {
			return err
		}
		for _, categoryID := range *in.CategoriesIDs {
			link := &entity.CategoryProduct{ProductID: id, CategoryID: categoryID}
			if err := linkRepo.Create(link); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.ProductSummary{ID: id, Name: name}, nil
}

// Delete marca el producto como borrado y registra DeletedAt.
// Idempotente: repetirlo también es éxito.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.SoftDelete(id, time.Now())
}

// Toggle invierte el campo Checked y lo persiste. Devuelve nil si el
// producto no existe.
func (uc *ProductUseCase) Toggle(id string) (*dto.ToggledProduct, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	checked := !product.Checked
	if err := uc.repo.SetChecked(id, checked); err != nil {
		return nil, err
	}
	return &dto.ToggledProduct{ID: product.ID, Name: product.Name, Checked: checked}, nil
}

func toProductDetail(p *entity.Product) *dto.ProductDetail {
	return &dto.ProductDetail{
		ID:        p.ID,
		Name:      p.Name,
		Checked:   p.Checked,
		CreatedAt: p.CreatedAt,
		DeletedAt: p.DeletedAt,
		IsDeleted: p.IsDeleted,
	}
}
