package usecase_test

import (
	"context"
	"time"

	"github.com/eduardomuchak/mercado-api/internal/domain"
	"github.com/eduardomuchak/mercado-api/internal/domain/entity"
	"github.com/eduardomuchak/mercado-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. Mismas reglas que los
// adaptadores PostgreSQL: conteo de categorías sin filtro, listado por
// categoría sin filtro de borrado, FK de vínculos contra categorías.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	categories    map[string]*entity.Category
	categoryOrder []string
	products      map[string]*entity.Product
	productOrder  []string
	links         []entity.CategoryProduct
}

func newMemStore() *memStore {
	return &memStore{
		categories: make(map[string]*entity.Category),
		products:   make(map[string]*entity.Product),
	}
}

func (s *memStore) snapshot() memStore {
	cp := memStore{
		categories:    make(map[string]*entity.Category, len(s.categories)),
		categoryOrder: append([]string(nil), s.categoryOrder...),
		products:      make(map[string]*entity.Product, len(s.products)),
		productOrder:  append([]string(nil), s.productOrder...),
		links:         append([]entity.CategoryProduct(nil), s.links...),
	}
	for id, c := range s.categories {
		copied := *c
		cp.categories[id] = &copied
	}
	for id, p := range s.products {
		copied := *p
		cp.products[id] = &copied
	}
	return cp
}

// memCategoryRepo implementa repository.CategoryRepository.
type memCategoryRepo struct{ s *memStore }

var _ repository.CategoryRepository = (*memCategoryRepo)(nil)

func (r *memCategoryRepo) Create(category *entity.Category) error {
	copied := *category
	r.s.categories[category.ID] = &copied
	r.s.categoryOrder = append(r.s.categoryOrder, category.ID)
	return nil
}

func (r *memCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (r *memCategoryRepo) ListActive() ([]*entity.Category, error) {
	var list []*entity.Category
	for _, id := range r.s.categoryOrder {
		if c := r.s.categories[id]; !c.IsDeleted {
			copied := *c
			list = append(list, &copied)
		}
	}
	return list, nil
}

func (r *memCategoryRepo) CountAll() (int64, error) {
	return int64(len(r.s.categories)), nil
}

func (r *memCategoryRepo) UpdateName(id, name string) error {
	if c, ok := r.s.categories[id]; ok {
		c.Name = name
	}
	return nil
}

func (r *memCategoryRepo) SoftDelete(id string) error {
	if c, ok := r.s.categories[id]; ok {
		c.IsDeleted = true
	}
	return nil
}

// memProductRepo implementa repository.ProductRepository.
type memProductRepo struct{ s *memStore }

var _ repository.ProductRepository = (*memProductRepo)(nil)

func (r *memProductRepo) Create(product *entity.Product) error {
	copied := *product
	r.s.products[product.ID] = &copied
	r.s.productOrder = append(r.s.productOrder, product.ID)
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (r *memProductRepo) ListActive() ([]*entity.Product, error) {
	var list []*entity.Product
	for _, id := range r.s.productOrder {
		if p := r.s.products[id]; !p.IsDeleted {
			copied := *p
			list = append(list, &copied)
		}
	}
	return list, nil
}

func (r *memProductRepo) CountActive() (int64, error) {
	var total int64
	for _, p := range r.s.products {
		if !p.IsDeleted {
			total++
		}
	}
	return total, nil
}

func (r *memProductRepo) ListByCategory(categoryID string) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, id := range r.s.productOrder {
		for _, l := range r.s.links {
			if l.ProductID == id && l.CategoryID == categoryID {
				copied := *r.s.products[id]
				list = append(list, &copied)
				break
			}
		}
	}
	return list, nil
}

func (r *memProductRepo) CountByCategory(categoryID string) (int64, error) {
	list, _ := r.ListByCategory(categoryID)
	return int64(len(list)), nil
}

func (r *memProductRepo) UpdateName(id, name string) error {
	if p, ok := r.s.products[id]; ok {
		p.Name = name
	}
	return nil
}

func (r *memProductRepo) SetChecked(id string, checked bool) error {
	if p, ok := r.s.products[id]; ok {
		p.Checked = checked
	}
	return nil
}

func (r *memProductRepo) SoftDelete(id string, deletedAt time.Time) error {
	if p, ok := r.s.products[id]; ok {
		p.IsDeleted = true
		p.DeletedAt = &deletedAt
	}
	return nil
}

// memLinkRepo implementa repository.CategoryProductRepository.
type memLinkRepo struct{ s *memStore }

var _ repository.CategoryProductRepository = (*memLinkRepo)(nil)

func (r *memLinkRepo) Create(link *entity.CategoryProduct) error {
	// Emula la FK contra categories: vincular a una categoría
	// inexistente es conflicto.
	if _, ok := r.s.categories[link.CategoryID]; !ok {
		return domain.ErrConflict
	}
	r.s.links = append(r.s.links, *link)
	return nil
}

func (r *memLinkRepo) ListByProductIDs(productIDs []string) ([]*entity.CategoryProduct, error) {
	ids := make(map[string]bool, len(productIDs))
	for _, id := range productIDs {
		ids[id] = true
	}
	var list []*entity.CategoryProduct
	for i := range r.s.links {
		if ids[r.s.links[i].ProductID] {
			copied := r.s.links[i]
			list = append(list, &copied)
		}
	}
	return list, nil
}

func (r *memLinkRepo) DeleteByProduct(productID string) error {
	kept := r.s.links[:0]
	for _, l := range r.s.links {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}
	r.s.links = kept
	return nil
}

// memTxRunner emula la transacción: toma una copia del estado y la
// restaura si el callback falla, para que los tests de atomicidad vean
// el rollback.
type memTxRunner struct{ s *memStore }

func (t *memTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	linkRepo repository.CategoryProductRepository,
) error) error {
	before := t.s.snapshot()
	if err := fn(&memProductRepo{s: t.s}, &memLinkRepo{s: t.s}); err != nil {
		*t.s = before
		return err
	}
	return nil
}
