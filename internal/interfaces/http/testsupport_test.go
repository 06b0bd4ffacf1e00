package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/eduardomuchak/mercado-api/internal/application/usecase"
	"github.com/eduardomuchak/mercado-api/internal/domain"
	"github.com/eduardomuchak/mercado-api/internal/domain/entity"
	"github.com/eduardomuchak/mercado-api/internal/domain/repository"
	apphttp "github.com/eduardomuchak/mercado-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test: app Fiber real sobre repos en memoria con las mismas
// reglas que los adaptadores PostgreSQL (conteos asimétricos, FK de
// vínculos, borrado lógico).
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	categories    map[string]*entity.Category
	categoryOrder []string
	products      map[string]*entity.Product
	productOrder  []string
	links         []entity.CategoryProduct
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

type memCategoryRepo struct{ s *memStore }

func (r *memCategoryRepo) Create(c *entity.Category) error {
	copied := *c
	r.s.categories[c.ID] = &copied
	r.s.categoryOrder = append(r.s.categoryOrder, c.ID)
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

func (r *memCategoryRepo) CountAll() (int64, error) { return int64(len(r.s.categories)), nil }

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

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(p *entity.Product) error {
	copied := *p
	r.s.products[p.ID] = &copied
	r.s.productOrder = append(r.s.productOrder, p.ID)
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

type memLinkRepo struct{ s *memStore }

func (r *memLinkRepo) Create(link *entity.CategoryProduct) error {
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

// memTxRunner emula la transacción: restaura el estado si el callback
// falla, igual que el rollback real.
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

// buildTestApp levanta la app Fiber con el router real sobre los repos en memoria.
func buildTestApp() (*fiber.App, *memStore) {
	s := &memStore{
		categories: make(map[string]*entity.Category),
		products:   make(map[string]*entity.Product),
	}
	categoryUC := usecase.NewCategoryUseCase(&memCategoryRepo{s: s})
	productUC := usecase.NewProductUseCase(&memProductRepo{s: s}, &memLinkRepo{s: s}, &memTxRunner{s: s})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{CategoryUC: categoryUC, ProductUC: productUC})
	return app, s
}

// doJSON lanza una petición con cuerpo JSON opcional y devuelve la respuesta.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decode deserializa el cuerpo de la respuesta en out.
func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
