package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/eduardomuchak/mercado-api/internal/application/dto"
	"github.com/eduardomuchak/mercado-api/internal/domain/entity"
	"github.com/eduardomuchak/mercado-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List devuelve las categorías no borradas proyectadas a {id, name, icon}.
// El total cuenta todas las filas, borradas incluidas; el listado no.
func (uc *CategoryUseCase) List() (*dto.CategoryListResponse, error) {
	categories, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.CountAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryItem, 0, len(categories))
	for _, c := range categories {
		items = append(items, dto.CategoryItem{ID: c.ID, Name: c.Name, Icon: c.Icon})
	}
	return &dto.CategoryListResponse{Total: total, Categories: items}, nil
}

// Create crea una categoría nueva con ID generado por el servidor.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryDetail, error) {
	category := &entity.Category{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Icon:      in.Icon,
		CreatedAt: time.Now(),
		IsDeleted: false,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryDetail(category), nil
}

// Rename cambia el nombre de una categoría. Devuelve nil si no existe.
func (uc *CategoryUseCase) Rename(id, name string) (*dto.CategoryDetail, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	if err := uc.repo.UpdateName(id, name); err != nil {
		return nil, err
	}
	category.Name = name
	return toCategoryDetail(category), nil
}

// Delete marca la categoría como borrada. Idempotente: repetirlo sobre
// una categoría ya borrada (o inexistente) también es éxito.
func (uc *CategoryUseCase) Delete(id string) error {
	return uc.repo.SoftDelete(id)
}

func toCategoryDetail(c *entity.Category) *dto.CategoryDetail {
	return &dto.CategoryDetail{
		ID:        c.ID,
		Name:      c.Name,
		Icon:      c.Icon,
		CreatedAt: c.CreatedAt,
		IsDeleted: c.IsDeleted,
	}
}
