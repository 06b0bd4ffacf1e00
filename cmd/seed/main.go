// seed puebla la base de datos con los datos de demostración: un usuario,
// tres categorías y cuatro productos con sus vínculos. Vacía las cuatro
// tablas antes de insertar.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/eduardomuchak/mercado-api/internal/domain/entity"
	"github.com/eduardomuchak/mercado-api/internal/infrastructure/postgres"
	"github.com/eduardomuchak/mercado-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL", err)
	}
	defer pool.Close()

	// Vaciar las tablas en orden de FKs
	for _, table := range []string{"category_products", "products", "categories", "users"} {
		if _, err := pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			fail("vaciar "+table, err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	if err != nil {
		fail("hashear contraseña", err)
	}
	userRepo := postgres.NewUserRepository(pool)
	if err := userRepo.Create(&entity.User{
		ID:           uuid.New().String(),
		Name:         "Eduardo Muchak",
		Email:        "eduardomuchak@gmail.com",
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}); err != nil {
		fail("insertar usuario", err)
	}

	categoryRepo := postgres.NewCategoryRepository(pool)
	categories := []struct{ name, icon string }{
		{"Bebidas", "Bebidas"},
		{"Laticínios", "Laticinios"},
		{"Grãos e Cereais", "Grãos e Cereais"},
	}
	categoryIDs := make([]string, 0, len(categories))
	for _, c := range categories {
		id := uuid.New().String()
		if err := categoryRepo.Create(&entity.Category{
			ID:        id,
			Name:      c.name,
			Icon:      c.icon,
			CreatedAt: time.Now(),
		}); err != nil {
			fail("insertar categoría "+c.name, err)
		}
		categoryIDs = append(categoryIDs, id)
	}

	productRepo := postgres.NewProductRepository(pool)
	linkRepo := postgres.NewCategoryProductRepository(pool)
	products := []struct {
		name     string
		category int
	}{
		{"Coca-Cola Zero Açúcar", 0},
		{"Queijo Mussarela Light", 1},
		{"Arroz Integral", 2},
		{"Feijão Preto", 2},
	}
	for _, p := range products {
		id := uuid.New().String()
		if err := productRepo.Create(&entity.Product{
			ID:        id,
			Name:      p.name,
			CreatedAt: time.Now(),
		}); err != nil {
			fail("insertar producto "+p.name, err)
		}
		if err := linkRepo.Create(&entity.CategoryProduct{
			ProductID:  id,
			CategoryID: categoryIDs[p.category],
		}); err != nil {
			fail("vincular producto "+p.name, err)
		}
	}

	fmt.Println("Seed complete.")
}

func fail(step string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", step, err)
	os.Exit(1)
}
