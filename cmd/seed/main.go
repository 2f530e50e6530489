// seed carga el catálogo inicial de servicios de confección y usuarios de
// demostración (una administradora y una clienta) en la base de datos.
//
// Uso: go run ./cmd/seed
// Es idempotente: usuarios ya registrados y servicios existentes se omiten.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/sastreria-api/internal/domain"
	"github.com/tu-usuario/sastreria-api/internal/domain/entity"
	"github.com/tu-usuario/sastreria-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/sastreria-api/pkg/config"
)

var demoServices = []*entity.Service{
	{
		Name:        "Blouse Stitching",
		Description: "Confección de blusas a medida con ajuste perfecto",
		Category:    entity.CategoryBlouse,
		Pricing: []entity.PricingTier{
			{Type: "Simple", Price: 500, Description: "Diseño básico"},
			{Type: "Designer", Price: 800, Description: "Diseño con apliques"},
		},
		EstimatedDays:        7,
		RequiresMeasurements: true,
	},
	{
		Name:        "Kurti Stitching",
		Description: "Kurtis para toda ocasión",
		Category:    entity.CategoryKurti,
		Pricing: []entity.PricingTier{
			{Type: "Casual", Price: 600, Description: "Uso diario"},
			{Type: "Party Wear", Price: 1200, Description: "Fiesta y eventos"},
		},
		EstimatedDays:        5,
		RequiresMeasurements: true,
	},
	{
		Name:        "Bridal Stitching",
		Description: "Confección nupcial exclusiva",
		Category:    entity.CategoryBridal,
		Pricing: []entity.PricingTier{
			{Type: "Traditional", Price: 5000, Description: "Traje nupcial tradicional"},
			{Type: "Designer", Price: 10000, Description: "Colección de diseñador"},
		},
		EstimatedDays:        21,
		RequiresMeasurements: true,
	},
}

type demoUser struct {
	email, password, name, phone, role string
}

var demoUsers = []demoUser{
	{"admin@sastreria.local", "admin12345", "Priya Sharma", "+91-9876543210", entity.RoleAdmin},
	{"anita@example.com", "cliente12345", "Anita Patel", "+91-9876543212", entity.RoleCustomer},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	serviceRepo := postgres.NewServiceRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	existing, err := serviceRepo.List(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "listar servicios: %v\n", err)
		os.Exit(1)
	}
	byName := make(map[string]bool, len(existing))
	for _, s := range existing {
		byName[s.Name] = true
	}

	for _, s := range demoServices {
		if byName[s.Name] {
			fmt.Printf("servicio %q ya existe, se omite\n", s.Name)
			continue
		}
		s.ID = uuid.NewString()
		if err := serviceRepo.Create(ctx, s); err != nil {
			fmt.Fprintf(os.Stderr, "crear servicio %q: %v\n", s.Name, err)
			os.Exit(1)
		}
		fmt.Printf("servicio %q creado (%s)\n", s.Name, s.ID)
	}

	now := time.Now().UTC()
	for _, u := range demoUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "hash de password: %v\n", err)
			os.Exit(1)
		}
		user := &entity.User{
			ID:           uuid.NewString(),
			Email:        u.email,
			PasswordHash: string(hash),
			Name:         u.name,
			Phone:        u.phone,
			Role:         u.role,
			Status:       "active",
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, domain.ErrEmailAlreadyExists) {
				fmt.Printf("usuario %s ya existe, se omite\n", u.email)
				continue
			}
			fmt.Fprintf(os.Stderr, "crear usuario %s: %v\n", u.email, err)
			os.Exit(1)
		}
		fmt.Printf("usuario %s creado con rol %s\n", u.email, u.role)
	}
}
