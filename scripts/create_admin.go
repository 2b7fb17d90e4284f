// Seed an admin account.
//
// The register endpoint defaults new accounts to the user role, so the first
// admin has to be created out of band. Usage:
//
//	ADMIN_EMAIL=admin@example.com ADMIN_PASSWORD=... go run scripts/create_admin.go

package main

import (
	"errors"
	"log"
	"os"

	"literacy_dapat_backend/internal/config"
	"literacy_dapat_backend/internal/model"
	"literacy_dapat_backend/internal/repository"
	"literacy_dapat_backend/internal/service"
	"literacy_dapat_backend/internal/util"
	"literacy_dapat_backend/pkg/database"
	"literacy_dapat_backend/pkg/logger"
)

func main() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	authService := service.NewAuthService(repository.NewUserRepository(db), cfg)

	user := &model.User{Email: email, Password: password, Role: model.RoleAdmin}
	if err := authService.Register(user); err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			log.Fatalf("account %s already exists", email)
		}
		log.Fatalf("create admin: %v", err)
	}

	log.Printf("admin account %s created (id %d)", email, user.ID)
}
