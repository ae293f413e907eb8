package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-ConsultationService/internal/config"
	adminRepo "github.com/m04kA/SMC-ConsultationService/internal/infra/storage/admin"
	authService "github.com/m04kA/SMC-ConsultationService/internal/service/auth"
	"github.com/m04kA/SMC-ConsultationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ConsultationService/pkg/logger"
)

// Заводит администратора панели.
// Email и пароль берутся из ADMIN_LOGIN_EMAIL и ADMIN_PASSWORD (.env тоже читается).
func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New("", cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	email := os.Getenv("ADMIN_LOGIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("ADMIN_LOGIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	svc := authService.NewService(adminRepo.NewRepository(dbmetrics.Wrap(db, nil)), log)

	user, err := svc.CreateAdmin(ctx, email, password)
	switch {
	case errors.Is(err, authService.ErrAdminExists):
		log.Info("Admin %s already exists, nothing to do", email)
	case err != nil:
		log.Fatal("Failed to create admin: %v", err)
	default:
		log.Info("Admin created: id=%d email=%s", user.ID, user.Email)
	}
}
