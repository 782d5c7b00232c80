package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/3k2024/bodega-simple/internal/config"
	"github.com/3k2024/bodega-simple/internal/database"
	"github.com/3k2024/bodega-simple/internal/dto"
	"github.com/3k2024/bodega-simple/internal/logging"
	"github.com/3k2024/bodega-simple/internal/models"
	"github.com/3k2024/bodega-simple/internal/services"
)

func main() {
	username := flag.String("username", "", "username for the new account")
	password := flag.String("password", "", "password for the new account (min 8 chars)")
	role := flag.String("role", models.RoleUser, "role: admin or user")
	flag.Parse()

	if *username == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "usage: createuser -username NAME -password PASS [-role admin|user]")
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg := config.Load()
	logging.Setup(cfg.LogLevel)
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	authService := services.NewAuthService(database.DB, cfg)
	user, err := authService.CreateUser(&dto.CreateUserRequest{
		Username: *username,
		Password: *password,
		Role:     *role,
	})
	if err != nil {
		slog.Error("failed to create user", "username", *username, "error", err)
		os.Exit(1)
	}

	slog.Info("user created", "id", user.ID, "username", user.Username, "role", user.Role)
}
