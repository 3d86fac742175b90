// Seeds the default administrator account. Admins are provisioned here,
// never through the public API. Safe to run repeatedly.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/leavedesk/leave-backend-go/internal/config"
	"github.com/leavedesk/leave-backend-go/internal/domain/admin"
	"github.com/leavedesk/leave-backend-go/internal/pkg/database"
	"github.com/leavedesk/leave-backend-go/internal/repository/mongodb"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewMongoDB(cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	ctx := context.Background()
	defer db.Close(ctx)

	if err := db.EnsureIndexes(ctx); err != nil {
		log.Fatal("Failed to ensure indexes: ", err)
	}

	name := getEnv("ADMIN_NAME", "Admin User")
	email := getEnv("ADMIN_EMAIL", "admin@example.com")
	password := getEnv("ADMIN_PASSWORD", "admin@123")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password: ", err)
	}

	adminRepo := mongodb.NewAdminRepository(db)
	_, created, err := adminRepo.Upsert(ctx, admin.Admin{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		log.Fatal("Failed to seed admin: ", err)
	}

	if created {
		fmt.Println("Admin created successfully")
	} else {
		fmt.Println("Admin already exists")
	}
	fmt.Println("Login credentials:")
	fmt.Println("Email:", email)
	fmt.Println("Password:", password)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
