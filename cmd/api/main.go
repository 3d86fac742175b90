package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/leavedesk/leave-backend-go/internal/config"
	appHTTP "github.com/leavedesk/leave-backend-go/internal/handler/http"
	"github.com/leavedesk/leave-backend-go/internal/pkg/database"
	"github.com/leavedesk/leave-backend-go/internal/pkg/jwt"
	"github.com/leavedesk/leave-backend-go/internal/pkg/storage"
	"github.com/leavedesk/leave-backend-go/internal/repository/mongodb"
	authService "github.com/leavedesk/leave-backend-go/internal/service/auth"
	employeeService "github.com/leavedesk/leave-backend-go/internal/service/employee"
	"github.com/leavedesk/leave-backend-go/internal/service/file"
	leaveService "github.com/leavedesk/leave-backend-go/internal/service/leave"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewMongoDB(cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close(context.Background())

	if err := db.EnsureIndexes(context.Background()); err != nil {
		log.Fatal("Failed to ensure indexes:", err)
	}

	employeeRepo := mongodb.NewEmployeeRepository(db)
	adminRepo := mongodb.NewAdminRepository(db)
	leaveRepo := mongodb.NewLeaveRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.EmployeeExpiration, cfg.JWT.AdminExpiration)

	var fileStorage storage.FileStorage
	uploadsDir := ""
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
		uploadsDir = cfg.Storage.BasePath
	case "s3":
		fileStorage, err = storage.NewS3Storage(storage.S3Options{
			Endpoint: cfg.Storage.S3.Endpoint,
			Region:   cfg.Storage.S3.Region,
			Bucket:   cfg.Storage.S3.Bucket,
			KeyID:    cfg.Storage.S3.KeyID,
			Secret:   cfg.Storage.S3.Secret,
		})
		if err != nil {
			log.Fatal("Failed to initialize s3 storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileService := file.NewFileService(fileStorage)
	authSvc := authService.NewAuthService(adminRepo, employeeRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, leaveRepo, fileService)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		employeeHandler,
		leaveHandler,
		cfg.App.FrontendURL,
		uploadsDir,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
