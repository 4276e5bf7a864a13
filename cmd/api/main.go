package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"sheetstash/internal/config"
	"sheetstash/internal/database"
	"sheetstash/internal/middleware"
	"sheetstash/internal/modules/admin"
	"sheetstash/internal/modules/auth"
	"sheetstash/internal/modules/upload"
	jwtsvc "sheetstash/internal/pkg/jwt"
	"sheetstash/internal/repository"
	"sheetstash/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal("migration failed: ", err)
	}

	blobs, err := storage.NewFileSystemStore(cfg.UploadsDir)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	uploadRepo := repository.NewUploadRepository(db)
	datasetRepo := repository.NewDatasetRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	uploadHandler := upload.NewHandler(upload.NewService(
		uploadRepo, datasetRepo, blobs, cfg.MaxFileBytes, cfg.MaxDatasetBytes,
	))
	adminHandler := admin.NewHandler(admin.NewService(userRepo, uploadRepo, datasetRepo))

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		auth.RegisterRoutes(v1, authHandler)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			upload.RegisterRoutes(protected, uploadHandler)
			admin.RegisterRoutes(protected, adminHandler, middleware.AdminOnly())
		}
	}

	log.Println("listening on", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
