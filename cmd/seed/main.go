package main

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"sheetstash/internal/database"
	"sheetstash/internal/domain"
	"sheetstash/internal/repository"

	"github.com/google/uuid"
)

// Seeds a local SQLite database with an admin, a demo user, and one parsed
// upload so the admin endpoints have something to report on.
func main() {
	db, err := database.Connect("sheetstash.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM uploads")
	db.Exec("DELETE FROM datasets")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	uploads := repository.NewUploadRepository(db)
	datasets := repository.NewDatasetRepository(db)

	log.Println("Creating users...")
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := &domain.User{
		Name:         "Admin",
		Email:        "admin@sheetstash.local",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatal(err)
	}

	userHash, _ := bcrypt.GenerateFromPassword([]byte("user123"), bcrypt.DefaultCost)
	demo := &domain.User{
		Name:         "Demo User",
		Email:        "demo@sheetstash.local",
		PasswordHash: string(userHash),
		Role:         domain.RoleUser,
	}
	if err := users.Create(ctx, demo); err != nil {
		log.Fatal(err)
	}

	log.Println("Creating sample upload...")
	ds := &domain.Dataset{
		ID:      uuid.New().String(),
		Columns: []string{"Month", "Revenue"},
		Rows: []domain.Row{
			{"Month": domain.TextCell("Jan"), "Revenue": domain.NumberCell(1200)},
			{"Month": domain.TextCell("Feb"), "Revenue": domain.NumberCell(1750)},
			{"Month": domain.TextCell("Mar"), "Revenue": domain.NumberCell(990)},
		},
	}
	if err := datasets.Create(ctx, ds); err != nil {
		log.Fatal(err)
	}

	now := time.Now()
	if err := uploads.Create(ctx, &domain.Upload{
		ID:           uuid.New().String(),
		UserID:       demo.ID,
		OriginalName: "sales.xlsx",
		StoredName:   "1700000000000-sales.xlsx",
		DatasetID:    ds.ID,
		UploadedAt:   now,
	}); err != nil {
		log.Fatal(err)
	}

	log.Println("Seed complete.")
	log.Println("  admin@sheetstash.local / admin123")
	log.Println("  demo@sheetstash.local  / user123")
}
