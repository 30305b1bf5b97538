package main

import (
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/zone3577/Test-Web/internal/http/middleware"
	"github.com/zone3577/Test-Web/internal/modules/adminauth"
	"github.com/zone3577/Test-Web/internal/modules/cart"
	"github.com/zone3577/Test-Web/internal/modules/notifications"
	"github.com/zone3577/Test-Web/internal/modules/orders"
	"github.com/zone3577/Test-Web/internal/modules/products"
	"github.com/zone3577/Test-Web/internal/modules/users"
)

// Creates or updates every table the application uses and seeds the first
// super admin from SEED_ADMIN_USERNAME / SEED_ADMIN_PASSWORD.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&users.User{},
		&middleware.Session{},
		&products.Product{},
		&cart.Cart{},
		&cart.Item{},
		&orders.Order{},
		&orders.Item{},
		&orders.Event{},
		&notifications.Notification{},
		&adminauth.Admin{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}
	log.Println("✓ tables migrated")

	seedAdmin(db)
}

func seedAdmin(db *gorm.DB) {
	username := os.Getenv("SEED_ADMIN_USERNAME")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Println("SEED_ADMIN_USERNAME/SEED_ADMIN_PASSWORD unset, skipping admin seed")
		return
	}

	var n int64
	if err := db.Model(&adminauth.Admin{}).Where("username = ?", username).Count(&n).Error; err != nil {
		log.Fatalf("Failed to check admin: %v", err)
	}
	if n > 0 {
		log.Printf("admin %q already exists, skipping seed", username)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	a := adminauth.Admin{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        os.Getenv("SEED_ADMIN_EMAIL"),
		PasswordHash: string(hash),
		Role:         adminauth.RoleSuperAdmin,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := db.Create(&a).Error; err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}
	log.Printf("✓ admin %q seeded", username)
}
