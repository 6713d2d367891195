package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/eneskalkann/seller-dashboard-backend/config"
	"github.com/eneskalkann/seller-dashboard-backend/models"
	"github.com/eneskalkann/seller-dashboard-backend/services"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main creates a seller admin account
// Usage: go run cmd/seed/main.go [-demo]
// This is a standalone CLI tool, not part of the main application
func main() {
	demo := flag.Bool("demo", false, "also create a demo catalog with orders")
	flag.Parse()

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("SELLER DASHBOARD - Admin Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	// Initialize database connections
	config.InitDB()
	log.Println("✓ Connected to database")

	// Get input from user
	email, password, name := getAdminCredentials()

	// Check if admin already exists
	var existingAdmin models.Admin
	if err := config.Gorm.Where("email = ?", email).First(&existingAdmin).Error; err == nil {
		fmt.Printf("❌ Admin with email '%s' already exists\n", email)
		os.Exit(1)
	} else if err != gorm.ErrRecordNotFound {
		log.Fatalf("Database error: %v", err)
	}
	log.Printf("✓ Email '%s' is available", email)

	// Hash password
	authService := services.GetAdminAuthService()
	passwordHash, err := authService.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	log.Println("✓ Password hashed securely")

	// Create admin
	admin := models.Admin{
		ID:           uuid.Must(uuid.NewV7()),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Role:         "admin",
		Status:       "active",
	}

	if err := config.Gorm.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Admin Created Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("ID:    %s\n", admin.ID)
	fmt.Printf("Email: %s\n", admin.Email)
	fmt.Printf("Name:  %s\n", admin.Name)
	fmt.Printf("Role:  %s\n", admin.Role)
	fmt.Println()

	if *demo {
		if err := seedDemoData(admin.ID); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
		fmt.Println("✅ Demo catalog and orders created")
		fmt.Println()
	}

	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Login at POST /api/v1/admin/login with email and password")
	fmt.Println("3. Use the returned token for authenticated requests")
	fmt.Println()
}

// seedDemoData creates a small demo catalog plus a customer with a few
// orders so the dashboard has numbers to show during local development.
func seedDemoData(adminID uuid.UUID) error {
	return config.Gorm.Transaction(func(tx *gorm.DB) error {
		category := models.Category{Name: "Apparel"}
		if err := tx.Where("name = ?", category.Name).
			FirstOrCreate(&category).Error; err != nil {
			return err
		}

		products := []models.Product{
			{
				AdminID:      adminID,
				Title:        "Linen Shirt",
				Slug:         "linen-shirt",
				Description:  "Lightweight linen shirt",
				Price:        49.90,
				Stock:        20,
				IsOnShopPage: true,
				Categories:   []models.Category{category},
			},
			{
				AdminID:      adminID,
				Title:        "Wool Coat",
				Slug:         "wool-coat",
				Description:  "Warm wool coat",
				Price:        129.00,
				Stock:        8,
				IsOnShopPage: true,
				Categories:   []models.Category{category},
			},
		}
		for i := range products {
			if err := tx.Create(&products[i]).Error; err != nil {
				return err
			}
		}

		customerName := "Demo Customer"
		customer := models.Customer{Name: &customerName, Email: "customer@example.com"}
		if err := tx.Where("email = ?", customer.Email).
			FirstOrCreate(&customer).Error; err != nil {
			return err
		}

		orders := []models.Order{
			{
				CustomerID: customer.ID,
				Status:     models.OrderStatusDelivered,
				TotalPrice: 2 * products[0].Price,
				Items: []models.OrderItem{
					{ProductID: products[0].ID, Quantity: 2, Price: products[0].Price},
				},
				CreatedAt: time.Now().AddDate(0, 0, -3),
			},
			{
				CustomerID: customer.ID,
				Status:     models.OrderStatusPending,
				TotalPrice: products[1].Price,
				Items: []models.OrderItem{
					{ProductID: products[1].ID, Quantity: 1, Price: products[1].Price},
				},
			},
		}
		for i := range orders {
			if err := tx.Create(&orders[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// getAdminCredentials prompts user for admin details
func getAdminCredentials() (email, password, name string) {
	fmt.Println("Enter Admin Details:")
	fmt.Println()

	// Email
	for {
		fmt.Print("Email: ")
		fmt.Scanln(&email)
		if email != "" {
			break
		}
		fmt.Println("❌ Email cannot be empty")
	}

	// Name
	for {
		fmt.Print("Name: ")
		fmt.Scanln(&name)
		if name != "" {
			break
		}
		fmt.Println("❌ Name cannot be empty")
	}

	// Password
	for {
		fmt.Print("Password (min 8 characters): ")
		fmt.Scanln(&password)

		authService := services.GetAdminAuthService()
		if !authService.ValidatePassword(password) {
			fmt.Println("❌ Password must be at least 8 characters")
			continue
		}
		break
	}

	return email, password, name
}
