package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/franciscosanchezn/edu-match/internal/config"
	"github.com/franciscosanchezn/edu-match/internal/database"
	"github.com/franciscosanchezn/edu-match/internal/models"
	"github.com/franciscosanchezn/edu-match/internal/services"
	"github.com/joho/godotenv"
)

func main() {
	// Parse command line flags
	email := flag.String("email", "teacher@edumatch.dev", "User email")
	password := flag.String("password", "dev-password-123", "Plain text password, stored as a bcrypt hash")
	role := flag.String("role", "teacher", "User role")
	flag.Parse()

	_ = godotenv.Load()

	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.InitDatabase(conf.Database())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close(db)

	if err := database.CreateTables(db); err != nil {
		log.Fatal("Failed to create tables:", err)
	}

	hash, err := services.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	userService := services.NewUserService(db)
	user := &models.User{
		Email:        *email,
		PasswordHash: hash,
		Role:         *role,
	}

	if err := userService.CreateUser(user); err != nil {
		if errors.Is(err, services.ErrUserAlreadyExists) {
			existing, lookupErr := userService.GetUserByEmail(*email)
			if lookupErr != nil {
				log.Fatal("Failed to load existing user:", lookupErr)
			}
			fmt.Printf("Development user already exists: %s (ID: %d, Role: %s)\n", existing.Email, existing.ID, existing.Role)
			return
		}
		log.Fatal("Failed to create user:", err)
	}

	fmt.Printf("✓ Development user created: %s (ID: %d, Role: %s)\n", user.Email, user.ID, user.Role)
	fmt.Printf("Password: %s\n", *password)
}
