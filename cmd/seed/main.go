package main

import (
	"fmt"

	"vidmint/internal/model"
	"vidmint/pkg/config"
	"vidmint/pkg/database"
	"vidmint/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, cfg, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, cfg *config.Config, log *logger.Logger) error {
	if err := seedAdmin(db, cfg, log); err != nil {
		return err
	}
	if err := seedSettings(db, cfg, log); err != nil {
		return err
	}
	return seedTestUsers(db, log)
}

func seedAdmin(db *gorm.DB, cfg *config.Config, log *logger.Logger) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Warn("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var existing model.AdminModel
	if err := db.Where("email = ?", cfg.AdminEmail).First(&existing).Error; err == nil {
		log.Info("Admin %s already exists, skipping", cfg.AdminEmail)
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &model.AdminModel{
		Email:    cfg.AdminEmail,
		Password: string(hashedPassword),
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	log.Info("Created admin: %s", cfg.AdminEmail)
	return nil
}

func seedSettings(db *gorm.DB, cfg *config.Config, log *logger.Logger) error {
	var existing model.WebSettingsModel
	if err := db.First(&existing).Error; err == nil {
		log.Info("Web settings already exist (CPM %.2f), skipping", existing.CPM)
		return nil
	}

	settings := &model.WebSettingsModel{
		CPM: cfg.DefaultCPM,
	}
	if err := db.Create(settings).Error; err != nil {
		return fmt.Errorf("failed to create web settings: %w", err)
	}

	log.Info("Created web settings with CPM %.2f", cfg.DefaultCPM)
	return nil
}

func seedTestUsers(db *gorm.DB, log *logger.Logger) error {
	testUsers := []struct {
		fullName string
		email    string
		password string
	}{
		{"Alice Creator", "alice@test.com", "password123"},
		{"Bob Creator", "bob@test.com", "password123"},
	}

	for _, userData := range testUsers {
		var existing model.UserModel
		if err := db.Where("email = ?", userData.email).First(&existing).Error; err == nil {
			log.Info("User %s already exists, skipping", userData.email)
			continue
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(userData.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		user := &model.UserModel{
			FullName:        userData.fullName,
			Email:           userData.email,
			Password:        string(hashedPassword),
			IsEmailVerified: true,
		}
		if err := db.Create(user).Error; err != nil {
			log.Error("Failed to create user %s: %v", userData.email, err)
			continue
		}

		log.Info("Created user: %s (%s)", userData.fullName, userData.email)
	}

	return nil
}
