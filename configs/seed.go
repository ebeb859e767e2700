package configs

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/devnaspi/ThelittlelemonApi/entity"
)

// SeedManager creates the bootstrap manager account so rosters and menu
// administration are reachable on a fresh database.
func SeedManager() error {
	db := DB()
	username := getEnv("SEED_ADMIN_USERNAME", "admin")
	pass := getEnv("SEED_ADMIN_PASSWORD", "admin123")

	var count int64
	if err := db.Model(&entity.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	manager := entity.User{
		Username: username,
		Password: string(hash),
		Role:     entity.RoleManager,
	}
	return db.Create(&manager).Error
}
