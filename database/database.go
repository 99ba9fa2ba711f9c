package database

import (
	"fmt"
	"log"

	"github.com/LALo99-vk/Photography-Website/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the postgres connection. The handle is passed to the
// components that need it rather than held in a package variable.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:            false,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	fmt.Println("✅ Database connected successfully")
	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Profile{},
		&models.Booking{},
		&models.Photo{},
		&models.PhotoSelection{},
		&models.Payment{},
		&models.PricingItem{},
		&models.Setting{},
	)
	if err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	fmt.Println("✅ Database migration successful")
	return nil
}

// SeedAdmin creates the initial back-office account from ADMIN_* env
// values when no profile with that email exists yet.
func SeedAdmin(db *gorm.DB, id, email, password, displayName string) error {
	if email == "" || password == "" {
		log.Println("Admin seed skipped: ADMIN_EMAIL or ADMIN_PASSWORD not set")
		return nil
	}

	var count int64
	if err := db.Model(&models.Profile{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return fmt.Errorf("check for admin profile: %w", err)
	}
	if count > 0 {
		log.Println("Admin profile already exists.")
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := models.Profile{
		ID:          id,
		Email:       email,
		DisplayName: displayName,
		Password:    string(hashedPassword),
		Role:        models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("seed admin profile: %w", err)
	}

	log.Println("✅ Admin profile seeded successfully")
	return nil
}

// SeedSettings inserts defaults for keys that are missing so the export
// job and the selection cap always find a value.
func SeedSettings(db *gorm.DB) error {
	defaults := map[string]string{
		models.SettingAutoExcelExport:     "false",
		models.SettingExcelExportSchedule: "0 2 * * *",
		models.SettingMaxPhotoSelections:  "20",
	}

	for key, value := range defaults {
		var count int64
		if err := db.Model(&models.Setting{}).Where("setting_key = ?", key).Count(&count).Error; err != nil {
			return fmt.Errorf("check setting %s: %w", key, err)
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&models.Setting{SettingKey: key, SettingValue: value}).Error; err != nil {
			return fmt.Errorf("seed setting %s: %w", key, err)
		}
	}
	return nil
}
