// database.go - Handles database connection and setup

package database // Declares the package name

import ( // Import required packages
	"tool-express-backend/config" // Project config
	"tool-express-backend/models" // Data models

	"gorm.io/driver/sqlite" // SQLite driver for GORM
	"gorm.io/gorm"          // GORM ORM
)

// Connect opens the database, runs migrations, and seeds the default admin
// if configured. The returned handle is created once at startup and injected
// into every repository; there is no package-level connection.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{}) // Open SQLite DB
	if err != nil {                                               // If error, return it
		return nil, err
	}

	// Auto-migrate all collections (create tables if needed)
	if err := db.AutoMigrate(
		&models.Tool{},
		&models.Review{},
		&models.Order{},
		&models.User{},
		&models.Payment{},
	); err != nil {
		return nil, err
	}

	// Seed the default admin user if configured
	if err := seedAdmin(db, cfg); err != nil {
		return nil, err
	}

	return db, nil
}

// seedAdmin - Grants the admin role to the configured email if no admin exists
// Roles cannot be set through the API (the user upsert contract excludes them),
// so this seed is the only way the first admin comes into existence.
func seedAdmin(db *gorm.DB, cfg *config.Config) error {
	// Only seed if explicitly configured
	if !cfg.SeedAdmin || cfg.AdminEmail == "" {
		return nil
	}

	// Check if any admin user exists
	var count int64
	db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)

	if count == 0 {
		admin := models.User{
			Email: cfg.AdminEmail,
			Role:  models.RoleAdmin,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
	}

	return nil
}
