package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"sklep/internal/models"
)

// createProductsTable is the fixed startup schema. The table is created
// with this exact shape; later evolution happens only through the additive
// column step in Migrate.
const createProductsTable = `
CREATE TABLE IF NOT EXISTS products (
    id       INTEGER PRIMARY KEY AUTOINCREMENT,
    name     TEXT NOT NULL,
    price    REAL NOT NULL,
    category TEXT,
    stock    INTEGER NOT NULL DEFAULT 0,
    description TEXT DEFAULT ''
);`

const addDescriptionColumn = `ALTER TABLE products ADD COLUMN description TEXT DEFAULT ''`

// Connect opens the SQLite database at the given path (or DSN).
func Connect(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	return db, nil
}

// Migrate brings the products table to the expected shape. It is idempotent:
// the table is only created when absent, and the description column is only
// added when missing, so running it any number of times leaves the schema
// unchanged. Callers treat any returned error as fatal at startup.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(createProductsTable).Error; err != nil {
		return fmt.Errorf("failed to create products table: %w", err)
	}
	if !db.Migrator().HasColumn(&models.Product{}, "description") {
		if err := db.Exec(addDescriptionColumn).Error; err != nil {
			return fmt.Errorf("failed to add description column: %w", err)
		}
	}
	return nil
}
