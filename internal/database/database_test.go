package database_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"sklep/internal/database"
	"sklep/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	db, err := database.Connect(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	assert.NoError(t, err)
	return db
}

func columnCount(t *testing.T, db *gorm.DB) int {
	cols, err := db.Migrator().ColumnTypes(&models.Product{})
	assert.NoError(t, err)
	return len(cols)
}

func TestMigrate_CreatesProductsTable(t *testing.T) {
	db := openTestDB(t)

	err := database.Migrate(db)
	assert.NoError(t, err)

	assert.True(t, db.Migrator().HasTable("products"))
	for _, col := range []string{"id", "name", "price", "category", "stock", "description"} {
		assert.True(t, db.Migrator().HasColumn(&models.Product{}, col), "missing column %s", col)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	assert.NoError(t, database.Migrate(db))
	before := columnCount(t, db)

	// A second run must neither fail nor change the column set.
	assert.NoError(t, database.Migrate(db))
	assert.Equal(t, before, columnCount(t, db))
}

func TestMigrate_AddsMissingDescriptionColumn(t *testing.T) {
	db := openTestDB(t)

	// Simulate a pre-evolution schema without the description column.
	err := db.Exec(`
CREATE TABLE products (
    id       INTEGER PRIMARY KEY AUTOINCREMENT,
    name     TEXT NOT NULL,
    price    REAL NOT NULL,
    category TEXT,
    stock    INTEGER NOT NULL DEFAULT 0
);`).Error
	assert.NoError(t, err)
	assert.False(t, db.Migrator().HasColumn(&models.Product{}, "description"))

	assert.NoError(t, database.Migrate(db))
	assert.True(t, db.Migrator().HasColumn(&models.Product{}, "description"))

	// Existing rows must survive the alteration with the default applied.
	assert.NoError(t, db.Exec(`INSERT INTO products (name, price) VALUES ('Widget', 9.99)`).Error)
	var product models.Product
	assert.NoError(t, db.First(&product).Error)
	assert.Equal(t, "", product.Description)
}
