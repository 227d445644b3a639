package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"sklep/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves all products in store-native order.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := r.db.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID. Returns ErrNotFound when
// no row matches.
func (r *GORMProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	return &product, nil
}

// Create inserts a new product. SQLite assigns the auto-increment id and
// GORM writes it back into the struct, so the created value is complete
// without a second read.
func (r *GORMProductRepository) Create(product *models.Product) error {
	product.ID = 0
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update replaces every field of the row matching id with the given value.
// This is a full replace, not a partial patch: zero values overwrite too.
// Returns ErrNotFound when no row matched.
func (r *GORMProductRepository) Update(id uint, product *models.Product) (*models.Product, error) {
	res := r.db.Model(&models.Product{}).Where("id = ?", id).
		Select("name", "price", "category", "stock", "description").
		Updates(models.Product{
			Name:        product.Name,
			Price:       product.Price,
			Category:    product.Category,
			Stock:       product.Stock,
			Description: product.Description,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update product %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	updated := *product
	updated.ID = id
	return &updated, nil
}

// Delete removes the row matching id. Returns ErrNotFound when nothing
// was removed.
func (r *GORMProductRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Product{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
