package repositories

import (
	"errors"

	"sklep/internal/models"
)

// ErrNotFound is returned when no product row matches the requested id.
// It is an expected outcome, not a store fault; callers distinguish it
// with errors.Is.
var ErrNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	Update(id uint, product *models.Product) (*models.Product, error)
	Delete(id uint) error
}
