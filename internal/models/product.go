package models

// Product represents a product row in the store.
// The column layout matches the startup DDL in internal/database.
type Product struct {
	ID          uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string  `json:"name" gorm:"not null" validate:"required"`
	Price       float64 `json:"price" gorm:"not null" validate:"gte=0"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock" gorm:"not null;default:0" validate:"gte=0"`
	Description string  `json:"description" gorm:"default:''" validate:"max=2000"`
}

// ProductInput is the raw request-body boundary for product payloads.
// Fields are deliberately untyped: clients may send price and stock as
// either JSON numbers or strings, and the validator performs the coercion.
// Untyped data never travels past the validator.
type ProductInput struct {
	Name        any `json:"name"`
	Price       any `json:"price"`
	Category    any `json:"category"`
	Stock       any `json:"stock"`
	Description any `json:"description"`
}
