package validation

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"sklep/internal/models"
)

// Result carries the outcome of validating a raw product payload.
// Value is always populated with the normalized fields so callers can
// inspect what was parsed, but it must only be persisted when Valid is true.
type Result struct {
	Valid  bool
	Errors []string
	Value  models.Product
}

// Messages surfaced to clients. The wording is part of the API contract.
const (
	msgNameRequired   = "name is required"
	msgPriceInvalid   = "price must be non-negative number"
	msgStockInvalid   = "stock must be non-negative integer"
	msgDescriptionLen = "opis is too long (max 2000 chars)"
)

var validate = validator.New()

// ValidateProduct narrows a raw input payload into a normalized Product.
// All rules are evaluated independently and every violation is collected;
// nothing short-circuits. Coercion from string-or-number inputs is done
// here explicitly, then the range and length constraints run through the
// validator tags on models.Product. The function never panics on malformed
// input.
func ValidateProduct(input models.ProductInput) Result {
	var res Result

	name, nameOK := input.Name.(string)
	res.Value.Name = strings.TrimSpace(name)

	price, priceOK := coerceFloat(input.Price)
	res.Value.Price = price

	stock, stockOK := coerceInt(input.Stock)
	res.Value.Stock = stock

	res.Value.Category = strings.TrimSpace(coerceString(input.Category))
	res.Value.Description = strings.TrimSpace(coerceString(input.Description))

	// Constraint checks (required, gte=0, max=2000) ride on the struct tags.
	failed := map[string]bool{}
	if err := validate.Struct(res.Value); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				failed[fe.Field()] = true
			}
		}
	}

	if !nameOK || failed["Name"] {
		res.Errors = append(res.Errors, msgNameRequired)
	}
	if !priceOK || failed["Price"] {
		res.Errors = append(res.Errors, msgPriceInvalid)
	}
	if !stockOK || failed["Stock"] {
		res.Errors = append(res.Errors, msgStockInvalid)
	}
	if failed["Description"] {
		res.Errors = append(res.Errors, msgDescriptionLen)
	}

	res.Valid = len(res.Errors) == 0
	return res
}

// coerceFloat accepts JSON numbers or numeric strings. NaN and infinities
// are rejected, as are values of any other type.
func coerceFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n) && !math.IsInf(n, 0)
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return f, false
		}
		return f, true
	default:
		return 0, false
	}
}

// coerceInt accepts JSON numbers or numeric strings that represent whole
// numbers. A missing value (nil) defaults to 0.
func coerceInt(v any) (int, bool) {
	switch n := v.(type) {
	case nil:
		return 0, true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return int(n), false
		}
		return int(n), true
	case int:
		return n, true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		return i, err == nil
	default:
		return 0, false
	}
}

// coerceString stringifies scalar inputs; a missing value defaults to "".
func coerceString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}
