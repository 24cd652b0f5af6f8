package calculator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/coursework/internal/models"
)

// ErrUnsupportedCategory is returned for any item type outside the known categories.
var ErrUnsupportedCategory = errors.New("unsupported item type")

// TaxFunc computes the tax owed on a single unit at the given price.
type TaxFunc func(price decimal.Decimal) decimal.Decimal

var (
	baseTaxRate      = decimal.RequireFromString("0.125")
	manufacturedRate = decimal.RequireFromString("0.02")
	importDutyRate   = decimal.RequireFromString("0.10")
	importSurchRate  = decimal.RequireFromString("0.05")

	lowSurchargeLimit  = decimal.NewFromInt(100)
	highSurchargeLimit = decimal.NewFromInt(200)
	lowSurcharge       = decimal.NewFromInt(5)
	highSurcharge      = decimal.NewFromInt(10)
)

// RawTax is 12.5% of the price.
func RawTax(price decimal.Decimal) decimal.Decimal {
	return price.Mul(baseTaxRate)
}

// ManufacturedTax is the raw tax plus a 2% surcharge on (price + raw tax).
func ManufacturedTax(price decimal.Decimal) decimal.Decimal {
	base := price.Mul(baseTaxRate)
	surcharge := price.Add(base).Mul(manufacturedRate)
	return base.Add(surcharge)
}

// ImportedTax is a 10% import duty plus a surcharge on the duty-inclusive cost:
// a flat 5 up to 100, a flat 10 up to 200, and 5% beyond that. Both limits
// are inclusive, so a zero price still pays the flat 5.
func ImportedTax(price decimal.Decimal) decimal.Decimal {
	duty := price.Mul(importDutyRate)
	afterDuty := price.Add(duty)

	var surcharge decimal.Decimal
	switch {
	case afterDuty.LessThanOrEqual(lowSurchargeLimit):
		surcharge = lowSurcharge
	case afterDuty.LessThanOrEqual(highSurchargeLimit):
		surcharge = highSurcharge
	default:
		surcharge = afterDuty.Mul(importSurchRate)
	}
	return duty.Add(surcharge)
}

// ParseCategory normalizes text (trim + lowercase) and maps it to a Category.
func ParseCategory(text string) (models.Category, error) {
	switch c := models.Category(strings.ToLower(strings.TrimSpace(text))); c {
	case models.CategoryRaw, models.CategoryManufactured, models.CategoryImported:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCategory, text)
	}
}

// StrategyFor returns the tax formula for a category.
func StrategyFor(category models.Category) (TaxFunc, error) {
	switch category {
	case models.CategoryRaw:
		return RawTax, nil
	case models.CategoryManufactured:
		return ManufacturedTax, nil
	case models.CategoryImported:
		return ImportedTax, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCategory, string(category))
	}
}

// GetStrategy looks up the tax formula for free-form category text.
// Lookup is case-insensitive and ignores surrounding whitespace.
func GetStrategy(text string) (TaxFunc, error) {
	category, err := ParseCategory(text)
	if err != nil {
		return nil, err
	}
	return StrategyFor(category)
}

// TotalPrice is the price plus the tax computed by fn.
func TotalPrice(price decimal.Decimal, fn TaxFunc) (tax, total decimal.Decimal) {
	tax = fn(price)
	return tax, price.Add(tax)
}
