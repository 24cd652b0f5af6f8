package models

import "github.com/shopspring/decimal"

// Category is the item type that selects a tax formula.
type Category string

const (
	CategoryRaw          Category = "raw"
	CategoryManufactured Category = "manufactured"
	CategoryImported     Category = "imported"
)

// Categories lists every supported category in menu order.
var Categories = []Category{CategoryRaw, CategoryManufactured, CategoryImported}

// Item represents a single priced item.
// Tax and TotalPrice are computed once by pricing.CreateItem and never
// recomputed.
type Item struct {
	// ID is the unique identifier for the item (UUID format).
	ID string

	// Name is the name entered for the item (e.g., "Laptop").
	Name string

	// Price is the unit price before tax. Never negative.
	Price decimal.Decimal

	// Quantity is the number of units. Always positive.
	Quantity int

	// Category selects the tax formula.
	Category Category

	// Tax is the tax owed on one unit.
	Tax decimal.Decimal

	// TotalPrice is Price + Tax for one unit.
	TotalPrice decimal.Decimal
}

// LineTotal is the total price for all units of the item.
func (i Item) LineTotal() decimal.Decimal {
	return i.TotalPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
