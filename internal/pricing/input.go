// Package pricing builds priced items from user input and runs the
// interactive pricing session.
package pricing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/coursework/internal/calculator"
	"github.com/mmynk/coursework/internal/console"
	"github.com/mmynk/coursework/internal/models"
)

var (
	ErrInvalidName     = errors.New("item name cannot be empty")
	ErrInvalidPrice    = errors.New("price must be a non-negative number")
	ErrInvalidQuantity = errors.New("quantity must be a whole number greater than 0")
)

// ItemInput is validated item data ready for CreateItem.
type ItemInput struct {
	Name     string
	Price    decimal.Decimal
	Quantity int
	Category models.Category
}

// ParseName trims the name and rejects blanks.
func ParseName(text string) (string, error) {
	name := strings.TrimSpace(text)
	if name == "" {
		return "", ErrInvalidName
	}
	return name, nil
}

// ParsePrice parses a non-negative decimal price.
func ParsePrice(text string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil || price.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidPrice, text)
	}
	return price, nil
}

// ParseQuantity parses a positive whole quantity.
func ParseQuantity(text string) (int, error) {
	quantity, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || quantity <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidQuantity, text)
	}
	return quantity, nil
}

// ReadItemInput asks for the four item attributes and validates each one as
// soon as it is entered. The first invalid answer abandons the item.
// Prompter errors (such as io.EOF) are returned unwrapped.
func ReadItemInput(p console.Prompter) (ItemInput, error) {
	var in ItemInput

	answer, err := p.Ask("Enter item name: ")
	if err != nil {
		return in, err
	}
	if in.Name, err = ParseName(answer); err != nil {
		return in, err
	}

	if answer, err = p.Ask("Enter item price: "); err != nil {
		return in, err
	}
	if in.Price, err = ParsePrice(answer); err != nil {
		return in, err
	}

	if answer, err = p.Ask("Enter item quantity: "); err != nil {
		return in, err
	}
	if in.Quantity, err = ParseQuantity(answer); err != nil {
		return in, err
	}

	if answer, err = p.Ask("Enter item type (raw/manufactured/imported): "); err != nil {
		return in, err
	}
	if in.Category, err = calculator.ParseCategory(answer); err != nil {
		return in, err
	}

	return in, nil
}
