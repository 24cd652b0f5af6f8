package pricing

import (
	"github.com/google/uuid"

	"github.com/mmynk/coursework/internal/calculator"
	"github.com/mmynk/coursework/internal/models"
)

// CreateItem builds a fully priced item from validated input.
// Tax and total are computed here, once, with the category's formula.
func CreateItem(in ItemInput) (models.Item, error) {
	strategy, err := calculator.StrategyFor(in.Category)
	if err != nil {
		return models.Item{}, err
	}

	tax, total := calculator.TotalPrice(in.Price, strategy)
	return models.Item{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Price:      in.Price,
		Quantity:   in.Quantity,
		Category:   in.Category,
		Tax:        tax,
		TotalPrice: total,
	}, nil
}
