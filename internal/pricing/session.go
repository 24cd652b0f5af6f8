package pricing

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/coursework/internal/console"
	"github.com/mmynk/coursework/internal/metrics"
	"github.com/mmynk/coursework/internal/models"
)

const continuePrompt = "Do you want to enter details of any other item? (yes/no) : "

// Summary totals every item priced in a session.
type Summary struct {
	Items int
	Units int
	Tax   decimal.Decimal // tax across all units
	Total decimal.Decimal // sum of line totals
}

// Summarize adds up the items. Each item contributes TotalPrice × Quantity.
func Summarize(items []models.Item) Summary {
	s := Summary{Tax: decimal.Zero, Total: decimal.Zero}
	for _, item := range items {
		qty := decimal.NewFromInt(int64(item.Quantity))
		s.Items++
		s.Units += item.Quantity
		s.Tax = s.Tax.Add(item.Tax.Mul(qty))
		s.Total = s.Total.Add(item.LineTotal())
	}
	return s
}

// Session runs the interactive pricing loop.
type Session struct {
	prompter console.Prompter
	printer  *console.Printer
	metrics  *metrics.Metrics
	items    []models.Item
}

// NewSession creates a pricing session.
func NewSession(prompter console.Prompter, printer *console.Printer, m *metrics.Metrics) *Session {
	return &Session{prompter: prompter, printer: printer, metrics: m}
}

// Items returns the items priced so far.
func (s *Session) Items() []models.Item {
	return append([]models.Item(nil), s.items...)
}

// Run prices items until the user declines to continue or input ends, then
// prints the order summary.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.priceItem(); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}

		answer, err := s.prompter.Ask(continuePrompt)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if !strings.EqualFold(answer, "yes") {
			break
		}
	}

	s.printSummary()
	return nil
}

// priceItem reads and prices one item. Invalid input is reported to the
// user and is not an error.
func (s *Session) priceItem() error {
	in, err := ReadItemInput(s.prompter)
	if errors.Is(err, io.EOF) {
		return err
	}
	if err != nil {
		slog.Debug("Item input rejected", "error", err)
		s.printer.Statusf("Error: %v", err)
		return nil
	}

	item, err := CreateItem(in)
	if err != nil {
		s.printer.Statusf("Error: %v", err)
		return nil
	}
	s.items = append(s.items, item)
	s.metrics.ItemsPriced.WithLabelValues(string(item.Category)).Inc()

	slog.Info("Item priced",
		"item_id", item.ID,
		"category", item.Category,
		"price", item.Price.String(),
		"tax", item.Tax.String(),
	)

	s.printer.Fields("Item Details", []console.Field{
		{Label: "Name", Value: item.Name},
		{Label: "Price", Value: item.Price.StringFixed(2)},
		{Label: "Quantity", Value: strconv.Itoa(item.Quantity)},
		{Label: "Type", Value: string(item.Category)},
		{Label: "Tax", Value: item.Tax.StringFixed(2)},
		{Label: "Total Price", Value: item.TotalPrice.StringFixed(2)},
	})
	return nil
}

func (s *Session) printSummary() {
	if len(s.items) == 0 {
		s.printer.Statusf("No items priced.")
		return
	}
	sum := Summarize(s.items)
	s.printer.Fields("Order Summary", []console.Field{
		{Label: "Items", Value: strconv.Itoa(sum.Items)},
		{Label: "Units", Value: strconv.Itoa(sum.Units)},
		{Label: "Tax", Value: sum.Tax.StringFixed(2)},
		{Label: "Grand Total", Value: sum.Total.StringFixed(2)},
	})
}
