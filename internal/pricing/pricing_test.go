package pricing

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/coursework/internal/calculator"
	"github.com/mmynk/coursework/internal/console"
	"github.com/mmynk/coursework/internal/metrics"
	"github.com/mmynk/coursework/internal/models"
)

func script(lines ...string) console.Prompter {
	return console.NewLinePrompter(strings.NewReader(strings.Join(lines, "\n")+"\n"), io.Discard)
}

func TestCreateItem(t *testing.T) {
	tests := []struct {
		name      string
		category  models.Category
		price     string
		wantTax   string
		wantTotal string
	}{
		{name: "raw", category: models.CategoryRaw, price: "100", wantTax: "12.5", wantTotal: "112.5"},
		{name: "manufactured", category: models.CategoryManufactured, price: "200", wantTax: "29.5", wantTotal: "229.5"},
		{name: "imported", category: models.CategoryImported, price: "300", wantTax: "46.5", wantTotal: "346.5"},
		{name: "imported zero price", category: models.CategoryImported, price: "0", wantTax: "5", wantTotal: "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := ItemInput{Name: "Widget", Price: decimal.RequireFromString(tt.price), Quantity: 3, Category: tt.category}
			before := in

			item, err := CreateItem(in)
			require.NoError(t, err)

			assert.NotEmpty(t, item.ID)
			assert.Equal(t, "Widget", item.Name)
			assert.Equal(t, 3, item.Quantity)
			assert.Equal(t, tt.category, item.Category)
			assert.True(t, item.Tax.Equal(decimal.RequireFromString(tt.wantTax)), "tax = %s", item.Tax)
			assert.True(t, item.TotalPrice.Equal(decimal.RequireFromString(tt.wantTotal)), "total = %s", item.TotalPrice)
			assert.Equal(t, before, in)
		})
	}

	t.Run("unknown category", func(t *testing.T) {
		_, err := CreateItem(ItemInput{Name: "Widget", Quantity: 1, Category: "bulk"})
		assert.ErrorIs(t, err, calculator.ErrUnsupportedCategory)
	})

	t.Run("items get distinct IDs", func(t *testing.T) {
		in := ItemInput{Name: "Widget", Quantity: 1, Category: models.CategoryRaw}
		a, err := CreateItem(in)
		require.NoError(t, err)
		b, err := CreateItem(in)
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})
}

func TestParsers(t *testing.T) {
	t.Run("name", func(t *testing.T) {
		name, err := ParseName("  Laptop ")
		require.NoError(t, err)
		assert.Equal(t, "Laptop", name)

		_, err = ParseName("   ")
		assert.ErrorIs(t, err, ErrInvalidName)
	})

	t.Run("price", func(t *testing.T) {
		for _, ok := range []string{"0", "10", " 19.99 ", "1000000"} {
			_, err := ParsePrice(ok)
			assert.NoError(t, err, ok)
		}
		for _, bad := range []string{"", "abc", "-1", "1,5"} {
			_, err := ParsePrice(bad)
			assert.ErrorIs(t, err, ErrInvalidPrice, bad)
		}
	})

	t.Run("quantity", func(t *testing.T) {
		q, err := ParseQuantity(" 4 ")
		require.NoError(t, err)
		assert.Equal(t, 4, q)

		for _, bad := range []string{"0", "-2", "2.5", "many", ""} {
			_, err := ParseQuantity(bad)
			assert.ErrorIs(t, err, ErrInvalidQuantity, bad)
		}
	})
}

func TestReadItemInput(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		in, err := ReadItemInput(script("Laptop", "300", "2", " ImPoRtEd "))
		require.NoError(t, err)
		assert.Equal(t, "Laptop", in.Name)
		assert.True(t, in.Price.Equal(decimal.NewFromInt(300)))
		assert.Equal(t, 2, in.Quantity)
		assert.Equal(t, models.CategoryImported, in.Category)
	})

	t.Run("stops at first invalid answer", func(t *testing.T) {
		_, err := ReadItemInput(script("Laptop", "free"))
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("unsupported type", func(t *testing.T) {
		_, err := ReadItemInput(script("Laptop", "10", "1", "fake"))
		assert.ErrorIs(t, err, calculator.ErrUnsupportedCategory)
	})

	t.Run("input ends", func(t *testing.T) {
		_, err := ReadItemInput(script("Laptop"))
		assert.ErrorIs(t, err, io.EOF)
	})
}

func TestSummarize(t *testing.T) {
	items := []models.Item{
		{Quantity: 2, Tax: decimal.RequireFromString("12.5"), TotalPrice: decimal.RequireFromString("112.5")},
		{Quantity: 1, Tax: decimal.NewFromInt(5), TotalPrice: decimal.NewFromInt(5)},
	}
	s := Summarize(items)
	assert.Equal(t, 2, s.Items)
	assert.Equal(t, 3, s.Units)
	assert.True(t, s.Tax.Equal(decimal.NewFromInt(30)), "tax = %s", s.Tax)
	assert.True(t, s.Total.Equal(decimal.NewFromInt(230)), "total = %s", s.Total)

	empty := Summarize(nil)
	assert.True(t, empty.Total.IsZero())
}

func TestSessionRun(t *testing.T) {
	var out bytes.Buffer
	m := metrics.New()
	prompter := script(
		"Steel", "100", "2", "raw", "yes",
		"Phone", "abc", "yes",
		"Camera", "300", "1", "imported", "no",
	)
	s := NewSession(prompter, console.NewPrinter(&out), m)

	require.NoError(t, s.Run(context.Background()))

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Steel", items[0].Name)
	assert.Equal(t, "Camera", items[1].Name)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ItemsPriced.WithLabelValues("raw")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ItemsPriced.WithLabelValues("imported")))

	printed := out.String()
	assert.Contains(t, printed, "Error: price must be a non-negative number")
	assert.Contains(t, printed, "346.50")
	// 2 × 112.50 + 346.50
	assert.Contains(t, printed, "571.50")
}

func TestSessionRunEndsOnEOF(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(script("Steel", "100"), console.NewPrinter(&out), metrics.New())

	require.NoError(t, s.Run(context.Background()))
	assert.Empty(t, s.Items())
	assert.Contains(t, out.String(), "No items priced.")
}
