package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/mmynk/coursework/internal/models"
)

// Field is one labelled value in a details table.
type Field struct {
	Label string
	Value string
}

// Printer renders status lines and tables for the user.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Statusf prints a single status line.
func (p *Printer) Statusf(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Fields renders labelled values as a two-column table under a title.
func (p *Printer) Fields(title string, fields []Field) {
	t := newTable(p.out)
	if title != "" {
		t.SetTitle(title)
	}
	t.AppendHeader(table.Row{"Field", "Value"})
	for _, f := range fields {
		t.AppendRow(table.Row{f.Label, f.Value})
	}
	t.Render()
}

// Users renders users in the given order.
func (p *Printer) Users(users []models.User) {
	t := newTable(p.out)
	t.AppendHeader(table.Row{"Name", "Roll No", "Age", "Address", "Courses"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMax: 20},
		{Number: 4, WidthMax: 20},
	})
	for _, u := range users {
		t.AppendRow(table.Row{
			u.FullName,
			strconv.Itoa(u.RollNumber),
			strconv.Itoa(u.Age),
			u.Address,
			strings.Join(u.Courses, ", "),
		})
	}
	t.Render()
}

func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	return t
}
