// Package render turns client state into styled terminal text. Every view is
// rebuilt from the state it is given; nothing is cached between calls.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dmitrijs2005/aroma/internal/client/models"
	"github.com/dmitrijs2005/aroma/internal/client/services"
)

type palette struct {
	title  lipgloss.Style
	text   lipgloss.Style
	muted  lipgloss.Style
	price  lipgloss.Style
	border lipgloss.Style
	info   lipgloss.Style
	err    lipgloss.Style
}

var (
	lightPalette = palette{
		title:  lipgloss.NewStyle().Foreground(lipgloss.Color("#6F4E37")).Bold(true),
		text:   lipgloss.NewStyle().Foreground(lipgloss.Color("#3E2723")),
		muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("#8D6E63")),
		price:  lipgloss.NewStyle().Foreground(lipgloss.Color("#A0522D")).Bold(true),
		border: lipgloss.NewStyle().Foreground(lipgloss.Color("#D7CCC8")),
		info:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#6F4E37")).Padding(0, 1),
		err:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#C62828")).Padding(0, 1),
	}
	darkPalette = palette{
		title:  lipgloss.NewStyle().Foreground(lipgloss.Color("#D2A679")).Bold(true),
		text:   lipgloss.NewStyle().Foreground(lipgloss.Color("#EFEBE9")),
		muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("#A1887F")),
		price:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB74D")).Bold(true),
		border: lipgloss.NewStyle().Foreground(lipgloss.Color("#5D4037")),
		info:   lipgloss.NewStyle().Foreground(lipgloss.Color("#1B1B1B")).Background(lipgloss.Color("#D2A679")).Padding(0, 1),
		err:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#EF5350")).Padding(0, 1),
	}
)

func paletteFor(theme models.Theme) palette {
	if theme == models.ThemeDark {
		return darkPalette
	}
	return lightPalette
}

// Lei formats an amount in lei.
func Lei(v int64) string {
	return strconv.FormatInt(v, 10) + " lei"
}

// Cart renders the cart as a table followed by the total line.
func Cart(items models.Cart, theme models.Theme) string {
	p := paletteFor(theme)

	var b strings.Builder
	b.WriteString(p.title.Render("Coșul tău"))
	b.WriteString("\n")

	if len(items) == 0 {
		b.WriteString(p.muted.Render("Coșul este gol."))
		b.WriteString("\n")
		return b.String()
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(p.border).
		Headers("Produs", "Cantitate", "Subtotal", "ID").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return p.title.Padding(0, 1)
			}
			if col == 2 {
				return p.price.Padding(0, 1)
			}
			return p.text.Padding(0, 1)
		})
	for _, li := range items {
		t.Row(li.Name, fmt.Sprintf("%d x %s", li.Quantity, Lei(li.Price)), Lei(li.Subtotal()), li.ID)
	}

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(p.price.Render("Total: " + Lei(items.Total())))
	b.WriteString("\n")
	return b.String()
}

// Badge is the cart button label with its item count.
func Badge(count int64) string {
	return fmt.Sprintf("🛒 %d", count)
}

// Notification renders a one-line toast.
func Notification(level services.Level, msg string, theme models.Theme) string {
	p := paletteFor(theme)
	if level == services.LevelError {
		return p.err.Render(msg)
	}
	return p.info.Render(msg)
}

// Menu lists every section with its items and prices.
func Menu(menu models.Menu, theme models.Theme) string {
	p := paletteFor(theme)

	var b strings.Builder
	for i, s := range menu.Sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(p.title.Render(s.Title))
		b.WriteString("\n")
		for _, it := range s.Items {
			line := fmt.Sprintf("  %-16s %s", it.Name, p.price.Render(Lei(it.Price)))
			if it.Description != "" {
				line += "  " + p.muted.Render(it.Description)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Promo renders the promo banner.
func Promo(promo models.Promo, theme models.Theme) string {
	p := paletteFor(theme)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.border.GetForeground()).
		Padding(0, 1)
	return box.Render(lipgloss.JoinVertical(lipgloss.Left,
		p.title.Render(promo.Text),
		p.muted.Render(promo.Details),
	))
}

// Stats renders a visit report.
func Stats(r services.VisitReport, theme models.Theme) string {
	p := paletteFor(theme)
	return lipgloss.JoinVertical(lipgloss.Left,
		p.title.Render("Statistici vizite"),
		p.text.Render(fmt.Sprintf("Total vizite: %d", r.Total)),
		p.text.Render(fmt.Sprintf("Pagini vizitate: %s", strings.Join(r.Pages, ", "))),
		p.text.Render(fmt.Sprintf("Vizite azi: %d", r.Today)),
	)
}
