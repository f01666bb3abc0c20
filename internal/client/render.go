// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-seltzer-tracker/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func renderBrands(w io.Writer, brands []models.Brand) {
	if len(brands) == 0 {
		fmt.Fprintln(w, helpStyle.Render("No brands in the catalog."))
		return
	}

	t := newTable("ID", "BRAND", "FLAVORS")
	for _, b := range brands {
		t.Row(b.BrandID, b.Name, strings.Join(b.Flavors, ", "))
	}
	fmt.Fprintln(w, t.Render())
}

func renderEntries(w io.Writer, entries []models.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, helpStyle.Render("No seltzers logged yet."))
		return
	}

	t := newTable("ID", "DATE", "BRAND", "FLAVOR", "RATING", "NOTES")
	for _, e := range entries {
		t.Row(e.EntryID, strings.TrimSpace(e.Date+" "+e.Time), e.Brand, e.Flavor, stars(e.Rating), e.Notes)
	}
	fmt.Fprintln(w, t.Render())
}

func renderStats(w io.Writer, stats models.Stats) {
	fmt.Fprintln(w, titleStyle.Render("Your seltzer stats"))

	summary := newTable("TOTAL", "AVG RATING", "THIS WEEK", "TOP BRAND").
		Row(strconv.Itoa(stats.TotalSeltzers),
			strconv.FormatFloat(stats.AvgRating, 'f', 1, 64),
			strconv.Itoa(stats.ThisWeek),
			stats.TopBrand)
	fmt.Fprintln(w, summary.Render())

	if len(stats.BrandDistribution) == 0 {
		return
	}

	dist := newTable("BRAND", "COUNT")
	for _, bc := range stats.BrandDistribution {
		dist.Row(bc.Brand, strconv.Itoa(bc.Count))
	}
	fmt.Fprintln(w, dist.Render())
}

func renderUser(w io.Writer, user models.User) {
	fmt.Fprintln(w, titleStyle.Render(user.Username))
	fmt.Fprintf(w, "email:   %s\nrole:    %s\nsince:   %s\n",
		user.Email, user.Role, user.CreatedAt.Format("2006-01-02"))
}

// stars renders a 1-5 rating; anything else is shown as a number.
func stars(rating int) string {
	if rating < 1 || rating > 5 {
		return strconv.Itoa(rating)
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}
