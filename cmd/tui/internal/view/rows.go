package view

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"

	"github.com/MrJamesThe3rd/roommapper/internal/matching"
)

const blank = "-"

func resultColumns() []table.Column {
	return []table.Column{
		{Title: "Reference Room", Width: 36},
		{Title: "Supplier", Width: 14},
		{Title: "Supplier Room", Width: 44},
		{Title: "Score", Width: 6},
	}
}

// CatalogRows lists matched pairs first, then unmapped reference rooms and
// unmapped supplier rooms.
func CatalogRows(res *matching.CatalogResult) []table.Row {
	var rows []table.Row

	for _, g := range res.Groups {
		rows = append(rows, matchRows(g.Reference.RoomName, g.Matches)...)
	}

	for _, r := range res.UnmatchedReference {
		rows = append(rows, table.Row{r.RoomName, blank, blank, blank})
	}

	return append(rows, supplierRows(res.UnmatchedSupplier)...)
}

func PropertyRows(res *matching.PropertyResult) []table.Row {
	var rows []table.Row

	for _, g := range res.Groups {
		rows = append(rows, matchRows(g.Reference.RoomName, g.Matches)...)
	}

	return append(rows, supplierRows(res.UnmatchedSupplier)...)
}

func CatalogSummary(res *matching.CatalogResult) string {
	return fmt.Sprintf("%s: %d reference rooms mapped, %d unmapped, %d supplier rooms unmapped",
		res.PropertyID, len(res.Groups), len(res.UnmatchedReference), len(res.UnmatchedSupplier))
}

func PropertySummary(res *matching.PropertyResult) string {
	return fmt.Sprintf("%s: %d reference rooms mapped, %d supplier rooms unmapped",
		res.PropertyID, len(res.Groups), len(res.UnmatchedSupplier))
}

func matchRows(reference string, matches []matching.SupplierMatch) []table.Row {
	rows := make([]table.Row, len(matches))
	for i, m := range matches {
		rows[i] = table.Row{reference, m.Supplier.SupplierID, m.Supplier.RoomName, strconv.Itoa(m.Score)}
	}

	return rows
}

func supplierRows(rooms []matching.SupplierRoom) []table.Row {
	rows := make([]table.Row, len(rooms))
	for i, s := range rooms {
		rows[i] = table.Row{blank, s.SupplierID, s.RoomName, blank}
	}

	return rows
}
