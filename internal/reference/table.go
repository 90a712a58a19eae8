package reference

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/MrJamesThe3rd/roommapper/internal/matching"
)

// Table is the in-memory reference dataset, indexed by lp id. It is
// read-only once built and safe for concurrent use.
type Table struct {
	rooms map[string][]matching.PropertyRoom
	size  int
}

// NewTable normalizes every row name once and indexes the rows by lp id.
// Rows repeating an (lp id, room id) pair are dropped, the first one wins.
func NewTable(rows []Row, normalizer matching.Normalizer) (*Table, error) {
	names := make([]string, len(rows))
	for i, row := range rows {
		names[i] = row.RoomName
	}

	normalized, err := normalizer.NormalizeAll(names)
	if err != nil {
		return nil, fmt.Errorf("normalizing reference rooms: %w", err)
	}

	t := &Table{rooms: make(map[string][]matching.PropertyRoom)}
	seen := make(map[matching.Key]struct{}, len(rows))
	dropped := 0

	for i, row := range rows {
		room := matching.PropertyRoom{
			HotelID:        row.HotelID,
			LPID:           row.LPID,
			RoomID:         row.RoomID,
			RoomName:       row.RoomName,
			NormalizedName: normalized[i],
		}

		if _, ok := seen[room.Key()]; ok {
			dropped++
			continue
		}

		seen[room.Key()] = struct{}{}
		t.rooms[row.LPID] = append(t.rooms[row.LPID], room)
		t.size++
	}

	if dropped > 0 {
		slog.Warn("dropped duplicate reference rooms", "count", dropped)
	}

	return t, nil
}

// RoomsForProperty returns a copy of the rows stored for propertyID.
func (t *Table) RoomsForProperty(_ context.Context, propertyID string) ([]matching.PropertyRoom, error) {
	rooms, ok := t.rooms[propertyID]
	if !ok {
		return nil, matching.ErrNotFound
	}

	return slices.Clone(rooms), nil
}

// Len is the number of rooms in the table.
func (t *Table) Len() int {
	return t.size
}

// Properties is the number of distinct lp ids.
func (t *Table) Properties() int {
	return len(t.rooms)
}
