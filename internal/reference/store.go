package reference

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
)

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// QueryRows reads the reference dataset from a SQL table with the columns
// hotel_id, lp_id, room_id and room_name.
func QueryRows(ctx context.Context, db *sql.DB, table string) ([]Row, error) {
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}

	query := fmt.Sprintf(`
		SELECT hotel_id, lp_id, room_id, room_name
		FROM %s
	`, table)

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying reference rooms: %w", err)
	}
	defer rows.Close()

	var out []Row

	for rows.Next() {
		var (
			row      Row
			hotelID  sql.NullString
			roomName sql.NullString
		)

		if err := rows.Scan(&hotelID, &row.LPID, &row.RoomID, &roomName); err != nil {
			return nil, fmt.Errorf("scanning reference room: %w", err)
		}

		row.HotelID = hotelID.String
		row.RoomName = roomName.String
		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reference rooms: %w", err)
	}

	return out, nil
}
