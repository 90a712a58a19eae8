package reference

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Row is one line of the reference dataset.
type Row struct {
	HotelID  string
	LPID     string
	RoomID   string
	RoomName string
}

const (
	colHotelID  = "hotel_id"
	colLPID     = "lp_id"
	colRoomID   = "room_id"
	colRoomName = "room_name"
)

var requiredCols = []string{colHotelID, colLPID, colRoomID, colRoomName}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

// ReadCSV parses a reference dataset. Columns are found by header name, so
// extra columns and any column order are accepted. Input may be gzip
// compressed and in any encoding utf8Reader understands.
func ReadCSV(r io.Reader) ([]Row, error) {
	utf8r, err := openText(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("read csv: empty file")
	}

	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	cols := headerIndex(header)
	for _, name := range requiredCols {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("read csv: missing column %q", name)
		}
	}

	var rows []Row

	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}

		row := Row{
			HotelID:  cellValue(record, cols[colHotelID]),
			LPID:     cellValue(record, cols[colLPID]),
			RoomID:   cellValue(record, cols[colRoomID]),
			RoomName: rawCell(record, cols[colRoomName]),
		}

		if row.LPID == "" || row.RoomID == "" {
			return nil, fmt.Errorf("line %d: missing %s or %s", line, colLPID, colRoomID)
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func headerIndex(header []string) colIndex {
	cols := make(colIndex, len(header))

	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		if _, dup := cols[name]; name != "" && !dup {
			cols[name] = i
		}
	}

	return cols
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	return strings.TrimSpace(rawCell(row, idx))
}

func rawCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return row[idx]
}
