package reference

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/MrJamesThe3rd/roommapper/internal/database"
	"github.com/MrJamesThe3rd/roommapper/internal/matching"
)

const (
	DriverCSV      = "csv"
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// Source says where the reference dataset lives. Path is the CSV file or the
// SQLite database file; DSN overrides Path for SQL drivers.
type Source struct {
	Driver string
	Path   string
	Table  string
	DSN    string
}

// Load reads the reference dataset once and builds the lookup table.
func Load(ctx context.Context, src Source, normalizer matching.Normalizer) (*Table, error) {
	rows, err := readRows(ctx, src)
	if err != nil {
		return nil, err
	}

	t, err := NewTable(rows, normalizer)
	if err != nil {
		return nil, err
	}

	slog.Info("reference table loaded", "driver", src.Driver, "rooms", t.Len(), "properties", t.Properties())

	return t, nil
}

func readRows(ctx context.Context, src Source) ([]Row, error) {
	switch src.Driver {
	case "", DriverCSV:
		f, err := os.Open(src.Path)
		if err != nil {
			return nil, fmt.Errorf("opening reference file: %w", err)
		}
		defer f.Close()

		rows, err := ReadCSV(f)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", src.Path, err)
		}

		return rows, nil
	case DriverSQLite, DriverPostgres:
		dsn := src.DSN
		if dsn == "" {
			dsn = src.Path
		}

		db, err := database.Open(src.Driver, dsn)
		if err != nil {
			return nil, err
		}
		defer db.Close()

		return QueryRows(ctx, db, src.Table)
	}

	return nil, fmt.Errorf("unknown reference driver: %s", src.Driver)
}
