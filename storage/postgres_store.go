package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/lib/pq"

	"bikeshare/models"
	"bikeshare/utils"
)

// tripColumns are stored verbatim; parsing stays with the cleaner.
var tripColumns = []struct {
	db  string
	csv string
}{
	{"start_time", models.ColStartTime},
	{"end_time", models.ColEndTime},
	{"trip_duration", models.ColDuration},
	{"start_station", models.ColStartStation},
	{"end_station", models.ColEndStation},
	{"user_type", models.ColUserType},
	{"gender", models.ColGender},
	{"birth_year", models.ColBirthYear},
}

const importBatchSize = 50

// PostgresStore keeps imported city datasets in PostgreSQL and serves them
// back as a TripSource.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens a connection to PostgreSQL, retrying the initial
// ping, runs schema migrations and returns a ready-to-use store.
func NewPostgresStore(ctx context.Context, dsn string, retry *utils.RetryConfig) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	if err := retry.Do(ctx, "postgres ping", func() error { return db.PingContext(ctx) }); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: %w", err)
	}

	ps := &PostgresStore{db: db}
	if err := ps.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return ps, nil
}

func (ps *PostgresStore) migrate(ctx context.Context) error {
	_, err := ps.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS bikeshare_cities (
			city             TEXT        PRIMARY KEY,
			has_demographics BOOLEAN     NOT NULL DEFAULT FALSE,
			imported_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS bikeshare_trips (
			id            BIGSERIAL PRIMARY KEY,
			city          TEXT    NOT NULL REFERENCES bikeshare_cities(city) ON DELETE CASCADE,
			line          INTEGER NOT NULL,
			start_time    TEXT    NOT NULL,
			end_time      TEXT    NOT NULL DEFAULT '',
			trip_duration TEXT    NOT NULL DEFAULT '',
			start_station TEXT    NOT NULL DEFAULT '',
			end_station   TEXT    NOT NULL DEFAULT '',
			user_type     TEXT    NOT NULL DEFAULT '',
			gender        TEXT    NOT NULL DEFAULT '',
			birth_year    TEXT    NOT NULL DEFAULT ''
		);

		CREATE INDEX IF NOT EXISTS idx_bikeshare_trips_city_line ON bikeshare_trips(city, line);
	`)
	return err
}

// Import replaces the stored rows of ds.City with the rows of ds.
func (ps *PostgresStore) Import(ctx context.Context, ds *models.RawDataset) error {
	tx, err := ps.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("postgres: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM bikeshare_cities WHERE city = $1`, ds.City); err != nil {
		return fmt.Errorf("postgres: clear %s: %w", ds.City, err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO bikeshare_cities (city, has_demographics) VALUES ($1, $2)`,
		ds.City, ds.HasDemographics); err != nil {
		return fmt.Errorf("postgres: insert city %s: %w", ds.City, err)
	}

	for i := 0; i < len(ds.Rows); i += importBatchSize {
		end := i + importBatchSize
		if end > len(ds.Rows) {
			end = len(ds.Rows)
		}
		if err := insertBatch(ctx, tx, ds.City, ds.Rows[i:end]); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("postgres: commit: %w", err)
	}
	return nil
}

func insertBatch(ctx context.Context, tx *sql.Tx, city string, batch []models.RawTrip) error {
	query, args := buildInsert(city, batch)
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("postgres: insert batch: %w", err)
	}
	return nil
}

// buildInsert returns a multi-row INSERT for batch and its arguments.
func buildInsert(city string, batch []models.RawTrip) (string, []interface{}) {
	width := len(tripColumns) + 2
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*width)

	for idx, row := range batch {
		placeholders := make([]string, width)
		for j := range placeholders {
			placeholders[j] = fmt.Sprintf("$%d", idx*width+j+1)
		}
		valueStrings = append(valueStrings, "("+strings.Join(placeholders, ",")+")")

		valueArgs = append(valueArgs, city, row.Line)
		for _, col := range tripColumns {
			valueArgs = append(valueArgs, row.Get(col.csv))
		}
	}

	names := make([]string, 0, width)
	names = append(names, "city", "line")
	for _, col := range tripColumns {
		names = append(names, col.db)
	}

	query := fmt.Sprintf(`INSERT INTO bikeshare_trips (%s) VALUES %s`,
		strings.Join(names, ", "), strings.Join(valueStrings, ","))
	return query, valueArgs
}

// Load returns the imported rows of a city in their original order.
func (ps *PostgresStore) Load(ctx context.Context, city string) (*models.RawDataset, error) {
	city = strings.ToLower(strings.TrimSpace(city))

	ds := &models.RawDataset{City: city}
	err := ps.db.QueryRowContext(ctx,
		`SELECT has_demographics FROM bikeshare_cities WHERE city = $1`, city).Scan(&ds.HasDemographics)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %w: %q not imported", ErrDataUnavailable, ErrUnknownCity, city)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: postgres: city %s: %w", ErrDataUnavailable, city, err)
	}

	names := make([]string, len(tripColumns))
	for i, col := range tripColumns {
		names[i] = col.db
		if ds.HasDemographics || (col.csv != models.ColGender && col.csv != models.ColBirthYear) {
			ds.Columns = append(ds.Columns, col.csv)
		}
	}

	rows, err := ps.db.QueryContext(ctx, fmt.Sprintf(
		`SELECT line, %s FROM bikeshare_trips WHERE city = $1 ORDER BY line`,
		strings.Join(names, ", ")), city)
	if err != nil {
		return nil, fmt.Errorf("%w: postgres: fetch %s: %w", ErrDataUnavailable, city, err)
	}
	defer rows.Close()

	for rows.Next() {
		values := make([]string, len(tripColumns))
		dest := make([]interface{}, 0, len(tripColumns)+1)
		row := models.RawTrip{Fields: make(map[string]string, len(tripColumns))}
		dest = append(dest, &row.Line)
		for i := range values {
			dest = append(dest, &values[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%w: postgres: scan row: %w", ErrDataUnavailable, err)
		}
		for i, col := range tripColumns {
			row.Fields[col.csv] = values[i]
		}
		ds.Rows = append(ds.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: postgres: %w", ErrDataUnavailable, err)
	}

	return ds, nil
}

func (ps *PostgresStore) Close() error {
	return ps.db.Close()
}
