package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"StockExpert/internal/model"
)

// SQLiteRecorder persists refresh history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboards can read while the refresh cycle writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS report_snapshots (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp       INTEGER NOT NULL,
			symbol          TEXT NOT NULL,
			price           REAL,
			prev_price      REAL,
			rsi             REAL,
			ma20            REAL,
			upper_band      REAL,
			lower_band      REAL,
			advice          TEXT,
			target          REAL,
			direction       TEXT,
			achieved        INTEGER,
			distance        REAL,
			forecast_next   REAL,
			forecast_week   REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_ts ON report_snapshots(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_symbol ON report_snapshots(symbol)`,

		`CREATE TABLE IF NOT EXISTS fetch_failures (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			symbol    TEXT NOT NULL,
			error     TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_failures_ts ON fetch_failures(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// nullable maps NaN (undefined indicator) to SQL NULL.
func nullable(v float64) interface{} {
	if math.IsNaN(v) {
		return nil
	}
	return v
}

func (r *SQLiteRecorder) RecordReport(report *model.TickerReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var forecastNext, forecastWeek interface{}
	if report.Forecast != nil {
		forecastNext = report.Forecast.NextValue
		forecastWeek = report.Forecast.WeekValue
	}

	ind := report.Indicators
	_, err := r.db.Exec(`INSERT INTO report_snapshots
		(timestamp, symbol, price, prev_price, rsi, ma20, upper_band, lower_band,
		 advice, target, direction, achieved, distance, forecast_next, forecast_week)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		report.GeneratedAt.Unix(), report.Symbol, report.Price, report.PrevPrice,
		nullable(ind.RSI), nullable(ind.MA20), nullable(ind.UpperBand), nullable(ind.LowerBand),
		string(report.Advice), report.Target.Threshold, string(report.Target.Direction),
		report.Status.Achieved, report.Status.Distance,
		forecastNext, forecastWeek,
	)
	return err
}

func (r *SQLiteRecorder) RecordFailure(symbol string, recErr error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO fetch_failures (timestamp, symbol, error) VALUES (?,?,?)`,
		time.Now().Unix(), symbol, recErr.Error(),
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
