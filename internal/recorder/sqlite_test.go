package recorder

import (
	"errors"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockExpert/internal/model"
)

func openTestRecorder(t *testing.T) *SQLiteRecorder {
	t.Helper()
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })
	return r
}

func sampleReport() *model.TickerReport {
	return &model.TickerReport{
		Symbol:    "5970.T",
		Name:      "G-TEKT",
		Price:     2050,
		PrevPrice: 2040,
		Change:    10,
		Indicators: model.IndicatorPoint{
			RSI:       62.5,
			MA20:      2010,
			UpperBand: 2100,
			LowerBand: 1920,
		},
		Advice:      model.AdviceNeutral,
		Target:      model.TargetRule{Threshold: 2070, Direction: model.DirectionSell},
		Status:      model.TargetStatus{Achieved: false, Distance: -20, Percent: -0.966},
		GeneratedAt: time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),
	}
}

func TestSQLiteRecorder_RecordReport(t *testing.T) {
	r := openTestRecorder(t)
	require.NoError(t, r.RecordReport(sampleReport()))

	var count int
	require.NoError(t, r.db.QueryRow(`SELECT COUNT(*) FROM report_snapshots`).Scan(&count))
	assert.Equal(t, 1, count)

	var symbol, adviceStr string
	var rsi float64
	require.NoError(t, r.db.QueryRow(
		`SELECT symbol, advice, rsi FROM report_snapshots`).Scan(&symbol, &adviceStr, &rsi))
	assert.Equal(t, "5970.T", symbol)
	assert.Equal(t, "neutral", adviceStr)
	assert.Equal(t, 62.5, rsi)
}

func TestSQLiteRecorder_UndefinedIndicatorsAsNull(t *testing.T) {
	r := openTestRecorder(t)
	report := sampleReport()
	report.Indicators.RSI = math.NaN()
	report.Indicators.UpperBand = math.NaN()
	require.NoError(t, r.RecordReport(report))

	var nullRSI int
	require.NoError(t, r.db.QueryRow(
		`SELECT COUNT(*) FROM report_snapshots WHERE rsi IS NULL AND upper_band IS NULL`).Scan(&nullRSI))
	assert.Equal(t, 1, nullRSI)
}

func TestSQLiteRecorder_RecordFailure(t *testing.T) {
	r := openTestRecorder(t)
	require.NoError(t, r.RecordFailure("BBB", errors.New("delisted")))

	var symbol, msg string
	require.NoError(t, r.db.QueryRow(`SELECT symbol, error FROM fetch_failures`).Scan(&symbol, &msg))
	assert.Equal(t, "BBB", symbol)
	assert.Equal(t, "delisted", msg)
}

func TestSQLiteRecorder_MigrationsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	r1, err := NewSQLiteRecorder(path)
	require.NoError(t, err)
	require.NoError(t, r1.RecordReport(sampleReport()))
	require.NoError(t, r1.Close())

	r2, err := NewSQLiteRecorder(path)
	require.NoError(t, err)
	defer r2.Close()

	var count int
	require.NoError(t, r2.db.QueryRow(`SELECT COUNT(*) FROM report_snapshots`).Scan(&count))
	assert.Equal(t, 1, count, "reopening must not drop existing rows")
}
