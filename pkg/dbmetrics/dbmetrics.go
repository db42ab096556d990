package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// DefaultPoolStatsInterval период сбора статистики пула соединений
const DefaultPoolStatsInterval = 15 * time.Second

// DBExecutor общий интерфейс для *sql.DB и *DB
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Recorder принимает измерения запросов и пула соединений
type Recorder interface {
	ObserveDBQuery(operation string, duration time.Duration)
	SetDBPoolStats(open, inUse, idle int)
}

// DB обёртка над *sql.DB, которая замеряет длительность запросов
type DB struct {
	db       *sql.DB
	recorder Recorder
}

// Wrap оборачивает db и запускает сбор статистики пула с периодом interval до закрытия stop
func Wrap(db *sql.DB, recorder Recorder, interval time.Duration, stop <-chan struct{}) *DB {
	wrapped := &DB{db: db, recorder: recorder}
	go wrapped.collectPoolStats(interval, stop)
	return wrapped
}

// WrapWithDefault то же, что Wrap, с периодом DefaultPoolStatsInterval
func WrapWithDefault(db *sql.DB, recorder Recorder, stop <-chan struct{}) *DB {
	return Wrap(db, recorder, DefaultPoolStatsInterval, stop)
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer d.observe(query, time.Now())
	return d.db.ExecContext(ctx, query, args...)
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer d.observe(query, time.Now())
	return d.db.QueryContext(ctx, query, args...)
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer d.observe(query, time.Now())
	return d.db.QueryRowContext(ctx, query, args...)
}

func (d *DB) observe(query string, started time.Time) {
	d.recorder.ObserveDBQuery(Operation(query), time.Since(started))
}

func (d *DB) collectPoolStats(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		d.recordPoolStats()
		select {
		case <-stop:
			return
		case <-ticker.C:
		}
	}
}

func (d *DB) recordPoolStats() {
	stats := d.db.Stats()
	d.recorder.SetDBPoolStats(stats.OpenConnections, stats.InUse, stats.Idle)
}

// Operation возвращает тип SQL-операции (первое слово запроса) в нижнем регистре
func Operation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
