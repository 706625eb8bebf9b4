package internal

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/jackc/pgx/v4/stdlib"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/DrGermanius/OnboardFlow/internal/migrations"
	"github.com/DrGermanius/OnboardFlow/internal/model"
)

const (
	orderFields = "id, name, email, product, price, payment_id, payment_status, envelope_id, envelope_status, created_at"

	ListLimit = 100
)

type IRepository interface {
	SaveOrder(context.Context, model.Order) error
	GetOrders(context.Context, int) ([]model.Order, error)
	GetOrderByID(context.Context, string) (model.Order, error)
}

type Repository struct {
	Conn   *sql.DB
	Logger *zap.SugaredLogger

	mu sync.Mutex
}

// NewRepository opens the SQLite file, or Postgres when a database URI is
// configured, and creates the orders table if it is absent.
func NewRepository(cfg *Config, logger *zap.SugaredLogger) (*Repository, error) {
	driver, dsn, dialect := "sqlite3", cfg.SQLiteFile, "sqlite3"
	if cfg.DatabaseURI != "" {
		driver, dsn, dialect = "pgx", cfg.DatabaseURI, "postgres"
	} else if err := os.MkdirAll(filepath.Dir(cfg.SQLiteFile), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if driver == "sqlite3" {
		conn.SetMaxOpenConns(1)
	}

	if err = migrate(conn, dialect, logger); err != nil {
		conn.Close()
		return nil, err
	}

	return &Repository{Conn: conn, Logger: logger}, nil
}

func migrate(conn *sql.DB, dialect string, logger *zap.SugaredLogger) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(gooseLogger{logger})
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	return goose.Up(conn, ".")
}

type gooseLogger struct {
	*zap.SugaredLogger
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	l.Infof(format, v...)
}

func (r *Repository) Close() error {
	return r.Conn.Close()
}

// SaveOrder inserts the record. Writes are serialized; there is no update
// path.
func (r *Repository) SaveOrder(ctx context.Context, o model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.Conn.ExecContext(ctx, "INSERT INTO orders ("+orderFields+") VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)",
		o.ID, o.Name, o.Email, o.Product, o.Price, o.PaymentID, o.PaymentStatus, o.EnvelopeID, o.EnvelopeStatus, o.CreatedAt.UTC())
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) GetOrders(ctx context.Context, limit int) ([]model.Order, error) {
	rows, err := r.Conn.QueryContext(ctx, "SELECT "+orderFields+" FROM orders ORDER BY created_at DESC LIMIT $1", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]model.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}

		orders = append(orders, o)
	}

	return orders, rows.Err()
}

func (r *Repository) GetOrderByID(ctx context.Context, id string) (model.Order, error) {
	row := r.Conn.QueryRowContext(ctx, "SELECT "+orderFields+" FROM orders WHERE id = $1", id)
	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Order{}, ErrNoRecords
		}
		return model.Order{}, err
	}

	return o, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(s scanner) (model.Order, error) {
	var o model.Order
	err := s.Scan(&o.ID, &o.Name, &o.Email, &o.Product, &o.Price, &o.PaymentID, &o.PaymentStatus, &o.EnvelopeID, &o.EnvelopeStatus, &o.CreatedAt)
	return o, err
}
