// Package postgres implements storage.Storage on PostgreSQL. Queries are
// built with goqu and run over a pgx pool exposed as *sql.DB, which the goose
// migrations and the river job inserts share.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strconv"
	"time"
	"travel/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

const dialect = "postgres"

// Options configures the connection pool.
type Options struct {
	Username string
	Password string
	Host     string
	Port     int
	Database string
	// SslMode is passed as sslmode, e.g. "disable" or "require".
	SslMode string

	// Zero values keep the pgxpool defaults.
	ConnMaxLifetime    time.Duration
	ConnMaxIdleTime    time.Duration
	MaxOpenConnections int
	MaxIdleConnections int
}

// DSN renders the options as a postgres:// URL. Credentials are escaped.
func (o Options) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(o.Username, o.Password),
		Host:   o.Host + ":" + strconv.Itoa(o.Port),
		Path:   "/" + o.Database,
	}
	if o.SslMode != "" {
		u.RawQuery = url.Values{"sslmode": []string{o.SslMode}}.Encode()
	}

	return u.String()
}

func (o Options) poolConfig() (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(o.DSN())
	if err != nil {
		return nil, fmt.Errorf("could not parse pgxpool config: %w", err)
	}
	if o.MaxOpenConnections > 0 {
		cfg.MaxConns = int32(o.MaxOpenConnections) //nolint: gosec
	}
	if o.MaxIdleConnections > 0 {
		cfg.MinConns = int32(min(o.MaxIdleConnections, int(cfg.MaxConns))) //nolint: gosec
	}
	if o.ConnMaxLifetime > 0 {
		cfg.MaxConnLifetime = o.ConnMaxLifetime
	}
	if o.ConnMaxIdleTime > 0 {
		cfg.MaxConnIdleTime = o.ConnMaxIdleTime
	}

	return cfg, nil
}

// DB is the executor shared by *sql.DB and *sql.Tx, so every query runs the
// same way inside and outside a transaction.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Builder is the part of goqu.Database and goqu.TxDatabase the queries use.
type Builder interface {
	From(table ...any) *goqu.SelectDataset
	Insert(table any) *goqu.InsertDataset
	Update(table any) *goqu.UpdateDataset
	Delete(table any) *goqu.DeleteDataset
}

// PgSQL is either the pool handle (DB is a *sql.DB) or a transaction handle
// (DB is a *sql.Tx) returned by Begin.
type PgSQL struct {
	DB      DB
	Builder Builder
	// Pool is nil on transaction handles.
	Pool *pgxpool.Pool
}

var (
	_ storage.Storage   = (*PgSQL)(nil)
	_ storage.TxStorage = (*PgSQL)(nil)
)

// New opens the pool and checks the server is reachable.
func New(ctx context.Context, options Options) (*PgSQL, error) {
	cfg, err := options.poolConfig()
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create pgx Pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()

		return nil, fmt.Errorf("could not reach postgres at %s:%d: %w", options.Host, options.Port, err)
	}

	db := stdlib.OpenDBFromPool(pool)

	return &PgSQL{DB: db, Builder: goqu.Dialect(dialect).DB(db), Pool: pool}, nil
}

func (p *PgSQL) Close() error {
	var err error
	if db, ok := p.DB.(*sql.DB); ok {
		err = db.Close()
	}
	if p.Pool != nil {
		p.Pool.Close()
	}
	if err != nil {
		return fmt.Errorf("could not close postgres: %w", err)
	}

	return nil
}

func (p *PgSQL) tx() (*sql.Tx, error) {
	tx, ok := p.DB.(*sql.Tx)
	if !ok {
		return nil, storage.ErrNotInTx
	}

	return tx, nil
}

func (p *PgSQL) Commit() error {
	tx, err := p.tx()
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

func (p *PgSQL) Rollback() error {
	tx, err := p.tx()
	if err != nil {
		return err
	}
	if err := tx.Rollback(); err != nil {
		return fmt.Errorf("could not rollback tx: %w", err)
	}

	return nil
}

// Begin starts a transaction. Nested transactions are not supported.
func (p *PgSQL) Begin(ctx context.Context) (storage.TxStorage, error) {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return nil, storage.ErrAlreadyInTx
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin tx: %w", err)
	}

	return &PgSQL{DB: tx, Builder: goqu.NewTx(dialect, tx)}, nil
}

// WithTx runs cb in a transaction. The transaction is rolled back when cb
// fails or panics; the panic is re-raised after the rollback.
func (p *PgSQL) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) (err error) {
	tx, err := p.Begin(ctx)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := cb(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true

	return nil
}
