package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/vfg2006/creator-leaderboard-api/internal/config"
)

type Connection struct {
	*sql.DB
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}

	// O banco só guarda o registro de sorteios e a lista de empresas;
	// um pool pequeno é suficiente
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	return &Connection{DB: db}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// RunInTransaction executa fn dentro de uma transação, com rollback em
// erro ou panic
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(tx); err != nil {
		if err := tx.Rollback(); err != nil {
			return err
		}
		return err
	}

	return tx.Commit()
}
