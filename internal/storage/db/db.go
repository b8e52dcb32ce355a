package db

import (
	"context"
	"fmt"
	"time"

	"github.com/lexitrain/lexitrain/internal/config"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/jmoiron/sqlx"
)

func InitDB(cfg config.DBConfig) (*sqlx.DB, error) {
	driver, dsn, err := buildDSN(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed open db connect: %w", err)
	}

	db.SetMaxOpenConns(cfg.Cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Cfg.ConnMaxLifeTime)
	db.SetConnMaxIdleTime(cfg.Cfg.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed db ping: %w", err)
	}

	if err := ensureSchema(db, cfg.Driver); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed schema bootstrap: %w", err)
	}

	return db, nil
}

func buildDSN(cfg config.DBConfig) (driver, dsn string, err error) {
	switch cfg.Driver {
	case "sqlite":
		if cfg.Conn.Path == "" {
			return "", "", fmt.Errorf("sqlite driver requires db.conn.path")
		}
		// _foreign_keys keeps the progress cascade on word deletion working.
		return "sqlite3", cfg.Conn.Path + "?_foreign_keys=on", nil
	case "postgres":
		dsn = fmt.Sprintf("host=%v port=%v dbname=%v user=%v password=%v sslmode=%v",
			cfg.Conn.Host, cfg.Conn.Port, cfg.Conn.Name, cfg.Conn.User, cfg.Conn.Password, cfg.Conn.SSL)
		return "postgres", dsn, nil
	default:
		return "", "", fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
}
