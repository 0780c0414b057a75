package data

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"openmusic/cmd/access-service/internal/domain"

	"github.com/lib/pq"
)

var (
	_ domain.PlaylistRepository      = (*PlaylistRepo)(nil)
	_ domain.CollaborationRepository = (*CollaborationRepo)(nil)
	_ domain.LikeRepository          = (*LikeRepo)(nil)
	_ domain.ActivityRepository      = (*ActivityRepo)(nil)
	_ domain.AccountDirectory        = (*AccountRepo)(nil)
	_ domain.AlbumRepository         = (*AlbumRepo)(nil)
	_ domain.SongRepository          = (*SongRepo)(nil)
)

// DBConfig holds the relational-store connection settings.
type DBConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// NewDB opens the shared Postgres handle and verifies the connection.
func NewDB(cfg *DBConfig) (*sql.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// failure. This is the backstop that makes check-then-insert safe under
// concurrency.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
