package db

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	SlowThreshold   time.Duration
}

// Open connects with the configured driver. Duplicate-key errors are translated
// to gorm.ErrDuplicatedKey and no foreign key constraints are created.
func Open(cfg Config, baseLog *logger.Logger) (*gorm.DB, error) {
	log := baseLog.With("service", "Database")

	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
		Logger:                                   NewGormLogger(log, cfg.SlowThreshold),
		NowFunc:                                  func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sql handle: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	log.Info("Database connected", "driver", cfg.Driver)
	return db, nil
}

func dialectorFor(cfg Config) (gorm.Dialector, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case DriverPostgres, "postgresql", "pg":
		if dsn == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for postgres")
		}
		return postgres.Open(dsn), nil
	case DriverMySQL:
		if dsn == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for mysql")
		}
		return mysql.Open(dsn), nil
	case DriverSQLite, "sqlite3", "":
		if dsn == "" {
			dsn = "electionat.db"
		}
		return sqlite.Open(withBusyTimeout(dsn)), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}
}

// withBusyTimeout makes concurrent writers wait for the file lock instead of
// failing with SQLITE_BUSY. An explicit _busy_timeout in the DSN is kept.
func withBusyTimeout(dsn string) string {
	if strings.Contains(dsn, "_busy_timeout=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_busy_timeout=5000"
}

// Close releases the underlying pool.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
