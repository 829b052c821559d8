// Package db opens the settings database.
package db

import (
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/notedraft/notedraft/internal/config"
	"github.com/notedraft/notedraft/internal/db/dsn"
	"github.com/notedraft/notedraft/internal/db/models"
)

// Supported database engines.
const (
	EngineSQLite   = "sqlite"
	EngineMySQL    = "mysql"
	EnginePostgres = "postgres"
)

// ErrUnsupportedEngine is returned for an unknown DB.Engine.
var ErrUnsupportedEngine = errors.New("unsupported database engine")

// Dialector returns the gorm dialector for the configured engine.
func Dialector(cfg config.DB) (gorm.Dialector, error) {
	switch cfg.Engine {
	case EngineSQLite, "":
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o750); err != nil { //nolint: mnd
			return nil, errors.Wrap(err, "can't create database directory")
		}

		return sqlite.Open(cfg.Path), nil
	case EngineMySQL:
		return gormmysql.Open(dsn.MySQL(cfg)), nil
	case EnginePostgres:
		return gormpostgres.Open(dsn.Postgres(cfg)), nil
	default:
		return nil, errors.Wrap(ErrUnsupportedEngine, cfg.Engine)
	}
}

// Open connects to the configured database and migrates the settings table.
func Open(cfg config.DB) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	if err = db.AutoMigrate(&models.Setting{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate database")
	}

	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get database handle")
	}

	return sqlDB.Close()
}
