// picks the GORM driver by StoreDriver. No repository/service code changes needed when you change DB.

package config

import (
	"errors"
	"fmt"
	"log"

	"FormLab/models"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
)

// IsSQLDriver reports whether driver is served by GORM.
func IsSQLDriver(driver string) bool {
	switch driver {
	case "mysql", "postgres", "sqlite", "sqlserver":
		return true
	}
	return false
}

// dialector maps StoreDriver to a GORM dialector, checking the matching DSN is set.
func dialector(cfg *Config) (gorm.Dialector, error) {
	switch cfg.StoreDriver {
	case "mysql":
		if cfg.MySQLDSN == "" {
			return nil, errors.New("mysql selected but mysql_dsn empty")
		}
		return mysql.Open(cfg.MySQLDSN), nil
	case "postgres":
		if cfg.PostgresDSN == "" {
			return nil, errors.New("postgres selected but postgres_dsn empty")
		}
		return postgres.Open(cfg.PostgresDSN), nil
	case "sqlite":
		// file is created if missing
		return sqlite.Open(cfg.SQLitePath), nil
	case "sqlserver":
		if cfg.SQLServerDSN == "" {
			return nil, errors.New("sqlserver selected but sqlserver_dsn empty")
		}
		return sqlserver.Open(cfg.SQLServerDSN), nil
	}
	return nil, fmt.Errorf("unknown sql driver: %s", cfg.StoreDriver)
}

// OpenDB connects with the configured driver and migrates the submissions table.
func OpenDB(cfg *Config) (*gorm.DB, error) {
	d, err := dialector(cfg)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(d, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn), // Info is very verbose
	})
	if err != nil {
		return nil, fmt.Errorf("connection error: %w", err)
	}
	if err := db.AutoMigrate(&models.Submission{}); err != nil {
		return nil, fmt.Errorf("automigrate error: %w", err)
	}
	return db, nil
}

// InitDB is OpenDB for boot code: any failure ends the process.
func InitDB(cfg *Config) *gorm.DB {
	db, err := OpenDB(cfg)
	if err != nil {
		log.Fatalf("[db] %v", err)
	}
	log.Printf("[db] connected: driver=%s", cfg.StoreDriver)
	return db
}
