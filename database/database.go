package database

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"templo/config"
	"templo/logger"
	"templo/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open connects to the configured database, sizes the pool and migrates the schema.
// The returned handle is shared by the services for the lifetime of the process.
func Open(cfg *config.Config, log *logger.Logger) (*gorm.DB, error) {
	dialector, err := Dialector(cfg.Database)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, GormConfig(cfg.Database.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	maxIdle, maxOpen := cfg.Database.MaxIdleConns, cfg.Database.MaxOpenConns
	if maxIdle <= 0 {
		maxIdle = 10
	}
	if maxOpen <= 0 {
		maxOpen = 100
	}
	if cfg.Database.Driver == "sqlite" {
		// sqlite serialises writers; one connection avoids SQLITE_BUSY inside transactions
		maxIdle, maxOpen = 1, 1
	}
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetMaxOpenConns(maxOpen)

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info("database ready", "driver", cfg.Database.Driver)
	return db, nil
}

// Dialector picks the gorm driver for the configured database.
func Dialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
			cfg.Username,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.DBName,
			cfg.Charset,
		)
		return mysql.Open(dsn), nil
	case "postgres":
		sslMode := cfg.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			cfg.Host, cfg.Username, cfg.Password, cfg.DBName, cfg.Port, sslMode)
		return postgres.Open(dsn), nil
	case "sqlite":
		if cfg.Path == "" {
			return nil, fmt.Errorf("database.path is required for sqlite")
		}
		if !strings.HasPrefix(cfg.Path, "file:") {
			if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
				return nil, fmt.Errorf("create db directory: %w", err)
			}
		}
		return sqlite.Open(cfg.Path), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// GormConfig shared gorm settings. Driver errors are translated so unique
// violations surface as gorm.ErrDuplicatedKey.
func GormConfig(logLevel string) *gorm.Config {
	return &gorm.Config{
		Logger:         gormlogger.Default.LogMode(parseLogLevel(logLevel)),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	}
}

func parseLogLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}

// Migrate creates or updates the tables of every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Material{},
		&models.Movement{},
		&models.Member{},
		&models.MonthlyPayment{},
		&models.Transaction{},
	)
}
