package database

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pronunciationapp/backend/internal/config"
	"github.com/pronunciationapp/backend/internal/database/categories"
	"github.com/pronunciationapp/backend/internal/database/crud"
	"github.com/pronunciationapp/backend/internal/database/words"
	"github.com/pronunciationapp/backend/internal/entities"
)

// models lists every entity in migration order.
var models = []any{
	&entities.Level{},
	&entities.Category{},
	&entities.Word{},
	&entities.StageWord{},
	&entities.Pronunciation{},
	&entities.GameProgress{},
	&entities.User{},
}

// Database owns the gorm handle and one repository per entity.
type Database struct {
	DB *gorm.DB

	Categories     *categories.Repository
	Levels         *crud.Repository[entities.Level]
	Words          *words.Repository
	StageWords     *crud.Repository[entities.StageWord]
	GameProgress   *crud.Repository[entities.GameProgress]
	Users          *crud.Repository[entities.User]
	Pronunciations *crud.Repository[entities.Pronunciation]
}

// NewDatabase opens (creating if needed) a sqlite database at dbPath with
// foreign keys enforced, and migrates the schema.
func NewDatabase(dbPath string) (*Database, error) {
	return Open(sqliteDialector(dbPath), logger.Warn)
}

// NewFromConfig opens the database selected by cfg.Driver.
func NewFromConfig(cfg config.Database) (*Database, error) {
	level := parseLogLevel(cfg.LogLevel)
	switch cfg.Driver {
	case "", config.DriverSQLite:
		return Open(sqliteDialector(cfg.Path), level)
	case config.DriverPostgres:
		if cfg.DSN == "" {
			return nil, errors.New("DATABASE_DSN is required for the postgres driver")
		}
		return Open(postgres.Open(cfg.DSN), level)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Open connects through the given dialector and migrates the schema.
func Open(dialector gorm.Dialector, level logger.LogLevel) (*Database, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(models...); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	zap.L().Info("database initialized", zap.String("dialect", dialector.Name()))

	return New(db), nil
}

// New wraps an already migrated gorm handle.
func New(db *gorm.DB) *Database {
	return &Database{
		DB:             db,
		Categories:     categories.NewRepository(db),
		Levels:         crud.NewRepository[entities.Level](db),
		Words:          words.NewRepository(db),
		StageWords:     crud.NewRepository[entities.StageWord](db),
		GameProgress:   crud.NewRepository[entities.GameProgress](db),
		Users:          crud.NewRepository[entities.User](db),
		Pronunciations: crud.NewRepository[entities.Pronunciation](db),
	}
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks database connectivity.
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func sqliteDialector(dbPath string) gorm.Dialector {
	dsn := dbPath
	if !strings.Contains(dsn, "?") {
		dsn += "?_foreign_keys=on"
	}
	return sqlite.Open(dsn)
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
