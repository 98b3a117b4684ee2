// Package db opens and migrates the gorm connection shared by all repositories.
package db

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
	gmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	authentity "shop_backend/internal/feature/auth/domain/entity"
	inventoryentity "shop_backend/internal/feature/inventory/domain/entity"
)

// Supported values of Config.Driver.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// retryInterval is the pause between two connection attempts.
const retryInterval = 3 * time.Second

// ErrUnsupportedDriver is returned for an unknown Config.Driver.
var ErrUnsupportedDriver = errors.New("unsupported db driver")

// Config holds database connection settings.
type Config struct {
	Driver       string `envconfig:"DB_DRIVER" default:"postgres"`
	User         string `envconfig:"DB_USER"`
	Password     string `envconfig:"DB_PASSWORD"`
	Name         string `envconfig:"DB_NAME"`
	Host         string `envconfig:"DB_HOST" default:"localhost"`
	Port         string `envconfig:"DB_PORT" default:"5432"`
	SSLMode      string `envconfig:"DB_SSLMODE" default:"disable"`
	InstanceName string `envconfig:"INSTANCE_CONNECTION_NAME"`
	// Path is the database file used by the sqlite driver.
	Path string `envconfig:"DB_PATH" default:"./shop.db"`

	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"30m"`
	ConnectTimeout  time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"60s"`
	RunMigrations   bool          `envconfig:"RUN_MIGRATIONS" default:"false"`
}

// LoadConfigFromEnv reads the database configuration from environment variables.
func LoadConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("load db config: %w", err)
	}
	return cfg, nil
}

// BuildDSN returns the data source name for the configured driver.
// For postgres and mysql a Cloud SQL instance name takes precedence over host/port.
func BuildDSN(cfg Config) string {
	switch cfg.Driver {
	case DriverSQLite:
		return cfg.Path
	case DriverMySQL:
		if cfg.InstanceName != "" {
			return fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
				cfg.User, cfg.Password, cfg.InstanceName, cfg.Name)
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
	default:
		host := cfg.Host
		if cfg.InstanceName != "" {
			host = "/cloudsql/" + cfg.InstanceName
		}
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			host, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)
		if cfg.InstanceName == "" {
			dsn += " port=" + cfg.Port
		}
		return dsn
	}
}

// Dialector returns the gorm dialector for driver.
func Dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case DriverPostgres:
		return postgres.Open(dsn), nil
	case DriverMySQL:
		return gmysql.Open(dsn), nil
	case DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

// GormConfig is the gorm configuration used by every connection, tests included.
// TranslateError makes unique violations surface as gorm.ErrDuplicatedKey.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}
}

// Opener opens a gorm connection for a DSN.
type Opener func(dsn string) (*gorm.DB, error)

// ConnectWithRetry calls open until it succeeds or timeout elapses.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		time.Sleep(min(retryInterval, remaining))
	}
}

// OpenDB connects to the configured database, applies pool settings
// and runs migrations when cfg.RunMigrations is set.
func OpenDB(cfg Config, log *zap.Logger) (*gorm.DB, error) {
	dialect := func(dsn string) (*gorm.DB, error) {
		d, err := Dialector(cfg.Driver, dsn)
		if err != nil {
			return nil, err
		}
		db, err := gorm.Open(d, GormConfig())
		if err != nil {
			log.Warn("db connect failed, retrying", zap.String("driver", cfg.Driver), zap.Error(err))
		}
		return db, err
	}

	if _, err := Dialector(cfg.Driver, ""); err != nil {
		return nil, err
	}

	db, err := ConnectWithRetry(BuildDSN(cfg), cfg.ConnectTimeout, dialect)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	log.Info("db connected", zap.String("driver", cfg.Driver))

	if cfg.RunMigrations {
		if err := Migrate(db); err != nil {
			return nil, err
		}
		log.Info("db migrated")
	}
	return db, nil
}

// Migrate creates or updates every table owned by the service.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&authentity.Role{},
		&authentity.RolePermissionActivity{},
		&authentity.AppUser{},
		&inventoryentity.Inventory{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

// Close closes the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
