package infra

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SetupDB DB_NAMEが設定されている場合はPostgreSQLを使用
// デフォルトは外部キー制約を有効にしたSQLite
func SetupDB(cfg *Config, logger *zap.Logger) (*gorm.DB, error) {
	gormConfig := NewGormConfig(cfg.IsProd())

	if cfg.UsePostgres() {
		db, err := gorm.Open(postgres.Open(cfg.PostgresDSN()), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}
		logger.Info("Setup postgres database",
			zap.String("host", cfg.Database.Host),
			zap.String("port", cfg.Database.Port),
			zap.String("dbname", cfg.Database.Name),
		)
		return db, nil
	}

	db, err := OpenSQLite(cfg.Database.SQLitePath, gormConfig)
	if err != nil {
		return nil, err
	}
	logger.Info("Setup sqlite database", zap.String("path", cfg.Database.SQLitePath))
	return db, nil
}

// NewGormConfig TranslateErrorによりドライバ固有のエラーを
// gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolatedに変換する
func NewGormConfig(prod bool) *gorm.Config {
	level := gormlogger.Warn
	if prod {
		level = gormlogger.Error
	}
	return &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(level),
	}
}

// OpenSQLite ":memory:"の場合は接続を1本に固定する（接続ごとに別DBになるため）
func OpenSQLite(path string, gormConfig *gorm.Config) (*gorm.DB, error) {
	inMemory := path == ":memory:" || path == ""
	dsn := sqliteDSN(path)

	db, err := gorm.Open(sqlite.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connect to sqlite: %w", err)
	}
	if inMemory {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

func sqliteDSN(path string) string {
	if path == ":memory:" || path == "" {
		return "file::memory:?_foreign_keys=on"
	}
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}
	if strings.Contains(path, "?") {
		return path + "&_foreign_keys=on"
	}
	return path + "?_foreign_keys=on"
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
