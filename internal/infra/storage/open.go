package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/service-auto/internal/config"
	dbpkg "github.com/BruksfildServices01/service-auto/internal/db"
)

// Backend is an opened Store plus whatever connections it owns.
type Backend struct {
	Driver string
	Store  Store

	// DB is set only for the postgres driver.
	DB *gorm.DB

	closers []func() error
}

func (b *Backend) Close() error {
	var errs []error
	for _, fn := range b.closers {
		if err := fn(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func Open(ctx context.Context, cfg config.StorageConfig) (*Backend, error) {
	b := &Backend{Driver: cfg.Driver}

	switch cfg.Driver {
	case "", "file":
		b.Driver = "file"
		b.Store = NewFileStore(cfg.DataDir)

	case "memory":
		b.Store = NewMemoryStore()

	case "redis":
		client, err := NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, fmt.Errorf("redis %s: %w", cfg.RedisAddr, err)
		}
		b.Store = NewRedisStore(client, cfg.RedisPrefix)
		b.closers = append(b.closers, client.Close)

	case "s3":
		if cfg.S3Bucket == "" {
			return nil, errors.New("s3 driver requires S3_BUCKET")
		}
		client := NewS3Client(cfg.S3Region, cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey)
		b.Store = NewS3Store(client, cfg.S3Bucket, cfg.S3Prefix)

	case "postgres":
		gdb, err := dbpkg.NewDB(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, err
		}
		b.DB = gdb
		b.Store = NewGormStore(gdb)
		b.closers = append(b.closers, sqlDB.Close)

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}

	return b, nil
}
