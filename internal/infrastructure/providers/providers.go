package providers

import (
	"github.com/bradfitz/gomemcache/memcache"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/lcacollect/reporting-backend/internal/config"
	"github.com/lcacollect/reporting-backend/internal/infrastructure/database"
	"github.com/lcacollect/reporting-backend/internal/infrastructure/gateway"
	"github.com/lcacollect/reporting-backend/internal/infrastructure/storage"
)

// NewDatabase opens a Postgres connection using the configured DSN.
func NewDatabase(conf config.Server) (*gorm.DB, error) {
	return database.NewPostgres(conf.PostgresDsn)
}

// MigrateDatabase applies migrations for the application models.
func MigrateDatabase(db *gorm.DB) error {
	return database.MigratePostgres(db)
}

// NewRedis creates the redis client backing the export cache.
func NewRedis(conf config.Server) *redis.Client {
	return database.NewRedis(conf.RedisAddr, "", conf.RedisDB)
}

// NewMemcache creates a memcache client, or nil when not configured.
func NewMemcache(conf config.Server) *memcache.Client {
	if conf.MemcachedAddr == "" {
		return nil
	}
	return database.NewMemcached(conf.MemcachedAddr)
}

// NewBlobStore creates the content-addressed file store for uploads.
func NewBlobStore(conf config.Server) *storage.BlobStore {
	return storage.NewBlobStore(conf.BlobBasePath)
}

// NewRouterGateway constructs the GraphQL gateway to the federation
// router.
func NewRouterGateway(conf config.Service, mc *memcache.Client) *gateway.RouterGateway {
	return gateway.NewRouterGateway(conf.RouterURL, mc)
}
