package repositories

import (
	"context"
	"fmt"

	intconfig "travelapi/internal/config"
)

// Open connects the backend selected by STORE_DRIVER. Callers own the returned store and must Close it.
func Open(ctx context.Context, env intconfig.Env) (Store, error) {
	switch env.StoreDriver {
	case "", intconfig.DriverMemory:
		return NewMemoryStore(), nil
	case intconfig.DriverMySQL:
		db, err := intconfig.ConnectMySQL(ctx, env.MySQLDSN)
		if err != nil {
			return nil, err
		}
		return NewMySQLStore(db), nil
	case intconfig.DriverRedis:
		client, err := intconfig.ConnectRedis(ctx, env)
		if err != nil {
			return nil, err
		}
		return NewRedisStore(client, env.RedisPrefix), nil
	case intconfig.DriverMongo:
		client, err := intconfig.ConnectMongo(ctx, env.MongoURI)
		if err != nil {
			return nil, err
		}
		return NewMongoStore(client, env.MongoDatabase), nil
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", env.StoreDriver)
	}
}
