package storage

import (
	"fmt"

	"github.com/dhis2-sre/pick-a-date/pkg/config"
	"github.com/go-redis/redis"
)

// NewRedis connects to Redis and verifies the connection. It returns nil without error when Redis
// isn't configured.
func NewRedis(c config.Redis) (*redis.Client, error) {
	if !c.Enabled() {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Password: c.Password,
		DB:       c.Database,
	})

	if _, err := client.Ping().Result(); err != nil {
		return nil, fmt.Errorf("failed to ping redis at %s:%d: %v", c.Host, c.Port, err)
	}

	return client, nil
}
