package bootstrap

import (
	"context"
	"fmt"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/redis/go-redis/v9"

	"github.com/starfolio/portfolio-backend/config"
	"github.com/starfolio/portfolio-backend/internal/contact/repository"
)

// OpenContactStore builds the configured contact store. The returned close
// func releases the underlying client and is safe to call once.
func OpenContactStore(ctx context.Context, cfg config.ContactConfig) (repository.Store, func(), error) {
	switch cfg.Store {
	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
			DB:   cfg.RedisDB,
		})

		pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}

		return repository.NewRedisStore(client, cfg.Table), func() { client.Close() }, nil

	case config.StoreDynamo:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			return nil, nil, fmt.Errorf("aws config: %w", err)
		}
		client := dynamodb.NewFromConfig(awsCfg)

		return repository.NewDynamoStore(client, cfg.Table), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown contact store %q", cfg.Store)
	}
}
