// Package publisher отправляет доменные события во внешний транспорт.
package publisher

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"rental-system/pkg/config"
)

const (
	DriverNone  = "none"
	DriverRedis = "redis"
	DriverKafka = "kafka"
)

// Publisher - транспорт для событий: key - имя события, payload - JSON.
type Publisher interface {
	Publish(ctx context.Context, key string, payload []byte) error
	Close() error
}

// New выбирает транспорт по cfg.Driver. redisClient нужен только для драйвера redis.
func New(cfg config.EventsConfig, redisClient *redis.Client, logger *zap.Logger) (Publisher, error) {
	switch cfg.Driver {
	case "", DriverNone:
		return NewLogPublisher(logger), nil
	case DriverRedis:
		if redisClient == nil {
			return nil, fmt.Errorf("драйвер событий redis требует подключения к Redis")
		}
		return NewRedisPublisher(redisClient, cfg.Channel, logger), nil
	case DriverKafka:
		if len(cfg.KafkaBrokers) == 0 {
			return nil, fmt.Errorf("драйвер событий kafka требует KAFKA_BROKERS")
		}
		return NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, logger), nil
	default:
		return nil, fmt.Errorf("неизвестный драйвер событий: %q", cfg.Driver)
	}
}
