package publisher

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisPublisher публикует события в канал Redis Pub/Sub.
type RedisPublisher struct {
	client  *redis.Client
	channel string
	logger  *zap.Logger
}

func NewRedisPublisher(client *redis.Client, channel string, logger *zap.Logger) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel, logger: logger}
}

func (p *RedisPublisher) Publish(ctx context.Context, key string, payload []byte) error {
	receivers, err := p.client.Publish(ctx, p.channel, payload).Result()
	if err != nil {
		return fmt.Errorf("ошибка публикации %s в Redis: %w", key, err)
	}
	p.logger.Debug("Событие отправлено в Redis",
		zap.String("event", key),
		zap.String("channel", p.channel),
		zap.Int64("receivers", receivers),
	)
	return nil
}

// Close не закрывает клиент: им владеет main.
func (p *RedisPublisher) Close() error { return nil }
