package publisher

import (
	"context"

	"go.uber.org/zap"
)

// LogPublisher только пишет события в лог.
type LogPublisher struct {
	logger *zap.Logger
}

func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, key string, payload []byte) error {
	p.logger.Info("Событие", zap.String("event", key), zap.ByteString("payload", payload))
	return nil
}

func (p *LogPublisher) Close() error { return nil }
