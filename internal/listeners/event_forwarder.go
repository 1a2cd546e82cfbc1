package listeners

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"rental-system/pkg/eventbus"
	"rental-system/pkg/publisher"
)

// EventForwarder пересылает все события шины во внешний Publisher.
type EventForwarder struct {
	publisher publisher.Publisher
	logger    *zap.Logger
}

func NewEventForwarder(p publisher.Publisher, logger *zap.Logger) *EventForwarder {
	return &EventForwarder{publisher: p, logger: logger}
}

// Register подписывает пересылку на все события.
func (f *EventForwarder) Register(bus *eventbus.Bus) {
	bus.Subscribe(eventbus.AllEvents, f.Handle)
}

func (f *EventForwarder) Handle(ctx context.Context, event eventbus.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("не удалось сериализовать событие %s: %w", event.Name(), err)
	}
	return f.publisher.Publish(ctx, event.Name(), payload)
}
