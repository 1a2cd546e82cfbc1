package listeners

import (
	"context"

	"rental-system/pkg/eventbus"
)

// Broadcaster - рассылка в открытые WebSocket-соединения.
type Broadcaster interface {
	Broadcast(messageType string, payload interface{}) error
}

// EventBroadcaster отдает события шины подключенным фронтендам.
type EventBroadcaster struct {
	hub Broadcaster
}

func NewEventBroadcaster(hub Broadcaster) *EventBroadcaster {
	return &EventBroadcaster{hub: hub}
}

func (b *EventBroadcaster) Register(bus *eventbus.Bus) {
	bus.Subscribe(eventbus.AllEvents, b.Handle)
}

func (b *EventBroadcaster) Handle(_ context.Context, event eventbus.Event) error {
	return b.hub.Broadcast(event.Name(), event)
}
