package listeners

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"rental-system/internal/events"
	"rental-system/pkg/eventbus"
)

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, key string, payload []byte) error {
	return m.Called(ctx, key, payload).Error(0)
}

func (m *mockPublisher) Close() error { return m.Called().Error(0) }

func TestEventForwarder_Handle(t *testing.T) {
	pub := new(mockPublisher)
	f := NewEventForwarder(pub, zap.NewNop())
	event := events.NewEntityEvent(events.EntityOrder, events.ActionCreated, 7)

	pub.On("Publish", mock.Anything, "order.created", mock.MatchedBy(func(payload []byte) bool {
		var got events.EntityEvent
		if err := json.Unmarshal(payload, &got); err != nil {
			return false
		}
		return got.EntityID == 7 && got.Entity == events.EntityOrder && got.ID == event.ID
	})).Return(nil).Once()

	require.NoError(t, f.Handle(context.Background(), event))
	pub.AssertExpectations(t)
}

func TestEventForwarder_RegisterForwardsEverything(t *testing.T) {
	pub := new(mockPublisher)
	pub.On("Publish", mock.Anything, "category.deleted", mock.Anything).Return(nil).Once()
	pub.On("Publish", mock.Anything, "payment.purged", mock.Anything).Return(errors.New("сбой")).Once()

	bus := eventbus.New(zap.NewNop())
	NewEventForwarder(pub, zap.NewNop()).Register(bus)

	bus.Publish(context.Background(), events.NewEntityEvent(events.EntityCategory, events.ActionDeleted, 1))
	bus.Publish(context.Background(), events.NewPurgedEvent(events.EntityPayment, 3))
	bus.Wait()

	pub.AssertExpectations(t)
}
