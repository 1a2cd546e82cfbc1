package services

import (
	"context"

	"go.uber.org/zap"

	"rental-system/internal/events"
	"rental-system/pkg/eventbus"
	apperrors "rental-system/pkg/errors"
	"rental-system/pkg/types"
)

// EventPublisher - то, что нужно сервисам от шины событий.
type EventPublisher interface {
	Publish(ctx context.Context, event eventbus.Event)
}

// BaseService - общая часть сервисов сущностей: лог и события.
type BaseService struct {
	entity string
	bus    EventPublisher
	logger *zap.Logger
}

func NewBaseService(entity string, bus EventPublisher, logger *zap.Logger) BaseService {
	return BaseService{entity: entity, bus: bus, logger: logger}
}

func (s *BaseService) emit(ctx context.Context, action string, id uint64) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(ctx, events.NewEntityEvent(s.entity, action, id))
}

func (s *BaseService) emitPurged(ctx context.Context, affected int64) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(ctx, events.NewPurgedEvent(s.entity, affected))
}

func (s *BaseService) emitBulk(ctx context.Context, action string, affected int64) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(ctx, events.NewBulkEvent(s.entity, action, affected))
}

// checkPeriod - общая проверка периодов заказов, ценовых категорий и окон отчетов.
func checkPeriod(p types.Period) error {
	if !p.Valid() {
		return apperrors.NewInvalidInputError("dateEnd не может быть раньше dateStart")
	}
	return nil
}
