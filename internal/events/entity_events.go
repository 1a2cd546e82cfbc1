package events

import (
	"time"

	"github.com/google/uuid"
)

// Сущности
const (
	EntityCategory       = "category"
	EntityEquipment      = "equipment"
	EntityClient         = "client"
	EntityPriceCategory  = "price_category"
	EntityOrder          = "order"
	EntityOrderEquipment = "order_equipment"
	EntityPayment        = "payment"
)

// Действия
const (
	ActionCreated  = "created"
	ActionUpdated  = "updated"
	ActionDeleted  = "deleted"
	ActionPurged   = "purged"
	ActionImported = "imported"
)

// EntityEvent - событие об изменении записи, имя "<entity>.<action>".
type EntityEvent struct {
	ID         uuid.UUID `json:"id"`
	Entity     string    `json:"entity"`
	Action     string    `json:"action"`
	EntityID   uint64    `json:"entityId,omitempty"`
	Affected   int64     `json:"affected,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Name - реализуем интерфейс eventbus.Event
func (e EntityEvent) Name() string {
	return e.Entity + "." + e.Action
}

func NewEntityEvent(entity, action string, entityID uint64) EntityEvent {
	return EntityEvent{
		ID:         uuid.New(),
		Entity:     entity,
		Action:     action,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
	}
}

// NewPurgedEvent - событие очистки всей таблицы сущности.
func NewPurgedEvent(entity string, affected int64) EntityEvent {
	return NewBulkEvent(entity, ActionPurged, affected)
}

// NewBulkEvent - событие, затронувшее сразу много записей (purged, imported).
func NewBulkEvent(entity, action string, affected int64) EntityEvent {
	e := NewEntityEvent(entity, action, 0)
	e.Affected = affected
	return e
}
