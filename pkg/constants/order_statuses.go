package constants

// Статус заказа - свободный текст. Эти значения имеют смысл для отчетов.
const (
	OrderStatusActive    = "active"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// ClosedOrderStatuses - заказы в этих статусах не считаются активными.
var ClosedOrderStatuses = []string{OrderStatusCompleted, OrderStatusCancelled}
