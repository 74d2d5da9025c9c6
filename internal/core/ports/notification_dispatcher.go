package ports

// Operator event types pushed over the operator websocket.
const (
	// OperatorEventNewOrder announces a freshly paid order.
	OperatorEventNewOrder = 1

	// OperatorEventReminder relays a customer's "hurry up" nudge.
	OperatorEventReminder = 2
)

// OperatorEvent is the payload broadcast to every connected operator session.
type OperatorEvent struct {
	Type    int    `json:"type"`
	OrderID string `json:"orderId"`
	Content string `json:"content"`
}

// NotificationDispatcher pushes events to the merchant operator consoles.
// Delivery is best effort: a broadcast never blocks the caller and is never
// retried.
type NotificationDispatcher interface {
	Broadcast(event OperatorEvent)
}
