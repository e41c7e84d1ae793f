//go:generate go run go.uber.org/mock/mockgen -source=notification.go -destination=mocks/mock.go
package notification

type Handler func(Event)

// Transport delivers server-pushed events to subscribers of one event type.
type Transport interface {
	OnNotification(eventType Type, handler Handler) (unsubscribe func())
}
