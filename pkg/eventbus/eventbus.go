package eventbus

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// AllEvents - имя для подписки на все события шины.
const AllEvents = "*"

const defaultHandleTimeout = 1 * time.Minute

// Event представляет собой любое событие в системе.
type Event interface {
	Name() string
}

// Listener - это обработчик (слушатель) событий.
type Listener func(ctx context.Context, event Event) error

// Bus - это наша шина событий.
type Bus struct {
	listeners map[string][]Listener
	mu        sync.RWMutex
	wg        sync.WaitGroup
	timeout   time.Duration
	logger    *zap.Logger
}

// New создает новую шину событий.
func New(logger *zap.Logger) *Bus {
	return &Bus{
		listeners: make(map[string][]Listener),
		timeout:   defaultHandleTimeout,
		logger:    logger,
	}
}

// WithTimeout задает таймаут на обработку одного события одним слушателем.
func (b *Bus) WithTimeout(d time.Duration) *Bus {
	b.timeout = d
	return b
}

// Subscribe подписывает слушателя на определенное событие (или на AllEvents).
func (b *Bus) Subscribe(eventName string, listener Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners[eventName] = append(b.listeners[eventName], listener)
}

// Publish публикует событие. Каждый подписчик вызывается в своей горутине,
// ошибки слушателей только логируются.
func (b *Bus) Publish(ctx context.Context, event Event) {
	b.mu.RLock()
	eventName := event.Name()
	listeners := make([]Listener, 0, len(b.listeners[eventName])+len(b.listeners[AllEvents]))
	listeners = append(listeners, b.listeners[eventName]...)
	listeners = append(listeners, b.listeners[AllEvents]...)
	b.mu.RUnlock()

	for _, listener := range listeners {
		b.wg.Add(1)
		go func(l Listener) {
			defer b.wg.Done()

			// Контекст запроса к этому моменту может быть уже отменен.
			ctxWithTimeout, cancel := context.WithTimeout(context.WithoutCancel(ctx), b.timeout)
			defer cancel()

			if err := l(ctxWithTimeout, event); err != nil {
				b.logger.Error("Ошибка в обработчике события",
					zap.String("event", eventName),
					zap.Error(err),
				)
			}
		}(listener)
	}
}

// Wait блокируется, пока не завершатся все запущенные обработчики.
func (b *Bus) Wait() {
	b.wg.Wait()
}
