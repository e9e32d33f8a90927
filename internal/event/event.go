// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher — диспетчер событий. Используется только из игрового цикла.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// UnsubscribeAll снимает всех подписчиков.
func (d *Dispatcher) UnsubscribeAll() {
	d.listeners = make(map[EventType][]Listener)
}

// Dispatch — отправка события всем подписчикам.
// Подписчик может отписаться во время рассылки: итерация идёт по копии.
func (d *Dispatcher) Dispatch(event Event) {
	if listeners, exists := d.listeners[event.Type]; exists {
		for _, listener := range append([]Listener(nil), listeners...) {
			listener.OnEvent(event)
		}
	}
}
