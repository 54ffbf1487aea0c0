package events

import (
	"context"
	"sync"
	"time"
)

// Topic identifica un canal de notificación tipado. Reemplaza al bus global
// sin contrato del front: aquí los suscriptores se registran explícitamente.
type Topic string

// Tópicos publicados por la aplicación.
const (
	TopicProductsUpdated        Topic = "products.updated"
	TopicProductStockChanged    Topic = "product.stock_changed"
	TopicClientsChanged         Topic = "clients.changed"
	TopicSuppliersUpdated       Topic = "suppliers.updated"
	TopicCompanySettingsChanged Topic = "company_settings.changed"
)

// Event es la notificación entregada a los suscriptores.
// Payload es opcional y específico de cada tópico.
type Event struct {
	Topic   Topic
	Payload any
	At      time.Time
}

// Handler procesa un evento. Se invoca de forma síncrona en la goroutine
// del publicador; un handler lento retrasa al publicador.
type Handler func(Event)

// Bus es el registro publish/subscribe de la aplicación.
type Bus interface {
	Publish(ctx context.Context, topic Topic, payload any)
	Subscribe(topic Topic, h Handler) (unsubscribe func())
}

var _ Bus = (*MemoryBus)(nil)

// MemoryBus implementación en proceso del Bus.
type MemoryBus struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[Topic]map[int]Handler
}

// NewMemoryBus construye el bus en memoria.
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{handlers: make(map[Topic]map[int]Handler)}
}

// Subscribe registra un handler para un tópico y devuelve su función de baja.
func (b *MemoryBus) Subscribe(topic Topic, h Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.handlers[topic] == nil {
		b.handlers[topic] = make(map[int]Handler)
	}
	id := b.nextID
	b.nextID++
	b.handlers[topic][id] = h
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers[topic], id)
	}
}

// Publish entrega el evento a todos los suscriptores del tópico.
func (b *MemoryBus) Publish(_ context.Context, topic Topic, payload any) {
	b.mu.RLock()
	hs := make([]Handler, 0, len(b.handlers[topic]))
	for _, h := range b.handlers[topic] {
		hs = append(hs, h)
	}
	b.mu.RUnlock()

	ev := Event{Topic: topic, Payload: payload, At: time.Now()}
	for _, h := range hs {
		h(ev)
	}
}
