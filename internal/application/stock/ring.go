package stock

import "github.com/jhoicas/pyme-api/internal/domain/entity"

// ring es un buffer circular de eventos de stock. Cuando se llena, cada
// escritura descarta el evento más antiguo: la auditoría en memoria queda
// acotada en lugar de crecer sin límite durante la vida del proceso.
type ring struct {
	buf  []entity.StockChangeEvent
	next int
	full bool
}

func newRing(capacity int) *ring {
	if capacity <= 0 {
		capacity = 1000
	}
	return &ring{buf: make([]entity.StockChangeEvent, capacity)}
}

func (r *ring) push(ev entity.StockChangeEvent) {
	r.buf[r.next] = ev
	r.next++
	if r.next == len(r.buf) {
		r.next = 0
		r.full = true
	}
}

// snapshot devuelve los eventos en orden cronológico, del más antiguo al más reciente.
func (r *ring) snapshot() []entity.StockChangeEvent {
	if !r.full {
		out := make([]entity.StockChangeEvent, r.next)
		copy(out, r.buf[:r.next])
		return out
	}
	out := make([]entity.StockChangeEvent, 0, len(r.buf))
	out = append(out, r.buf[r.next:]...)
	out = append(out, r.buf[:r.next]...)
	return out
}
