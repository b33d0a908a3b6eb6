// Package notification implementa la cola efímera de mensajes del dashboard.
// Cada entrada se auto-elimina pasada su ventana de visibilidad; cada una
// tiene su propio timer, no hay una cuenta regresiva compartida.
package notification

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Severidades soportadas.
const (
	SeveritySuccess = "success"
	SeverityError   = "error"
)

// DefaultTTL ventana de visibilidad de cada notificación.
const DefaultTTL = 3 * time.Second

// Entry una notificación visible.
type Entry struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	CreatedAt time.Time `json:"created_at"`
}

// Sink cola ordenada de notificaciones transitorias. Seguro para uso
// concurrente: lo escriben el ledger, los handlers y el scheduler.
type Sink struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries []Entry
	timers  map[string]*time.Timer
	closed  bool
}

// NewSink construye el sink con el TTL indicado; ttl <= 0 usa DefaultTTL.
func NewSink(ttl time.Duration) *Sink {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Sink{
		ttl:    ttl,
		timers: make(map[string]*time.Timer),
	}
}

// Notify agrega una notificación y programa su expiración.
func (s *Sink) Notify(message, severity string) {
	if severity != SeverityError {
		severity = SeveritySuccess
	}
	e := Entry{
		ID:        uuid.New().String(),
		Message:   message,
		Severity:  severity,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.entries = append(s.entries, e)
	s.timers[e.ID] = time.AfterFunc(s.ttl, func() { s.expire(e.ID) })
}

// Success atajo para Notify(msg, SeveritySuccess).
func (s *Sink) Success(message string) { s.Notify(message, SeveritySuccess) }

// Error atajo para Notify(msg, SeverityError).
func (s *Sink) Error(message string) { s.Notify(message, SeverityError) }

// Active devuelve las notificaciones aún visibles, en orden de llegada.
func (s *Sink) Active() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Close detiene todos los timers pendientes y vacía la cola.
func (s *Sink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
	s.entries = nil
}

func (s *Sink) expire(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.timers, id)
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}
