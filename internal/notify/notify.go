// Package notify is a small in-process event bus the core uses to announce
// successful mutations to whoever is presenting them.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"pharmadesk/m/domain"
)

// EventName identifies a kind of event on the bus.
type EventName string

const (
	MedicineCreated EventName = "medicine.created"
	MedicineUpdated EventName = "medicine.updated"
	StockRecorded   EventName = "stock.recorded"
)

// Event is a single notification.
type Event struct {
	ID      uuid.UUID
	Name    EventName
	At      time.Time
	Payload any
}

// MedicinePayload accompanies medicine.created and medicine.updated.
type MedicinePayload struct {
	Medicine domain.Medicine
}

// StockRecordedPayload accompanies stock.recorded. NewStock is the
// post-transaction quantity, which may differ from the requested movement
// when the clamp at zero applied.
type StockRecordedPayload struct {
	Transaction domain.StockTransaction
	NewStock    int64
}

// Bus fans events out to subscriber channels. A nil *Bus is valid and drops
// everything, so components can treat notification as optional.
type Bus struct {
	mu   sync.RWMutex
	subs map[EventName][]chan<- Event
}

// NewBus returns a bus with no subscribers.
func NewBus() *Bus {
	return &Bus{subs: make(map[EventName][]chan<- Event)}
}

// Subscribe registers ch for events with the given name. The caller owns the
// channel and should buffer it; Publish blocks on full channels.
func (b *Bus) Subscribe(name EventName, ch chan<- Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subs[name] = append(b.subs[name], ch)
}

// Publish delivers payload to every subscriber of name.
func (b *Bus) Publish(name EventName, payload any) {
	if b == nil {
		return
	}

	ev := Event{
		ID:      uuid.New(),
		Name:    name,
		At:      time.Now().UTC(),
		Payload: payload,
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subs[name] {
		ch <- ev
	}
}
