package repository

import (
	"sync"
	"time"

	"github.com/BOSTONE069/procurement-service/internal/models"

	"github.com/google/uuid"
)

// EventLog - упорядоченный журнал аудита, доступный только на добавление.
// Записи живут в памяти процесса вместе с остальным состоянием сервиса.
type EventLog struct {
	mu     sync.Mutex
	events []models.Event
}

// NewEventLog создаёт новый экземпляр EventLog.
func NewEventLog() *EventLog {
	return &EventLog{}
}

// Append добавляет запись в конец журнала.
func (l *EventLog) Append(now time.Time, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.events = append(l.events, models.Event{
		ID:        uuid.New().String(),
		Timestamp: now,
		Message:   message,
	})
}

// Events возвращает копию журнала. Операции сервиса журнал не читают,
// метод нужен для диагностики и тестов.
func (l *EventLog) Events() []models.Event {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.Event, len(l.events))
	copy(out, l.events)
	return out
}
