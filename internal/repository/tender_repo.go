package repository

import (
	"context"
	"sync"

	"github.com/BOSTONE069/procurement-service/internal/models"
)

// TenderRepository - интерфейс для работы с тендерами.
type TenderRepository interface {
	CreateTender(ctx context.Context, tender models.Tender) error
	GetTender(ctx context.Context, tenderId string) (*models.Tender, error)
	UpdateTenderStatus(ctx context.Context, tenderId string, status models.TenderStatus) error
	GetTenders(ctx context.Context) ([]models.Tender, error)
}

// InMemoryTenderRepository - реализация TenderRepository в памяти процесса.
type InMemoryTenderRepository struct {
	mu      sync.RWMutex
	tenders map[string]models.Tender
	order   []string
}

// NewInMemoryTenderRepository создаёт новый экземпляр InMemoryTenderRepository.
func NewInMemoryTenderRepository() *InMemoryTenderRepository {
	return &InMemoryTenderRepository{
		tenders: make(map[string]models.Tender),
	}
}

// CreateTender сохраняет новый тендер. Повторное использование id отклоняется.
func (r *InMemoryTenderRepository) CreateTender(ctx context.Context, tender models.Tender) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tenders[tender.ID]; exists {
		return models.ErrRejected
	}
	r.tenders[tender.ID] = tender
	r.order = append(r.order, tender.ID)
	return nil
}

// GetTender возвращает тендер по id или nil, если тендер не найден.
func (r *InMemoryTenderRepository) GetTender(ctx context.Context, tenderId string) (*models.Tender, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tender, ok := r.tenders[tenderId]
	if !ok {
		return nil, nil
	}
	out := tender
	return &out, nil
}

// UpdateTenderStatus меняет статус существующего тендера.
func (r *InMemoryTenderRepository) UpdateTenderStatus(ctx context.Context, tenderId string, status models.TenderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tender, ok := r.tenders[tenderId]
	if !ok {
		return models.ErrRejected
	}
	tender.Status = status
	r.tenders[tenderId] = tender
	return nil
}

// GetTenders возвращает список всех тендеров в порядке создания.
// Порядок не является частью контракта.
func (r *InMemoryTenderRepository) GetTenders(ctx context.Context) ([]models.Tender, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tenders := make([]models.Tender, 0, len(r.order))
	for _, id := range r.order {
		tenders = append(tenders, r.tenders[id])
	}
	return tenders, nil
}
