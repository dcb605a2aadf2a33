package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/BOSTONE069/procurement-service/internal/models"
)

// BidRepository - интерфейс для работы с предложениями.
type BidRepository interface {
	CreateBid(ctx context.Context, bid models.Bid) error
	GetTenderBid(ctx context.Context, tenderId string) ([]models.Bid, error)
}

// InMemoryBidRepository - реализация BidRepository в памяти процесса.
// Предложения хранятся под составным ключом
// "<tenderId>-<bidder>-<unixNano>-<seq>": счётчик seq ведётся отдельно для
// каждой пары (тендер, участник), поэтому предложения с одинаковой меткой
// времени не затирают друг друга.
type InMemoryBidRepository struct {
	mu    sync.RWMutex
	bids  map[string]models.Bid
	order []string
	seq   map[string]uint64
}

// NewInMemoryBidRepository создает новый экземпляр InMemoryBidRepository.
func NewInMemoryBidRepository() *InMemoryBidRepository {
	return &InMemoryBidRepository{
		bids: make(map[string]models.Bid),
		seq:  make(map[string]uint64),
	}
}

// CreateBid сохраняет новое предложение под составным ключом.
func (r *InMemoryBidRepository) CreateBid(ctx context.Context, bid models.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pair := bid.TenderId + "-" + string(bid.Bidder)
	r.seq[pair]++
	key := fmt.Sprintf("%s-%d-%d", pair, bid.SubmittedAt.UnixNano(), r.seq[pair])

	r.bids[key] = bid
	r.order = append(r.order, key)
	return nil
}

// GetTenderBid возвращает все предложения по тендеру в порядке подачи.
// Индекс не ведётся: выполняется полный проход по всем предложениям.
func (r *InMemoryBidRepository) GetTenderBid(ctx context.Context, tenderId string) ([]models.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var bids []models.Bid
	for _, key := range r.order {
		if bid := r.bids[key]; bid.TenderId == tenderId {
			bids = append(bids, bid)
		}
	}
	return bids, nil
}
